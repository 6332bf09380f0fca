package presets

// Widget is the minimal surface the store needs from a registered control: a
// label for path resolution, a path slot stamped once at registration, the
// current value, and an update-application primitive. The store never assumes
// a closed set of widget kinds; extra capabilities are discovered through the
// optional interfaces below.
type Widget interface {
	Label() string
	Path() string
	SetPath(path string)
	Value() any
	Update(cfg Config) Update
}

// VisibleWidget is implemented by widgets that expose a visibility flag.
type VisibleWidget interface {
	Widget
	Visible() bool
}

// BoundedWidget is implemented by widgets that expose numeric bounds.
type BoundedWidget interface {
	Widget
	Bounds() (min, max, step float64)
}

// ChoiceWidget is implemented by widgets with a restricted choice set. Stored
// values outside the current set are elided before application.
type ChoiceWidget interface {
	Widget
	Choices() []any
}

// Factory constructs a widget from merged construction arguments.
type Factory func(args Args) (Widget, error)

// Args carries construction arguments for Factory implementations. Keys share
// the attribute vocabulary of Config plus "label" and widget-specific extras
// such as "choices".
type Args map[string]any

// Label returns the declared widget label, if any.
func (a Args) Label() string {
	label, _ := a[AttrLabel].(string)
	return label
}

// Clone returns a detached copy of the argument set.
func (a Args) Clone() Args {
	if a == nil {
		return nil
	}
	out := make(Args, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Update is the directive produced when a bag is pushed into a widget.
// Config holds the attributes that survived reconciliation.
type Update struct {
	Path   string `json:"path"`
	Config Config `json:"config,omitempty"`
}
