package presets

// Field is a minimal Widget implementation intended for tests and examples.
// Real form frameworks supply their own widgets; the store only relies on the
// interfaces in widget.go.
type Field struct {
	label string
	path  string
	value any
}

// NewField builds a Field from construction arguments.
func NewField(args Args) *Field {
	return &Field{label: args.Label(), value: args[AttrValue]}
}

func (f *Field) Label() string { return f.label }
func (f *Field) Path() string  { return f.path }
func (f *Field) Value() any    { return f.value }

// SetPath stamps the widget path. Later calls are ignored so the identity
// assigned at registration sticks.
func (f *Field) SetPath(path string) {
	if f.path == "" {
		f.path = path
	}
}

// Update applies the surviving attributes and returns the directive.
func (f *Field) Update(cfg Config) Update {
	if value, ok := cfg.Value(); ok {
		f.value = value
	}
	return Update{Path: f.path, Config: cfg.Clone()}
}

// NewTextbox is a Factory for a plain value field.
func NewTextbox(args Args) (Widget, error) {
	return NewField(args), nil
}

// Checkbox is a Field with a visibility flag.
type Checkbox struct {
	Field
	visible bool
}

// NewCheckbox is a Factory for Checkbox. Visibility defaults to true.
func NewCheckbox(args Args) (Widget, error) {
	visible := true
	if v, ok := args[AttrVisible].(bool); ok {
		visible = v
	}
	return &Checkbox{Field: *NewField(args), visible: visible}, nil
}

func (c *Checkbox) Visible() bool { return c.visible }

func (c *Checkbox) Update(cfg Config) Update {
	if v, ok := cfg[AttrVisible].(bool); ok {
		c.visible = v
	}
	return c.Field.Update(cfg)
}

// Slider is a Field with numeric bounds.
type Slider struct {
	Field
	min, max, step float64
}

// NewSlider is a Factory for Slider. Step defaults to 1.
func NewSlider(args Args) (Widget, error) {
	s := &Slider{Field: *NewField(args), step: 1}
	if v, ok := floatValue(args[AttrMin]); ok {
		s.min = v
	}
	if v, ok := floatValue(args[AttrMax]); ok {
		s.max = v
	}
	if v, ok := floatValue(args[AttrStep]); ok {
		s.step = v
	}
	return s, nil
}

func (s *Slider) Bounds() (min, max, step float64) {
	return s.min, s.max, s.step
}

func (s *Slider) Update(cfg Config) Update {
	if v, ok := floatValue(cfg[AttrMin]); ok {
		s.min = v
	}
	if v, ok := floatValue(cfg[AttrMax]); ok {
		s.max = v
	}
	if v, ok := floatValue(cfg[AttrStep]); ok {
		s.step = v
	}
	return s.Field.Update(cfg)
}

// Dropdown is a Field restricted to a choice set.
type Dropdown struct {
	Field
	choices []any
}

// NewDropdown is a Factory for Dropdown.
func NewDropdown(args Args) (Widget, error) {
	d := &Dropdown{Field: *NewField(args)}
	if choices, ok := args[AttrChoices].([]any); ok {
		d.choices = append([]any(nil), choices...)
	}
	return d, nil
}

// Choices returns the current choice set.
func (d *Dropdown) Choices() []any {
	return append([]any(nil), d.choices...)
}

// SetChoices replaces the choice set, modelling a dynamically rebuilt form.
func (d *Dropdown) SetChoices(choices []any) {
	d.choices = append([]any(nil), choices...)
}
