package presets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-presets/internal/codec"
	"github.com/goliatone/go-presets/pkg/activity"
	"github.com/google/uuid"
)

// Ext is the preset file extension appended to bare preset names.
const Ext = ".json"

// DefaultPresetName is the distinguished preset consulted at construction
// time unless overridden through WithDefaultName or WithDefaultPresets.
const DefaultPresetName = "default.json"

const (
	savedMessage   = "successfully saved the preset"
	appliedMessage = "successfully loaded the preset"
)

// Store owns the registry of addressed widgets and persists their attribute
// bags under named preset files in a single base directory. A Store is scoped
// to one form session: create it when the form is built, discard it with the
// session. All operations run to completion on the calling goroutine.
type Store struct {
	baseDir   string
	cfg       storeConfig
	defaults  PresetMap
	widgets   []Widget
	byPath    map[string]int
	emitter   *activity.Emitter
	decoder   *codec.Decoder[PresetMap]
	evaluator RuleEvaluator
}

// New constructs a Store rooted at baseDir and loads the default preset chain
// used to seed construction arguments for every subsequently registered
// widget. A missing default preset is fine; a corrupt one is not.
func New(baseDir string, opts ...Option) (*Store, error) {
	cfg := applyStoreOptions(opts)
	s := &Store{
		baseDir:   baseDir,
		cfg:       cfg,
		byPath:    map[string]int{},
		emitter:   activity.NewEmitter(cfg.activityHooks, activity.Config{Enabled: true}),
		decoder:   codec.NewDecoder[PresetMap](codec.WithUseNumber[PresetMap]()),
		evaluator: cfg.evaluator,
	}
	chain := cfg.defaultChain
	if len(chain) == 0 {
		chain = []string{cfg.defaultName}
	}
	layers := make([]PresetMap, 0, len(chain))
	for _, name := range chain {
		_, mapping, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		layers = append(layers, mapping)
	}
	s.defaults = LayerPresets(layers...)
	return s, nil
}

// BaseDir returns the preset directory this store resolves names under.
func (s *Store) BaseDir() string { return s.baseDir }

// DefaultName returns the distinguished default preset filename.
func (s *Store) DefaultName() string { return s.cfg.defaultName }

// Widgets returns the registry in registration order.
func (s *Store) Widgets() []Widget {
	out := make([]Widget, len(s.widgets))
	copy(out, s.widgets)
	return out
}

// Register resolves the path for a new widget from the ancestor chain in
// effect at call time, fills construction arguments the caller left unset
// from the default preset bag at that path, constructs the widget through
// factory, stamps it with its path and appends it to the registry. The
// registry grows monotonically; nothing ever removes entries.
func (s *Store) Register(factory Factory, ancestors []string, args Args) (Widget, error) {
	if factory == nil {
		return nil, fmt.Errorf("presets: factory is required")
	}
	path, err := ResolvePath(ancestors, args.Label())
	if err != nil {
		return nil, err
	}
	if _, exists := s.byPath[path]; exists {
		if s.cfg.strictPaths {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, path)
		}
		s.logger().LogOperation(StoreLogEvent{
			Op:   "register",
			Path: path,
			Err:  fmt.Errorf("%w: %s", ErrDuplicatePath, path),
		})
	}
	merged := fillArgs(args, s.defaults[path])
	widget, err := factory(merged)
	if err != nil {
		return nil, fmt.Errorf("presets: construct %q: %w", path, err)
	}
	widget.SetPath(path)
	s.byPath[path] = len(s.widgets)
	s.widgets = append(s.widgets, widget)
	s.emit(activity.BuildWidgetRegisteredEvent(activity.EventInput{
		Path:    path,
		Widgets: len(s.widgets),
	}))
	return widget, nil
}

// Load resolves name under the base directory and returns the resolved file
// path alongside the stored mapping. A missing file yields an empty mapping,
// not an error; a file that exists but does not decode into the expected
// shape yields a CorruptPresetError.
func (s *Store) Load(name string) (string, PresetMap, error) {
	file := s.resolveFile(name)
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, PresetMap{}, nil
		}
		return file, nil, fmt.Errorf("presets: read %s: %w", file, err)
	}
	mapping, err := s.decoder.Decode(codec.Context{Name: name, File: file}, data)
	if err != nil {
		return file, nil, &CorruptPresetError{File: file, Err: err}
	}
	if mapping == nil {
		return file, nil, &CorruptPresetError{File: file, Err: errors.New("top-level value is not an object")}
	}
	return file, mapping, nil
}

func (s *Store) resolveFile(name string) string {
	if !strings.HasSuffix(name, Ext) {
		name += Ext
	}
	return filepath.Join(s.baseDir, SanitizeFilename(name))
}

// Save snapshots the supplied values, one per registered widget in
// registration order, into the named preset. Entries for paths outside the
// current registry are preserved untouched. The stored value is always
// refreshed; visibility and bounds keep their first recorded setting.
func (s *Store) Save(name string, values ...any) (string, error) {
	start := time.Now()
	if len(values) != len(s.widgets) {
		return "", fmt.Errorf("%w: got %d values for %d widgets", ErrValueCount, len(values), len(s.widgets))
	}
	file, mapping, err := s.Load(name)
	if err != nil {
		return "", err
	}
	for i, w := range s.widgets {
		bag := mapping[w.Path()]
		if bag == nil {
			bag = Config{}
		}
		bag[AttrValue] = values[i]
		if vw, ok := w.(VisibleWidget); ok && !bag.Has(AttrVisible) {
			bag[AttrVisible] = vw.Visible()
		}
		if bw, ok := w.(BoundedWidget); ok {
			min, max, step := bw.Bounds()
			if !bag.Has(AttrMin) {
				bag[AttrMin] = min
			}
			if !bag.Has(AttrMax) {
				bag[AttrMax] = max
			}
			if !bag.Has(AttrStep) {
				bag[AttrStep] = step
			}
		}
		mapping[w.Path()] = bag
	}
	if err := os.MkdirAll(s.baseDir, 0o777); err != nil {
		return "", fmt.Errorf("presets: create %s: %w", s.baseDir, err)
	}
	data, err := codec.Encode(mapping)
	if err != nil {
		return "", fmt.Errorf("presets: encode %s: %w", file, err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return "", fmt.Errorf("presets: write %s: %w", file, err)
	}
	s.emit(activity.BuildPresetSavedEvent(activity.EventInput{
		Preset:     name,
		File:       file,
		SnapshotID: uuid.NewString(),
		Widgets:    len(s.widgets),
	}))
	s.logger().LogOperation(StoreLogEvent{
		Op:       "save",
		Preset:   name,
		File:     file,
		Widgets:  len(s.widgets),
		Duration: time.Since(start),
	})
	return savedMessage, nil
}

// Apply loads the named preset and pushes each widget's surviving attributes
// back into it, producing one update directive per widget in registration
// order plus a trailing confirmation message. The preset file is never
// mutated.
func (s *Store) Apply(name string) ([]Update, string, error) {
	updates, _, message, err := s.apply(name, false)
	return updates, message, err
}

// ApplyWithTrace behaves like Apply and additionally reports per-widget
// provenance for the pass.
func (s *Store) ApplyWithTrace(name string) ([]Update, *ApplyTrace, string, error) {
	return s.apply(name, true)
}

func (s *Store) apply(name string, traced bool) ([]Update, *ApplyTrace, string, error) {
	start := time.Now()
	file, mapping, err := s.Load(name)
	if err != nil {
		return nil, nil, "", err
	}
	values := s.snapshotValues()
	updates := make([]Update, 0, len(s.widgets))
	var trace *ApplyTrace
	if traced {
		trace = &ApplyTrace{Preset: name, File: file}
	}
	for _, w := range s.widgets {
		stored, found := mapping[w.Path()]
		bag := stored.Clone()
		if bag == nil {
			bag = Config{}
		}
		prov := Provenance{Path: w.Path(), Found: found}
		if rule := bag.When(); rule != "" {
			delete(bag, AttrWhen)
			prov.Rule = rule
			keep, err := s.evalWhen(w, values, bag[AttrValue], rule)
			if err != nil {
				return nil, nil, "", err
			}
			prov.RuleSatisfied = keep
			if !keep {
				bag = Config{}
			}
		}
		if value, ok := bag.Value(); ok {
			if cw, ok := w.(ChoiceWidget); ok && !choiceMember(cw.Choices(), value) {
				delete(bag, AttrValue)
				prov.Elided = append(prov.Elided, AttrValue)
			}
		}
		updates = append(updates, w.Update(bag))
		if traced {
			prov.Applied = bag.Clone()
			trace.Widgets = append(trace.Widgets, prov)
		}
	}
	s.emit(activity.BuildPresetAppliedEvent(activity.EventInput{
		Preset:  name,
		File:    file,
		Widgets: len(s.widgets),
	}))
	s.logger().LogOperation(StoreLogEvent{
		Op:       "apply",
		Preset:   name,
		File:     file,
		Widgets:  len(s.widgets),
		Duration: time.Since(start),
	})
	return updates, trace, appliedMessage, nil
}

// List enumerates preset files in the base directory, non-recursive, files
// only. Order follows directory enumeration; callers needing determinism
// must sort. An empty or absent directory yields the default preset filename
// as a placeholder so callers are never shown an empty choice set.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("presets: list %s: %w", s.baseDir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		names = append(names, s.cfg.defaultName)
	}
	return names, nil
}

func (s *Store) snapshotValues() map[string]any {
	values := make(map[string]any, len(s.widgets))
	for _, w := range s.widgets {
		values[w.Path()] = w.Value()
	}
	return values
}

func (s *Store) logger() StoreLogger {
	if s.cfg.logger != nil {
		return s.cfg.logger
	}
	return noopStoreLogger{}
}

func (s *Store) ruleLogger() RuleLogger {
	if s.cfg.ruleLogger != nil {
		return s.cfg.ruleLogger
	}
	return noopRuleLogger{}
}

func (s *Store) emit(event activity.Event) {
	if !s.emitter.Enabled() {
		return
	}
	if err := s.emitter.Emit(context.Background(), event); err != nil {
		s.logger().LogOperation(StoreLogEvent{Op: "activity", Preset: event.Preset, Err: err})
	}
}
