package presets

import (
	"encoding/json"
	"reflect"
)

// Attribute keys recognised in a widget's persisted bag. Choices participate
// in construction arguments only and are never persisted.
const (
	AttrValue   = "value"
	AttrVisible = "visible"
	AttrMin     = "min"
	AttrMax     = "max"
	AttrStep    = "step"
	AttrWhen    = "when"
	AttrLabel   = "label"
	AttrChoices = "choices"
)

// Config is the attribute bag persisted for a single widget path. Only the
// attributes applicable to the widget's capability set are populated.
// Presence is tracked by key membership so that false and zero values survive
// round-trips.
type Config map[string]any

// Has reports whether the bag carries attr.
func (c Config) Has(attr string) bool {
	_, ok := c[attr]
	return ok
}

// Value returns the stored value and whether it is present. A stored JSON
// null counts as absent.
func (c Config) Value() (any, bool) {
	value, ok := c[AttrValue]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// When returns the apply rule attached to the bag, if any.
func (c Config) When() string {
	rule, _ := c[AttrWhen].(string)
	return rule
}

// Clone returns a detached shallow copy of the bag.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for attr, value := range c {
		out[attr] = value
	}
	return out
}

// PresetMap is the on-disk mapping from widget path to attribute bag.
type PresetMap map[string]Config

// Clone returns a copy with detached bags.
func (m PresetMap) Clone() PresetMap {
	if m == nil {
		return nil
	}
	out := make(PresetMap, len(m))
	for path, bag := range m {
		out[path] = bag.Clone()
	}
	return out
}

// floatValue normalises the numeric representations that reach the store:
// native Go numbers from live widgets and json.Number from decoded files.
func floatValue(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func choiceMember(choices []any, value any) bool {
	for _, choice := range choices {
		if choiceEqual(choice, value) {
			return true
		}
	}
	return false
}

func choiceEqual(a, b any) bool {
	if af, ok := floatValue(a); ok {
		if bf, ok := floatValue(b); ok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}
