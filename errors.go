package presets

import (
	"errors"
	"fmt"
)

var (
	// ErrLabelRequired indicates a widget was registered without a resolvable
	// label anywhere in its position.
	ErrLabelRequired = errors.New("presets: label must not be empty")
	// ErrDuplicatePath indicates two live widgets resolved to the same path.
	ErrDuplicatePath = errors.New("presets: duplicate widget path")
	// ErrValueCount indicates Save received a value count that does not match
	// the registry.
	ErrValueCount = errors.New("presets: value count does not match registered widgets")
)

// CorruptPresetError reports a preset file that exists but cannot be decoded
// into the expected mapping. There is no partial-data fallback.
type CorruptPresetError struct {
	File string
	Err  error
}

func (e *CorruptPresetError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("presets: corrupt preset %s: %v", e.File, e.Err)
}

func (e *CorruptPresetError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
