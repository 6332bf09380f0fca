package presets

import "strings"

// PathSeparator joins ancestor labels into widget paths.
const PathSeparator = "/"

// ResolvePath derives the stable identifier for a widget from its ancestor
// label chain and its own label. Ancestors are ordered root first; anonymous
// containers appear as empty strings and are skipped without breaking the
// walk. For a fixed tree shape and fixed labels the result is a pure function
// of position and carries no dependency on registration order.
func ResolvePath(ancestors []string, label string) (string, error) {
	if strings.TrimSpace(label) == "" {
		return "", ErrLabelRequired
	}
	parts := make([]string, 0, len(ancestors)+1)
	for _, ancestor := range ancestors {
		if ancestor == "" {
			continue
		}
		parts = append(parts, ancestor)
	}
	parts = append(parts, label)
	return strings.Join(parts, PathSeparator), nil
}
