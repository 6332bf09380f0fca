package presets

import (
	"fmt"
	"sort"
)

// FieldDescriptor describes one stored attribute and its inferred type.
type FieldDescriptor struct {
	Path string
	Type string
}

// Describe loads the named preset and flattens it into sorted field
// descriptors, one per stored attribute. Useful for inspecting hand-edited
// preset files without constructing widgets.
func (s *Store) Describe(name string) ([]FieldDescriptor, error) {
	_, mapping, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	return describeMapping(mapping), nil
}

func describeMapping(mapping PresetMap) []FieldDescriptor {
	paths := make([]string, 0, len(mapping))
	for path := range mapping {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	descriptors := []FieldDescriptor{}
	for _, path := range paths {
		bag := mapping[path]
		attrs := make([]string, 0, len(bag))
		for attr := range bag {
			attrs = append(attrs, attr)
		}
		sort.Strings(attrs)
		for _, attr := range attrs {
			descriptors = append(descriptors, FieldDescriptor{
				Path: path + "." + attr,
				Type: attrTypeName(bag[attr]),
			})
		}
	}
	return descriptors
}

func attrTypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
