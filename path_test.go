package presets

import (
	"errors"
	"testing"
)

func TestResolvePathJoinsAncestorChain(t *testing.T) {
	cases := []struct {
		name      string
		ancestors []string
		label     string
		want      string
	}{
		{"no ancestors", nil, "Threshold", "Threshold"},
		{"single ancestor", []string{"Group1"}, "Threshold", "Group1/Threshold"},
		{"nested ancestors", []string{"Tagger", "Filters"}, "Threshold", "Tagger/Filters/Threshold"},
		{"anonymous containers skipped", []string{"Tagger", "", "Filters", ""}, "Threshold", "Tagger/Filters/Threshold"},
		{"only anonymous containers", []string{"", ""}, "Threshold", "Threshold"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolvePath(tc.ancestors, tc.label)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResolvePathIsDeterministic(t *testing.T) {
	first, err := ResolvePath([]string{"Group1", "Sub"}, "Widget")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := ResolvePath([]string{"Group1", "Sub"}, "Widget")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if first != second {
		t.Fatalf("identical chains must yield identical paths: %q vs %q", first, second)
	}

	other, err := ResolvePath([]string{"Group2", "Sub"}, "Widget")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if other == first {
		t.Fatalf("distinct chains must yield distinct paths, both got %q", first)
	}
}

func TestResolvePathRequiresLabel(t *testing.T) {
	for _, label := range []string{"", "   "} {
		if _, err := ResolvePath([]string{"Group1"}, label); !errors.Is(err, ErrLabelRequired) {
			t.Fatalf("expected ErrLabelRequired for %q, got %v", label, err)
		}
	}
}
