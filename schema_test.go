package presets

import "testing"

func TestDescribeFlattensSortedAttributes(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "p.json", `{
    "B/Widget": {
        "visible": true,
        "value": "x"
    },
    "A/Widget": {
        "value": 0.5
    }
}`)
	s := mustStore(t, dir)

	descriptors, err := s.Describe("p")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	wantPaths := []string{"A/Widget.value", "B/Widget.value", "B/Widget.visible"}
	if len(descriptors) != len(wantPaths) {
		t.Fatalf("expected %d descriptors, got %+v", len(wantPaths), descriptors)
	}
	for i, want := range wantPaths {
		if descriptors[i].Path != want {
			t.Fatalf("expected %q at index %d, got %+v", want, i, descriptors)
		}
	}
	if descriptors[0].Type != "json.Number" {
		t.Fatalf("expected numeric attribute typed json.Number, got %q", descriptors[0].Type)
	}
	if descriptors[2].Type != "bool" {
		t.Fatalf("expected bool attribute, got %q", descriptors[2].Type)
	}
}

func TestDescribeMissingPreset(t *testing.T) {
	s := mustStore(t, t.TempDir())
	descriptors, err := s.Describe("nope")
	if err != nil {
		t.Fatalf("describe missing preset: %v", err)
	}
	if len(descriptors) != 0 {
		t.Fatalf("expected no descriptors, got %+v", descriptors)
	}
}
