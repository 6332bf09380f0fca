package presets

import "testing"

func TestFillArgsCallerWins(t *testing.T) {
	args := Args{"label": "Threshold", "value": 0.2}
	defaults := Config{"value": 0.7, "min": 0.0, "max": 1.0}

	merged := fillArgs(args, defaults)

	if merged["value"] != 0.2 {
		t.Fatalf("caller-supplied value must win, got %v", merged["value"])
	}
	if merged["min"] != 0.0 || merged["max"] != 1.0 {
		t.Fatalf("defaults must fill missing keys, got %v", merged)
	}
	if _, ok := args["min"]; ok {
		t.Fatalf("fillArgs must not mutate the caller's arguments")
	}
}

func TestFillArgsNilArgs(t *testing.T) {
	merged := fillArgs(nil, Config{"value": 1})
	if merged["value"] != 1 {
		t.Fatalf("expected defaults applied to nil args, got %v", merged)
	}
}

func TestLayerPresetsStrongestWinsPerAttribute(t *testing.T) {
	user := PresetMap{
		"Group/Widget": {"value": "user"},
	}
	site := PresetMap{
		"Group/Widget": {"value": "site", "min": 0.0},
		"Group/Other":  {"value": 42},
	}

	merged := LayerPresets(user, site)

	bag := merged["Group/Widget"]
	if bag["value"] != "user" {
		t.Fatalf("strongest layer must win for value, got %v", bag["value"])
	}
	if bag["min"] != 0.0 {
		t.Fatalf("weaker layer must fill missing attributes, got %v", bag)
	}
	if merged["Group/Other"]["value"] != 42 {
		t.Fatalf("paths unique to weaker layers must survive, got %v", merged)
	}
}

func TestLayerPresetsDetachesBags(t *testing.T) {
	source := PresetMap{"P": {"value": 1}}
	merged := LayerPresets(source)
	merged["P"]["value"] = 2
	if source["P"]["value"] != 1 {
		t.Fatalf("layered bags must be detached from their sources")
	}
}
