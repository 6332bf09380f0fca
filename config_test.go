package presets

import (
	"encoding/json"
	"testing"
)

func TestConfigValueTreatsNullAsAbsent(t *testing.T) {
	cfg := Config{"value": nil}
	if _, ok := cfg.Value(); ok {
		t.Fatalf("stored null must count as absent")
	}
	if !cfg.Has(AttrValue) {
		t.Fatalf("the key itself is still present")
	}

	cfg = Config{"value": false}
	value, ok := cfg.Value()
	if !ok || value != false {
		t.Fatalf("false must survive presence checks, got %v %v", value, ok)
	}
}

func TestConfigCloneDetaches(t *testing.T) {
	original := Config{"value": 1}
	clone := original.Clone()
	clone["value"] = 2
	if original["value"] != 1 {
		t.Fatalf("clone must not share storage")
	}
	if Config(nil).Clone() != nil {
		t.Fatalf("nil bags clone to nil")
	}
}

func TestChoiceMemberNormalizesNumbers(t *testing.T) {
	choices := []any{json.Number("1"), json.Number("2.5"), "x"}
	cases := []struct {
		value any
		want  bool
	}{
		{1, true},
		{2.5, true},
		{json.Number("2.5"), true},
		{"x", true},
		{3, false},
		{"y", false},
	}
	for _, tc := range cases {
		if got := choiceMember(choices, tc.value); got != tc.want {
			t.Fatalf("choiceMember(%v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
