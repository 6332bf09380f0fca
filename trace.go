package presets

import "encoding/json"

// ApplyTrace captures how one apply pass unfolded across the registry.
type ApplyTrace struct {
	Preset  string       `json:"preset"`
	File    string       `json:"file"`
	Widgets []Provenance `json:"widgets"`
}

// Provenance details how a single widget's bag was reconciled.
type Provenance struct {
	Path          string   `json:"path"`
	Found         bool     `json:"found"`
	Applied       Config   `json:"applied,omitempty"`
	Elided        []string `json:"elided,omitempty"`
	Rule          string   `json:"rule,omitempty"`
	RuleSatisfied bool     `json:"rule_satisfied,omitempty"`
}

// ToJSON serialises the trace for logging or transport helpers.
func (t ApplyTrace) ToJSON() ([]byte, error) {
	type alias ApplyTrace
	return json.Marshal(alias(t))
}

// ApplyTraceFromJSON deserialises a payload previously generated via ToJSON.
func ApplyTraceFromJSON(payload []byte) (ApplyTrace, error) {
	type alias ApplyTrace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return ApplyTrace{}, err
	}
	return ApplyTrace(trace), nil
}
