package codec

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type mapping map[string]map[string]any

func TestDecodeTypedMapping(t *testing.T) {
	decoder := NewDecoder[mapping]()
	payload := []byte(`{"Group/Widget": {"value": 0.5, "visible": false}}`)

	result, err := decoder.Decode(Context{Name: "p", File: "p.json"}, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bag := result["Group/Widget"]
	if bag["value"] != 0.5 || bag["visible"] != false {
		t.Fatalf("unexpected mapping: %v", result)
	}
}

func TestDecodeUseNumber(t *testing.T) {
	decoder := NewDecoder[mapping](WithUseNumber[mapping]())
	payload := []byte(`{"W": {"value": 0.1}}`)

	result, err := decoder.Decode(Context{Name: "p"}, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	number, ok := result["W"]["value"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", result["W"]["value"])
	}
	if number.String() != "0.1" {
		t.Fatalf("expected literal 0.1 preserved, got %q", number)
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	decoder := NewDecoder[mapping]()
	if _, err := decoder.Decode(Context{Name: "p"}, nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestDecodeMalformedPayload(t *testing.T) {
	decoder := NewDecoder[mapping]()
	_, err := decoder.Decode(Context{Name: "bad"}, []byte("{oops"))
	if err == nil || !strings.Contains(err.Error(), `"bad"`) {
		t.Fatalf("expected error naming the preset, got %v", err)
	}
}

func TestPreHookRewritesRawMapping(t *testing.T) {
	decoder := NewDecoder[mapping](WithPreHook[mapping](func(_ Context, raw map[string]any) (map[string]any, error) {
		if legacy, ok := raw["Old/Path"]; ok {
			raw["New/Path"] = legacy
			delete(raw, "Old/Path")
		}
		return raw, nil
	}))

	result, err := decoder.Decode(Context{Name: "p"}, []byte(`{"Old/Path": {"value": 1}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := result["New/Path"]; !ok {
		t.Fatalf("expected pre-hook rewrite applied, got %v", result)
	}
}

func TestPostHookCanReject(t *testing.T) {
	wantErr := errors.New("no entries")
	decoder := NewDecoder[mapping](WithPostHook[mapping](func(_ Context, result *mapping) error {
		if len(*result) == 0 {
			return wantErr
		}
		return nil
	}))

	_, err := decoder.Decode(Context{Name: "p"}, []byte(`{}`))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected post-hook error, got %v", err)
	}
}

func TestEncodeUsesFourSpaceIndent(t *testing.T) {
	data, err := Encode(map[string]any{"W": map[string]any{"value": 1}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(data), "\n    \"W\"") {
		t.Fatalf("expected four-space indentation, got %q", data)
	}
}
