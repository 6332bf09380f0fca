package presets

import "testing"

func TestFieldSetPathSticks(t *testing.T) {
	field := NewField(Args{"label": "Name", "value": "x"})
	field.SetPath("Group/Name")
	field.SetPath("Other/Name")
	if field.Path() != "Group/Name" {
		t.Fatalf("path must be stamped once, got %q", field.Path())
	}
}

func TestFieldUpdateAppliesValue(t *testing.T) {
	field := NewField(Args{"label": "Name", "value": "old"})
	field.SetPath("Group/Name")

	update := field.Update(Config{"value": "new"})
	if field.Value() != "new" {
		t.Fatalf("expected value applied, got %v", field.Value())
	}
	if update.Path != "Group/Name" || update.Config["value"] != "new" {
		t.Fatalf("unexpected directive: %+v", update)
	}

	update = field.Update(Config{})
	if field.Value() != "new" {
		t.Fatalf("empty bag must not clear the value, got %v", field.Value())
	}
	if len(update.Config) != 0 {
		t.Fatalf("expected empty directive config, got %v", update.Config)
	}
}

func TestCheckboxVisibility(t *testing.T) {
	widget, err := NewCheckbox(Args{"label": "Enabled", "value": true, "visible": false})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	checkbox := widget.(*Checkbox)
	if checkbox.Visible() {
		t.Fatalf("expected construction visibility honored")
	}
	checkbox.Update(Config{"visible": true})
	if !checkbox.Visible() {
		t.Fatalf("expected visibility update applied")
	}
}

func TestSliderBounds(t *testing.T) {
	widget, err := NewSlider(Args{"label": "Threshold", "value": 0.5, "min": 0.0, "max": 1.0, "step": 0.05})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	slider := widget.(*Slider)
	min, max, step := slider.Bounds()
	if min != 0 || max != 1 || step != 0.05 {
		t.Fatalf("unexpected bounds: %v %v %v", min, max, step)
	}

	slider.Update(Config{"min": 0.1})
	if min, _, _ := slider.Bounds(); min != 0.1 {
		t.Fatalf("expected min update applied, got %v", min)
	}
}

func TestDropdownChoicesDetached(t *testing.T) {
	widget, err := NewDropdown(Args{"label": "Model", "value": "base", "choices": []any{"base", "large"}})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	dropdown := widget.(*Dropdown)
	choices := dropdown.Choices()
	choices[0] = "mutated"
	if dropdown.Choices()[0] != "base" {
		t.Fatalf("choices must be detached copies")
	}

	dropdown.SetChoices([]any{"small"})
	if got := dropdown.Choices(); len(got) != 1 || got[0] != "small" {
		t.Fatalf("unexpected choices after SetChoices: %v", got)
	}
}
