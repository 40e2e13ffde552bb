package selection

import "testing"

func TestStylePresets(t *testing.T) {
	base := BaselineStyle("#22c55e")
	if base.FillColor != "#22c55e" || base.Color != "#2563eb" || base.Weight != 1 || base.FillOpacity != 0.25 {
		t.Errorf("unexpected baseline style: %+v", base)
	}

	hover := HoverStyle("#22c55e")
	if hover.Weight != 2 || hover.FillOpacity != 0.65 {
		t.Errorf("unexpected hover style: %+v", hover)
	}
	if hover.FillColor == "#22c55e" {
		t.Error("hover fill should be darkened")
	}

	sel := SelectedStyle("#ef4444")
	if sel.FillColor != "#ef4444" || sel.Color != "#1d4ed8" || sel.Weight != 4 || sel.FillOpacity != 0.35 {
		t.Errorf("unexpected selected style: %+v", sel)
	}
}

func TestDarkenHex(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#ffffff", "#a5a5a5"},
		{"#000000", "#000000"},
		{"#22c55e", "#16803d"},
		{"not-a-color", "not-a-color"},
		{"#fff", "#fff"},
		{"#zzzzzz", "#zzzzzz"},
	}
	for _, tt := range tests {
		if got := darkenHex(tt.in, 0.65); got != tt.want {
			t.Errorf("darkenHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
