package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is a renderer-agnostic polygon style. Values mirror the vector layer
// options of the map library the dashboard renders with.
type Style struct {
	FillColor   string  `json:"fill_color"`
	Color       string  `json:"color"`
	Weight      int     `json:"weight"`
	FillOpacity float64 `json:"fill_opacity"`
}

const (
	baseBorderColor     = "#2563eb"
	selectedBorderColor = "#1d4ed8"

	baseWeight     = 1
	hoverWeight    = 2
	selectedWeight = 4

	baseFillOpacity     = 0.25
	hoverFillOpacity    = 0.65
	selectedFillOpacity = 0.35

	hoverDarkenFactor = 0.65
)

// BaselineStyle is the idle styling for a district, filled with its risk
// color.
func BaselineStyle(riskColor string) Style {
	return Style{
		FillColor:   riskColor,
		Color:       baseBorderColor,
		Weight:      baseWeight,
		FillOpacity: baseFillOpacity,
	}
}

// HoverStyle is the transient preview styling: darker fill, thicker border.
func HoverStyle(riskColor string) Style {
	return Style{
		FillColor:   darkenHex(riskColor, hoverDarkenFactor),
		Color:       baseBorderColor,
		Weight:      hoverWeight,
		FillOpacity: hoverFillOpacity,
	}
}

// SelectedStyle is the persisted selection styling: thicker border, distinct
// outline, elevated fill opacity over the district's own risk color.
func SelectedStyle(riskColor string) Style {
	return Style{
		FillColor:   riskColor,
		Color:       selectedBorderColor,
		Weight:      selectedWeight,
		FillOpacity: selectedFillOpacity,
	}
}

// darkenHex scales each channel of a #rrggbb color by factor. Anything that
// does not parse is returned unchanged.
func darkenHex(hex string, factor float64) string {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return hex
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return hex
	}
	r := uint32(float64(n>>16&0xff) * factor)
	g := uint32(float64(n>>8&0xff) * factor)
	b := uint32(float64(n&0xff) * factor)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
