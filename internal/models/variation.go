package models

type ClassVariation string

const (
	VariationUp    ClassVariation = "up"
	VariationDown  ClassVariation = "down"
	VariationEqual ClassVariation = "equal"
)

type Marker string

const (
	MarkerNone Marker = ""
	MarkerUp   Marker = "up"
	MarkerDown Marker = "down"
)

// Marker picks the arrow shown next to the variation. Anything that is not
// exactly up or down, "equal", empty and padded values included, gets no arrow.
func (c ClassVariation) Marker() Marker {
	switch c {
	case VariationUp:
		return MarkerUp
	case VariationDown:
		return MarkerDown
	default:
		return MarkerNone
	}
}

func (m Marker) Symbol() string {
	switch m {
	case MarkerUp:
		return "▲"
	case MarkerDown:
		return "▼"
	default:
		return ""
	}
}
