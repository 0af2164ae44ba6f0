package gameobject

import "strings"

// Kind selects the shape a factory produces.
type Kind int

const (
	KindUnknown Kind = iota
	KindCircle
	KindSquare
	KindRectangle
	KindTriangle
	KindObround
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSquare:
		return "square"
	case KindRectangle:
		return "rectangle"
	case KindTriangle:
		return "triangle"
	case KindObround:
		return "obround"
	default:
		return "unknown"
	}
}

// ParseKind maps a case-insensitive shape name to a Kind. "stadium" is
// accepted for obrounds.
func ParseKind(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circle":
		return KindCircle
	case "square":
		return KindSquare
	case "rectangle":
		return KindRectangle
	case "triangle":
		return KindTriangle
	case "obround", "stadium":
		return KindObround
	default:
		return KindUnknown
	}
}
