package gameobject

import (
	"strconv"

	apperrors "github.com/louisbranch/creational/internal/platform/errors"
)

// Create builds a single-dimension object. Kinds that need two dimensions
// yield nil.
func Create(kind Kind, size float64) GameObject {
	switch kind {
	case KindCircle:
		return &Circle{parts: basicParts(), Radius: size}
	case KindSquare:
		return &Square{parts: basicParts(), Side: size}
	case KindTriangle:
		return &Triangle{parts: basicParts(), Side: size}
	default:
		return nil
	}
}

// CreateWithDimensions builds a two-dimension object. Kinds that take a
// single size yield nil with no error. An obround shorter than it is tall is
// rejected.
func CreateWithDimensions(kind Kind, length, height float64) (GameObject, error) {
	switch kind {
	case KindRectangle:
		return &Rectangle{parts: basicParts(), Length: length, Height: height}, nil
	case KindObround:
		if length < height {
			return nil, apperrors.WithMetadata(
				apperrors.CodeObroundLengthBelowHeight,
				"length cannot be less than height for an obround",
				map[string]string{
					"Length": formatDimension(length),
					"Height": formatDimension(height),
				},
			)
		}
		return &Obround{parts: basicParts(), Length: length, Height: height}, nil
	default:
		return nil, nil
	}
}

func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
