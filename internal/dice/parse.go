package dice

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/KirkDiggler/greed/internal/models"
)

var (
	// ErrInvalidFace is returned when a character is not a die face
	ErrInvalidFace = errors.New("invalid dice face")

	// ErrEmptyThrow is returned when no faces were given
	ErrEmptyThrow = errors.New("throw has no dice")
)

// ParseFace converts a digit from '1' to '6' into a face
func ParseFace(r rune) (models.Face, error) {
	if r < '1' || r > '6' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFace, r)
	}
	return models.Face(r - '0'), nil
}

// ParseFaces reads a throw written as digits, e.g. "62663" or "6, 2, 6, 6, 3".
// Whitespace and commas are skipped.
func ParseFaces(s string) ([]models.Face, error) {
	faces := make([]models.Face, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		f, err := ParseFace(r)
		if err != nil {
			return nil, err
		}
		faces = append(faces, f)
	}

	if len(faces) == 0 {
		return nil, ErrEmptyThrow
	}

	return faces, nil
}

// MustParse is ParseFaces for literals known to be valid. It panics on bad input.
func MustParse(s string) Dice {
	if s == "" {
		return New()
	}
	faces, err := ParseFaces(s)
	if err != nil {
		panic(err)
	}
	return FromFaces(faces)
}
