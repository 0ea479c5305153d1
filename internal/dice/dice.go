package dice

import (
	"strings"

	"github.com/KirkDiggler/greed/internal/models"
)

// Dice is a multiset of faces: how many dice show each face.
// A face that is not showing has no entry; counts are always at least one.
type Dice struct {
	counts map[models.Face]int
}

// New builds a multiset from the given faces. Order is irrelevant.
func New(faces ...models.Face) Dice {
	return FromFaces(faces)
}

// FromFaces builds a multiset from a slice of faces
func FromFaces(faces []models.Face) Dice {
	counts := make(map[models.Face]int, len(models.AllFaces))
	for _, f := range faces {
		counts[f]++
	}
	return Dice{counts: counts}
}

// Occurrence returns how many dice show the face
func (d Dice) Occurrence(face models.Face) int {
	return d.counts[face]
}

// TakeAll removes every die showing the face and returns how many were removed
func (d Dice) TakeAll(face models.Face) int {
	n, ok := d.counts[face]
	if !ok {
		return 0
	}
	delete(d.counts, face)
	return n
}

// Len returns the total number of dice
func (d Dice) Len() int {
	total := 0
	for _, n := range d.counts {
		total += n
	}
	return total
}

// Distinct returns the number of different faces showing
func (d Dice) Distinct() int {
	return len(d.counts)
}

// IsEmpty reports whether no dice remain
func (d Dice) IsEmpty() bool {
	return len(d.counts) == 0
}

// Clone returns an independent copy
func (d Dice) Clone() Dice {
	counts := make(map[models.Face]int, len(d.counts))
	for f, n := range d.counts {
		counts[f] = n
	}
	return Dice{counts: counts}
}

// Equal reports whether both multisets hold the same faces with the same counts
func (d Dice) Equal(other Dice) bool {
	if len(d.counts) != len(other.counts) {
		return false
	}
	for f, n := range d.counts {
		if other.counts[f] != n {
			return false
		}
	}
	return true
}

// Faces expands the multiset back into a slice sorted by pip count
func (d Dice) Faces() []models.Face {
	faces := make([]models.Face, 0, d.Len())
	for _, f := range models.AllFaces {
		for i := 0; i < d.counts[f]; i++ {
			faces = append(faces, f)
		}
	}
	return faces
}

// String renders the dice as digits, e.g. "22455"
func (d Dice) String() string {
	var b strings.Builder
	for _, f := range d.Faces() {
		b.WriteString(f.String())
	}
	return b.String()
}
