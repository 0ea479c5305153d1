package models

import "strconv"

// Face is the value shown on the top of a six-sided die
type Face int

const (
	// FaceOne is the face with a single pip
	FaceOne Face = iota + 1
	FaceTwo
	FaceThree
	FaceFour
	FaceFive
	FaceSix
)

// AllFaces lists every face in pip order
var AllFaces = [6]Face{FaceOne, FaceTwo, FaceThree, FaceFour, FaceFive, FaceSix}

// IsValid reports whether the face is one of the six known faces
func (f Face) IsValid() bool {
	return f >= FaceOne && f <= FaceSix
}

// String renders the face as its pip count
func (f Face) String() string {
	if !f.IsValid() {
		return "?"
	}
	return strconv.Itoa(int(f))
}

// Coins is an amount of reward awarded for a throw
type Coins uint32
