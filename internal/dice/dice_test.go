package dice

import (
	"testing"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccurrence(t *testing.T) {
	d := MustParse("62663")

	assert.Equal(t, 3, d.Occurrence(models.FaceSix))
	assert.Equal(t, 1, d.Occurrence(models.FaceTwo))
	assert.Equal(t, 1, d.Occurrence(models.FaceThree))
	assert.Equal(t, 0, d.Occurrence(models.FaceOne))
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 3, d.Distinct())
}

func TestTakeAll(t *testing.T) {
	d := MustParse("22554")

	assert.Equal(t, 2, d.TakeAll(models.FaceFive))
	assert.Equal(t, 0, d.Occurrence(models.FaceFive))
	assert.Equal(t, 2, d.Distinct(), "taken face must not linger as a zero entry")
	assert.True(t, d.Equal(MustParse("224")))

	assert.Equal(t, 0, d.TakeAll(models.FaceFive))
	assert.Equal(t, 0, d.TakeAll(models.FaceOne))
	assert.Equal(t, 3, d.Len())
}

func TestOrderIrrelevant(t *testing.T) {
	a := New(models.FaceOne, models.FaceSix, models.FaceOne)
	b := New(models.FaceSix, models.FaceOne, models.FaceOne)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)
	assert.Equal(t, "116", a.String())
}

func TestCloneIsIndependent(t *testing.T) {
	d := MustParse("5555")
	c := d.Clone()

	c.TakeAll(models.FaceFive)

	assert.Equal(t, 4, d.Occurrence(models.FaceFive))
	assert.True(t, c.IsEmpty())
}

func TestEqual(t *testing.T) {
	assert.True(t, New().Equal(Dice{}))
	assert.False(t, MustParse("12").Equal(MustParse("112")))
	assert.False(t, MustParse("12").Equal(MustParse("13")))
}

func TestParseFaces(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []models.Face
		wantErr error
	}{
		{
			name:  "digits",
			input: "62663",
			want:  []models.Face{models.FaceSix, models.FaceTwo, models.FaceSix, models.FaceSix, models.FaceThree},
		},
		{
			name:  "separated",
			input: " 1, 5 ,4",
			want:  []models.Face{models.FaceOne, models.FaceFive, models.FaceFour},
		},
		{
			name:    "seven is not a face",
			input:   "12375",
			wantErr: ErrInvalidFace,
		},
		{
			name:    "zero is not a face",
			input:   "10",
			wantErr: ErrInvalidFace,
		},
		{
			name:    "letters",
			input:   "six",
			wantErr: ErrInvalidFace,
		},
		{
			name:    "empty",
			input:   " , ",
			wantErr: ErrEmptyThrow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFaces(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRollFacesSeeded(t *testing.T) {
	a := RollFaces(NewRoller(&Config{Seed: 42}), 5)
	b := RollFaces(NewRoller(&Config{Seed: 42}), 5)

	require.Len(t, a, 5)
	assert.Equal(t, a, b)
	for _, f := range a {
		assert.True(t, f.IsValid(), "rolled %v", f)
	}
}
