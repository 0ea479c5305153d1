package rules

import (
	"fmt"

	"github.com/KirkDiggler/greed/internal/models"
)

// Catalog is the ordered list of rules consulted when scoring.
// Order only matters when two rules pay the same.
type Catalog []Rule

// Config is the reward table the catalog is built from
type Config struct {
	// ThreeOrMore is the value of each die of a face beyond the second
	ThreeOrMore map[models.Face]models.Coins

	// TwoOrLess is the value of each loose die. Only faces listed here get a rule.
	TwoOrLess map[models.Face]models.Coins

	// StraightBonus is the flat reward for a straight
	StraightBonus models.Coins

	// StraightLength is how many single faces make a straight
	StraightLength int
}

// DefaultConfig returns the standard greed reward table
func DefaultConfig() *Config {
	return &Config{
		ThreeOrMore: map[models.Face]models.Coins{
			models.FaceOne:   1000,
			models.FaceTwo:   200,
			models.FaceThree: 300,
			models.FaceFour:  400,
			models.FaceFive:  500,
			models.FaceSix:   600,
		},
		TwoOrLess: map[models.Face]models.Coins{
			models.FaceOne:  100,
			models.FaceFive: 50,
		},
		StraightBonus:  200,
		StraightLength: 5,
	}
}

// Validate checks the reward table is complete
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	for _, f := range models.AllFaces {
		if _, ok := c.ThreeOrMore[f]; !ok {
			return fmt.Errorf("%w: no three-or-more value for face %s", ErrInvalidConfig, f)
		}
	}

	for f := range c.TwoOrLess {
		if !f.IsValid() {
			return fmt.Errorf("%w: two-or-less value for unknown face %d", ErrInvalidConfig, int(f))
		}
	}

	if c.StraightLength < 1 || c.StraightLength > len(models.AllFaces) {
		return fmt.Errorf("%w: straight length %d", ErrInvalidConfig, c.StraightLength)
	}

	return nil
}

// NewCatalog builds the rules for the reward table: three-or-more for every
// face, then two-or-less for the listed faces, then the straight. Faces are
// taken in pip order.
func NewCatalog(cfg *Config) (Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	catalog := make(Catalog, 0, len(models.AllFaces)+len(cfg.TwoOrLess)+1)
	for _, f := range models.AllFaces {
		catalog = append(catalog, NewThreeOrMore(f, cfg.ThreeOrMore[f]))
	}
	for _, f := range models.AllFaces {
		if v, ok := cfg.TwoOrLess[f]; ok {
			catalog = append(catalog, NewTwoOrLess(f, v))
		}
	}
	catalog = append(catalog, NewNoMoreThanOne(cfg.StraightBonus, cfg.StraightLength))

	return catalog, nil
}

// DefaultCatalog builds the catalog for the standard reward table
func DefaultCatalog() Catalog {
	catalog, err := NewCatalog(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return catalog
}
