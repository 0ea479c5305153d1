package dice

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/greed/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/greed/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a value between 1 and sides inclusive
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomRoller rolls dice with a pseudo random source
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewRoller creates a new dice roller
func NewRoller(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = len(models.AllFaces) // Default to 6-sided die
	}

	// rand.Rand is not safe for concurrent use and interactions arrive concurrently
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}

// RollFaces throws count six-sided dice
func RollFaces(roller Roller, count int) []models.Face {
	faces := make([]models.Face, count)
	for i := range faces {
		faces[i] = models.Face(roller.Roll(len(models.AllFaces)))
	}
	return faces
}
