package calculator

import (
	"testing"

	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/models"
	"github.com/KirkDiggler/greed/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CalculatorTestSuite struct {
	suite.Suite
	calculator *RewardCalculator
}

func (s *CalculatorTestSuite) SetupTest() {
	calc, err := New(&Config{})
	s.Require().NoError(err)
	s.calculator = calc
}

func TestCalculatorTestSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}

var throwRewards = []struct {
	dice   string
	reward models.Coins
}{
	{"62233", 0},
	{"62663", 600},
	{"66626", 1200},
	{"66666", 1800},
	{"63555", 500},
	{"55455", 1000},
	{"55555", 1500},
	{"64442", 400},
	{"44644", 800},
	{"44444", 1200},
	{"33342", 300},
	{"33433", 600},
	{"33333", 900},
	{"33222", 200},
	{"32222", 400},
	{"22222", 600},
	{"11661", 1000},
	{"31111", 2000},
	{"11111", 3000},
	{"11446", 200},
	{"31446", 100},
	{"22554", 100},
	{"35446", 50},
	{"14445", 550},
	{"11222", 400},
	{"12345", 200},
	{"23456", 200},
	{"23416", 200},
}

func (s *CalculatorTestSuite) TestThrowRewards() {
	for _, tc := range throwRewards {
		s.Run(tc.dice, func() {
			faces, err := dice.ParseFaces(tc.dice)
			s.Require().NoError(err)

			throw := NewThrow(s.calculator, faces)
			s.Equal(tc.reward, throw.Reward())
		})
	}
}

func (s *CalculatorTestSuite) TestExhaustsEveryRule() {
	catalog := rules.DefaultCatalog()
	for _, tc := range throwRewards {
		s.Run(tc.dice, func() {
			result := s.calculator.Evaluate(dice.MustParse(tc.dice))

			s.Equal(tc.reward, result.Coins)
			for _, r := range catalog {
				s.False(r.IsSatisfied(result.Remaining), "%s still satisfied by %s", r.Name(), result.Remaining)
			}
		})
	}
}

func (s *CalculatorTestSuite) TestEveryStepConsumesDice() {
	for _, tc := range throwRewards {
		s.Run(tc.dice, func() {
			d := dice.MustParse(tc.dice)
			result := s.calculator.Evaluate(d)

			total := result.Remaining.Len()
			var coins models.Coins
			for _, step := range result.Applied {
				s.NotEmpty(step.Consumed, "rule %s consumed nothing", step.Rule)
				total += len(step.Consumed)
				coins += step.Reward
			}
			s.Equal(d.Len(), total)
			s.Equal(result.Coins, coins)
			s.LessOrEqual(len(result.Applied), d.Distinct())
		})
	}
}

func (s *CalculatorTestSuite) TestBreakdown() {
	result := s.calculator.Evaluate(dice.MustParse("14445"))

	s.Require().Len(result.Applied, 3)
	s.Equal("three or more 4s", result.Applied[0].Rule)
	s.Equal(models.Coins(400), result.Applied[0].Reward)
	s.Equal([]models.Face{models.FaceFour, models.FaceFour, models.FaceFour}, result.Applied[0].Consumed)
	s.Equal("loose 1s", result.Applied[1].Rule)
	s.Equal("loose 5s", result.Applied[2].Rule)
	s.True(result.Remaining.IsEmpty())
}

func (s *CalculatorTestSuite) TestStraightBeatsLooseDice() {
	result := s.calculator.Evaluate(dice.MustParse("23416"))

	s.Require().Len(result.Applied, 1)
	s.Equal("straight", result.Applied[0].Rule)
	s.Len(result.Applied[0].Consumed, 5)
}

func (s *CalculatorTestSuite) TestInputNotModified() {
	d := dice.MustParse("11661")
	s.calculator.Calculate(d)

	s.True(dice.MustParse("11661").Equal(d))
}

func (s *CalculatorTestSuite) TestEmptyThrow() {
	s.Equal(models.Coins(0), s.calculator.Calculate(dice.New()))
}

func (s *CalculatorTestSuite) TestRewardIsRepeatable() {
	throw := NewThrow(nil, []models.Face{models.FaceOne, models.FaceOne, models.FaceOne})

	s.Equal(models.Coins(1000), throw.Reward())
	s.Equal(models.Coins(1000), throw.Reward())
	s.Equal(3, throw.Dice().Occurrence(models.FaceOne))
}

func TestTieGoesToLaterRule(t *testing.T) {
	calc, err := New(&Config{
		Catalog: rules.Catalog{
			rules.NewThreeOrMore(models.FaceTwo, 200),
			rules.NewTwoOrLess(models.FaceOne, 200),
		},
	})
	require.NoError(t, err)

	result := calc.Evaluate(dice.MustParse("2221"))

	require.Len(t, result.Applied, 2)
	assert.Equal(t, "loose 1s", result.Applied[0].Rule)
	assert.Equal(t, "three or more 2s", result.Applied[1].Rule)
	assert.Equal(t, models.Coins(400), result.Coins)
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{Catalog: rules.Catalog{}})
	assert.Error(t, err)
}

func TestScore(t *testing.T) {
	faces, err := dice.ParseFaces("66666")
	require.NoError(t, err)

	assert.Equal(t, models.Coins(1800), Score(faces))
}
