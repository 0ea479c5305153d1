package rules

import (
	"testing"

	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applyCase struct {
	dice   string
	reward models.Coins
	remain string
}

func assertApply(t *testing.T, r Rule, cases []applyCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.dice, func(t *testing.T) {
			before := dice.MustParse(tc.dice)
			reward, remain := Apply(r, before)

			assert.Equal(t, tc.reward, reward)
			assert.True(t, dice.MustParse(tc.remain).Equal(remain), "remaining %s, want %s", remain, tc.remain)
			assert.True(t, dice.MustParse(tc.dice).Equal(before), "input must not be modified")
		})
	}
}

func TestTwoOrLessFive(t *testing.T) {
	assertApply(t, NewTwoOrLess(models.FaceFive, 50), []applyCase{
		{dice: "22554", reward: 100, remain: "224"},
		{dice: "35446", reward: 50, remain: "3446"},
		{dice: "32446", reward: 0, remain: "32446"},
		{dice: "55545", reward: 0, remain: "55545"},
	})
}

func TestThreeOrMore(t *testing.T) {
	assertApply(t, NewThreeOrMore(models.FaceSix, 600), []applyCase{
		{dice: "62663", reward: 600, remain: "23"},
		{dice: "66626", reward: 1200, remain: "2"},
		{dice: "66666", reward: 1800, remain: ""},
		{dice: "62233", reward: 0, remain: "62233"},
	})
}

func TestNoMoreThanOne(t *testing.T) {
	assertApply(t, NewNoMoreThanOne(200, 5), []applyCase{
		{dice: "23456", reward: 200, remain: ""},
		{dice: "12345", reward: 200, remain: ""},
		{dice: "62154", reward: 200, remain: ""},
		{dice: "66154", reward: 0, remain: "66154"},
		{dice: "6154", reward: 0, remain: "6154"},
	})
}

func TestRewardIsCallableWhenUnsatisfied(t *testing.T) {
	d := dice.MustParse("5")

	assert.Equal(t, models.Coins(0), NewThreeOrMore(models.FaceFive, 500).Reward(d))
	assert.Equal(t, models.Coins(0), NewTwoOrLess(models.FaceOne, 100).Reward(d))
	assert.Equal(t, models.Coins(200), NewNoMoreThanOne(200, 5).Reward(d))
}

func TestConsumeAbsentFace(t *testing.T) {
	d := dice.MustParse("234")
	remain := NewTwoOrLess(models.FaceOne, 100).Consume(d)

	assert.True(t, d.Equal(remain))
}

func TestDefaultCatalogOrder(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 9)

	for i, f := range models.AllFaces {
		r, ok := catalog[i].(*ThreeOrMore)
		require.True(t, ok, "rule %d is %T", i, catalog[i])
		assert.Equal(t, f, r.face)
	}

	one, ok := catalog[6].(*TwoOrLess)
	require.True(t, ok)
	assert.Equal(t, models.FaceOne, one.face)
	assert.Equal(t, models.Coins(100), one.value)

	five, ok := catalog[7].(*TwoOrLess)
	require.True(t, ok)
	assert.Equal(t, models.FaceFive, five.face)
	assert.Equal(t, models.Coins(50), five.value)

	straight, ok := catalog[8].(*NoMoreThanOne)
	require.True(t, ok)
	assert.Equal(t, models.Coins(200), straight.value)
}

func TestConfigValidate(t *testing.T) {
	_, err := NewCatalog(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	cfg := DefaultConfig()
	delete(cfg.ThreeOrMore, models.FaceThree)
	_, err = NewCatalog(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.TwoOrLess[models.Face(9)] = 10
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.StraightLength = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	assert.NoError(t, DefaultConfig().Validate())
}
