package rule_test

import (
	"testing"

	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("Exact bid earns ten plus the bid", func(t *testing.T) {
		assert.Equal(t, 13, rule.Standard.Score(3, 3))
		assert.Equal(t, 10, rule.Standard.Score(0, 0))
	})

	t.Run("Overtricks lose ten plus the difference", func(t *testing.T) {
		assert.Equal(t, -12, rule.Standard.Score(0, 2))
	})

	t.Run("Undertricks lose ten plus the difference", func(t *testing.T) {
		assert.Equal(t, -12, rule.Standard.Score(2, 0))
		assert.Equal(t, -17, rule.Standard.Score(7, 0))
	})
}

func TestWeight(t *testing.T) {
	r := rule.Standard
	assert.Equal(t, 3, r.Weight(card.Hearts, card.Hearts, card.Clubs))
	assert.Equal(t, 3, r.Weight(card.Hearts, card.Hearts, card.Hearts))
	assert.Equal(t, 2, r.Weight(card.Clubs, card.Hearts, card.Clubs))
	assert.Equal(t, 1, r.Weight(card.Spades, card.Hearts, card.Clubs))
}

func TestValue(t *testing.T) {
	assert.Greater(t, rule.Standard.Value(card.Ace), rule.Standard.Value(card.King))
	assert.Greater(t, rule.Standard.Value(card.Three), rule.Standard.Value(card.Two))
}

func TestHands(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 6, 5, 4, 3, 2, 1}, rule.Standard.Hands(false))
	require.Equal(t, []int{1, 3, 5, 7, 1}, rule.Standard.Hands(true))

	hands := rule.Standard.Hands(false)
	hands[0] = 99
	assert.Equal(t, 1, rule.Standard.Hands(false)[0])
}

func TestMaxTricks(t *testing.T) {
	assert.Equal(t, 25, rule.Standard.MaxTricks(2))
	assert.Equal(t, 7, rule.Standard.MaxTricks(7))
	assert.Equal(t, 0, rule.Standard.MaxTricks(0))
}
