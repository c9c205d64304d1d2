package player_test

import (
	"testing"

	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trump = card.New(card.Two, card.Hearts)

func TestAutomatedPlay(t *testing.T) {
	bot := player.NewAutomatedPlayer("Goofy Dog")

	t.Run("Follows suit", func(t *testing.T) {
		led := card.New(card.Ten, card.Clubs)
		expected := card.New(card.Three, card.Clubs)
		other := card.New(card.Ace, card.Hearts)
		played, rest := bot.Play(trump, &led, []card.Card{other, expected})
		assert.Equal(t, expected, played)
		assert.Equal(t, []card.Card{other}, rest)
	})

	t.Run("Sloughs the highest card when it can neither follow nor trump", func(t *testing.T) {
		led := card.New(card.Ten, card.Clubs)
		slough := card.New(card.King, card.Spades)
		other := card.New(card.Four, card.Diamonds)
		played, rest := bot.Play(trump, &led, []card.Card{other, slough})
		assert.Equal(t, slough, played)
		assert.Equal(t, []card.Card{other}, rest)
	})

	t.Run("Trumps when void in the led suit", func(t *testing.T) {
		led := card.New(card.Ten, card.Clubs)
		inTrump := card.New(card.Three, card.Hearts)
		other := card.New(card.Ace, card.Spades)
		played, rest := bot.Play(trump, &led, []card.Card{other, inTrump})
		assert.Equal(t, inTrump, played)
		assert.Equal(t, []card.Card{other}, rest)
	})

	t.Run("Plays the lowest trump when holding several", func(t *testing.T) {
		led := card.New(card.Ten, card.Clubs)
		low := card.New(card.Four, card.Hearts)
		high := card.New(card.Queen, card.Hearts)
		played, rest := bot.Play(trump, &led, []card.Card{high, low})
		assert.Equal(t, low, played)
		assert.Equal(t, []card.Card{high}, rest)
	})

	t.Run("Plays the lowest of the led suit when holding several", func(t *testing.T) {
		led := card.New(card.Ten, card.Clubs)
		low := card.New(card.Four, card.Clubs)
		high := card.New(card.Ace, card.Clubs)
		played, rest := bot.Play(trump, &led, []card.Card{high, low})
		assert.Equal(t, low, played)
		assert.Equal(t, []card.Card{high}, rest)
	})

	t.Run("Leads with the highest trump", func(t *testing.T) {
		high := card.New(card.Jack, card.Hearts)
		other := card.New(card.Ace, card.Spades)
		low := card.New(card.Five, card.Hearts)
		played, rest := bot.Play(trump, nil, []card.Card{low, other, high})
		assert.Equal(t, high, played)
		assert.Equal(t, []card.Card{low, other}, rest)
	})

	t.Run("Leads with the highest card without trump", func(t *testing.T) {
		high := card.New(card.Ace, card.Spades)
		other := card.New(card.King, card.Clubs)
		played, rest := bot.Play(trump, nil, []card.Card{other, high})
		assert.Equal(t, high, played)
		assert.Equal(t, []card.Card{other}, rest)
	})

	t.Run("Does not touch the hand it was given", func(t *testing.T) {
		hand := []card.Card{card.New(card.Four, card.Clubs), card.New(card.Ace, card.Clubs)}
		_, _ = bot.Play(trump, nil, hand)
		assert.Equal(t, []card.Card{card.New(card.Four, card.Clubs), card.New(card.Ace, card.Clubs)}, hand)
	})
}

func TestAutomatedBid(t *testing.T) {
	bot := player.NewAutomatedPlayer("Goofy Dog")

	t.Run("Bids one for each trump held", func(t *testing.T) {
		hand := []card.Card{
			card.New(card.Four, card.Hearts),
			card.New(card.Ace, card.Clubs),
			card.New(card.King, card.Hearts),
		}
		assert.Equal(t, 2, bot.Bid(trump, 3, hand))
	})

	t.Run("Bids zero without trump", func(t *testing.T) {
		assert.Equal(t, 0, bot.Bid(trump, 1, []card.Card{card.New(card.Ace, card.Spades)}))
	})
}

func TestAutomatedName(t *testing.T) {
	require.Equal(t, "Pluto Dog", player.NewAutomatedPlayer("Pluto Dog").Name())
}
