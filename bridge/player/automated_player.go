package player

import (
	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/game"
)

// automatedPlayer bids its trump count and plays by fixed rules, with no randomness.
type automatedPlayer struct {
	basicPlayer
}

func NewAutomatedPlayer(name string) game.Player {
	return automatedPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p automatedPlayer) Bid(trump card.Card, tricks int, hand []card.Card) int {
	bid := len(game.OfSuit(hand, trump.Suit))
	if bid > tricks {
		return tricks
	}
	return bid
}

func (p automatedPlayer) Play(trump card.Card, led *card.Card, hand []card.Card) (card.Card, []card.Card) {
	chosen := p.choose(trump.Suit, led, hand)
	return chosen, game.Without(hand, chosen)
}

func (p automatedPlayer) choose(trump card.Suit, led *card.Card, hand []card.Card) card.Card {
	trumps := game.OfSuit(hand, trump)
	if led == nil {
		if len(trumps) > 0 {
			return highest(trumps)
		}
		return highest(hand)
	}
	if following := game.OfSuit(hand, led.Suit); len(following) > 0 {
		return lowest(following)
	}
	if len(trumps) > 0 {
		return lowest(trumps)
	}
	return highest(hand)
}

// highest and lowest keep the first card seen on equal rank.
func highest(cards []card.Card) card.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}

func lowest(cards []card.Card) card.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank < best.Rank {
			best = c
		}
	}
	return best
}
