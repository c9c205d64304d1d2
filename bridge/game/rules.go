package game

import (
	"github.com/ratel-online/whist/bridge/card"
	"golang.org/x/exp/slices"
)

// Playable reports whether candidate may be played from hand. A follower must
// play the led suit when holding it; the leader (led == nil) may play anything.
func Playable(candidate card.Card, led *card.Card, hand []card.Card) bool {
	if led == nil || candidate.Suit == led.Suit {
		return true
	}
	return !HasSuit(hand, led.Suit)
}

func HasSuit(cards []card.Card, suit card.Suit) bool {
	return slices.IndexFunc(cards, func(c card.Card) bool { return c.Suit == suit }) >= 0
}

func OfSuit(cards []card.Card, suit card.Suit) []card.Card {
	var matching []card.Card
	for _, c := range cards {
		if c.Suit == suit {
			matching = append(matching, c)
		}
	}
	return matching
}

// Without returns a copy of cards with the first occurrence of removed dropped.
func Without(cards []card.Card, removed card.Card) []card.Card {
	rest := make([]card.Card, len(cards))
	copy(rest, cards)
	if index := slices.Index(rest, removed); index >= 0 {
		rest = slices.Delete(rest, index, index+1)
	}
	return rest
}
