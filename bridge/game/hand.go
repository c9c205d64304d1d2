package game

import (
	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/consts"
	"golang.org/x/exp/slices"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) AddCard(c card.Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Contains(c card.Card) bool {
	return slices.Contains(h.cards, c)
}

func (h *Hand) RemoveCard(c card.Card) {
	if index := slices.Index(h.cards, c); index >= 0 {
		h.cards = slices.Delete(h.cards, index, index+1)
	}
}

// Take removes played from the hand once it has checked the play against the
// rules and against the remaining cards the player handed back.
func (h *Hand) Take(played card.Card, remaining []card.Card, led *card.Card) error {
	if !h.Contains(played) {
		return consts.ErrorsCardNotInHand
	}
	if !Playable(played, led, h.cards) {
		return consts.ErrorsSuitNotFollowed
	}
	if len(remaining) != len(h.cards)-1 {
		return consts.ErrorsHandMismatch
	}
	seen := make(map[card.Card]bool, len(remaining))
	for _, c := range remaining {
		if c == played || seen[c] || !h.Contains(c) {
			return consts.ErrorsHandMismatch
		}
		seen[c] = true
	}
	h.RemoveCard(played)
	return nil
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) Size() int {
	return len(h.cards)
}
