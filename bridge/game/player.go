package game

import "github.com/ratel-online/whist/bridge/card"

// Player is identified by Name alone; names are unique within a Table.
//
// Bid must return a value in [0, tricks]. Play must return a card taken from hand,
// following the led suit when possible, together with the rest of the hand.
type Player interface {
	Name() string
	Bid(trump card.Card, tricks int, hand []card.Card) int
	Play(trump card.Card, led *card.Card, hand []card.Card) (card.Card, []card.Card)
	ShowHand(hand []card.Card)
}
