package game

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/consts"
)

// CardSource is what a Round deals from.
type CardSource interface {
	DealOne() card.Card
	Remaining() int
}

type Deck struct {
	cards []card.Card
}

// NewDeck returns the 52 cards in suit then rank order. Call Shuffle before dealing.
func NewDeck() *Deck {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return &Deck{cards: cards}
}

// NewStackedDeck deals cards in exactly the given order.
func NewStackedDeck(cards ...card.Card) *Deck {
	stacked := make([]card.Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

func (d *Deck) Shuffle() *Deck {
	return d.ShuffleWith(rand.Intn)
}

// ShuffleWith shuffles using intn, which must return a value in [0, n).
func (d *Deck) ShuffleWith(intn func(n int) int) *Deck {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

func (d *Deck) DealOne() card.Card {
	if len(d.cards) == 0 {
		panic(consts.ErrorsDeckEmpty)
	}
	top := d.cards[0]
	d.cards = d.cards[1:]
	return top
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
