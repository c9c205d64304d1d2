package player

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/game"
)

// naivePlayer bids and plays at random, within the rules.
type naivePlayer struct {
	basicPlayer
	intn func(n int) int
}

func NewNaivePlayer(name string) game.Player {
	return NewNaivePlayerWith(name, rand.Intn)
}

// NewNaivePlayerWith draws its choices from intn instead of the shared generator.
func NewNaivePlayerWith(name string, intn func(n int) int) game.Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}, intn: intn}
}

func (p naivePlayer) Bid(trump card.Card, tricks int, hand []card.Card) int {
	return p.intn(tricks + 1)
}

func (p naivePlayer) Play(trump card.Card, led *card.Card, hand []card.Card) (card.Card, []card.Card) {
	var playableCards []card.Card
	for _, candidate := range hand {
		if game.Playable(candidate, led, hand) {
			playableCards = append(playableCards, candidate)
		}
	}
	chosen := playableCards[p.intn(len(playableCards))]
	return chosen, game.Without(hand, chosen)
}
