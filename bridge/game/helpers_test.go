package game_test

import (
	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/game"
)

type stubPlayer struct {
	name  string
	bid   int
	pick  func(led *card.Card, hand []card.Card) card.Card
	shown [][]card.Card
}

func newStub(name string, bid int) *stubPlayer {
	return &stubPlayer{name: name, bid: bid, pick: firstPlayable}
}

func (p *stubPlayer) Name() string {
	return p.name
}

func (p *stubPlayer) Bid(trump card.Card, tricks int, hand []card.Card) int {
	return p.bid
}

func (p *stubPlayer) Play(trump card.Card, led *card.Card, hand []card.Card) (card.Card, []card.Card) {
	chosen := p.pick(led, hand)
	return chosen, game.Without(hand, chosen)
}

func (p *stubPlayer) ShowHand(hand []card.Card) {
	p.shown = append(p.shown, hand)
}

func firstPlayable(led *card.Card, hand []card.Card) card.Card {
	for _, c := range hand {
		if game.Playable(c, led, hand) {
			return c
		}
	}
	return hand[0]
}

func players(stubs ...*stubPlayer) []game.Player {
	seated := make([]game.Player, 0, len(stubs))
	for _, stub := range stubs {
		seated = append(seated, stub)
	}
	return seated
}
