package player

import (
	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/ui"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) ShowHand(hand []card.Card) {
	ui.Message.PlayerHand(p.name, hand)
}
