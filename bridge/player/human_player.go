package player

import (
	"fmt"

	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/bridge/game"
	"github.com/ratel-online/whist/bridge/ui"
)

type humanPlayer struct {
	basicPlayer
}

// NewHumanPlayer returns a console player. When bus is set the player also
// narrates what everyone else does.
func NewHumanPlayer(name string, bus *event.Bus) game.Player {
	player := humanPlayer{basicPlayer: basicPlayer{name: name}}
	if bus != nil {
		bus.Subscribe(player)
	}
	return player
}

func (p humanPlayer) Bid(trump card.Card, tricks int, hand []card.Card) int {
	ui.Message.HumanPlayerTurnStarted(p.name)
	ui.Message.TrumpIs(trump)
	p.ShowHand(hand)
	return ui.PromptIntegerInRange(0, tricks, fmt.Sprintf("How many tricks do you bid? (0-%d)", tricks))
}

func (p humanPlayer) Play(trump card.Card, led *card.Card, hand []card.Card) (card.Card, []card.Card) {
	ui.Message.HumanPlayerTurnStarted(p.name)
	ui.Message.TrumpIs(trump)
	if led == nil {
		ui.Message.LeadingTrick()
	} else {
		ui.Message.LedCardIs(*led)
	}
	for {
		selected := ui.PromptCardSelection(hand)
		if !game.Playable(selected, led, hand) {
			ui.Message.MustFollowSuit(led.Suit)
			continue
		}
		return selected, game.Without(hand, selected)
	}
}

func (p humanPlayer) ShowHand(hand []card.Card) {
	ui.ShowHand(hand)
}

func (p humanPlayer) OnHandStarted(payload event.HandStartedPayload) {
	ui.Message.HandDealt(payload.Dealer, payload.Trump)
}

func (p humanPlayer) OnBidPlaced(payload event.BidPlacedPayload) {
	ui.Message.PlayerBid(payload.PlayerName, payload.Bid)
}

func (p humanPlayer) OnCardPlayed(payload event.CardPlayedPayload) {
	ui.Message.PlayerPlayedCard(payload.PlayerName, payload.Card)
}

func (p humanPlayer) OnTrickWon(payload event.TrickWonPayload) {
	ui.Message.TrickWinner(payload.PlayerName, payload.Trick, payload.Card)
}
