package state

import (
	"github.com/google/uuid"
	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/bridge/game"
	"github.com/ratel-online/whist/rule"
)

// Session carries one console game from setup to final scores.
type Session struct {
	ID      string
	Debug   bool
	Verbose bool
	Rules   rule.Rules
	Events  *event.Bus
	NewDeck func() game.CardSource

	Table   *game.Table
	BoardID string
}

func NewSession(debug bool) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Debug:  debug,
		Rules:  rule.Standard,
		Events: event.NewBus(),
		NewDeck: func() game.CardSource {
			return game.NewDeck().Shuffle()
		},
	}
}
