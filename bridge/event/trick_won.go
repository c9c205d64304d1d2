package event

import "github.com/ratel-online/whist/bridge/card"

type TrickWonPayload struct {
	PlayerName string
	Card       card.Card
	Trick      int
}

type TrickWonListener interface {
	OnTrickWon(TrickWonPayload)
}

type trickWonEmitter struct {
	listeners []TrickWonListener
}

func (e *trickWonEmitter) AddListener(listener TrickWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *trickWonEmitter) Emit(payload TrickWonPayload) {
	for _, listener := range e.listeners {
		listener.OnTrickWon(payload)
	}
}
