package event

import "github.com/ratel-online/whist/bridge/card"

type HandStartedPayload struct {
	HandID string
	Dealer string
	Trump  card.Card
	Tricks int
}

type HandStartedListener interface {
	OnHandStarted(HandStartedPayload)
}

type handStartedEmitter struct {
	listeners []HandStartedListener
}

func (e *handStartedEmitter) AddListener(listener HandStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *handStartedEmitter) Emit(payload HandStartedPayload) {
	for _, listener := range e.listeners {
		listener.OnHandStarted(payload)
	}
}
