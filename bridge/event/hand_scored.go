package event

type HandScoredPayload struct {
	HandID string
	Scores map[string]int
}

type HandScoredListener interface {
	OnHandScored(HandScoredPayload)
}

type handScoredEmitter struct {
	listeners []HandScoredListener
}

func (e *handScoredEmitter) AddListener(listener HandScoredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *handScoredEmitter) Emit(payload HandScoredPayload) {
	for _, listener := range e.listeners {
		listener.OnHandScored(payload)
	}
}
