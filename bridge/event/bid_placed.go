package event

type BidPlacedPayload struct {
	PlayerName string
	Bid        int
}

type BidPlacedListener interface {
	OnBidPlaced(BidPlacedPayload)
}

type bidPlacedEmitter struct {
	listeners []BidPlacedListener
}

func (e *bidPlacedEmitter) AddListener(listener BidPlacedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *bidPlacedEmitter) Emit(payload BidPlacedPayload) {
	for _, listener := range e.listeners {
		listener.OnBidPlaced(payload)
	}
}
