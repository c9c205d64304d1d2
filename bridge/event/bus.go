package event

// Bus groups the emitters of one game. Games running side by side each get their own.
type Bus struct {
	HandStarted *handStartedEmitter
	BidPlaced   *bidPlacedEmitter
	CardPlayed  *cardPlayedEmitter
	TrickWon    *trickWonEmitter
	HandScored  *handScoredEmitter
}

func NewBus() *Bus {
	return &Bus{
		HandStarted: &handStartedEmitter{},
		BidPlaced:   &bidPlacedEmitter{},
		CardPlayed:  &cardPlayedEmitter{},
		TrickWon:    &trickWonEmitter{},
		HandScored:  &handScoredEmitter{},
	}
}

// Subscribe registers listener with every emitter whose listener interface it implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(HandStartedListener); ok {
		b.HandStarted.AddListener(l)
	}
	if l, ok := listener.(BidPlacedListener); ok {
		b.BidPlaced.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(TrickWonListener); ok {
		b.TrickWon.AddListener(l)
	}
	if l, ok := listener.(HandScoredListener); ok {
		b.HandScored.AddListener(l)
	}
}
