package event

import "github.com/ratel-online/core/log"

// LogListener writes a game's progress to the core log. The log goes to
// stdout, so it is only subscribed when asked for.
type LogListener struct {
	game string
}

func NewLogListener(game string) *LogListener {
	return &LogListener{game: game}
}

func (l *LogListener) OnHandStarted(payload HandStartedPayload) {
	log.Infof("[game %s] hand %s, dealer %s, %d tricks, trump %s\n", l.game, payload.HandID, payload.Dealer, payload.Tricks, payload.Trump.Short())
}

func (l *LogListener) OnBidPlaced(payload BidPlacedPayload) {
	log.Infof("[game %s] %s bids %d\n", l.game, payload.PlayerName, payload.Bid)
}

func (l *LogListener) OnTrickWon(payload TrickWonPayload) {
	log.Infof("[game %s] trick %d to %s with %s\n", l.game, payload.Trick, payload.PlayerName, payload.Card.Short())
}

func (l *LogListener) OnHandScored(payload HandScoredPayload) {
	log.Infof("[game %s] hand %s scored %v\n", l.game, payload.HandID, payload.Scores)
}
