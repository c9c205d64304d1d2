package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/consts"
)

type round struct {
	id     string
	table  *Table
	tricks int
	dealer string
	deck   CardSource
}

// Dealing is a round that has been validated but not dealt.
type Dealing struct {
	round
}

type Bidding struct {
	round
	trump card.Card
	order []int
}

type Playing struct {
	round
	trump card.Card
	order []int
	bids  map[string]int
}

type Scoring struct {
	round
	trump card.Card
	bids  map[string]int
	won   map[string]int
}

type Finished struct {
	round
	trump  card.Card
	bids   map[string]int
	won    map[string]int
	scores map[string]int
}

// NewRound starts one hand of tricks cards each, dealt by dealer from deck.
func NewRound(table *Table, tricks int, dealer string, deck CardSource) (Dealing, error) {
	if tricks < 1 {
		return Dealing{}, fmt.Errorf("%w: %d", consts.ErrorsTricksInvalid, tricks)
	}
	needed := tricks*table.Size() + 1
	if tricks > table.Rules().MaxTricks(table.Size()) || needed > deck.Remaining() {
		return Dealing{}, fmt.Errorf("%w: %d tricks for %d players needs %d cards, deck has %d",
			consts.ErrorsDealTooLarge, tricks, table.Size(), needed, deck.Remaining())
	}
	if _, ok := table.Seat(dealer); !ok {
		return Dealing{}, fmt.Errorf("%w: %s", consts.ErrorsDealerUnknown, dealer)
	}
	return Dealing{round{
		id:     uuid.NewString(),
		table:  table,
		tricks: tricks,
		dealer: dealer,
		deck:   deck,
	}}, nil
}

// PlayRound runs a round through every phase.
func PlayRound(table *Table, tricks int, dealer string, deck CardSource) (Finished, error) {
	dealing, err := NewRound(table, tricks, dealer, deck)
	if err != nil {
		return Finished{}, err
	}
	return dealing.Deal().CollectBids().PlayTricks().Score(), nil
}

func (r round) ID() string {
	return r.id
}

func (r round) Tricks() int {
	return r.tricks
}

// Deal turns up trump, then deals one card at a time starting with the dealer.
func (d Dealing) Deal() Bidding {
	d.table.clearHands()
	trump := d.deck.DealOne()
	order := d.table.Order(d.dealer)
	for i := 0; i < d.tricks; i++ {
		for _, seat := range order {
			d.table.Hand(seat).AddCard(d.deck.DealOne())
		}
	}
	d.table.Events().HandStarted.Emit(event.HandStartedPayload{
		HandID: d.id,
		Dealer: d.dealer,
		Trump:  trump,
		Tricks: d.tricks,
	})
	return Bidding{round: d.round, trump: trump, order: order}
}

func (b Bidding) Trump() card.Card {
	return b.trump
}

func (b Bidding) CollectBids() Playing {
	if b.table.reveal {
		for _, seat := range b.order {
			b.table.Player(seat).ShowHand(b.table.Hand(seat).Cards())
		}
	}
	bids := make(map[string]int, len(b.order))
	for _, seat := range b.order {
		player := b.table.Player(seat)
		bid := player.Bid(b.trump, b.tricks, b.table.Hand(seat).Cards())
		if bid < 0 || bid > b.tricks {
			panic(consts.ErrorsBidOutOfRange)
		}
		bids[player.Name()] = bid
		b.table.Events().BidPlaced.Emit(event.BidPlacedPayload{PlayerName: player.Name(), Bid: bid})
	}
	return Playing{round: b.round, trump: b.trump, order: b.order, bids: bids}
}

// PlayTricks plays every trick; whoever wins a trick leads the next one.
func (p Playing) PlayTricks() Scoring {
	won := make(map[string]int, len(p.order))
	order := p.order
	for number := 1; number <= p.tricks; number++ {
		finished := NewTrick(number, p.trump, p.table, order).Play().DetermineWinner()
		winner := finished.Winner()
		won[winner.Player]++
		p.table.Events().TrickWon.Emit(event.TrickWonPayload{
			PlayerName: winner.Player,
			Card:       winner.Card,
			Trick:      number,
		})
		order = p.table.Order(winner.Player)
	}
	for seat := 0; seat < p.table.Size(); seat++ {
		if !p.table.Hand(seat).Empty() {
			panic(consts.ErrorsCardsLeftOver)
		}
	}
	return Scoring{round: p.round, trump: p.trump, bids: p.bids, won: won}
}

func (s Scoring) Score() Finished {
	rules := s.table.Rules()
	scores := make(map[string]int, len(s.bids))
	for _, name := range s.table.Names() {
		bid, ok := s.bids[name]
		if !ok {
			panic(consts.ErrorsBidMissing)
		}
		scores[name] = rules.Score(bid, s.won[name])
	}
	s.table.Events().HandScored.Emit(event.HandScoredPayload{HandID: s.id, Scores: copyTally(scores)})
	return Finished{round: s.round, trump: s.trump, bids: s.bids, won: s.won, scores: scores}
}

func (f Finished) Trump() card.Card {
	return f.trump
}

func (f Finished) Names() []string {
	return f.table.Names()
}

func (f Finished) Scores() map[string]int {
	return copyTally(f.scores)
}

func (f Finished) Bids() map[string]int {
	return copyTally(f.bids)
}

// TricksWon includes every player, with zero for those who took nothing.
func (f Finished) TricksWon() map[string]int {
	won := make(map[string]int, len(f.scores))
	for _, name := range f.table.Names() {
		won[name] = f.won[name]
	}
	return won
}

func copyTally(tally map[string]int) map[string]int {
	copied := make(map[string]int, len(tally))
	for name, value := range tally {
		copied[name] = value
	}
	return copied
}
