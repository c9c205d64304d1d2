package game

import (
	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/consts"
	"golang.org/x/exp/slices"
)

type Play struct {
	Seat   int
	Player string
	Card   card.Card
}

// PlayingTrick is a trick whose cards have not been played yet.
type PlayingTrick struct {
	number int
	trump  card.Card
	table  *Table
	order  []int
}

// ScoringTrick holds every card played, in play order.
type ScoringTrick struct {
	number int
	trump  card.Card
	table  *Table
	plays  []Play
}

type FinishedTrick struct {
	number int
	plays  []Play
	winner Play
}

// NewTrick prepares trick number for the seats in order; order[0] leads.
func NewTrick(number int, trump card.Card, table *Table, order []int) PlayingTrick {
	return PlayingTrick{number: number, trump: trump, table: table, order: order}
}

func (t PlayingTrick) Play() ScoringTrick {
	plays := make([]Play, 0, len(t.order))
	var led *card.Card
	for _, seat := range t.order {
		player := t.table.Player(seat)
		hand := t.table.Hand(seat)
		if hand.Empty() {
			panic(consts.ErrorsHandEmpty)
		}

		played, remaining := player.Play(t.trump, led, hand.Cards())
		if err := hand.Take(played, remaining, led); err != nil {
			panic(err)
		}

		if led == nil {
			lead := played
			led = &lead
		}
		plays = append(plays, Play{Seat: seat, Player: player.Name(), Card: played})
		t.table.Events().CardPlayed.Emit(event.CardPlayedPayload{
			PlayerName: player.Name(),
			Card:       played,
			Trick:      t.number,
			Lead:       len(plays) == 1,
		})
	}
	return ScoringTrick{number: t.number, trump: t.trump, table: t.table, plays: plays}
}

// DetermineWinner ranks the plays by suit weight, then by rank. Equal keys keep play order.
func (t ScoringTrick) DetermineWinner() FinishedTrick {
	rules := t.table.Rules()
	led := t.plays[0].Card.Suit
	ranked := make([]Play, len(t.plays))
	copy(ranked, t.plays)
	slices.SortStableFunc(ranked, func(a, b Play) bool {
		weightA := rules.Weight(a.Card.Suit, t.trump.Suit, led)
		weightB := rules.Weight(b.Card.Suit, t.trump.Suit, led)
		if weightA != weightB {
			return weightA > weightB
		}
		return rules.Value(a.Card.Rank) > rules.Value(b.Card.Rank)
	})
	return FinishedTrick{number: t.number, plays: t.plays, winner: ranked[0]}
}

func (t ScoringTrick) Plays() []Play {
	return append([]Play(nil), t.plays...)
}

func (t FinishedTrick) Number() int {
	return t.number
}

func (t FinishedTrick) Winner() Play {
	return t.winner
}

func (t FinishedTrick) Plays() []Play {
	return append([]Play(nil), t.plays...)
}
