package rule

import (
	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/consts"
)

// Standard is the house ruleset used by the console game and the simulator.
var Standard = Rules{
	ExactBonus:    10,
	MissPenalty:   10,
	TrumpWeight:   3,
	LedWeight:     2,
	OffWeight:     1,
	Schedule:      []int{1, 2, 3, 4, 5, 6, 7, 6, 5, 4, 3, 2, 1},
	DebugSchedule: []int{1, 3, 5, 7, 1},
}

type Rules struct {
	ExactBonus  int
	MissPenalty int

	TrumpWeight int
	LedWeight   int
	OffWeight   int

	Schedule      []int
	DebugSchedule []int
}

func (r Rules) Value(rank card.Rank) int {
	return int(rank)
}

// Weight ranks a suit within a single trick. Trump beats the led suit, which beats everything else.
func (r Rules) Weight(suit, trump, led card.Suit) int {
	if suit == trump {
		return r.TrumpWeight
	} else if suit == led {
		return r.LedWeight
	}
	return r.OffWeight
}

func (r Rules) Sandbag(bid, won int) int {
	if bid > won {
		return bid - won
	}
	return won - bid
}

func (r Rules) Score(bid, won int) int {
	sandbag := r.Sandbag(bid, won)
	if sandbag == 0 {
		return r.ExactBonus + bid
	}
	return -(r.MissPenalty + sandbag)
}

func (r Rules) Hands(debug bool) []int {
	schedule := r.Schedule
	if debug {
		schedule = r.DebugSchedule
	}
	hands := make([]int, len(schedule))
	copy(hands, schedule)
	return hands
}

// MaxTricks is the largest hand that still leaves a card to turn up as trump.
func (r Rules) MaxTricks(players int) int {
	if players <= 0 {
		return 0
	}
	return (consts.DeckSize - 1) / players
}
