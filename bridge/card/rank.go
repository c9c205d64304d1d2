package card

import "fmt"

// Rank values run 2..14 so that Ace is the highest card in every comparison.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = []string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

var rankShorts = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

func (r Rank) valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r-Two]
}

func (r Rank) Short() string {
	if !r.valid() {
		return "?"
	}
	return rankShorts[r-Two]
}
