package card

import (
	"fmt"

	"github.com/ratel-online/whist/bridge/card/color"
)

type Suit int

const (
	Hearts Suit = iota
	Clubs
	Diamonds
	Spades
)

var Suits = []Suit{Hearts, Clubs, Diamonds, Spades}

var suitNames = map[Suit]string{
	Hearts:   "Hearts",
	Clubs:    "Clubs",
	Diamonds: "Diamonds",
	Spades:   "Spades",
}

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Clubs:    "♣",
	Diamonds: "♦",
	Spades:   "♠",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

func (s Suit) Symbol() string {
	return suitSymbols[s]
}

func (s Suit) Color() color.Color {
	if s == Hearts || s == Diamonds {
		return color.Red
	}
	return color.Black
}
