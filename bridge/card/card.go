package card

import "fmt"

// Card is a plain value; two cards are the same card iff Rank and Suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

func (c Card) Short() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// Display renders the card in its suit colour for the console.
func (c Card) Display() string {
	return c.Suit.Color().Paint(c.String())
}

func Strings(cards []Card) []string {
	names := make([]string, 0, len(cards))
	for _, card := range cards {
		names = append(names, card.String())
	}
	return names
}
