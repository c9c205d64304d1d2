package ui

import (
	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() {
	Printfln(
		"WELCOME TO MORMON BRIDGE %s%s%s%s",
		card.Hearts.Color().Paint(card.Hearts.Symbol()),
		card.Clubs.Color().Paint(card.Clubs.Symbol()),
		card.Diamonds.Color().Paint(card.Diamonds.Symbol()),
		card.Spades.Color().Paint(card.Spades.Symbol()),
	)
}

func (m MessageWriter) HandTitle(number int, tricks int) {
	if tricks == 1 {
		Printfln("Hand %d: 1 trick", number)
	} else {
		Printfln("Hand %d: %d tricks", number, tricks)
	}
}

func (m MessageWriter) HandDealt(dealer string, trump card.Card) {
	Printfln("%s dealt. Trump card is the %s", dealer, color.Trump.Paint(trump.String()))
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) {
	Printfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) TrumpIs(trump card.Card) {
	Printfln("Trump is %s", color.Trump.Paint(trump.String()))
}

func (m MessageWriter) LeadingTrick() {
	Println("You are leading this trick.")
}

func (m MessageWriter) LedCardIs(led card.Card) {
	Printfln("Led card is the %s", led.Display())
}

func (m MessageWriter) MustFollowSuit(suit card.Suit) {
	Printfln("You must follow suit! Play a card from %s.", suit.Color().Paint(suit.String()))
}

func (m MessageWriter) PlayerBid(playerName string, bid int) {
	Printfln("%s bids %d", playerName, bid)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, played card.Card) {
	Printfln("%s played the %s", playerName, played.Display())
}

func (m MessageWriter) PlayerHand(playerName string, hand []card.Card) {
	Printfln("%s holds %s", playerName, card.Strings(hand))
}

func (m MessageWriter) TrickWinner(playerName string, trick int, winning card.Card) {
	Printfln("%s won trick %d with the %s!", playerName, trick, winning.Display())
}

func (m MessageWriter) WinnerFound(playerNames []string) {
	if len(playerNames) == 1 {
		Printfln("%s wins!", playerNames[0])
		return
	}
	Printfln("It's a tie between %v!", playerNames)
}

func (m MessageWriter) Goodbye() {
	Println("Thanks for playing!")
}
