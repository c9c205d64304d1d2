package consts

import "time"

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateSetup
	StateGame
	StateOver
)

const (
	DeckSize = 52

	MinOpponents = 1
	MaxOpponents = 6
	MinPlayers   = MinOpponents + 1
	MaxPlayers   = MaxOpponents + 1

	// PrintDelay paces console output so a human can follow the AI turns.
	PrintDelay = 1 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInputClosed      = NewErr(1, true, "Input closed. ")
	ErrorsInputInvalid     = NewErr(1, false, "Input invalid. ")
	ErrorsPlayersInvalid   = NewErr(2, false, "Game players invalid. ")
	ErrorsPlayerDuplicated = NewErr(2, false, "Player name already taken. ")
	ErrorsTricksInvalid    = NewErr(3, false, "Number of tricks invalid. ")
	ErrorsDealTooLarge     = NewErr(3, false, "Not enough cards to deal this hand. ")
	ErrorsDealerUnknown    = NewErr(3, false, "Dealer is not seated at the table. ")
	ErrorsScoreboardAbsent = NewErr(4, false, "Scoreboard not found. ")

	ErrorsDeckEmpty       = NewErr(10, true, "Deck is empty. ")
	ErrorsHandEmpty       = NewErr(10, true, "Player has no cards left to play. ")
	ErrorsCardNotInHand   = NewErr(10, true, "Played card is not in the player's hand. ")
	ErrorsHandMismatch    = NewErr(10, true, "Remaining hand does not match the played card. ")
	ErrorsSuitNotFollowed = NewErr(10, true, "Player did not follow the led suit. ")
	ErrorsBidOutOfRange   = NewErr(10, true, "Bid out of range. ")
	ErrorsBidMissing      = NewErr(10, true, "Player has no recorded bid. ")
	ErrorsCardsLeftOver   = NewErr(10, true, "Cards left in hand after the last trick. ")
	ErrorsSeatUnknown     = NewErr(10, true, "Player is not seated at the table. ")
)
