package state

import (
	"fmt"

	"github.com/ratel-online/whist/bridge/game"
	"github.com/ratel-online/whist/bridge/ui"
	"github.com/ratel-online/whist/consts"
	"github.com/ratel-online/whist/database"
	"github.com/ratel-online/whist/render"
)

type hands struct{}

// Next plays the whole schedule. The deal passes one seat to the left each hand.
func (*hands) Next(session *Session) (consts.StateID, error) {
	board, err := database.GetScoreboard(session.BoardID)
	if err != nil {
		return 0, err
	}
	table := session.Table
	for i, tricks := range session.Rules.Hands(session.Debug) {
		number := i + 1
		dealer := table.Name(i % table.Size())
		ui.Message.HandTitle(number, tricks)

		finished, err := game.PlayRound(table, tricks, dealer, session.NewDeck())
		if err != nil {
			return 0, fmt.Errorf("hand %d: %w", number, err)
		}
		finished.DisplayScores()
		ui.Println(render.Points(fmt.Sprintf("Points through Hand %d", number), board.Names(), board.Points()))
	}
	return consts.StateOver, nil
}

// Exit still shows the scores of the hands that were played.
func (*hands) Exit(session *Session) consts.StateID {
	return consts.StateOver
}
