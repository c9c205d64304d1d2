package state

import (
	"github.com/ratel-online/whist/bridge/ui"
	"github.com/ratel-online/whist/consts"
	"github.com/ratel-online/whist/database"
	"github.com/ratel-online/whist/render"
)

type over struct{}

func (*over) Next(session *Session) (consts.StateID, error) {
	board, err := database.GetScoreboard(session.BoardID)
	if err != nil {
		return 0, err
	}
	defer database.DeleteScoreboard(board.ID)
	ui.Println(render.Points("Final Scores", board.Standings(), board.Points()))
	ui.Message.WinnerFound(board.Leaders())
	return 0, nil
}

func (*over) Exit(session *Session) consts.StateID {
	return 0
}
