package state

import (
	"fmt"

	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/bridge/game"
	"github.com/ratel-online/whist/bridge/player"
	"github.com/ratel-online/whist/bridge/ui"
	"github.com/ratel-online/whist/consts"
	"github.com/ratel-online/whist/database"
)

type setup struct{}

func (*setup) Next(session *Session) (consts.StateID, error) {
	opponents := ui.PromptIntegerInRange(consts.MinOpponents, consts.MaxOpponents, fmt.Sprintf(
		"How many computer opponents would you like to play with? Choose a number between %d and %d.",
		consts.MinOpponents, consts.MaxOpponents,
	))
	name := ui.PromptString("What is your name?")

	players, err := player.CreatePlayers(opponents, name, session.Events)
	if err != nil {
		return 0, err
	}
	opts := []game.Option{game.WithRules(session.Rules), game.WithEvents(session.Events)}
	if session.Debug {
		opts = append(opts, game.WithReveal())
	}
	table, err := game.NewTable(players, opts...)
	if err != nil {
		return 0, err
	}

	board := database.CreateScoreboard(table.Names())
	session.Events.Subscribe(board)
	if session.Verbose {
		session.Events.Subscribe(event.NewLogListener(session.ID))
	}
	session.Table = table
	session.BoardID = board.ID
	return consts.StateGame, nil
}

func (*setup) Exit(session *Session) consts.StateID {
	return consts.StateSetup
}
