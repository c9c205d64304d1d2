package state

import (
	"github.com/ratel-online/whist/bridge/ui"
	"github.com/ratel-online/whist/consts"
)

type welcome struct{}

func (*welcome) Next(session *Session) (consts.StateID, error) {
	ui.Message.Welcome()
	return consts.StateSetup, nil
}

func (*welcome) Exit(session *Session) consts.StateID {
	return 0
}
