package state

import (
	"errors"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/whist/consts"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateSetup, &setup{})
	register(consts.StateGame, &hands{})
	register(consts.StateOver, &over{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(session *Session) (consts.StateID, error)
	Exit(session *Session) consts.StateID
}

func Root() consts.StateID {
	return consts.StateWelcome
}

// Run walks the states until one returns 0. A recoverable error sends the
// session to the failing state's Exit; anything else ends the run.
func Run(session *Session) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if closed, ok := r.(consts.Error); ok && closed == consts.ErrorsInputClosed {
				err = closed
				return
			}
			panic(r)
		}
	}()

	id := Root()
	for id > 0 {
		state := states[id]
		next, err := state.Next(session)
		if err != nil {
			log.Error(err)
			var stateErr consts.Error
			if errors.As(err, &stateErr) && !stateErr.Exit {
				next = state.Exit(session)
			} else {
				return err
			}
		}
		id = next
	}
	return nil
}
