package player

import (
	"fmt"

	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/bridge/game"
	"github.com/ratel-online/whist/consts"
	"golang.org/x/exp/slices"
)

var botNames = []string{
	"Mickey Mouse", "Minnie Mouse",
	"Donald Duck", "Daffy Duck",
	"Goofy Dog", "Pluto Dog",
}

// CreatePlayers seats the human first, followed by opponents automated players.
func CreatePlayers(opponents int, humanPlayerName string, bus *event.Bus) ([]game.Player, error) {
	if opponents < consts.MinOpponents || opponents > consts.MaxOpponents {
		return nil, fmt.Errorf("%w: %d opponents, choose %d to %d",
			consts.ErrorsPlayersInvalid, opponents, consts.MinOpponents, consts.MaxOpponents)
	}
	players := make([]game.Player, 0, opponents+1)
	players = append(players, NewHumanPlayer(humanPlayerName, bus))
	for _, name := range BotNames(opponents, humanPlayerName) {
		players = append(players, NewAutomatedPlayer(name))
	}
	return players, nil
}

// BotNames picks amount names from the roster in random order, skipping any reserved name.
func BotNames(amount int, reserved ...string) []string {
	names := make([]string, 0, len(botNames))
	for _, name := range botNames {
		if !slices.Contains(reserved, name) {
			names = append(names, name)
		}
	}
	for i := len(names) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		names[i], names[j] = names[j], names[i]
	}
	for len(names) < amount {
		names = append(names, fmt.Sprintf("Bot %d", len(names)+1))
	}
	return names[:amount]
}
