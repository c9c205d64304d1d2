package sim

import (
	"fmt"

	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/bridge/game"
	"github.com/ratel-online/whist/consts"
)

// audit watches one table's events and checks each finished hand against them.
type audit struct {
	trump  card.Card
	played map[card.Card]bool
	reused int
	tricks int
}

func (a *audit) OnHandStarted(payload event.HandStartedPayload) {
	a.trump = payload.Trump
	a.played = make(map[card.Card]bool)
	a.reused = 0
	a.tricks = 0
}

func (a *audit) OnCardPlayed(payload event.CardPlayedPayload) {
	if a.played[payload.Card] || payload.Card == a.trump {
		a.reused++
	}
	a.played[payload.Card] = true
}

func (a *audit) OnTrickWon(payload event.TrickWonPayload) {
	a.tricks++
}

func (a *audit) verify(finished game.Finished, players int, remaining int) error {
	tricks := finished.Tricks()
	if a.reused > 0 {
		return fmt.Errorf("hand %s: %d cards played twice", finished.ID(), a.reused)
	}
	if len(a.played) != tricks*players {
		return fmt.Errorf("hand %s: %d cards played, want %d", finished.ID(), len(a.played), tricks*players)
	}
	if want := consts.DeckSize - tricks*players - 1; remaining != want {
		return fmt.Errorf("hand %s: %d cards left in deck, want %d", finished.ID(), remaining, want)
	}
	if a.tricks != tricks {
		return fmt.Errorf("hand %s: %d tricks won, want %d", finished.ID(), a.tricks, tricks)
	}
	total := 0
	for _, won := range finished.TricksWon() {
		total += won
	}
	if total != tricks {
		return fmt.Errorf("hand %s: tally of %d tricks, want %d", finished.ID(), total, tricks)
	}
	for name, bid := range finished.Bids() {
		if bid < 0 || bid > tricks {
			return fmt.Errorf("hand %s: %s bid %d of %d", finished.ID(), name, bid, tricks)
		}
	}
	return nil
}
