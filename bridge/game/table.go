package game

import (
	"fmt"

	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/consts"
	"github.com/ratel-online/whist/rule"
)

// Table seats the players of one game. Seats are stable indices into the
// player arena, and every seat owns the Hand it holds during a round.
type Table struct {
	players []Player
	hands   []*Hand
	seats   map[string]int
	cycler  *Cycler
	rules   rule.Rules
	events  *event.Bus
	reveal  bool
}

type Option func(*Table)

func WithRules(rules rule.Rules) Option {
	return func(t *Table) {
		t.rules = rules
	}
}

func WithEvents(bus *event.Bus) Option {
	return func(t *Table) {
		t.events = bus
	}
}

// WithReveal makes every player show their hand before bidding.
func WithReveal() Option {
	return func(t *Table) {
		t.reveal = true
	}
}

func NewTable(players []Player, opts ...Option) (*Table, error) {
	if len(players) < consts.MinPlayers {
		return nil, fmt.Errorf("%w: need at least %d, got %d", consts.ErrorsPlayersInvalid, consts.MinPlayers, len(players))
	}
	table := &Table{
		players: players,
		hands:   make([]*Hand, len(players)),
		seats:   make(map[string]int, len(players)),
		rules:   rule.Standard,
	}
	names := make([]string, 0, len(players))
	for seat, player := range players {
		name := player.Name()
		if name == "" {
			return nil, fmt.Errorf("%w: empty name at seat %d", consts.ErrorsPlayersInvalid, seat)
		}
		if _, taken := table.seats[name]; taken {
			return nil, fmt.Errorf("%w: %s", consts.ErrorsPlayerDuplicated, name)
		}
		table.seats[name] = seat
		table.hands[seat] = NewHand()
		names = append(names, name)
	}
	table.cycler = NewCycler(names)
	for _, opt := range opts {
		opt(table)
	}
	if table.events == nil {
		table.events = event.NewBus()
	}
	return table, nil
}

func (t *Table) Size() int {
	return len(t.players)
}

func (t *Table) Player(seat int) Player {
	return t.players[seat]
}

func (t *Table) Hand(seat int) *Hand {
	return t.hands[seat]
}

func (t *Table) Name(seat int) string {
	return t.players[seat].Name()
}

func (t *Table) Names() []string {
	names := make([]string, 0, len(t.players))
	t.cycler.ForEach(func(name string) {
		names = append(names, name)
	})
	return names
}

func (t *Table) Seat(name string) (int, bool) {
	seat, ok := t.seats[name]
	return seat, ok
}

// Order lists every seat once, clockwise, beginning with first.
func (t *Table) Order(first string) []int {
	lap := t.cycler.From(first)
	if lap == nil {
		panic(consts.ErrorsSeatUnknown)
	}
	order := make([]int, 0, len(lap))
	for _, name := range lap {
		order = append(order, t.seats[name])
	}
	return order
}

func (t *Table) Rules() rule.Rules {
	return t.rules
}

func (t *Table) Events() *event.Bus {
	return t.events
}

func (t *Table) clearHands() {
	for _, hand := range t.hands {
		hand.Clear()
	}
}
