package database

import (
	"fmt"
	"sort"
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/consts"
	"golang.org/x/exp/slices"
)

var scoreboards = hashmap.New()

// registry serializes access to scoreboards; the map resizes in Set
// without holding off a concurrent Del.
var registry sync.Mutex

// Scoreboard keeps cumulative points for one game.
type Scoreboard struct {
	sync.Mutex
	ID string

	names  []string
	points map[string]int
	hands  int
}

// NewScoreboard returns a board that is not registered for lookup by ID.
func NewScoreboard(names []string) *Scoreboard {
	board := &Scoreboard{
		ID:     uuid.NewString(),
		names:  append([]string(nil), names...),
		points: make(map[string]int, len(names)),
	}
	for _, name := range names {
		board.points[name] = 0
	}
	return board
}

func CreateScoreboard(names []string) *Scoreboard {
	board := NewScoreboard(names)
	registry.Lock()
	defer registry.Unlock()
	scoreboards.Set(board.ID, board)
	return board
}

func GetScoreboard(id string) (*Scoreboard, error) {
	registry.Lock()
	defer registry.Unlock()
	if v, ok := scoreboards.Get(id); ok {
		return v.(*Scoreboard), nil
	}
	return nil, fmt.Errorf("%w: %s", consts.ErrorsScoreboardAbsent, id)
}

func DeleteScoreboard(id string) {
	registry.Lock()
	defer registry.Unlock()
	scoreboards.Del(id)
}

func GetScoreboards() []*Scoreboard {
	list := make([]*Scoreboard, 0)
	registry.Lock()
	scoreboards.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Scoreboard))
	})
	registry.Unlock()
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// Record adds one hand's scores. Nothing is applied if any name is unknown.
func (b *Scoreboard) Record(scores map[string]int) error {
	b.Lock()
	defer b.Unlock()
	for name := range scores {
		if !slices.Contains(b.names, name) {
			return fmt.Errorf("%w: %s is not on scoreboard %s", consts.ErrorsPlayersInvalid, name, b.ID)
		}
	}
	for name, score := range scores {
		b.points[name] += score
	}
	b.hands++
	return nil
}

func (b *Scoreboard) OnHandScored(payload event.HandScoredPayload) {
	if err := b.Record(payload.Scores); err != nil {
		log.Error(err)
	}
}

func (b *Scoreboard) Names() []string {
	return append([]string(nil), b.names...)
}

func (b *Scoreboard) Points() map[string]int {
	b.Lock()
	defer b.Unlock()
	points := make(map[string]int, len(b.points))
	for name, value := range b.points {
		points[name] = value
	}
	return points
}

func (b *Scoreboard) Hands() int {
	b.Lock()
	defer b.Unlock()
	return b.hands
}

// Standings orders names by points, highest first. Ties keep seating order.
func (b *Scoreboard) Standings() []string {
	points := b.Points()
	standings := b.Names()
	sort.SliceStable(standings, func(i, j int) bool {
		return points[standings[i]] > points[standings[j]]
	})
	return standings
}

func (b *Scoreboard) Leaders() []string {
	points := b.Points()
	standings := b.Standings()
	leaders := make([]string, 0, 1)
	for _, name := range standings {
		if points[name] != points[standings[0]] {
			break
		}
		leaders = append(leaders, name)
	}
	return leaders
}
