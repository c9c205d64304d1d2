package sim

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/bridge/game"
	"github.com/ratel-online/whist/bridge/player"
	"github.com/ratel-online/whist/consts"
	"github.com/ratel-online/whist/database"
	"github.com/ratel-online/whist/rule"
)

type Config struct {
	Games   int
	Players int
	Naive   int // players that bid and play at random
	Debug   bool
	Rules   rule.Rules
	Seed    int64 // 0 picks a seed from the clock
	Verbose bool  // log every hand to stdout ahead of the report
}

type Report struct {
	Seed      int64          `json:"seed"`
	Games     int            `json:"games"`
	Hands     int            `json:"hands"`
	Points    map[string]int `json:"points"`
	ExactBids map[string]int `json:"exactBids"`
	Wins      map[string]int `json:"wins"`
	Failures  []string       `json:"failures,omitempty"`
}

func (r Report) JSON() string {
	return string(json.Marshal(r))
}

type outcome struct {
	hands     int
	points    map[string]int
	exactBids map[string]int
	leaders   []string
}

// Run plays config.Games games side by side. Each game owns its table, decks,
// random source, event bus and scoreboard; only the report is shared.
func Run(config Config) (Report, error) {
	if config.Games < 1 {
		return Report{}, fmt.Errorf("%w: %d games", consts.ErrorsInputInvalid, config.Games)
	}
	if config.Players < consts.MinPlayers || config.Players > consts.MaxPlayers || config.Naive < 0 || config.Naive > config.Players {
		return Report{}, fmt.Errorf("%w: %d players, %d naive", consts.ErrorsPlayersInvalid, config.Players, config.Naive)
	}
	if config.Rules.Schedule == nil {
		config.Rules = rule.Standard
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	report := Report{
		Seed:      config.Seed,
		Points:    map[string]int{},
		ExactBids: map[string]int{},
		Wins:      map[string]int{},
	}
	lock := sync.Mutex{}
	wg := sync.WaitGroup{}
	for i := 0; i < config.Games; i++ {
		source := rand.New(rand.NewSource(config.Seed + int64(i)))
		wg.Add(1)
		async.Async(func() {
			defer wg.Done()
			result, err := playGame(config, source)

			lock.Lock()
			defer lock.Unlock()
			report.Games++
			if err != nil {
				report.Failures = append(report.Failures, err.Error())
				return
			}
			report.Hands += result.hands
			for name, points := range result.points {
				report.Points[name] += points
			}
			for name, exact := range result.exactBids {
				report.ExactBids[name] += exact
			}
			for _, name := range result.leaders {
				report.Wins[name]++
			}
		})
	}
	wg.Wait()
	if config.Verbose {
		log.Infof("[sim.Run] %d games, %d hands, %d failures\n", report.Games, report.Hands, len(report.Failures))
	}
	return report, nil
}

func seat(config Config, source *rand.Rand) []game.Player {
	players := make([]game.Player, 0, config.Players)
	for i := 0; i < config.Players; i++ {
		if i < config.Naive {
			players = append(players, player.NewNaivePlayerWith(fmt.Sprintf("Naive %d", i+1), source.Intn))
		} else {
			players = append(players, player.NewAutomatedPlayer(fmt.Sprintf("Automated %d", i+1-config.Naive)))
		}
	}
	return players
}

func playGame(config Config, source *rand.Rand) (result outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game aborted: %v", r)
		}
	}()

	bus := event.NewBus()
	checker := &audit{}
	bus.Subscribe(checker)
	table, err := game.NewTable(seat(config, source), game.WithRules(config.Rules), game.WithEvents(bus))
	if err != nil {
		return result, err
	}
	board := database.NewScoreboard(table.Names())
	bus.Subscribe(board)
	if config.Verbose {
		bus.Subscribe(event.NewLogListener(board.ID))
	}

	result.exactBids = map[string]int{}
	for i, tricks := range config.Rules.Hands(config.Debug) {
		deck := game.NewDeck().ShuffleWith(source.Intn)
		finished, err := game.PlayRound(table, tricks, table.Name(i%table.Size()), deck)
		if err != nil {
			return result, err
		}
		if err := checker.verify(finished, table.Size(), deck.Remaining()); err != nil {
			return result, err
		}
		won := finished.TricksWon()
		for name, bid := range finished.Bids() {
			if bid == won[name] {
				result.exactBids[name]++
			}
		}
		result.hands++
	}
	result.points = board.Points()
	result.leaders = board.Leaders()
	return result, nil
}
