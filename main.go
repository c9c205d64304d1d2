package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/whist/bridge/ui"
	"github.com/ratel-online/whist/consts"
	"github.com/ratel-online/whist/sim"
	"github.com/ratel-online/whist/state"
)

var (
	debug    = flag.Bool("debug", false, "play the short schedule and show every hand before bidding")
	simulate = flag.Int("simulate", 0, "play this many computer-only games and print a JSON report")
	players  = flag.Int("players", 4, "seats per simulated game")
	naive    = flag.Int("naive", 0, "simulated players that bid and play at random")
	seed     = flag.Int64("seed", 0, "seed for simulated games, 0 for a random one")
	verbose  = flag.Bool("verbose", false, "log every hand to stdout")
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
			os.Exit(1)
		}
	}()
	flag.Parse()

	if *simulate > 0 {
		report, err := sim.Run(sim.Config{Games: *simulate, Players: *players, Naive: *naive, Debug: *debug, Seed: *seed, Verbose: *verbose})
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		fmt.Println(report.JSON())
		return
	}

	session := state.NewSession(*debug)
	session.Verbose = *verbose
	err := state.Run(session)
	if errors.Is(err, consts.ErrorsInputClosed) {
		ui.Message.Goodbye()
		return
	}
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
