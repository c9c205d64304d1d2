package game

import (
	"github.com/ratel-online/whist/bridge/ui"
	"github.com/ratel-online/whist/render"
)

type Result struct {
	HandID  string         `json:"handId"`
	Dealer  string         `json:"dealer"`
	Trump   string         `json:"trump"`
	Tricks  int            `json:"tricks"`
	Players []PlayerResult `json:"players"`
}

type PlayerResult struct {
	Name  string `json:"name"`
	Bid   int    `json:"bid"`
	Won   int    `json:"won"`
	Score int    `json:"score"`
}

func (f Finished) Result() Result {
	result := Result{
		HandID: f.id,
		Dealer: f.dealer,
		Trump:  f.trump.String(),
		Tricks: f.tricks,
	}
	for _, name := range f.table.Names() {
		result.Players = append(result.Players, PlayerResult{
			Name:  name,
			Bid:   f.bids[name],
			Won:   f.won[name],
			Score: f.scores[name],
		})
	}
	return result
}

// DisplayScores prints what every player bid, took and scored this hand.
func (f Finished) DisplayScores() {
	names := f.table.Names()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, render.Row(name, f.bids[name], f.won[name], f.scores[name]))
	}
	ui.Println(render.Table("Points for this hand", []string{"Player", "Bid", "Won", "Points"}, rows))
}
