package ui

import (
	"fmt"
	"time"

	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/bridge/card/color"
	"github.com/ratel-online/whist/consts"
	"github.com/ratel-online/whist/render"
)

// Delay is the pause after every printed line.
var Delay = consts.PrintDelay

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
	time.Sleep(Delay)
}

// ShowHand lists cards under the same labels PromptCardSelection accepts.
func ShowHand(cards []card.Card) {
	Println(render.Hand(Labels(len(cards)), cards))
}

// Labels names count cards A, B, C and so on.
func Labels(count int) []string {
	labels := make([]string, 0, count)
	for i := 0; i < count; i++ {
		labels = append(labels, string(rune('A'+i)))
	}
	return labels
}
