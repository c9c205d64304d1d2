package state_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/ratel-online/whist/bridge/card/color"
	"github.com/ratel-online/whist/bridge/event"
	"github.com/ratel-online/whist/bridge/ui"
	"github.com/ratel-online/whist/consts"
	"github.com/ratel-online/whist/database"
	"github.com/ratel-online/whist/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptInput(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	output := &bytes.Buffer{}
	previous := color.Stdout
	color.Stdout = output
	ui.Delay = 0
	ui.SetInput(strings.NewReader(input))
	t.Cleanup(func() { color.Stdout = previous })
	return output
}

func captureStdout(t *testing.T, function func()) string {
	t.Helper()
	reader, writer, err := os.Pipe()
	require.NoError(t, err)
	previous := os.Stdout
	os.Stdout = writer
	defer func() { os.Stdout = previous }()

	done := make(chan string)
	go func() {
		captured, _ := io.ReadAll(reader)
		done <- string(captured)
	}()
	function()
	require.NoError(t, writer.Close())
	return <-done
}

func scored(listener *event.DummyListener) int {
	hands := 0
	for _, payload := range listener.ReceivedPayloads() {
		if _, ok := payload.(event.HandScoredPayload); ok {
			hands++
		}
	}
	return hands
}

// Every bid prompt takes the "0" and every card prompt finds a legal label among A..G.
var anyMove = strings.Repeat("0\nA\nB\nC\nD\nE\nF\nG\n", 100)

func TestRun(t *testing.T) {
	t.Run("Plays the short schedule to the final scores", func(t *testing.T) {
		output := scriptInput(t, "9\n2\nAlice\n"+anyMove)
		session := state.NewSession(true)
		listener := event.NewDummyListener()
		session.Events.Subscribe(listener)

		require.NoError(t, state.Run(session))

		text := output.String()
		assert.Contains(t, text, "WELCOME TO MORMON BRIDGE")
		assert.Contains(t, text, "Input out of range (minimum: 1, maximum: 6)")
		for _, title := range []string{"Hand 1: 1 trick", "Hand 2: 3 tricks", "Hand 3: 5 tricks", "Hand 4: 7 tricks", "Hand 5: 1 trick"} {
			assert.Contains(t, text, title)
		}
		assert.Contains(t, text, "Points for this hand")
		assert.Contains(t, text, "Points through Hand 5")
		assert.Contains(t, text, "Final Scores")
		assert.Contains(t, text, "Alice")

		require.NotNil(t, session.Table)
		assert.Equal(t, 3, session.Table.Size())
		assert.Equal(t, 5, scored(listener))
		_, err := database.GetScoreboard(session.BoardID)
		assert.True(t, errors.Is(err, consts.ErrorsScoreboardAbsent))
	})

	t.Run("Shows the scores so far when a hand cannot be dealt", func(t *testing.T) {
		output := scriptInput(t, "2\nAlice\n"+anyMove)
		session := state.NewSession(false)
		session.Rules.Schedule = []int{1, 30}
		listener := event.NewDummyListener()
		session.Events.Subscribe(listener)

		require.NoError(t, state.Run(session))

		text := output.String()
		assert.Contains(t, text, "Points through Hand 1")
		assert.NotContains(t, text, "Points through Hand 2")
		assert.Contains(t, text, "Final Scores")
		assert.Equal(t, 1, scored(listener))
		_, err := database.GetScoreboard(session.BoardID)
		assert.True(t, errors.Is(err, consts.ErrorsScoreboardAbsent))
	})

	t.Run("Writes nothing to stdout besides the game unless asked", func(t *testing.T) {
		scriptInput(t, "1\nAlice\n"+anyMove)
		logged := captureStdout(t, func() {
			require.NoError(t, state.Run(state.NewSession(true)))
		})
		assert.Empty(t, logged)
	})

	t.Run("Logs every hand when verbose", func(t *testing.T) {
		scriptInput(t, "1\nAlice\n"+anyMove)
		session := state.NewSession(true)
		session.Verbose = true
		logged := captureStdout(t, func() {
			require.NoError(t, state.Run(session))
		})
		assert.Equal(t, 5, strings.Count(logged, "scored map["))
	})

	t.Run("Stops when the player leaves", func(t *testing.T) {
		scriptInput(t, "1\n")
		err := state.Run(state.NewSession(true))
		assert.Equal(t, consts.ErrorsInputClosed, err)
	})
}
