package game_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/whist/bridge/game"
	"github.com/ratel-online/whist/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("Seats players in the given order", func(t *testing.T) {
		table, err := game.NewTable(players(newStub("A", 0), newStub("B", 0), newStub("C", 0)))
		require.NoError(t, err)
		assert.Equal(t, 3, table.Size())
		assert.Equal(t, []string{"A", "B", "C"}, table.Names())
		seat, ok := table.Seat("B")
		assert.True(t, ok)
		assert.Equal(t, 1, seat)
		assert.Equal(t, "B", table.Name(1))
		assert.True(t, table.Hand(2).Empty())
	})

	t.Run("Rejects a lone player", func(t *testing.T) {
		_, err := game.NewTable(players(newStub("A", 0)))
		assert.True(t, errors.Is(err, consts.ErrorsPlayersInvalid))
	})

	t.Run("Rejects duplicate names", func(t *testing.T) {
		_, err := game.NewTable(players(newStub("A", 0), newStub("A", 0)))
		assert.True(t, errors.Is(err, consts.ErrorsPlayerDuplicated))
	})

	t.Run("Rejects empty names", func(t *testing.T) {
		_, err := game.NewTable(players(newStub("A", 0), newStub("", 0)))
		assert.True(t, errors.Is(err, consts.ErrorsPlayersInvalid))
	})

	t.Run("Creates its own event bus", func(t *testing.T) {
		table, err := game.NewTable(players(newStub("A", 0), newStub("B", 0)))
		require.NoError(t, err)
		assert.NotNil(t, table.Events())
	})
}

func TestOrder(t *testing.T) {
	table, err := game.NewTable(players(newStub("A", 0), newStub("B", 0), newStub("C", 0), newStub("D", 0)))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 0, 1}, table.Order("C"))
	assert.Equal(t, []int{1, 2, 3, 0}, table.Order("B"))
	require.PanicsWithValue(t, consts.ErrorsSeatUnknown, func() { table.Order("Z") })
}
