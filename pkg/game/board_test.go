package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleShipBoard(t *testing.T) *Board {
	t.Helper()

	// one horizontal 3-cell ship at row 0, cols 4-6
	board, err := NewBoard("....###..." + strings.Repeat(".", 90))
	require.NoError(t, err)
	return board
}

func TestBoard_ReceiveShot(t *testing.T) {
	t.Run("destroying the only ship", func(t *testing.T) {
		// when
		board := singleShipBoard(t)

		// then
		assert.Equal(t, OutcomeHit, board.ReceiveShot(Position{X: 0, Y: 4}))
		assert.Equal(t, OutcomeHit, board.ReceiveShot(Position{X: 0, Y: 5}))
		assert.Equal(t, OutcomeAllSunk, board.ReceiveShot(Position{X: 0, Y: 6}))
		assert.True(t, board.Fleet().AllSunk())
	})

	t.Run("sinking one ship of many reports hit-sunk", func(t *testing.T) {
		// when
		board, err := NewBoard(buildMap(t, map[int]string{
			0: "#.........",
			2: "#.........",
		}))
		require.NoError(t, err)

		// then
		assert.Equal(t, OutcomeSunk, board.ReceiveShot(Position{X: 0, Y: 0}))
		assert.False(t, board.Fleet().AllSunk())
		assert.Equal(t, OutcomeAllSunk, board.ReceiveShot(Position{X: 2, Y: 0}))
	})

	t.Run("miss marks the water cell", func(t *testing.T) {
		// when
		board := singleShipBoard(t)

		// then
		assert.Equal(t, OutcomeMiss, board.ReceiveShot(Position{X: 5, Y: 5}))
		assert.Equal(t, Miss, board.OwnAt(Position{X: 5, Y: 5}))
	})

	t.Run("repeated miss is idempotent", func(t *testing.T) {
		// when
		board := singleShipBoard(t)
		target := Position{X: 5, Y: 5}

		// then
		assert.Equal(t, OutcomeMiss, board.ReceiveShot(target))
		assert.Equal(t, OutcomeMiss, board.ReceiveShot(target))
		assert.Equal(t, Miss, board.OwnAt(target))
	})

	t.Run("repeated hit does not decrement the ship twice", func(t *testing.T) {
		// when
		board := singleShipBoard(t)
		target := Position{X: 0, Y: 4}

		// then
		assert.Equal(t, OutcomeHit, board.ReceiveShot(target))
		assert.Equal(t, OutcomeHit, board.ReceiveShot(target))
		assert.Equal(t, OutcomeHit, board.ReceiveShot(Position{X: 0, Y: 5}))
		// two distinct cells hit, one remains, the repeat changed nothing
		assert.False(t, board.Fleet().ShipAt(target).Sunk())
	})

	t.Run("repeated shot at a sunk ship cell reports hit-sunk", func(t *testing.T) {
		// when
		board := singleShipBoard(t)
		board.ReceiveShot(Position{X: 0, Y: 4})
		board.ReceiveShot(Position{X: 0, Y: 5})
		board.ReceiveShot(Position{X: 0, Y: 6})

		// then
		assert.Equal(t, OutcomeSunk, board.ReceiveShot(Position{X: 0, Y: 4}))
	})
}

func TestBoard_RecordShotOutcome(t *testing.T) {
	t.Run("miss and hit reports mark the enemy fields", func(t *testing.T) {
		// when
		board := singleShipBoard(t)
		board.RecordShotOutcome(Position{X: 1, Y: 1}, OutcomeMiss)
		board.RecordShotOutcome(Position{X: 2, Y: 2}, OutcomeHit)

		// then
		assert.Equal(t, Miss, board.EnemyAt(Position{X: 1, Y: 1}))
		assert.Equal(t, Hit, board.EnemyAt(Position{X: 2, Y: 2}))
	})

	t.Run("sunk report marks the whole ship perimeter as miss", func(t *testing.T) {
		// when
		board := singleShipBoard(t)
		board.RecordShotOutcome(Position{X: 3, Y: 4}, OutcomeHit)
		board.RecordShotOutcome(Position{X: 3, Y: 5}, OutcomeHit)
		board.RecordShotOutcome(Position{X: 3, Y: 6}, OutcomeSunk)

		// then
		for _, cell := range []Position{{X: 3, Y: 4}, {X: 3, Y: 5}, {X: 3, Y: 6}} {
			assert.Equal(t, Hit, board.EnemyAt(cell))
			for _, n := range getAllNeighbours(cell) {
				if !InBounds(n) || board.EnemyAt(n) == Hit {
					continue
				}
				assert.Equal(t, Miss, board.EnemyAt(n), "perimeter cell %v", n)
			}
		}
		// cells away from the ship stay unknown
		assert.Equal(t, Water, board.EnemyAt(Position{X: 7, Y: 7}))
	})

	t.Run("all-sunk report propagates like a sunk report", func(t *testing.T) {
		// when
		board := singleShipBoard(t)
		board.RecordShotOutcome(Position{X: 5, Y: 5}, OutcomeAllSunk)

		// then
		assert.Equal(t, Hit, board.EnemyAt(Position{X: 5, Y: 5}))
		assert.Equal(t, Miss, board.EnemyAt(Position{X: 4, Y: 4}))
		assert.Equal(t, Miss, board.EnemyAt(Position{X: 6, Y: 6}))
	})
}
