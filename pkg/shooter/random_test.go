package shooter

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/game"
)

func emptyBoard(t *testing.T) *game.Board {
	t.Helper()

	board, err := game.NewBoard(strings.Repeat(".", 100))
	require.NoError(t, err)
	return board
}

func TestRandom_NextShot(t *testing.T) {
	t.Run("never targets a known cell", func(t *testing.T) {
		// when
		board := emptyBoard(t)
		sh := NewRandom(rand.New(rand.NewSource(1)))

		// then: report every shot as a miss and keep shooting until the
		// whole board is known, no cell may come up twice
		for i := 0; i < game.BoardSize*game.BoardSize; i++ {
			shot, err := sh.NextShot(board)
			require.NoError(t, err)
			require.True(t, game.InBounds(shot))
			require.Equal(t, game.Water, board.EnemyAt(shot), "cell %v targeted twice", shot)
			board.RecordShotOutcome(shot, game.OutcomeMiss)
		}

		_, err := sh.NextShot(board)
		assert.Error(t, err)
	})

	t.Run("hunts next to an open hit", func(t *testing.T) {
		// when
		board := emptyBoard(t)
		board.RecordShotOutcome(game.Position{X: 4, Y: 4}, game.OutcomeHit)
		sh := NewRandom(rand.New(rand.NewSource(1)))

		// then
		shot, err := sh.NextShot(board)
		require.NoError(t, err)
		assert.Contains(t, []game.Position{
			{X: 3, Y: 4},
			{X: 5, Y: 4},
			{X: 4, Y: 3},
			{X: 4, Y: 5},
		}, shot)
	})

	t.Run("a sunk ship attracts no further fire", func(t *testing.T) {
		// when
		board := emptyBoard(t)
		board.RecordShotOutcome(game.Position{X: 4, Y: 4}, game.OutcomeSunk)
		sh := NewRandom(rand.New(rand.NewSource(1)))

		// then: the sink propagation marked the perimeter, so nothing
		// neighbouring the hit is a candidate anymore
		shot, err := sh.NextShot(board)
		require.NoError(t, err)
		for _, n := range []game.Position{
			{X: 3, Y: 4},
			{X: 5, Y: 4},
			{X: 4, Y: 3},
			{X: 4, Y: 5},
		} {
			assert.NotEqual(t, n, shot)
		}
	})
}
