package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	t.Run("success and round trip", func(t *testing.T) {
		// when
		mapString := "....###..." + strings.Repeat(".", 90)
		grid, err := ParseGrid(mapString)

		// then
		require.NoError(t, err)
		assert.Equal(t, Taken, grid[0][4])
		assert.Equal(t, Taken, grid[0][6])
		assert.Equal(t, Water, grid[0][3])
		assert.Equal(t, mapString, grid.String())
	})

	t.Run("strips whitespace from board files", func(t *testing.T) {
		// when
		var sb strings.Builder
		sb.WriteString("..##......\r\n")
		for i := 0; i < 9; i++ {
			sb.WriteString("..........\n")
		}
		grid, err := ParseGrid(sb.String())

		// then
		require.NoError(t, err)
		assert.Equal(t, Taken, grid[0][2])
		assert.Equal(t, "..##......"+strings.Repeat(".", 90), grid.String())
	})

	t.Run("fail on wrong length", func(t *testing.T) {
		// when
		_, err := ParseGrid(strings.Repeat(".", 99))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "99 cells")
	})

	t.Run("fail on invalid character", func(t *testing.T) {
		// when
		_, err := ParseGrid("@" + strings.Repeat(".", 99))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid board character")
	})
}
