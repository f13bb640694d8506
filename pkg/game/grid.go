package game

import (
	"fmt"
	"strings"
)

const BoardSize = 10

const (
	Water = '.'
	Taken = '#'
	Hit   = 'x'
	Miss  = 'o'
)

type Grid [][]rune

func initGrid() Grid {
	fields := make([][]rune, BoardSize)
	for i := 0; i < BoardSize; i++ {
		fields[i] = make([]rune, BoardSize)
		for j := 0; j < BoardSize; j++ {
			fields[i][j] = Water
		}
	}
	return fields
}

//ParseGrid builds a grid from its serialized form: exactly 100
//characters, row-major, '.' for water and '#' for ship. Whitespace is
//stripped first so board files may contain newlines.
func ParseGrid(s string) (Grid, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)

	if len(clean) != BoardSize*BoardSize {
		return nil, fmt.Errorf("board string has %d cells, want %d", len(clean), BoardSize*BoardSize)
	}

	grid := initGrid()
	for i, r := range clean {
		if r != Water && r != Taken {
			return nil, fmt.Errorf("invalid board character %q at cell %d", r, i)
		}
		grid[i/BoardSize][i%BoardSize] = r
	}
	return grid, nil
}

//String serializes the grid back to its 100-character form. Ship cells,
//hit or not, serialize as '#', everything else as water.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)
	for _, row := range g {
		for _, c := range row {
			if c == Taken || c == Hit {
				sb.WriteRune(Taken)
			} else {
				sb.WriteRune(Water)
			}
		}
	}
	return sb.String()
}
