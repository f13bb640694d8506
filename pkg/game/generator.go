package game

import (
	"errors"
	"math/rand"
	"time"
)

var shipSizes = []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}

const (
	boardAttempts     = 1000
	placementAttempts = 100
)

//ErrGenerationExhausted is returned when no valid layout was found
//within the retry budget.
var ErrGenerationExhausted = errors.New("could not generate a valid board layout")

//Generator produces random fleet layouts. The randomness source is
//injected so layouts can be reproduced with a fixed seed.
type Generator struct {
	rnd *rand.Rand
}

//NewGenerator returns a generator backed by rnd. A nil rnd gets a
//time-seeded source.
func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

//Generate returns a serialized random board holding one 4-cell ship,
//two 3-cell, three 2-cell and four 1-cell ships, where no two ships
//touch, not even diagonally. Random placement of the later, smaller
//ships can be blocked by the earlier ones, so when a per-ship budget
//runs out the whole board is abandoned and rebuilt from empty.
func (g *Generator) Generate() (string, error) {
	for attempt := 0; attempt < boardAttempts; attempt++ {
		grid := initGrid()
		if g.placeAllShips(grid) {
			return grid.String(), nil
		}
	}
	return "", ErrGenerationExhausted
}

func (g *Generator) placeAllShips(grid Grid) bool {
	for _, size := range shipSizes {
		if !g.placeShip(grid, size) {
			return false
		}
	}
	return true
}

func (g *Generator) placeShip(grid Grid, size int) bool {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		start := Position{X: g.rnd.Intn(BoardSize), Y: g.rnd.Intn(BoardSize)}
		path := make([]Position, 0, size)

		if g.growShip(grid, start, size, &path, make(map[Position]struct{})) {
			for _, p := range path {
				grid[p.X][p.Y] = Taken
			}
			return true
		}
	}
	return false
}

//growShip extends the path cell by cell with a randomized depth-first
//search. A cell is accepted when it lies on the board, is not already
//part of the path, touches no path cell besides its predecessor (so the
//path never branches or closes into a loop), and neither occupies nor
//touches an existing ship. When every direction out of a cell fails,
//the cell is undone and the failure propagates upward.
func (g *Generator) growShip(grid Grid, current Position, remaining int, path *[]Position, visited map[Position]struct{}) bool {
	if remaining == 0 {
		return true
	}
	if !InBounds(current) {
		return false
	}
	if _, ok := visited[current]; ok {
		return false
	}
	if pathDegree(current, visited) > 1 {
		return false
	}
	if grid[current.X][current.Y] == Taken || hasAdjacentShip(grid, current) {
		return false
	}

	visited[current] = struct{}{}
	*path = append(*path, current)

	for _, d := range g.shuffledDirections() {
		if g.growShip(grid, current.move(d), remaining-1, path, visited) {
			return true
		}
	}

	delete(visited, current)
	*path = (*path)[:len(*path)-1]
	return false
}

func pathDegree(p Position, visited map[Position]struct{}) int {
	degree := 0
	for _, n := range getNeighbours(p) {
		if _, ok := visited[n]; ok {
			degree++
		}
	}
	return degree
}

func hasAdjacentShip(grid Grid, p Position) bool {
	for _, n := range getAllNeighbours(p) {
		if InBounds(n) && grid[n.X][n.Y] == Taken {
			return true
		}
	}
	return false
}

func (g *Generator) shuffledDirections() []Position {
	dirs := make([]Position, len(orthogonalDirections))
	copy(dirs, orthogonalDirections)
	g.rnd.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}
