package game

//Ship is one maximal 4-connected group of ship cells found on the owner
//grid. The member set never changes after detection, only the count of
//remaining unhit cells goes down.
type Ship struct {
	cells     []Position
	remaining int
}

func (s *Ship) Size() int {
	return len(s.cells)
}

func (s *Ship) Cells() []Position {
	return s.cells
}

//Sunk returns true once every cell of the ship has been hit.
func (s *Ship) Sunk() bool {
	return s.remaining == 0
}

func (s *Ship) registerHit() {
	if s.remaining > 0 {
		s.remaining--
	}
}

type Fleet struct {
	ships  []*Ship
	byCell map[Position]*Ship
}

//DetectFleet scans the grid in row-major order and flood-fills every
//not yet visited ship cell into a ship. Connectivity is the whole
//parsing mechanism: the serialized board carries no explicit ship
//boundaries.
func DetectFleet(grid Grid) *Fleet {
	fleet := &Fleet{byCell: make(map[Position]*Ship)}
	visited := make(map[Position]struct{})

	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			start := Position{X: x, Y: y}
			if grid[x][y] != Taken {
				continue
			}
			if _, ok := visited[start]; ok {
				continue
			}

			cells := collectShipCells(grid, start, visited)
			ship := &Ship{cells: cells, remaining: len(cells)}
			fleet.ships = append(fleet.ships, ship)
			for _, c := range cells {
				fleet.byCell[c] = ship
			}
		}
	}
	return fleet
}

//collectShipCells walks the 4-connected component of ship cells around
//start with an explicit stack.
func collectShipCells(grid Grid, start Position, visited map[Position]struct{}) []Position {
	visited[start] = struct{}{}
	var cells []Position
	stack := []Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells = append(cells, current)

		for _, n := range getNeighbours(current) {
			if !InBounds(n) || grid[n.X][n.Y] != Taken {
				continue
			}
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			stack = append(stack, n)
		}
	}
	return cells
}

//ShipAt returns the ship owning the given position, nil if the position
//holds no ship.
func (f *Fleet) ShipAt(p Position) *Ship {
	return f.byCell[p]
}

func (f *Fleet) Ships() []*Ship {
	return f.ships
}

//AllSunk returns true if every ship of the fleet is sunk.
func (f *Fleet) AllSunk() bool {
	for _, s := range f.ships {
		if !s.Sunk() {
			return false
		}
	}
	return true
}
