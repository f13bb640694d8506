package game

// Position is a 0-indexed (row, col) pair on the board. X is the row,
// Y is the column.
type Position struct {
	X int
	Y int
}

var orthogonalDirections = []Position{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

var allDirections = []Position{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: -1},
	{X: -1, Y: 1},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
}

func (p Position) move(d Position) Position {
	return Position{
		X: p.X + d.X,
		Y: p.Y + d.Y,
	}
}

//InBounds returns true if p lies on the board.
func InBounds(p Position) bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

func getNeighbours(p Position) []Position {
	neighbours := make([]Position, 0, len(orthogonalDirections))
	for _, d := range orthogonalDirections {
		neighbours = append(neighbours, p.move(d))
	}
	return neighbours
}

func getAllNeighbours(p Position) []Position {
	neighbours := make([]Position, 0, len(allDirections))
	for _, d := range allDirections {
		neighbours = append(neighbours, p.move(d))
	}
	return neighbours
}
