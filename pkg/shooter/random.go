package shooter

import (
	"errors"
	"math/rand"
	"time"

	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/game"
)

var orthogonal = []game.Position{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

//Random is an automated targeting policy: it finishes off wounded ships
//by shooting next to known hits, otherwise picks a random cell that has
//not been tried yet.
type Random struct {
	rnd *rand.Rand
}

func NewRandom(rnd *rand.Rand) *Random {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Random{rnd: rnd}
}

func (r *Random) NextShot(board *game.Board) (game.Position, error) {
	if hunts := huntCandidates(board); len(hunts) > 0 {
		return hunts[r.rnd.Intn(len(hunts))], nil
	}

	var candidates []game.Position
	for x := 0; x < game.BoardSize; x++ {
		for y := 0; y < game.BoardSize; y++ {
			p := game.Position{X: x, Y: y}
			if unknown(board, p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return game.Position{}, errors.New("no cells left to target")
	}
	return candidates[r.rnd.Intn(len(candidates))], nil
}

//huntCandidates collects unknown cells orthogonally adjacent to a known
//hit. After a sunk report the sink propagation has already marked the
//perimeter of that ship as miss, so only open hits attract fire.
func huntCandidates(board *game.Board) []game.Position {
	var candidates []game.Position
	for x := 0; x < game.BoardSize; x++ {
		for y := 0; y < game.BoardSize; y++ {
			p := game.Position{X: x, Y: y}
			if board.EnemyAt(p) != game.Hit {
				continue
			}
			for _, d := range orthogonal {
				n := game.Position{X: p.X + d.X, Y: p.Y + d.Y}
				if game.InBounds(n) && unknown(board, n) {
					candidates = append(candidates, n)
				}
			}
		}
	}
	return candidates
}

func unknown(board *game.Board, p game.Position) bool {
	cell := board.EnemyAt(p)
	return cell != game.Hit && cell != game.Miss
}
