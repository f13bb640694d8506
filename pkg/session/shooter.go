package session

import (
	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/game"
)

//go:generate mockery -name=Shooter -output=automock -outpkg=automock -case=underscore
//Shooter supplies the next own shot for the current board. Satisfied
//interchangeably by an interactive prompt, an automated policy or a
//test double.
type Shooter interface {
	NextShot(board *game.Board) (game.Position, error)
}
