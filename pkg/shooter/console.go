package shooter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/game"
	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/wire"
)

//Console prompts for the next shot on every turn. Malformed input is
//recoverable here: the prompt repeats until a valid coordinate arrives.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Console) NextShot(board *game.Board) (game.Position, error) {
	fmt.Fprintln(c.out, "--- your turn ---")
	board.PrintEnemy(false)

	for {
		fmt.Fprint(c.out, "enter target (A-J, 1-10; e.g. A5): ")
		line, err := c.in.ReadString('\n')

		shot, parseErr := wire.ParseCoord(strings.TrimSpace(line))
		if parseErr == nil {
			return shot, nil
		}
		if err != nil {
			// Input ended, fall back to a fixed coordinate the way an
			// unattended player would.
			fmt.Fprintln(c.out)
			return game.Position{}, nil
		}
		fmt.Fprintln(c.out, "invalid coordinate format")
	}
}
