package wire

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/game"
)

//Start is the sentinel outcome on the initiating line: the sender has
//no prior shot to report, only its first shot to announce.
const Start game.Outcome = "start"

var (
	ErrMalformedCoordinate = errors.New("malformed coordinate")
	ErrMalformedMessage    = errors.New("malformed message")
)

var coordPattern = regexp.MustCompile(`^[A-Ja-j](10|[1-9])$`)

//ParseCoord converts the wire surface form of a coordinate, a letter
//A-J for the row followed by a 1-indexed column number, into its
//0-indexed position. Lowercase letters are accepted.
func ParseCoord(s string) (game.Position, error) {
	if !coordPattern.MatchString(s) {
		return game.Position{}, fmt.Errorf("%w: %q", ErrMalformedCoordinate, s)
	}
	upper := strings.ToUpper(s)
	col, _ := strconv.Atoi(upper[1:])
	return game.Position{X: int(upper[0] - 'A'), Y: col - 1}, nil
}

//FormatCoord renders a position in its wire surface form, e.g. row 0
//column 4 becomes "A5".
func FormatCoord(p game.Position) string {
	return string(rune('A'+p.X)) + strconv.Itoa(p.Y+1)
}

//Message is one line of the shot-exchange protocol: the outcome of the
//receiver's previous shot and the sender's next shot, separated by ';'.
type Message struct {
	Outcome game.Outcome
	Shot    game.Position
	HasShot bool
}

var validOutcomes = map[game.Outcome]struct{}{
	Start:               {},
	game.OutcomeMiss:    {},
	game.OutcomeHit:     {},
	game.OutcomeSunk:    {},
	game.OutcomeAllSunk: {},
}

//ParseMessage parses one wire line. The outcome token comes first, the
//trailing field is the sender's shot. The shot may be absent only on a
//fleet-destroyed line, which ends the game without further exchange.
func ParseMessage(line string) (Message, error) {
	parts := strings.Split(strings.TrimSpace(line), ";")
	outcome := game.Outcome(parts[0])
	if _, ok := validOutcomes[outcome]; !ok {
		return Message{}, fmt.Errorf("%w: unknown outcome token %q", ErrMalformedMessage, parts[0])
	}

	coord := parts[len(parts)-1]
	if len(parts) == 1 || coord == "" {
		if outcome != game.OutcomeAllSunk {
			return Message{}, fmt.Errorf("%w: missing shot coordinate", ErrMalformedMessage)
		}
		return Message{Outcome: outcome}, nil
	}

	shot, err := ParseCoord(coord)
	if err != nil {
		return Message{}, err
	}
	return Message{Outcome: outcome, Shot: shot, HasShot: true}, nil
}

//String renders the message in its wire form without the terminating
//newline, the transport owns the framing.
func (m Message) String() string {
	if !m.HasShot {
		return string(m.Outcome)
	}
	return string(m.Outcome) + ";" + FormatCoord(m.Shot)
}

//BuildStart returns the initiating message announcing the first shot.
func BuildStart(shot game.Position) Message {
	return Message{Outcome: Start, Shot: shot, HasShot: true}
}

//BuildReply returns a regular turn message carrying this turn's outcome
//and the chosen next shot.
func BuildReply(outcome game.Outcome, shot game.Position) Message {
	return Message{Outcome: outcome, Shot: shot, HasShot: true}
}
