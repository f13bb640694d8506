package session

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/game"
	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/wire"
)

//Result is the terminal state of a session.
type Result int

const (
	//Unfinished means the peer went away before either fleet was
	//destroyed.
	Unfinished Result = iota
	Won
	Lost
	//Aborted means the session ended abnormally: repeated transport
	//failures, a protocol violation or a failed shot selection.
	Aborted
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Aborted:
		return "aborted"
	default:
		return "unfinished"
	}
}

//ErrProtocolViolation is returned when the peer sends a line that does
//not parse as a protocol message.
var ErrProtocolViolation = errors.New("protocol violation")

const maxReadFailures = 3

//Session drives one game against a single peer. Exactly one of the two
//participants initiates, the other only reacts. All grid and fleet
//access happens on the single goroutine running Play, so no locking is
//needed.
type Session struct {
	conn      Conn
	board     *game.Board
	shooter   Shooter
	initiator bool
	log       *logrus.Entry

	lastShot    game.Position
	hasLastShot bool
}

func New(conn Conn, board *game.Board, shooter Shooter, initiator bool, log *logrus.Entry) *Session {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Session{
		conn:      conn,
		board:     board,
		shooter:   shooter,
		initiator: initiator,
		log:       log,
	}
}

//Play runs the exchange until a terminal game outcome, a clean peer
//close, a protocol violation or three consecutive transport failures.
func (s *Session) Play() (Result, error) {
	if s.initiator {
		shot, err := s.shooter.NextShot(s.board)
		if err != nil {
			return Aborted, fmt.Errorf("choose opening shot: %w", err)
		}
		if err := s.send(wire.BuildStart(shot)); err != nil {
			return Aborted, err
		}
		s.rememberShot(shot)
	}

	failures := 0
	for {
		line, err := s.conn.ReadLine()
		if err != nil {
			if isPeerClosed(err) {
				s.log.Info("peer closed the connection")
				return Unfinished, nil
			}
			failures++
			s.log.WithError(err).Warnf("transport failure (%d/%d)", failures, maxReadFailures)
			if failures >= maxReadFailures {
				return Aborted, fmt.Errorf("giving up after %d consecutive read failures: %w", failures, err)
			}
			continue
		}

		msg, err := wire.ParseMessage(line)
		if err != nil {
			return Aborted, fmt.Errorf("%w: %v", ErrProtocolViolation, err)
		}

		if msg.Outcome != wire.Start && s.hasLastShot {
			s.log.WithField("shot", wire.FormatCoord(s.lastShot)).Infof("own shot outcome: %s", msg.Outcome)
			s.board.RecordShotOutcome(s.lastShot, msg.Outcome)
		}

		if msg.Outcome == game.OutcomeAllSunk {
			s.log.Info("last enemy ship sunk")
			return Won, nil
		}

		if !msg.HasShot {
			return Aborted, fmt.Errorf("%w: missing shot coordinate", ErrProtocolViolation)
		}
		outcome := s.board.ReceiveShot(msg.Shot)
		s.log.WithField("shot", wire.FormatCoord(msg.Shot)).Infof("incoming shot: %s", outcome)

		next, err := s.shooter.NextShot(s.board)
		if err != nil {
			return Aborted, fmt.Errorf("choose next shot: %w", err)
		}
		if err := s.send(wire.BuildReply(outcome, next)); err != nil {
			return Aborted, err
		}

		if outcome == game.OutcomeAllSunk {
			s.log.Info("own last ship sunk")
			return Lost, nil
		}
		s.rememberShot(next)
		failures = 0
	}
}

func (s *Session) send(m wire.Message) error {
	if err := s.conn.WriteLine(m.String()); err != nil {
		return fmt.Errorf("send %q: %w", m.String(), err)
	}
	return nil
}

func (s *Session) rememberShot(p game.Position) {
	s.lastShot = p
	s.hasLastShot = true
}
