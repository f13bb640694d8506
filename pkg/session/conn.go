package session

import (
	"errors"
	"io"
	"net"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

//go:generate mockery -name=Conn -output=automock -outpkg=automock -case=underscore
//Conn is a reliable, ordered, line-delimited text channel to the peer.
type Conn interface {
	ReadLine() (string, error)
	WriteLine(line string) error
	Close() error
}

//DefaultReadTimeout bounds how long a session waits for the peer's next
//line before the read surfaces as a transport failure.
const DefaultReadTimeout = 60 * time.Second

//WSConn adapts a websocket connection to the line channel: every
//protocol line travels as one text message.
type WSConn struct {
	conn        *websocket.Conn
	readTimeout time.Duration
}

func NewWSConn(conn *websocket.Conn, readTimeout time.Duration) *WSConn {
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	return &WSConn{conn: conn, readTimeout: readTimeout}
}

func (c *WSConn) ReadLine() (string, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return "", err
	}
	_, bytes, err := c.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(bytes), "\r\n"), nil
}

func (c *WSConn) WriteLine(line string) error {
	return c.conn.WriteMessage(websocket.TextMessage, []byte(line+"\n"))
}

func (c *WSConn) Close() error {
	return c.conn.Close()
}

//isPeerClosed reports whether a read error means the peer went away
//cleanly rather than a recoverable transport failure.
func isPeerClosed(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
