package presence

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout    = 10 * time.Second
	DefaultPongWait = 60 * time.Second
)

type Frame struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
	Token   string `json:"token,omitempty"`
}

type WSConn struct {
	id       string
	conn     *websocket.Conn
	mu       sync.Mutex // gorilla allows one concurrent writer
	pongWait time.Duration
}

func NewWSConn(conn *websocket.Conn, pongWait time.Duration) *WSConn {
	if pongWait <= 0 {
		pongWait = DefaultPongWait
	}

	c := &WSConn{id: uuid.NewString(), conn: conn, pongWait: pongWait}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	return c
}

func (c *WSConn) PingPeriod() time.Duration {
	return c.pongWait * 9 / 10
}

func (c *WSConn) ID() string {
	return c.id
}

func (c *WSConn) Send(event string, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := c.conn.WriteJSON(Frame{Event: event, Payload: payload}); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}

func (c *WSConn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

func (c *WSConn) ReadFrame() (Frame, error) {
	var frame Frame

	if err := c.conn.ReadJSON(&frame); err != nil {
		return Frame{}, err
	}

	return frame, c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
}

func (c *WSConn) Close() error {
	return c.conn.Close()
}
