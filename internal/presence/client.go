package presence

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GlebRadaev/valorhood/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBuffer     = 16
)

// Client is one websocket connection of an authenticated user. Only the
// write loop writes to conn.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	name   string
	send   chan []byte

	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, userID, name string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		name:   name,
		send:   make(chan []byte, sendBuffer),
	}
}

// Run registers the client and serves it until the connection ends.
func (c *Client) Run() error {
	if err := c.hub.Register(c); err != nil {
		c.closeConn()
		return err
	}
	go c.writeLoop()
	c.readLoop()
	return nil
}

func (c *Client) readLoop() {
	defer func() {
		c.hub.Unregister(c)
		c.closeConn()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Info("presence connection lost", zap.String("user_id", c.userID), zap.Error(err))
			}
			return
		}
		c.handle(data)
	}
}

func (c *Client) handle(data []byte) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		c.hub.reject(c, fmt.Errorf("%w: malformed message", domain.ErrValidation))
		return
	}

	switch env.Event {
	case EventUpdatePosition:
		var u PositionUpdate
		if err := json.Unmarshal(env.Data, &u); err != nil {
			c.hub.reject(c, fmt.Errorf("%w: malformed position", domain.ErrInvalidPosition))
			return
		}
		if err := c.hub.Update(c.userID, c.name, u); err != nil {
			c.hub.reject(c, err)
		}
	default:
		c.hub.reject(c, fmt.Errorf("%w: unknown event %q", domain.ErrValidation, env.Event))
	}
}

func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.closeConn()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) closeConn() {
	c.closeOnce.Do(func() {
		if c.conn != nil {
			c.conn.Close()
		}
	})
}
