// Package presence keeps the live map of player positions and fans every
// change out to the connected clients.
package presence

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/metrics"
)

const (
	EventUpdatePosition = "updatePosition"
	EventPlayersUpdate  = "playersUpdate"
	EventError          = "error"

	MaxNameLength = 64
)

var ErrHubClosed = errors.New("presence hub is closed")

// Player is the last reported position of one user.
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PositionUpdate struct {
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
	Name string   `json:"name"`
}

// Validate checks coordinates are present, finite and on the globe.
func (u PositionUpdate) Validate() error {
	if u.Lat == nil || u.Lng == nil {
		return fmt.Errorf("%w: lat and lng are required", domain.ErrInvalidPosition)
	}
	lat, lng := *u.Lat, *u.Lng
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: lat %v lng %v out of range", domain.ErrInvalidPosition, lat, lng)
	}
	if utf8.RuneCountInString(strings.TrimSpace(u.Name)) > MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", domain.ErrInvalidPosition, MaxNameLength)
	}
	return nil
}

type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type errorPayload struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// Hub is safe for concurrent use. Positions are keyed by user id, so several
// connections of one user share a single marker that disappears with the last one.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
	conns   map[string]int
	players map[string]Player
	closed  bool
	now     func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		conns:   make(map[string]int),
		players: make(map[string]Player),
		now:     time.Now,
	}
}

// Register adds c and sends it the current snapshot.
func (h *Hub) Register(c *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	h.clients[c] = struct{}{}
	h.conns[c.userID]++

	msg, err := h.snapshotLocked()
	if err != nil {
		return err
	}
	h.deliverLocked(c, msg)
	zap.L().Debug("presence client registered", zap.String("user_id", c.userID), zap.Int("clients", len(h.clients)))
	return nil
}

// Unregister removes c; the user's position is dropped and broadcast once
// their last connection is gone. Calling it twice is harmless.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)

	h.conns[c.userID]--
	if h.conns[c.userID] > 0 {
		return
	}
	delete(h.conns, c.userID)
	if _, ok := h.players[c.userID]; ok {
		delete(h.players, c.userID)
		h.broadcastLocked()
	}
	zap.L().Debug("presence player left", zap.String("user_id", c.userID))
}

// Update records the caller's position and broadcasts the new player map.
func (h *Hub) Update(userID, fallbackName string, u PositionUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}
	name := strings.TrimSpace(u.Name)
	if name == "" {
		name = fallbackName
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	h.players[userID] = Player{
		ID:        userID,
		Name:      name,
		Lat:       *u.Lat,
		Lng:       *u.Lng,
		UpdatedAt: h.now().UTC(),
	}
	h.broadcastLocked()
	return nil
}

// Players returns a copy of the current positions.
func (h *Hub) Players() map[string]Player {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[string]Player, len(h.players))
	for id, p := range h.players {
		out[id] = p
	}
	return out
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.conns = make(map[string]int)
	h.players = make(map[string]Player)
	metrics.SetPresencePlayers(0)
}

// reject tells c why its last message was refused.
func (h *Hub) reject(c *Client, err error) {
	msg, encErr := encode(EventError, errorPayload{Message: err.Error(), Kind: string(domain.KindOf(err))})
	if encErr != nil {
		zap.L().Error("can't encode presence error", zap.Error(encErr))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		h.deliverLocked(c, msg)
	}
}

func (h *Hub) snapshotLocked() ([]byte, error) {
	return encode(EventPlayersUpdate, h.players)
}

func (h *Hub) broadcastLocked() {
	metrics.SetPresencePlayers(len(h.players))
	msg, err := h.snapshotLocked()
	if err != nil {
		zap.L().Error("can't encode players update", zap.Error(err))
		return
	}
	for c := range h.clients {
		h.deliverLocked(c, msg)
	}
}

// deliverLocked never blocks; a client whose buffer is full is disconnected
// and cleans itself up through Unregister.
func (h *Hub) deliverLocked(c *Client, msg []byte) {
	select {
	case c.send <- msg:
	default:
		zap.L().Warn("presence client too slow, disconnecting", zap.String("user_id", c.userID))
		c.closeConn()
	}
}

func encode(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}
