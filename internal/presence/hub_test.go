package presence

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/valorhood/internal/domain"
)

const (
	alice = "4f1c2b9e-8a47-4c55-9d3e-2a6f0f6b1c11"
	bob   = "0b7d5a8e-3f7c-4d0e-9a55-1c2d3e4f5a6b"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestHub() *Hub {
	h := NewHub()
	h.now = func() time.Time { return now }
	return h
}

func newTestClient(h *Hub, userID string) *Client {
	return &Client{hub: h, userID: userID, send: make(chan []byte, sendBuffer)}
}

func position(lat, lng float64, name string) PositionUpdate {
	return PositionUpdate{Lat: &lat, Lng: &lng, Name: name}
}

func nextEvent(t *testing.T, c *Client) (string, json.RawMessage) {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var env Envelope
		require.NoError(t, json.Unmarshal(msg, &env))
		return env.Event, env.Data
	default:
		t.Fatal("no message queued")
		return "", nil
	}
}

func nextPlayers(t *testing.T, c *Client) map[string]Player {
	t.Helper()
	event, data := nextEvent(t, c)
	require.Equal(t, EventPlayersUpdate, event)
	var players map[string]Player
	require.NoError(t, json.Unmarshal(data, &players))
	return players
}

func TestPositionUpdate_Validate(t *testing.T) {
	lat := 10.0
	tests := []struct {
		name    string
		update  PositionUpdate
		wantErr bool
	}{
		{name: "Valid", update: position(52.52, 13.405, "alice")},
		{name: "Poles and antimeridian", update: position(-90, 180, "")},
		{name: "Missing lng", update: PositionUpdate{Lat: &lat}, wantErr: true},
		{name: "Latitude out of range", update: position(90.5, 0, ""), wantErr: true},
		{name: "Longitude out of range", update: position(0, -180.1, ""), wantErr: true},
		{name: "NaN", update: position(math.NaN(), 0, ""), wantErr: true},
		{name: "Name too long", update: position(0, 0, strings.Repeat("a", MaxNameLength+1)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidPosition)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHub_RegisterSendsSnapshot(t *testing.T) {
	h := newTestHub()
	first := newTestClient(h, alice)
	require.NoError(t, h.Register(first))
	assert.Empty(t, nextPlayers(t, first))

	require.NoError(t, h.Update(alice, "alice", position(1, 2, "")))
	nextPlayers(t, first)

	second := newTestClient(h, bob)
	require.NoError(t, h.Register(second))

	players := nextPlayers(t, second)
	assert.Equal(t, map[string]Player{
		alice: {ID: alice, Name: "alice", Lat: 1, Lng: 2, UpdatedAt: now},
	}, players)
	assert.Empty(t, first.send, "a new client does not trigger a broadcast")
}

func TestHub_UpdateBroadcastsToEveryone(t *testing.T) {
	h := newTestHub()
	a, b := newTestClient(h, alice), newTestClient(h, bob)
	require.NoError(t, h.Register(a))
	require.NoError(t, h.Register(b))
	nextPlayers(t, a)
	nextPlayers(t, b)

	require.NoError(t, h.Update(bob, "bob", position(48.85, 2.35, " Bobby ")))

	expected := map[string]Player{
		bob: {ID: bob, Name: "Bobby", Lat: 48.85, Lng: 2.35, UpdatedAt: now},
	}
	assert.Equal(t, expected, nextPlayers(t, a))
	assert.Equal(t, expected, nextPlayers(t, b))
	assert.Equal(t, expected, h.Players())
}

func TestHub_InvalidUpdateIsNotBroadcast(t *testing.T) {
	h := newTestHub()
	a := newTestClient(h, alice)
	require.NoError(t, h.Register(a))
	nextPlayers(t, a)

	err := h.Update(alice, "alice", position(120, 0, ""))

	assert.ErrorIs(t, err, domain.ErrInvalidPosition)
	assert.Empty(t, a.send)
	assert.Empty(t, h.Players())
}

func TestHub_PlayerLeavesWithLastConnection(t *testing.T) {
	h := newTestHub()
	phone, laptop, watcher := newTestClient(h, alice), newTestClient(h, alice), newTestClient(h, bob)
	for _, c := range []*Client{phone, laptop, watcher} {
		require.NoError(t, h.Register(c))
		nextPlayers(t, c)
	}
	require.NoError(t, h.Update(alice, "alice", position(1, 1, "")))
	for _, c := range []*Client{phone, laptop, watcher} {
		nextPlayers(t, c)
	}

	h.Unregister(phone)
	assert.Contains(t, h.Players(), alice)
	assert.Empty(t, watcher.send, "alice is still connected from the laptop")

	h.Unregister(laptop)
	h.Unregister(laptop)

	assert.Empty(t, nextPlayers(t, watcher))
	assert.Empty(t, h.Players())
	_, open := <-phone.send
	assert.False(t, open)
}

func TestHub_Reject(t *testing.T) {
	h := newTestHub()
	a := newTestClient(h, alice)
	require.NoError(t, h.Register(a))
	nextPlayers(t, a)

	h.reject(a, domain.ErrInvalidPosition)

	event, data := nextEvent(t, a)
	assert.Equal(t, EventError, event)
	var payload errorPayload
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "validation", payload.Kind)
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	h := newTestHub()
	slow := newTestClient(h, alice)
	require.NoError(t, h.Register(slow))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < sendBuffer*2; i++ {
			_ = h.Update(bob, "bob", position(float64(i%90), 0, ""))
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("broadcast blocked on a full client buffer")
	}
	assert.Len(t, slow.send, sendBuffer)
}

func TestHub_Close(t *testing.T) {
	h := newTestHub()
	a := newTestClient(h, alice)
	require.NoError(t, h.Register(a))
	require.NoError(t, h.Update(alice, "alice", position(1, 1, "")))

	h.Close()
	h.Close()

	for range a.send {
	}
	assert.Empty(t, h.Players())
	assert.ErrorIs(t, h.Register(newTestClient(h, bob)), ErrHubClosed)
	assert.ErrorIs(t, h.Update(alice, "alice", position(1, 1, "")), ErrHubClosed)
	h.Unregister(a)
}
