package web

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/AkhtemKurtiev/feed-the-python/game/input"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
	"github.com/gorilla/websocket"
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10
	maxMessage   = 1 << 10
)

// client wraps one browser connection. Writes happen on writePump only.
type client struct {
	ws   *websocket.Conn
	send chan []byte
}

func newClient(ws *websocket.Conn) *client {
	return &client{
		ws:   ws,
		send: make(chan []byte, sendBuffer),
	}
}

// enqueue never blocks the game loop; a slow browser loses frames.
func (c *client) enqueue(b []byte) {
	select {
	case c.send <- b:
	default:
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump turns browser messages into input events until the connection drops.
func (c *client) readPump(deliver func(input.Event)) {
	c.ws.SetReadLimit(maxMessage)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		var im InputMessage
		if err := json.Unmarshal(payload, &im); err != nil {
			continue
		}
		if ev, ok := parseInput(im); ok {
			deliver(ev)
		}
	}
}

func parseInput(im InputMessage) (input.Event, bool) {
	switch strings.ToLower(im.Type) {
	case "quit":
		return input.QuitEvent(), true
	case "move":
		key := input.KeyFor(types.ParseDirection(im.Command))
		if key == input.KeyNone {
			return input.Event{}, false
		}
		return input.Press(key), true
	default:
		return input.Event{}, false
	}
}
