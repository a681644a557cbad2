package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/MJE43/gamehub-go/internal/hub"
)

const (
	eventBuffer = 32
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = pongWait * 9 / 10
)

// Message types the event stream sends besides hub events.
const (
	MessageHello       = "hello"
	MessageActionError = "action_error"
)

// HelloMessage is the first message on a new event stream.
type HelloMessage struct {
	Type          string            `json:"type"`
	Score         int               `json:"score"`
	Sessions      []hub.SessionInfo `json:"sessions"`
	EngineVersion string            `json:"engine_version"`
}

// ClientMessage is what the display surface may send on the stream. Only
// "action" is understood; it is the socket form of POST .../actions.
type ClientMessage struct {
	Type      string         `json:"type"`
	SessionID uuid.UUID      `json:"session_id"`
	Action    string         `json:"action"`
	Params    map[string]any `json:"params,omitempty"`
}

// ActionErrorMessage reports a rejected socket action to its sender.
type ActionErrorMessage struct {
	Type      string      `json:"type"`
	SessionID uuid.UUID   `json:"session_id"`
	Error     EngineError `json:"error"`
}

type eventClient struct {
	conn *websocket.Conn
	send chan any
	done chan struct{}
}

// GET /api/v1/events
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket_upgrade_failed remote_addr=%s err=%v", r.RemoteAddr, err)
		return
	}

	events, cancel := s.hub.Subscribe(eventBuffer)
	c := &eventClient{
		conn: conn,
		send: make(chan any, eventBuffer),
		done: make(chan struct{}),
	}
	hello := HelloMessage{
		Type:          MessageHello,
		Score:         s.hub.Score(),
		Sessions:      s.hub.Sessions(),
		EngineVersion: EngineVersion,
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(hello); err != nil {
		cancel()
		conn.Close()
		return
	}
	s.logger.Printf("subscriber_connected remote_addr=%s subscribers=%d", r.RemoteAddr, s.hub.Subscribers())

	go c.writePump(events)
	c.readPump(s)

	cancel()
	close(c.done)
	s.logger.Printf("subscriber_disconnected remote_addr=%s", r.RemoteAddr)
}

// readPump applies socket actions until the connection fails.
func (c *eventClient) readPump(s *Server) {
	defer c.conn.Close()

	c.conn.SetReadLimit(64 << 10)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type != "action" {
			continue
		}
		if _, err := s.hub.Act(msg.SessionID, msg.Action, msg.Params); err != nil {
			errType, _ := classify(err)
			c.reply(ActionErrorMessage{
				Type:      MessageActionError,
				SessionID: msg.SessionID,
				Error:     NewError(errType, err.Error()).Build(),
			})
		}
	}
}

func (c *eventClient) reply(msg any) {
	select {
	case c.send <- msg:
	default:
	}
}

// writePump is the only writer on the connection.
func (c *eventClient) writePump(events <-chan hub.Event) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	write := func(msg any) bool {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		return c.conn.WriteJSON(msg) == nil
	}

	for {
		select {
		case e, ok := <-events:
			if !ok {
				_ = c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "hub closed"), time.Now().Add(writeWait))
				return
			}
			if !write(e) {
				return
			}
		case msg := <-c.send:
			if !write(msg) {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
