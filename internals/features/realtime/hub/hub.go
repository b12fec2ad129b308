// internals/features/realtime/hub/hub.go
package hub

import (
	"log"
	"sync"

	"github.com/bytedance/sonic"
)

// Event types pushed to meeting audiences. Messages are hints only;
// clients reconcile with a full fetch on (re)connect.
const (
	EventNewQuestion           = "new_question"
	EventVoteUpdate            = "vote_update"
	EventQuestionAnswered      = "question_answered"
	EventQuestionStatusChanged = "question_status_changed"
	EventSessionEnded          = "session_ended"
)

// RFC 6455 text frame; matches websocket.TextMessage without tying the
// hub to the websocket package.
const textMessage = 1

// sendBuffer is per-client. A client that falls this many messages
// behind is dropped rather than allowed to stall the fan-out.
const sendBuffer = 64

// Conn is the minimal surface the hub needs from a live connection.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one subscribed connection. Outbound messages flow through a
// buffered channel drained by a single writer goroutine, so per-socket
// order is FIFO and a slow peer never blocks the publisher.
type Client struct {
	hub         *Hub
	meetingCode string
	conn        Conn
	send        chan []byte
	closeOnce   sync.Once
}

// MeetingCode returns the room this client is subscribed to.
func (c *Client) MeetingCode() string { return c.meetingCode }

func (c *Client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(textMessage, msg); err != nil {
			c.hub.Unsubscribe(c)
			// drain so the producer side never blocks on close
			for range c.send {
			}
			break
		}
	}
	_ = c.conn.Close()
}

// Hub is the process-wide registry of meeting_code → live connections.
// Constructed once in main and injected into controllers; it carries
// transient notifications only, never state.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func New() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]struct{})}
}

// Subscribe registers conn as an audience member of meetingCode and
// starts its writer. Rooms are created lazily. No authentication here:
// possession of the code is the ticket.
func (h *Hub) Subscribe(meetingCode string, conn Conn) *Client {
	c := &Client{
		hub:         h,
		meetingCode: meetingCode,
		conn:        conn,
		send:        make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	room, ok := h.rooms[meetingCode]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[meetingCode] = room
	}
	room[c] = struct{}{}
	h.mu.Unlock()

	go c.writePump()
	return c
}

// Unsubscribe removes the client and releases its writer. Safe to call
// any number of times, from any goroutine, including after the
// connection already dropped.
func (h *Hub) Unsubscribe(c *Client) {
	if c == nil {
		return
	}

	h.mu.Lock()
	if room, ok := h.rooms[c.meetingCode]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.meetingCode)
		}
	}
	// close under the exclusive lock: Publish only sends while holding
	// the read lock, so a send can never interleave with this close.
	c.closeOnce.Do(func() { close(c.send) })
	h.mu.Unlock()
}

// Publish delivers message to every current subscriber of meetingCode.
// Best-effort: marshalling happens once, delivery is non-blocking, and a
// client whose buffer is full is evicted instead of slowing the rest.
// Publish itself never fails from the caller's perspective.
func (h *Hub) Publish(meetingCode string, message any) {
	payload, err := sonic.Marshal(message)
	if err != nil {
		log.Printf("[ERROR] hub marshal (%s): %v", meetingCode, err)
		return
	}

	var stalled []*Client
	h.mu.RLock()
	for c := range h.rooms[meetingCode] {
		select {
		case c.send <- payload:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stalled {
		log.Printf("[WARN] dropping stalled subscriber of %s", meetingCode)
		h.Unsubscribe(c)
	}
}

// Subscribers reports the current audience size of a meeting.
func (h *Hub) Subscribers(meetingCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[meetingCode])
}
