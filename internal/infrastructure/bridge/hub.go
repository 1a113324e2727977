package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/logging"
)

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = (pongTimeout * 9) / 10
	maxReadBytes = 4096

	// Client scroll reports beyond this rate are delayed, not dropped.
	clientScrollRate  = rate.Limit(120)
	clientScrollBurst = 30
)

// ErrHubClosed is returned when attaching a connection to a closed hub.
var ErrHubClosed = errors.New("bridge: hub closed")

// ScrollInput receives scroll offsets reported by clients.
type ScrollInput interface {
	Update(x, y float64)
}

type client struct {
	id      string
	conn    *websocket.Conn
	send    chan []byte
	once    sync.Once
	limiter *rate.Limiter
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub fans messages out to every connected client. It also implements
// port.PresentationSink so the default preference handler can drive clients.
type Hub struct {
	log    zerolog.Logger
	scroll ScrollInput
	agent  string

	mu      sync.RWMutex
	clients map[string]*client
	closed  bool

	// last message per type, replayed to new clients
	last map[string][]byte
	wg   sync.WaitGroup
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithAgent names the server in the hello message, e.g. "lookout/1.4.0".
func WithAgent(agent string) HubOption {
	return func(h *Hub) {
		h.agent = agent
	}
}

// NewHub creates a hub. Client scroll reports are forwarded to scroll when non-nil.
func NewHub(ctx context.Context, scroll ScrollInput, opts ...HubOption) *Hub {
	h := &Hub{
		log:     logging.Component(ctx, "bridge"),
		scroll:  scroll,
		clients: make(map[string]*client),
		last:    make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Broadcast sends msg to every client. Clients whose buffer is full are dropped.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error().Err(err).Str("type", msg.Type).Msg("failed to encode message")
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.last[msg.Type] = data
	var slow []*client
	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	for _, c := range slow {
		delete(h.clients, c.id)
		c.close()
	}
	h.mu.Unlock()

	for _, c := range slow {
		h.log.Warn().Str("client_id", c.id).Msg("dropping slow client")
	}
}

// BroadcastPreferences sends a preferences message.
func (h *Hub) BroadcastPreferences(p entity.SystemPreferences) {
	h.Broadcast(PreferencesMessage(p))
}

// BroadcastScroll sends a scroll message.
func (h *Hub) BroadcastScroll(s entity.WindowScroll) {
	h.Broadcast(ScrollMessage(s))
}

// ApplyThemeClass implements port.PresentationSink.
func (h *Hub) ApplyThemeClass(name string) error {
	if h.isClosed() {
		return ErrHubClosed
	}
	h.Broadcast(Message{Type: TypeThemeClass, Class: name})
	return nil
}

// SetMetaColor implements port.PresentationSink.
func (h *Hub) SetMetaColor(value string) error {
	if h.isClosed() {
		return ErrHubClosed
	}
	h.Broadcast(Message{Type: TypeMetaColor, Color: value})
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) isClosed() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.closed
}

// Attach serves conn until it disconnects or the hub closes. It returns the
// client id immediately; the pumps run in the background.
func (h *Hub) Attach(conn *websocket.Conn) (string, error) {
	c := &client{
		id:      uuid.NewString(),
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		limiter: rate.NewLimiter(clientScrollRate, clientScrollBurst),
	}

	hello, err := json.Marshal(Message{Type: TypeHello, ClientID: c.id, Agent: h.agent})
	if err != nil {
		return "", err
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return "", ErrHubClosed
	}
	c.send <- hello
	for _, typ := range []string{TypePreferences, TypeThemeClass, TypeMetaColor, TypeScroll} {
		if data, ok := h.last[typ]; ok {
			c.send <- data
		}
	}
	h.clients[c.id] = c
	h.wg.Add(2)
	h.mu.Unlock()

	h.log.Debug().Str("client_id", c.id).Msg("client connected")

	go h.writePump(c)
	go h.readPump(c)
	return c.id, nil
}

func (h *Hub) detach(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		c.close()
	}
	h.mu.Unlock()
}

func (h *Hub) writePump(c *client) {
	defer h.wg.Done()
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.log.Debug().Err(err).Str("client_id", c.id).Msg("write failed")
				h.detach(c)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.detach(c)
				return
			}
		}
	}
}

func (h *Hub) readPump(c *client) {
	defer h.wg.Done()
	defer h.detach(c)

	c.conn.SetReadLimit(maxReadBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug().Err(err).Str("client_id", c.id).Msg("client read failed")
			}
			return
		}
		h.handle(c, msg)
	}
}

func (h *Hub) handle(c *client, msg Message) {
	switch msg.Type {
	case TypeScroll:
		if msg.Scroll == nil || h.scroll == nil {
			return
		}
		// Throttles this client's read pump only.
		time.Sleep(c.limiter.Reserve().Delay())
		h.scroll.Update(msg.Scroll.X, msg.Scroll.Y)
	default:
		h.log.Debug().Str("client_id", c.id).Str("type", msg.Type).Msg("ignoring client message")
	}
}

// Close disconnects every client and waits for their pumps to exit.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	clients := h.clients
	h.clients = make(map[string]*client)
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
		// Unblocks the read pump.
		_ = c.conn.Close()
	}
	h.wg.Wait()
}

var _ port.PresentationSink = (*Hub)(nil)
