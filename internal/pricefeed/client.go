// Package pricefeed consumes a live-price WebSocket stream and surfaces
// ticks as a channel for the editor's event loop. The feed is strictly an
// event source: nothing here touches graph state.
package pricefeed

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Tick is one live price update.
type Tick struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

const (
	dialTimeout  = 10 * time.Second
	minBackoff   = time.Second
	maxBackoff   = 30 * time.Second
	readDeadline = 90 * time.Second
)

// Client maintains a WebSocket subscription with reconnect backoff.
type Client struct {
	url     string
	symbols []string
	log     *zap.Logger

	ticks chan Tick
	done  chan struct{}
	once  sync.Once
}

// New creates a client for the given feed URL. Start must be called
// before Ticks delivers anything.
func New(url string, symbols []string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		url:     url,
		symbols: symbols,
		log:     log,
		ticks:   make(chan Tick, 16),
		done:    make(chan struct{}),
	}
}

// Ticks returns the delivery channel. Closed after Close.
func (c *Client) Ticks() <-chan Tick { return c.ticks }

// Start launches the read loop in its own goroutine.
func (c *Client) Start() {
	go c.run()
}

// Close stops the client. Safe to call more than once.
func (c *Client) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *Client) run() {
	defer close(c.ticks)

	backoff := minBackoff
	for {
		select {
		case <-c.done:
			return
		default:
		}

		conn, err := c.dial()
		if err != nil {
			c.log.Warn("price feed dial failed",
				zap.String("url", c.url),
				zap.Duration("retry_in", backoff),
				zap.Error(err))
			select {
			case <-time.After(backoff):
			case <-c.done:
				return
			}
			if backoff *= 2; backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}

		backoff = minBackoff
		c.log.Info("price feed connected", zap.String("url", c.url))
		c.readLoop(conn)
		conn.Close()
	}
}

func (c *Client) dial() (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}
	conn, _, err := dialer.Dial(c.url, nil)
	if err != nil {
		return nil, err
	}
	if len(c.symbols) > 0 {
		sub := map[string]any{"action": "subscribe", "symbols": c.symbols}
		if err := conn.WriteJSON(sub); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

// readLoop pumps messages until the connection drops or Close is called.
func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		select {
		case <-c.done:
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		default:
		}

		conn.SetReadDeadline(time.Now().Add(readDeadline))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("price feed read error", zap.Error(err))
			}
			return
		}

		tick, ok := parseTick(data)
		if !ok {
			continue
		}
		// Drop ticks rather than stall the socket when the UI lags.
		select {
		case c.ticks <- tick:
		default:
		}
	}
}

// parseTick decodes a feed message, ignoring anything that isn't a
// well-formed price update.
func parseTick(data []byte) (Tick, bool) {
	var t Tick
	if err := json.Unmarshal(data, &t); err != nil {
		return Tick{}, false
	}
	if t.Symbol == "" || t.Price <= 0 {
		return Tick{}, false
	}
	return t, true
}
