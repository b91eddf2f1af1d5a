// Package gorillaws implements the event feed over a gorilla/websocket
// connection.
package gorillaws

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/aria-voice/aria-client/core/transport"
	"github.com/gorilla/websocket"
)

type Client struct {
	url    string
	header http.Header

	conn      *websocket.Conn
	callbacks transport.Callbacks

	writeMu   sync.Mutex
	mu        sync.Mutex
	ready     bool
	closeOnce sync.Once
}

type ClientOption func(*Client)

// WithHeader sets additional headers sent on the websocket handshake,
// typically authorization.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) { c.header = header }
}

func NewClient(url string, opts ...ClientOption) *Client {
	client := &Client{url: url}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Start dials the backend and begins delivering frames.
//
// Frames are read and dispatched from a single goroutine, so callbacks see
// them in the exact order the socket delivered them.
func (c *Client) Start(ctx context.Context, callbacks transport.Callbacks) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return fmt.Errorf("feed already started")
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, c.header)
	if err != nil {
		return fmt.Errorf("failed to open socket connection: %w", err)
	}

	c.conn = conn
	c.callbacks = callbacks
	c.ready = true

	if callbacks.OnOpen != nil {
		callbacks.OnOpen()
	}

	go c.readLoop()

	return nil
}

func (c *Client) readLoop() {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			wasReady := c.ready
			c.ready = false
			c.mu.Unlock()

			if wasReady {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					if c.callbacks.OnError != nil {
						c.callbacks.OnError(err)
					}
				}
				if c.callbacks.OnClose != nil {
					c.callbacks.OnClose()
				}
			}
			return
		}

		if c.callbacks.OnFrame != nil {
			c.callbacks.OnFrame(msg)
		}
	}
}

// SendControl sends one of the literal control strings. While the channel
// is not ready this is a silent no-op; control messages are never queued.
func (c *Client) SendControl(name string) error {
	c.mu.Lock()
	ready := c.ready
	c.mu.Unlock()
	if !ready {
		return nil
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(name)); err != nil {
		return fmt.Errorf("failed to send control message %q: %w", name, err)
	}
	return nil
}

// SendAudio forwards one captured audio frame upstream. Like controls,
// frames sent while the channel is not ready are dropped.
func (c *Client) SendAudio(audio []byte) error {
	c.mu.Lock()
	ready := c.ready
	c.mu.Unlock()
	if !ready {
		return nil
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteMessage(websocket.BinaryMessage, audio); err != nil {
		return fmt.Errorf("failed to send audio frame: %w", err)
	}
	return nil
}

// Close tears the connection down. Safe to call multiple times.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		conn := c.conn
		c.ready = false
		c.mu.Unlock()

		if conn == nil {
			return
		}

		c.writeMu.Lock()
		_ = conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		)
		c.writeMu.Unlock()

		err = conn.Close()
	})
	return err
}
