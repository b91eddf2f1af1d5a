// Package transport defines the contract between the session engine and
// the socket feed that delivers backend events.
//
// A feed must deliver frames in FIFO order and surface open/close/error
// lifecycle callbacks. Reconnection is deliberately not part of the
// contract; a closed feed stays closed and a new connection is a new feed.
package transport

// Control messages accepted by the backend. They are sent as literal
// strings and only while the channel is open; sending while not ready is a
// silent no-op, never queued.
const (
	ControlStartAudio = "start_audio"
	ControlStopAudio  = "stop_audio"
)

// Callbacks are invoked by a feed implementation.
//
// OnFrame is called once per inbound frame, in arrival order, from a single
// goroutine. OnError and OnClose may both fire for the same failure;
// consumers must treat them uniformly and idempotently.
type Callbacks struct {
	OnFrame func(raw []byte)
	OnOpen  func()
	OnClose func()
	OnError func(err error)
}
