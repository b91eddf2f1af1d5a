package session

import (
	"time"

	"github.com/aria-voice/aria-client/core/events"
)

type SessionOption func(*Session)

// WithPlaybackSink configures the streaming playback device audio chunks
// are forwarded to. Without a sink, audio events still drive text/audio
// synchronization but nothing is played.
func WithPlaybackSink(sink PlaybackSink) SessionOption {
	return func(s *Session) { s.playback.Set(sink) }
}

// WithTypingCueInterval overrides the repeat interval of the typing cue.
func WithTypingCueInterval(interval time.Duration) SessionOption {
	return func(s *Session) { s.cue = newTypingCue(interval) }
}

type ConnectOptions struct {
	onMessage        func(message Message)
	onToolUpdate     func(phase ToolPhase, invocation *ToolInvocation)
	onUIDirective    func(directive events.ToolUIOutput)
	onTypingCue      func()
	onTypingCueEnded func()
	onStatusChanged  func(status Status)
}

type ConnectOption func(*ConnectOptions)

// WithMessageCallback is called once per transcript message, in display
// order, never twice for the same (role, text) pair.
func WithMessageCallback(callback func(message Message)) ConnectOption {
	return func(o *ConnectOptions) { o.onMessage = callback }
}

// WithToolUpdateCallback is called on every tool lifecycle transition with
// the new phase and a copy of the current invocation (nil when idle).
func WithToolUpdateCallback(callback func(phase ToolPhase, invocation *ToolInvocation)) ConnectOption {
	return func(o *ConnectOptions) { o.onToolUpdate = callback }
}

// WithUIDirectiveCallback receives every UI rendering directive verbatim,
// including the ones the engine also interprets itself.
func WithUIDirectiveCallback(callback func(directive events.ToolUIOutput)) ConnectOption {
	return func(o *ConnectOptions) { o.onUIDirective = callback }
}

// WithTypingCueCallbacks wires the repeating typing cue: onTick fires at
// each interval while a tool reports execution progress, onEnded fires once
// when the cue is cancelled and should rewind to its start.
func WithTypingCueCallbacks(onTick, onEnded func()) ConnectOption {
	return func(o *ConnectOptions) {
		o.onTypingCue = onTick
		o.onTypingCueEnded = onEnded
	}
}

// WithStatusChangedCallback is called whenever the connection status
// changes.
func WithStatusChangedCallback(callback func(status Status)) ConnectOption {
	return func(o *ConnectOptions) { o.onStatusChanged = callback }
}
