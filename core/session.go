// Package session implements the client-side synchronization engine of the
// assistant feed: it consumes the interleaved stream of speech-to-text,
// audio, tool lifecycle and UI directive events arriving over one ordered
// channel and turns it into a deduplicated transcript, continuous PCM
// playback and an interruptible tool execution state machine.
//
// All state transitions happen in frame arrival order: HandleFrame is the
// single entry point and serializes handlers under one lock, so the three
// independently timed signals (text, audio, tool status) are reconciled
// exactly in the order the transport delivered them.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/aria-voice/aria-client/core/events"
	"github.com/aria-voice/aria-client/core/transport"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
)

// Status is the connection state of the session.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
)

// Feed is the transport the session consumes. It must deliver frames FIFO
// and surface open/close/error lifecycle callbacks; see the transport
// package for the full contract.
type Feed interface {
	Start(ctx context.Context, callbacks transport.Callbacks) error
	SendControl(name string) error
	SendAudio(audio []byte) error
	Close() error
}

// Session owns the per-connection engine state and its lifecycle. All maps,
// sets and logs below belong to the session exclusively and are reset
// atomically on session boundaries.
type Session struct {
	mu sync.Mutex

	id          string
	status      Status
	isRecording bool

	feed       Feed
	transcript *transcriptLog
	stages     *stageTracker
	syncBuf    *syncBuffer
	tools      *toolTracker
	playback   *playbackCoordinator
	cue        *typingCue

	// lastDirective mirrors what the UI sink currently renders; overwritten
	// on every directive, cleared explicitly by the user.
	lastDirective *events.ToolUIOutput

	connectOptions ConnectOptions
	baseContext    context.Context
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		status:      StatusDisconnected,
		baseContext: context.Background(),
		transcript:  newTranscriptLog(),
		stages:      newStageTracker(),
		syncBuf:     newSyncBuffer(),
		playback:    newPlaybackCoordinator(nil),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cue == nil {
		s.cue = newTypingCue(0)
	}
	s.tools = newToolTracker(s.cue)

	return s
}

// Connect opens the feed and starts consuming its events. The previous
// conversation, if any, is kept; only an explicit Disconnect clears it.
func (s *Session) Connect(ctx context.Context, feed Feed, opts ...ConnectOption) error {
	ctx, span := tracer.Start(ctx, "connect session")
	defer span.End()

	s.mu.Lock()
	if s.status != StatusDisconnected {
		s.mu.Unlock()
		return fmt.Errorf("session already connected")
	}

	s.connectOptions = ConnectOptions{}
	for _, opt := range opts {
		opt(&s.connectOptions)
	}
	s.cue.SetCallbacks(s.connectOptions.onTypingCue, s.connectOptions.onTypingCueEnded)

	s.id = uuid.NewString()
	s.baseContext = ctx
	s.feed = feed
	s.status = StatusConnecting
	statusCallback := s.connectOptions.onStatusChanged
	s.mu.Unlock()

	if statusCallback != nil {
		statusCallback(StatusConnecting)
	}

	if err := feed.Start(ctx, transport.Callbacks{
		OnFrame: s.HandleFrame,
		OnOpen:  s.handleFeedOpened,
		OnClose: s.handleFeedClosed,
		OnError: s.handleFeedError,
	}); err != nil {
		recordedErr := fmt.Errorf("failed to start feed: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())

		s.mu.Lock()
		s.feed = nil
		s.status = StatusDisconnected
		s.mu.Unlock()
		if statusCallback != nil {
			statusCallback(StatusDisconnected)
		}
		return recordedErr
	}

	return nil
}

// Disconnect closes the session authoritatively: it cancels the typing cue,
// aborts playback and clears the transcript and every per-session buffer.
// Safe to call any number of times; calls after the first have no effect.
func (s *Session) Disconnect() {
	_, span := tracer.Start(s.baseContext, "disconnect session")
	defer span.End()

	s.mu.Lock()
	feed := s.feed
	s.feed = nil
	s.isRecording = false
	s.tools.Reset()
	s.playback.BargeIn()
	s.syncBuf.Clear()
	s.stages.Clear()
	s.transcript.Clear()
	s.lastDirective = nil
	statusChanged := s.status != StatusDisconnected
	s.status = StatusDisconnected
	statusCallback := s.connectOptions.onStatusChanged
	s.mu.Unlock()

	if feed != nil {
		if err := feed.Close(); err != nil {
			recordedErr := fmt.Errorf("failed to close feed: %w", err)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
		}
	}

	if statusChanged && statusCallback != nil {
		statusCallback(StatusDisconnected)
	}
}

// HandleFrame consumes one raw inbound frame. Malformed frames are logged
// and dropped; the session never terminates because of one bad event.
func (s *Session) HandleFrame(raw []byte) {
	event, err := decodeFrame(raw)
	if err != nil {
		logger.Warn("dropping malformed frame", "error", err)
		return
	}
	if event == nil {
		return
	}

	s.handleEvent(event)
}

// handleEvent routes one typed event. Callbacks collected during the
// transition run after the lock is released so they may call back into the
// session.
func (s *Session) handleEvent(event events.Event) {
	var notify []func()

	s.mu.Lock()
	switch typedEvent := event.(type) {
	case events.SessionInit:
		s.tools.SetCatalog(typedEvent.ToolConfigs)

	case events.ContentStart:
		switch typedEvent.ContentType {
		case events.ContentTypeText:
			s.stages.Record(typedEvent.ContentID, typedEvent.RawModelFields)
		case events.ContentTypeTool:
			s.tools.BeginContent()
			notify = append(notify, s.toolNotificationLocked())
		}

	case events.ToolUse:
		s.tools.BeginUse(typedEvent.ToolName)
		notify = append(notify, s.toolNotificationLocked())

	case events.ToolResult:
		if err := s.tools.CompleteResult(typedEvent.Content); err != nil {
			logger.Warn("tool result could not be decoded", "error", err)
		}
		notify = append(notify, s.toolNotificationLocked())

	case events.ToolUIOutput:
		notify = s.handleUIDirectiveLocked(typedEvent, notify)

	case events.ContentEnd:
		switch typedEvent.ContentType {
		case events.ContentTypeTool:
			s.tools.EndContent()
			notify = append(notify, s.toolNotificationLocked())
		case events.ContentTypeText:
			// A text span that closes with its text still held means its
			// audio never arrived; show the text now rather than hold it
			// forever.
			if message, ok := s.syncBuf.FlushContent(typedEvent.ContentID); ok {
				notify = s.displayLocked(message, notify)
			}
		}

	case events.AudioOutput:
		if err := s.playback.OnAudioChunk(typedEvent.Content); err != nil {
			logger.Warn("dropping audio chunk", "error", err)
		}
		if message, ok := s.syncBuf.OnAudio(typedEvent.ContentID); ok {
			notify = s.displayLocked(message, notify)
		}

	case events.TextOutput:
		notify = s.handleTextOutputLocked(typedEvent, notify)
	}
	s.mu.Unlock()

	for _, callback := range notify {
		callback()
	}
}

func (s *Session) handleTextOutputLocked(event events.TextOutput, notify []func()) []func() {
	if strings.TrimSpace(event.Content) == "" {
		return notify
	}

	message := Message{Role: event.Role, Text: event.Content}
	if s.syncBuf.OnText(event.ContentID, message) {
		notify = s.displayLocked(message, notify)
	}
	return notify
}

func (s *Session) handleUIDirectiveLocked(event events.ToolUIOutput, notify []func()) []func() {
	directive := event
	s.lastDirective = &directive

	switch event.Type {
	case events.UIDirectiveBargeIn:
		s.playback.BargeIn()

	case events.UIDirectiveToolExecProgress:
		var progress struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal([]byte(event.Content), &progress); err != nil {
			logger.Warn("ignoring malformed tool progress directive", "error", err)
			break
		}
		switch progress.Status {
		case "started":
			s.cue.Start()
		case "completed":
			s.cue.Stop()
		}
	}

	if callback := s.connectOptions.onUIDirective; callback != nil {
		notify = append(notify, func() { callback(directive) })
	}
	return notify
}

// displayLocked appends the message to the transcript and queues the
// message callback, unless the (role, text) pair was already displayed.
func (s *Session) displayLocked(message Message, notify []func()) []func() {
	if !s.transcript.Add(message) {
		return notify
	}

	if callback := s.connectOptions.onMessage; callback != nil {
		notify = append(notify, func() { callback(message) })
	}
	return notify
}

func (s *Session) toolNotificationLocked() func() {
	callback := s.connectOptions.onToolUpdate
	if callback == nil {
		return func() {}
	}

	phase := s.tools.Phase()
	invocation := s.tools.Current()
	return func() { callback(phase, invocation) }
}

func (s *Session) handleFeedOpened() {
	s.mu.Lock()
	s.status = StatusConnected
	statusCallback := s.connectOptions.onStatusChanged
	s.mu.Unlock()

	if statusCallback != nil {
		statusCallback(StatusConnected)
	}
}

func (s *Session) handleFeedError(err error) {
	logger.Warn("feed failed", "error", err)
	s.handleFeedClosed()
}

// handleFeedClosed runs for transport errors and closes alike. It ends the
// connection but not the conversation: content-id scoped buffers die with
// the connection they were scoped to, while the transcript stays visible
// until the user disconnects explicitly.
func (s *Session) handleFeedClosed() {
	s.mu.Lock()
	if s.status == StatusDisconnected && s.feed == nil {
		s.mu.Unlock()
		return
	}

	s.feed = nil
	s.isRecording = false
	s.tools.Reset()
	s.playback.BargeIn()
	s.syncBuf.Clear()
	s.stages.Clear()
	s.status = StatusDisconnected
	statusCallback := s.connectOptions.onStatusChanged
	s.mu.Unlock()

	if statusCallback != nil {
		statusCallback(StatusDisconnected)
	}
}

// StartRecording asks the backend to accept microphone audio. While the
// feed is not ready the control message is silently skipped, never queued.
func (s *Session) StartRecording() error {
	s.mu.Lock()
	feed := s.feed
	s.isRecording = feed != nil
	s.mu.Unlock()

	if feed == nil {
		return nil
	}
	return feed.SendControl(transport.ControlStartAudio)
}

// StopRecording asks the backend to stop accepting microphone audio.
func (s *Session) StopRecording() error {
	s.mu.Lock()
	feed := s.feed
	s.isRecording = false
	s.mu.Unlock()

	if feed == nil {
		return nil
	}
	return feed.SendControl(transport.ControlStopAudio)
}

// SendAudio forwards one captured microphone frame upstream. Frames sent
// while not recording are dropped.
func (s *Session) SendAudio(audio []byte) error {
	s.mu.Lock()
	feed := s.feed
	recording := s.isRecording
	s.mu.Unlock()

	if feed == nil || !recording {
		return nil
	}
	return feed.SendAudio(audio)
}

// ID returns the identifier of the current connection, empty before the
// first Connect.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) IsRecording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRecording
}

// Transcript returns a point-in-time copy of the displayed messages.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Messages()
}

func (s *Session) ToolPhase() ToolPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tools.Phase()
}

// CurrentTool returns a copy of the in-flight tool invocation, or nil.
func (s *Session) CurrentTool() *ToolInvocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tools.Current()
}

// WaitingForTool reports whether a tool call is still in flight.
func (s *Session) WaitingForTool() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tools.Waiting()
}

// Stage returns the recorded generation stage for a text span, final when
// none was recorded.
func (s *Session) Stage(contentID string) Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stages.Stage(contentID)
}

// UIDirective returns a copy of the directive the UI sink currently
// renders, or nil.
func (s *Session) UIDirective() *events.ToolUIOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastDirective == nil {
		return nil
	}
	directive := *s.lastDirective
	return &directive
}

// ClearUIDirective drops the rendered directive, typically on user request.
func (s *Session) ClearUIDirective() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastDirective = nil
}
