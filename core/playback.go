package session

import (
	"encoding/base64"
	"fmt"
	"reflect"
)

// PlaybackSink is the streaming playback device the coordinator feeds.
// Chunks are played in arrival order with no reordering buffer; ClearBuffer
// must discard everything buffered but not yet played.
type PlaybackSink interface {
	SendAudio(audio []byte) error
	ClearBuffer()
}

// playbackCoordinator decodes incoming encoded audio chunks and forwards
// them to the sink for immediate playback.
//
// Audio is best effort: dropped frames are never retried and late or
// duplicate frames are never requested. Without a configured sink, chunks
// are decoded and discarded so sync bookkeeping upstream stays correct.
type playbackCoordinator struct {
	sink PlaybackSink
}

func newPlaybackCoordinator(sink PlaybackSink) *playbackCoordinator {
	coordinator := &playbackCoordinator{}
	coordinator.Set(sink)
	return coordinator
}

// Set replaces the configured sink. Nil and typed-nil sinks are treated as
// unconfigured.
func (p *playbackCoordinator) Set(sink PlaybackSink) {
	if isNilPlaybackSink(sink) {
		p.sink = nil
		return
	}
	p.sink = sink
}

func (p *playbackCoordinator) isConfigured() bool {
	return p.sink != nil
}

// OnAudioChunk decodes one base64 PCM frame and forwards it to the sink.
func (p *playbackCoordinator) OnAudioChunk(encoded string) error {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("failed to decode audio chunk: %w", err)
	}

	if p.sink == nil {
		return nil
	}

	if err := p.sink.SendAudio(decoded); err != nil {
		return fmt.Errorf("failed to forward audio chunk to sink: %w", err)
	}
	return nil
}

// BargeIn aborts current and queued playback immediately. No partial frame
// is played after this call.
func (p *playbackCoordinator) BargeIn() {
	if p.sink == nil {
		return
	}
	p.sink.ClearBuffer()
}

// isNilPlaybackSink detects nil and typed-nil interface values so Set does
// not store unusable interface wrappers as configured sinks.
func isNilPlaybackSink(sink PlaybackSink) bool {
	if sink == nil {
		return true
	}

	v := reflect.ValueOf(sink)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
