package session

import (
	"testing"

	"github.com/aria-voice/aria-client/core/events"
)

func TestDecodeFrameRoutesEachVariant(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected events.Kind
	}{
		{name: "init", raw: `{"event":{"init":{"toolConfigs":[{"name":"dateTime","description":"Current date and time"}]}}}`, expected: events.KindSessionInit},
		{name: "content start", raw: `{"event":{"contentStart":{"contentId":"c1","type":"TEXT","role":"ASSISTANT"}}}`, expected: events.KindContentStart},
		{name: "tool use", raw: `{"event":{"toolUse":{"toolUseId":"u1","toolName":"dateTime"}}}`, expected: events.KindToolUse},
		{name: "tool result", raw: `{"event":{"toolResult":{"content":"{\"x\":1}"}}}`, expected: events.KindToolResult},
		{name: "tool ui output", raw: `{"event":{"toolUiOutput":{"type":"barge_in"}}}`, expected: events.KindToolUIOutput},
		{name: "content end", raw: `{"event":{"contentEnd":{"contentId":"c1","type":"TEXT"}}}`, expected: events.KindContentEnd},
		{name: "audio output", raw: `{"event":{"audioOutput":{"contentId":"c1","content":"AAAA"}}}`, expected: events.KindAudioOutput},
		{name: "text output", raw: `{"event":{"textOutput":{"contentId":"c1","role":"ASSISTANT","content":"Hi"}}}`, expected: events.KindTextOutput},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			event, err := decodeFrame([]byte(testCase.raw))
			if err != nil {
				t.Fatalf("expected frame to decode, got error %v", err)
			}
			if event == nil {
				t.Fatalf("expected a decoded event, got nil")
			}
			if got := event.Kind(); got != testCase.expected {
				t.Fatalf("expected kind %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestDecodeFrameMalformedJSONReturnsError(t *testing.T) {
	event, err := decodeFrame([]byte(`{not json`))
	if err == nil {
		t.Fatalf("expected an error for malformed frame")
	}
	if event != nil {
		t.Fatalf("expected no event for malformed frame, got %v", event)
	}
}

func TestDecodeFrameEmptyEventIsNoOp(t *testing.T) {
	for _, raw := range []string{`{}`, `{"event":{}}`, `{"other":1}`} {
		event, err := decodeFrame([]byte(raw))
		if err != nil {
			t.Fatalf("expected empty frame %q to be a no-op, got error %v", raw, err)
		}
		if event != nil {
			t.Fatalf("expected no event for frame %q, got %v", raw, event)
		}
	}
}

func TestDecodeFramePrefersInitOverLaterShapes(t *testing.T) {
	raw := `{"event":{"textOutput":{"role":"USER","content":"Hi"},"init":{"toolConfigs":[]}}}`

	event, err := decodeFrame([]byte(raw))
	if err != nil {
		t.Fatalf("expected frame to decode, got error %v", err)
	}
	if got := event.Kind(); got != events.KindSessionInit {
		t.Fatalf("expected init to win routing precedence, got %q", got)
	}
}

func TestDecodeFramePreservesContentStartModelFields(t *testing.T) {
	raw := `{"event":{"contentStart":{"contentId":"c1","type":"TEXT","additionalModelFields":"{\"generationStage\":\"SPECULATIVE\"}"}}}`

	event, err := decodeFrame([]byte(raw))
	if err != nil {
		t.Fatalf("expected frame to decode, got error %v", err)
	}

	contentStart, ok := event.(events.ContentStart)
	if !ok {
		t.Fatalf("expected a content start event, got %T", event)
	}
	if contentStart.RawModelFields != `{"generationStage":"SPECULATIVE"}` {
		t.Fatalf("expected model fields to pass through, got %q", contentStart.RawModelFields)
	}
}
