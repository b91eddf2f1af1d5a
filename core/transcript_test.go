package session

import (
	"testing"

	"github.com/aria-voice/aria-client/core/events"
)

func TestTranscriptLogAppendsInArrivalOrder(t *testing.T) {
	log := newTranscriptLog()

	log.Add(Message{Role: events.RoleUser, Text: "Hello"})
	log.Add(Message{Role: events.RoleAssistant, Text: "Hi there"})

	messages := log.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected two messages, got %d", len(messages))
	}
	if messages[0].Text != "Hello" || messages[1].Text != "Hi there" {
		t.Fatalf("expected arrival order preserved, got %v", messages)
	}
}

func TestTranscriptLogDeduplicatesIdenticalPairs(t *testing.T) {
	log := newTranscriptLog()

	if added := log.Add(Message{Role: events.RoleAssistant, Text: "Hi"}); !added {
		t.Fatalf("expected first add to append")
	}
	if added := log.Add(Message{Role: events.RoleAssistant, Text: "Hi"}); added {
		t.Fatalf("expected second identical add to be a no-op")
	}

	if got := log.Len(); got != 1 {
		t.Fatalf("expected exactly one entry after duplicate add, got %d", got)
	}
}

func TestTranscriptLogSameTextDifferentRoleIsNotADuplicate(t *testing.T) {
	log := newTranscriptLog()

	log.Add(Message{Role: events.RoleUser, Text: "Hi"})
	log.Add(Message{Role: events.RoleAssistant, Text: "Hi"})

	if got := log.Len(); got != 2 {
		t.Fatalf("expected same text under different roles to both appear, got %d entries", got)
	}
}

func TestTranscriptLogMessagesReturnsACopy(t *testing.T) {
	log := newTranscriptLog()
	log.Add(Message{Role: events.RoleUser, Text: "Hello"})

	messages := log.Messages()
	messages[0].Text = "mutated"

	if got := log.Messages()[0].Text; got != "Hello" {
		t.Fatalf("expected log to be unaffected by snapshot mutation, got %q", got)
	}
}

func TestTranscriptLogClearAllowsReplay(t *testing.T) {
	log := newTranscriptLog()
	log.Add(Message{Role: events.RoleUser, Text: "Hello"})

	log.Clear()

	if got := log.Len(); got != 0 {
		t.Fatalf("expected empty log after clear, got %d entries", got)
	}
	if added := log.Add(Message{Role: events.RoleUser, Text: "Hello"}); !added {
		t.Fatalf("expected cleared log to accept a previously displayed message")
	}
}
