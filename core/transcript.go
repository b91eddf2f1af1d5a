package session

import (
	"github.com/aria-voice/aria-client/core/events"
	"github.com/jinzhu/copier"
)

// Message is one displayed transcript entry. Messages are never mutated
// after they are appended; the transcript is only ever cleared in bulk.
type Message struct {
	Role events.Role `json:"role"`
	Text string      `json:"text"`
}

// displayedKeySeparator joins role and text into the dedup key. A unit
// separator cannot appear in either part.
const displayedKeySeparator = "\x1f"

// transcriptLog is the deduplicated, append-only ordered list of displayed
// messages. A (role, text) pair is appended at most once per session, in
// first-occurrence order.
type transcriptLog struct {
	messages  []Message
	displayed map[string]struct{}
}

func newTranscriptLog() *transcriptLog {
	return &transcriptLog{displayed: map[string]struct{}{}}
}

// Add appends the message unless an identical (role, text) pair was already
// displayed. It reports whether the message was appended.
func (l *transcriptLog) Add(message Message) bool {
	key := string(message.Role) + displayedKeySeparator + message.Text
	if _, ok := l.displayed[key]; ok {
		return false
	}

	l.displayed[key] = struct{}{}
	l.messages = append(l.messages, message)
	return true
}

// Messages returns a point-in-time copy of the log.
func (l *transcriptLog) Messages() []Message {
	messages := make([]Message, 0, len(l.messages))
	_ = copier.Copy(&messages, l.messages)
	return messages
}

func (l *transcriptLog) Len() int {
	return len(l.messages)
}

func (l *transcriptLog) Clear() {
	l.messages = nil
	l.displayed = map[string]struct{}{}
}
