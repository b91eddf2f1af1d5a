package session

import "github.com/aria-voice/aria-client/core/events"

// defaultContentID stands in for audio frames that arrive without a content
// id; pending text keyed to it resolves on the next such frame.
const defaultContentID = "default"

// syncBuffer decides, per text span, whether it is displayed immediately or
// held until its paired audio arrives.
//
// Text and audio for the same content id share a channel but not a clock:
// either may arrive first. Assistant text whose content id matches the audio
// stream currently in flight is held and released in lock-step with the next
// audio frame for that id, so words never appear ahead of the voice. Text
// for anything else, and all user or system text, shows immediately.
type syncBuffer struct {
	// pending holds at most one not-yet-displayed message per content id.
	pending map[string]Message
	// displayedIDs records content ids whose span was already shown, so a
	// resolved span is never re-buffered.
	displayedIDs map[string]struct{}
	// audioContentID is the content id carried by the audio frames currently
	// streaming; empty until the first frame of a connection.
	audioContentID string
}

func newSyncBuffer() *syncBuffer {
	return &syncBuffer{
		pending:      map[string]Message{},
		displayedIDs: map[string]struct{}{},
	}
}

// OnText reports whether the message should be displayed now. When it
// returns false the message is held until OnAudio releases it.
func (b *syncBuffer) OnText(contentID string, message Message) bool {
	if message.Role != events.RoleAssistant {
		b.markDisplayed(contentID)
		return true
	}

	if contentID == "" || contentID != b.audioContentID || b.isDisplayed(contentID) {
		b.markDisplayed(contentID)
		return true
	}

	b.pending[contentID] = message
	return false
}

// OnAudio records the in-flight audio content id and releases the held
// message for it, if any. This is the synchronization point: assistant text
// is shown on arrival of audio for its span, not before.
func (b *syncBuffer) OnAudio(contentID string) (Message, bool) {
	if contentID == "" {
		contentID = defaultContentID
	}
	b.audioContentID = contentID

	message, ok := b.pending[contentID]
	if !ok {
		return Message{}, false
	}

	delete(b.pending, contentID)
	b.markDisplayed(contentID)
	return message, true
}

// FlushContent releases the held message for a span whose audio never
// arrived. Called when the span closes, so pending text cannot outlive its
// content.
func (b *syncBuffer) FlushContent(contentID string) (Message, bool) {
	message, ok := b.pending[contentID]
	if !ok {
		return Message{}, false
	}

	delete(b.pending, contentID)
	b.markDisplayed(contentID)
	return message, true
}

func (b *syncBuffer) PendingCount() int {
	return len(b.pending)
}

func (b *syncBuffer) markDisplayed(contentID string) {
	if contentID == "" {
		return
	}
	b.displayedIDs[contentID] = struct{}{}
}

func (b *syncBuffer) isDisplayed(contentID string) bool {
	_, ok := b.displayedIDs[contentID]
	return ok
}

func (b *syncBuffer) Clear() {
	b.pending = map[string]Message{}
	b.displayedIDs = map[string]struct{}{}
	b.audioContentID = ""
}
