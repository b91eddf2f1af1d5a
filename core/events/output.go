package events

const (
	// KindAudioOutput identifies one synthesized speech frame.
	KindAudioOutput Kind = "audio.output"
	// KindTextOutput identifies one text span for the transcript.
	KindTextOutput Kind = "text.output"
)

// AudioOutput carries one base64 encoded PCM frame of synthesized speech.
type AudioOutput struct {
	Base
	ContentID string
	Content   string
}

// NewAudioOutput creates an audio output event.
func NewAudioOutput(contentID, content string) AudioOutput {
	return AudioOutput{Base: NewBase(KindAudioOutput), ContentID: contentID, Content: content}
}

// TextOutput carries one text span for the transcript.
type TextOutput struct {
	Base
	ContentID string
	Role      Role
	Content   string
}

// NewTextOutput creates a text output event.
func NewTextOutput(contentID string, role Role, content string) TextOutput {
	return TextOutput{Base: NewBase(KindTextOutput), ContentID: contentID, Role: role, Content: content}
}
