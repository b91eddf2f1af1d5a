package events

const (
	// KindContentStart identifies the opening of a content span.
	KindContentStart Kind = "content.start"
	// KindContentEnd identifies the closing of a content span.
	KindContentEnd Kind = "content.end"
)

// ContentType discriminates what a content span carries.
type ContentType string

const (
	ContentTypeText  ContentType = "TEXT"
	ContentTypeTool  ContentType = "TOOL"
	ContentTypeAudio ContentType = "AUDIO"
)

// Role identifies the originator of a text span.
type Role string

const (
	RoleUser      Role = "USER"
	RoleAssistant Role = "ASSISTANT"
	RoleSystem    Role = "SYSTEM"
)

// ContentStart marks the opening of a content span.
//
// RawModelFields is a secondary JSON-encoded payload that may carry a
// generation stage hint for text spans. It is passed through unparsed; the
// engine owns its interpretation and its failure mode.
type ContentStart struct {
	Base
	ContentID      string
	ContentType    ContentType
	Role           Role
	RawModelFields string
}

// NewContentStart creates a content start event.
func NewContentStart(contentID string, contentType ContentType, role Role, rawModelFields string) ContentStart {
	return ContentStart{
		Base:           NewBase(KindContentStart),
		ContentID:      contentID,
		ContentType:    contentType,
		Role:           role,
		RawModelFields: rawModelFields,
	}
}

// ContentEnd marks the closing of a content span.
type ContentEnd struct {
	Base
	ContentID   string
	ContentType ContentType
}

// NewContentEnd creates a content end event.
func NewContentEnd(contentID string, contentType ContentType) ContentEnd {
	return ContentEnd{Base: NewBase(KindContentEnd), ContentID: contentID, ContentType: contentType}
}
