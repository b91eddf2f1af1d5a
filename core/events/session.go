package events

import "encoding/json"

const (
	// KindSessionInit identifies the connection handshake event.
	KindSessionInit Kind = "session.init"
)

// ToolConfig describes one entry of the tool catalog delivered on init.
//
// The engine consults the catalog only for display-name lookup; Schema is
// carried verbatim for downstream consumers.
type ToolConfig struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"schema,omitempty"`
}

// SessionInit carries the ordered tool catalog announced by the backend.
type SessionInit struct {
	Base
	ToolConfigs []ToolConfig
}

// NewSessionInit creates a session init event.
func NewSessionInit(toolConfigs []ToolConfig) SessionInit {
	return SessionInit{Base: NewBase(KindSessionInit), ToolConfigs: toolConfigs}
}
