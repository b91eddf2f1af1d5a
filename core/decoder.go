package session

import (
	"encoding/json"
	"fmt"

	"github.com/aria-voice/aria-client/core/events"
)

// Inbound frames wrap a single event object; exactly one of the payload
// fields is populated per frame. The shapes below mirror the backend wire
// schema, which is why their tags use its camelCase names.
type inboundFrame struct {
	Event *inboundEvent `json:"event"`
}

type inboundEvent struct {
	Init         *initPayload         `json:"init"`
	ContentStart *contentStartPayload `json:"contentStart"`
	ToolUse      *toolUsePayload      `json:"toolUse"`
	ToolResult   *toolResultPayload   `json:"toolResult"`
	ToolUIOutput *toolUIOutputPayload `json:"toolUiOutput"`
	ContentEnd   *contentEndPayload   `json:"contentEnd"`
	AudioOutput  *audioOutputPayload  `json:"audioOutput"`
	TextOutput   *textOutputPayload   `json:"textOutput"`
}

type initPayload struct {
	ToolConfigs []events.ToolConfig `json:"toolConfigs"`
}

type contentStartPayload struct {
	ContentID             string             `json:"contentId"`
	Type                  events.ContentType `json:"type"`
	Role                  events.Role        `json:"role"`
	AdditionalModelFields string             `json:"additionalModelFields"`
}

type contentEndPayload struct {
	ContentID string             `json:"contentId"`
	Type      events.ContentType `json:"type"`
}

type toolUsePayload struct {
	ToolUseID string `json:"toolUseId"`
	ToolName  string `json:"toolName"`
}

type toolResultPayload struct {
	Content string `json:"content"`
}

type toolUIOutputPayload struct {
	Type    string         `json:"type"`
	Content string         `json:"content"`
	AppName string         `json:"appName"`
	Props   map[string]any `json:"props"`
}

type audioOutputPayload struct {
	ContentID string `json:"contentId"`
	Content   string `json:"content"`
}

type textOutputPayload struct {
	ContentID string      `json:"contentId"`
	Role      events.Role `json:"role"`
	Content   string      `json:"content"`
}

// decodeFrame parses one raw frame into its typed event.
//
// A frame that could match multiple shapes (does not happen on a
// well-behaved backend) is routed by the precedence of the checks below.
// An empty or unroutable frame decodes to nil with no error; callers treat
// it as a no-op.
func decodeFrame(raw []byte) (events.Event, error) {
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("failed to parse inbound frame: %w", err)
	}

	if frame.Event == nil {
		return nil, nil
	}

	switch event := frame.Event; {
	case event.Init != nil:
		return events.NewSessionInit(event.Init.ToolConfigs), nil
	case event.ContentStart != nil:
		return events.NewContentStart(
			event.ContentStart.ContentID,
			event.ContentStart.Type,
			event.ContentStart.Role,
			event.ContentStart.AdditionalModelFields,
		), nil
	case event.ToolUse != nil:
		return events.NewToolUse(event.ToolUse.ToolUseID, event.ToolUse.ToolName), nil
	case event.ToolResult != nil:
		return events.NewToolResult(event.ToolResult.Content), nil
	case event.ToolUIOutput != nil:
		return events.NewToolUIOutput(
			event.ToolUIOutput.Type,
			event.ToolUIOutput.Content,
			event.ToolUIOutput.AppName,
			event.ToolUIOutput.Props,
		), nil
	case event.ContentEnd != nil:
		return events.NewContentEnd(event.ContentEnd.ContentID, event.ContentEnd.Type), nil
	case event.AudioOutput != nil:
		return events.NewAudioOutput(event.AudioOutput.ContentID, event.AudioOutput.Content), nil
	case event.TextOutput != nil:
		return events.NewTextOutput(
			event.TextOutput.ContentID,
			event.TextOutput.Role,
			event.TextOutput.Content,
		), nil
	}

	return nil, nil
}
