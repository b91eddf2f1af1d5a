package events

const (
	// KindToolUse identifies an assistant tool invocation request.
	KindToolUse Kind = "tool.use"
	// KindToolResult identifies a tool result payload.
	KindToolResult Kind = "tool.result"
	// KindToolUIOutput identifies a UI rendering directive.
	KindToolUIOutput Kind = "tool.ui_output"
)

// ToolUse marks the assistant requesting execution of a named tool.
type ToolUse struct {
	Base
	ToolUseID string
	ToolName  string
}

// NewToolUse creates a tool use event.
func NewToolUse(toolUseID, toolName string) ToolUse {
	return ToolUse{Base: NewBase(KindToolUse), ToolUseID: toolUseID, ToolName: toolName}
}

// ToolResult carries the result payload of a tool execution.
//
// Content is an opaque JSON-encoded string; the engine owns its parsing and
// its failure mode.
type ToolResult struct {
	Base
	Content string
}

// NewToolResult creates a tool result event.
func NewToolResult(content string) ToolResult {
	return ToolResult{Base: NewBase(KindToolResult), Content: content}
}

// UI directive types the engine interprets itself. Every other type is
// forwarded verbatim to the UI sink.
const (
	// UIDirectiveBargeIn aborts current and queued audio playback.
	UIDirectiveBargeIn = "barge_in"
	// UIDirectiveToolExecProgress toggles the typing cue; its Content carries
	// a nested status of started or completed.
	UIDirectiveToolExecProgress = "tool_exec_progress"
)

// ToolUIOutput carries a rendering directive for the UI sink.
//
// The engine treats the directive as opaque beyond Type; the UI sink owns
// the interpretation of AppName and Props.
type ToolUIOutput struct {
	Base
	Type    string
	Content string
	AppName string
	Props   map[string]any
}

// NewToolUIOutput creates a UI directive event.
func NewToolUIOutput(directiveType, content, appName string, props map[string]any) ToolUIOutput {
	return ToolUIOutput{
		Base:    NewBase(KindToolUIOutput),
		Type:    directiveType,
		Content: content,
		AppName: appName,
		Props:   props,
	}
}
