package session

import (
	"encoding/json"
	"fmt"

	"github.com/aria-voice/aria-client/core/events"
)

// ToolPhase is the explicit lifecycle state of the tool the assistant is
// invoking. One phase value replaces the loose waiting/current flag pair so
// invalid combinations cannot be represented.
type ToolPhase string

const (
	// ToolPhaseIdle means no tool call is in flight.
	ToolPhaseIdle ToolPhase = "idle"
	// ToolPhaseWaiting means a tool content span opened but the invocation
	// has not been named yet.
	ToolPhaseWaiting ToolPhase = "waiting"
	// ToolPhaseExecuting means a named tool is running.
	ToolPhaseExecuting ToolPhase = "executing"
	// ToolPhaseResult means the tool produced a decodable result.
	ToolPhaseResult ToolPhase = "result"
	// ToolPhaseFailed means the tool result payload could not be decoded.
	ToolPhaseFailed ToolPhase = "failed"
)

// ToolInvocation is the displayable state of the current tool call.
type ToolInvocation struct {
	Name    string
	Content string
}

const (
	unknownToolName   = "Unknown Tool"
	processingContent = "Processing..."
)

// toolTracker is the tool lifecycle state machine:
//
//	idle → waiting → executing → result | failed → idle
//
// It also owns the typing cue trigger, which is orthogonal to the phase but
// must start and stop only through tracker transitions so a repeating timer
// can never outlive the tool call.
type toolTracker struct {
	phase      ToolPhase
	invocation *ToolInvocation
	catalog    []events.ToolConfig

	cue *typingCue
}

func newToolTracker(cue *typingCue) *toolTracker {
	return &toolTracker{phase: ToolPhaseIdle, cue: cue}
}

// SetCatalog replaces the display-name catalog with the init-provided one.
func (t *toolTracker) SetCatalog(configs []events.ToolConfig) {
	t.catalog = append([]events.ToolConfig(nil), configs...)
}

func (t *toolTracker) displayName(name string) string {
	for _, config := range t.catalog {
		if config.Name == name {
			return config.Name
		}
	}
	return unknownToolName
}

// BeginContent marks a tool content span opening.
func (t *toolTracker) BeginContent() {
	t.phase = ToolPhaseWaiting
}

// BeginUse marks a named tool starting to execute.
func (t *toolTracker) BeginUse(toolName string) {
	t.phase = ToolPhaseExecuting
	t.invocation = &ToolInvocation{
		Name:    t.displayName(toolName),
		Content: processingContent,
	}
}

// CompleteResult decodes the result payload and transitions to the result
// phase with the payload pretty-printed for display. An undecodable payload
// transitions to the failed phase instead, carrying the payload verbatim so
// the failure is visible rather than leaving a stale "Processing..." entry.
func (t *toolTracker) CompleteResult(content string) error {
	if t.invocation == nil {
		t.invocation = &ToolInvocation{Name: unknownToolName}
	}

	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		t.phase = ToolPhaseFailed
		t.invocation.Content = content
		return fmt.Errorf("failed to decode tool result: %w", err)
	}

	pretty, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		t.phase = ToolPhaseFailed
		t.invocation.Content = content
		return fmt.Errorf("failed to format tool result: %w", err)
	}

	t.phase = ToolPhaseResult
	t.invocation.Content = string(pretty)
	return nil
}

// EndContent marks the tool content span closing and returns to idle.
func (t *toolTracker) EndContent() {
	t.phase = ToolPhaseIdle
	t.invocation = nil
}

// Waiting reports whether a tool call is still in flight.
func (t *toolTracker) Waiting() bool {
	return t.phase == ToolPhaseWaiting || t.phase == ToolPhaseExecuting
}

func (t *toolTracker) Phase() ToolPhase {
	return t.phase
}

// Current returns a copy of the current invocation, or nil when idle.
func (t *toolTracker) Current() *ToolInvocation {
	if t.invocation == nil {
		return nil
	}
	invocation := *t.invocation
	return &invocation
}

// Reset returns the tracker to its initial state and cancels the typing
// cue.
func (t *toolTracker) Reset() {
	t.phase = ToolPhaseIdle
	t.invocation = nil
	t.catalog = nil
	t.cue.Stop()
}
