// Package events defines the typed inbound event contract of the
// assistant feed.
//
// Every frame delivered by the transport decodes into exactly one of the
// variants below. Event kinds are grouped by wire-facing namespaces:
//
//   - session.*
//   - content.*
//   - tool.*
//   - audio.*
//   - text.*
//
// Semantics used across the package:
//
//   - ContentID: opaque correlation key linking a text span to its paired
//     audio stream within one connection. Not unique across connections.
//   - Role: originator of a text span (user, assistant or system).
//   - Frame: base64 encoded PCM audio payload.
//
// session events
//
//   - SessionInit (session.init): connection handshake carrying the ordered
//     tool catalog.
//
// content events
//
//   - ContentStart (content.start): a content span opened; for text spans it
//     may carry a secondary JSON payload with a generation stage hint.
//   - ContentEnd (content.end): a content span closed.
//
// tool events
//
//   - ToolUse (tool.use): the assistant requested execution of a named tool.
//   - ToolResult (tool.result): the tool produced a result payload.
//   - ToolUIOutput (tool.ui_output): a rendering directive for the UI sink;
//     the engine interprets only the barge_in and tool_exec_progress types.
//
// audio events
//
//   - AudioOutput (audio.output): one synthesized speech frame.
//
// text events
//
//   - TextOutput (text.output): one text span for the transcript.
package events
