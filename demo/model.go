package main

import (
	"fmt"
	"strings"

	session "github.com/aria-voice/aria-client/core"
	"github.com/aria-voice/aria-client/core/events"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

type messageMsg struct {
	message session.Message
}

type toolMsg struct {
	phase      session.ToolPhase
	invocation *session.ToolInvocation
}

type statusMsg struct {
	status session.Status
}

type typingMsg struct {
	active bool
}

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	systemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	toolStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type model struct {
	chat     *session.Session
	viewport viewport.Model

	messages   []session.Message
	toolPhase  session.ToolPhase
	toolCall   *session.ToolInvocation
	status     session.Status
	typing     bool
	width      int
	ready      bool
}

func newModel(chat *session.Session) model {
	return model{
		chat:      chat,
		toolPhase: session.ToolPhaseIdle,
		status:    session.StatusConnecting,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		m.viewport.SetContent(m.renderMessages())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.chat.Disconnect()
			return m, tea.Quit
		case " ":
			if m.chat.IsRecording() {
				_ = m.chat.StopRecording()
			} else {
				_ = m.chat.StartRecording()
			}
		case "b":
			// Manual barge-in for when the assistant will not stop talking.
			m.chat.HandleFrame([]byte(`{"event":{"toolUiOutput":{"type":"barge_in"}}}`))
		}

	case messageMsg:
		m.messages = append(m.messages, msg.message)
		m.viewport.SetContent(m.renderMessages())
		m.viewport.GotoBottom()

	case toolMsg:
		m.toolPhase = msg.phase
		m.toolCall = msg.invocation

	case statusMsg:
		m.status = msg.status

	case typingMsg:
		m.typing = msg.active
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "Connecting..."
	}

	var footer strings.Builder
	footer.WriteString(statusStyle.Render(fmt.Sprintf("[%s]", m.status)))
	if m.chat.IsRecording() {
		footer.WriteString(statusStyle.Render(" ● rec"))
	}
	if m.typing {
		footer.WriteString(toolStyle.Render(" assistant is working…"))
	}
	if m.toolCall != nil {
		footer.WriteString(toolStyle.Render(fmt.Sprintf(" tool:%s (%s)", m.toolCall.Name, m.toolPhase)))
	}
	footer.WriteString("\n")
	footer.WriteString(helpStyle.Render("space: toggle mic · b: barge in · q: quit"))

	return m.viewport.View() + "\n" + footer.String()
}

func (m model) renderMessages() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	for _, message := range m.messages {
		var line string
		switch message.Role {
		case events.RoleUser:
			line = userStyle.Render("you: ") + message.Text
		case events.RoleSystem:
			line = systemStyle.Render(message.Text)
		default:
			line = assistantStyle.Render("aria: ") + message.Text
		}
		b.WriteString(wordwrap.String(line, width))
		b.WriteString("\n")
	}
	return b.String()
}
