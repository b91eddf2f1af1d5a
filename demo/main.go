// Command demo is a terminal chat client for an assistant backend: it
// connects the session engine to a websocket feed, plays synthesized speech
// through the default output device and streams the microphone upstream
// while recording is on.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	session "github.com/aria-voice/aria-client/core"
	"github.com/aria-voice/aria-client/core/audio/miniaudio"
	"github.com/aria-voice/aria-client/core/transport/gorillaws"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	url := flag.String("url", "ws://localhost:8080/ws", "websocket address of the assistant backend")
	flag.Parse()

	audioClient, err := miniaudio.NewClient()
	if err != nil {
		log.Fatalf("Failed to initialize audio: %v", err)
	}
	defer audioClient.Close()

	chat := session.NewSession(session.WithPlaybackSink(audioClient))
	feed := gorillaws.NewClient(*url)

	program := tea.NewProgram(newModel(chat), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = chat.Connect(ctx, feed,
		session.WithMessageCallback(func(message session.Message) {
			program.Send(messageMsg{message: message})
		}),
		session.WithToolUpdateCallback(func(phase session.ToolPhase, invocation *session.ToolInvocation) {
			program.Send(toolMsg{phase: phase, invocation: invocation})
		}),
		session.WithStatusChangedCallback(func(status session.Status) {
			program.Send(statusMsg{status: status})
		}),
		session.WithTypingCueCallbacks(
			func() { program.Send(typingMsg{active: true}) },
			func() { program.Send(typingMsg{active: false}) },
		),
	)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	if err := audioClient.StartCapture(ctx, func(frame []byte) {
		_ = chat.SendAudio(frame)
	}); err != nil {
		log.Printf("Microphone unavailable: %v", err)
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	chat.Disconnect()
}
