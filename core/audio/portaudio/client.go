// Package portaudio provides an alternative audio client backed by
// PortAudio, for hosts where miniaudio is unavailable.
package portaudio

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/aria-voice/aria-client/core/audio"
	"github.com/gordonklaus/portaudio"
)

type Client struct {
	bufferSize int

	playbackStream *portaudio.Stream
	captureStream  *portaudio.Stream

	in  []int16
	out []int16

	leftoverAudio []byte
	audioMu       sync.Mutex

	onAudio   func(audio []byte)
	capturing bool
	mu        sync.Mutex
}

func NewClient(bufferSize int) (*Client, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}

	client := &Client{
		bufferSize: bufferSize,
		in:         make([]int16, bufferSize),
		out:        make([]int16, bufferSize),
	}

	var err error
	client.playbackStream, err = portaudio.OpenDefaultStream(
		0, 1, audio.DefaultPlaybackSampleRate, bufferSize, client.out,
	)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open PortAudio playback stream: %w", err)
	}

	client.captureStream, err = portaudio.OpenDefaultStream(
		1, 0, audio.DefaultCaptureSampleRate, bufferSize, client.in,
	)
	if err != nil {
		client.playbackStream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open PortAudio capture stream: %w", err)
	}

	if err := client.playbackStream.Start(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to start PortAudio playback stream: %w", err)
	}

	go client.drainPlayback()

	return client, nil
}

func (c *Client) StartCapture(ctx context.Context, onAudio func(audio []byte)) error {
	c.mu.Lock()
	if c.capturing {
		c.mu.Unlock()
		return nil
	}
	c.capturing = true
	c.onAudio = onAudio
	c.mu.Unlock()

	if err := c.captureStream.Start(); err != nil {
		return fmt.Errorf("failed to start PortAudio capture stream: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = c.StopCapture()
				return
			default:
			}

			c.mu.Lock()
			capturing, onAudio := c.capturing, c.onAudio
			c.mu.Unlock()
			if !capturing {
				return
			}

			if err := c.captureStream.Read(); err != nil {
				continue
			}

			audioBuffer := bytes.Buffer{}
			_ = binary.Write(&audioBuffer, binary.LittleEndian, c.in)
			if onAudio != nil {
				onAudio(audioBuffer.Bytes())
			}
		}
	}()

	return nil
}

func (c *Client) StopCapture() error {
	c.mu.Lock()
	if !c.capturing {
		c.mu.Unlock()
		return nil
	}
	c.capturing = false
	c.onAudio = nil
	c.mu.Unlock()

	if err := c.captureStream.Stop(); err != nil {
		return fmt.Errorf("failed to stop PortAudio capture stream: %w", err)
	}
	return nil
}

func (c *Client) SendAudio(audio []byte) error {
	c.audioMu.Lock()
	defer c.audioMu.Unlock()
	c.leftoverAudio = append(c.leftoverAudio, audio...)
	return nil
}

func (c *Client) ClearBuffer() {
	c.audioMu.Lock()
	defer c.audioMu.Unlock()
	c.leftoverAudio = make([]byte, 0)
}

func (c *Client) drainPlayback() {
	chunkSize := c.bufferSize * 2

	for {
		c.audioMu.Lock()
		if c.playbackStream == nil {
			c.audioMu.Unlock()
			return
		}
		if len(c.leftoverAudio) < chunkSize {
			c.audioMu.Unlock()
			continue
		}
		chunk := c.leftoverAudio[:chunkSize]
		c.leftoverAudio = c.leftoverAudio[chunkSize:]
		c.audioMu.Unlock()

		_ = binary.Read(bytes.NewBuffer(chunk), binary.LittleEndian, c.out)
		_ = c.playbackStream.Write()
	}
}

func (c *Client) Close() error {
	c.audioMu.Lock()
	playback := c.playbackStream
	c.playbackStream = nil
	c.audioMu.Unlock()

	if playback != nil {
		playback.Close()
	}
	if c.captureStream != nil {
		c.captureStream.Close()
		c.captureStream = nil
	}
	return portaudio.Terminate()
}
