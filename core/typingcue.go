package session

import (
	"sync"
	"time"
)

const defaultTypingCueInterval = 800 * time.Millisecond

// typingCue owns the single repeating trigger behind the tool execution
// progress directive. Start replaces any running trigger, so at most one is
// ever live; Stop cancels it and tells the sink to rewind its cue.
type typingCue struct {
	mu       sync.Mutex
	interval time.Duration
	stop     chan struct{}

	onTick  func()
	onEnded func()
}

func newTypingCue(interval time.Duration) *typingCue {
	if interval <= 0 {
		interval = defaultTypingCueInterval
	}
	return &typingCue{
		interval: interval,
		onTick:   func() {},
		onEnded:  func() {},
	}
}

func (c *typingCue) SetCallbacks(onTick, onEnded func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if onTick != nil {
		c.onTick = onTick
	}
	if onEnded != nil {
		c.onEnded = onEnded
	}
}

// Start begins the repeating trigger from time zero. A previous trigger is
// stopped first.
func (c *typingCue) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()

	stop := make(chan struct{})
	c.stop = stop
	onTick := c.onTick

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		onTick()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				onTick()
			}
		}
	}()
}

// Stop cancels the trigger if one is running and resets the cue position.
// The ended callback fires asynchronously, like the ticks it mirrors.
func (c *typingCue) Stop() {
	c.mu.Lock()
	wasRunning := c.stop != nil
	c.stopLocked()
	onEnded := c.onEnded
	c.mu.Unlock()

	if wasRunning {
		go onEnded()
	}
}

func (c *typingCue) stopLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}
