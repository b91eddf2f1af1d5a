package session

import (
	"sync"
	"testing"
	"time"
)

type cueRecorder struct {
	mu    sync.Mutex
	ticks int
	ends  int
}

func (r *cueRecorder) tick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
}

func (r *cueRecorder) end() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ends++
}

func (r *cueRecorder) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks, r.ends
}

func TestTypingCueTicksUntilStopped(t *testing.T) {
	recorder := &cueRecorder{}
	cue := newTypingCue(5 * time.Millisecond)
	cue.SetCallbacks(recorder.tick, recorder.end)

	cue.Start()
	time.Sleep(30 * time.Millisecond)
	cue.Stop()
	time.Sleep(10 * time.Millisecond)

	ticks, ends := recorder.counts()
	if ticks < 2 {
		t.Fatalf("expected repeated ticks while running, got %d", ticks)
	}
	if ends != 1 {
		t.Fatalf("expected exactly one ended signal, got %d", ends)
	}

	time.Sleep(20 * time.Millisecond)
	finalTicks, _ := recorder.counts()
	if finalTicks != ticks {
		t.Fatalf("expected no ticks after stop, got %d more", finalTicks-ticks)
	}
}

func TestTypingCueStartReplacesPreviousTrigger(t *testing.T) {
	recorder := &cueRecorder{}
	cue := newTypingCue(10 * time.Millisecond)
	cue.SetCallbacks(recorder.tick, recorder.end)

	cue.Start()
	cue.Start()
	cue.Start()
	time.Sleep(25 * time.Millisecond)
	cue.Stop()
	time.Sleep(10 * time.Millisecond)

	// Three immediate ticks from the starts plus at most two interval ticks
	// from the single surviving trigger.
	ticks, ends := recorder.counts()
	if ticks > 6 {
		t.Fatalf("expected a single surviving trigger, got %d ticks", ticks)
	}
	if ends != 1 {
		t.Fatalf("expected restarts not to signal ended, got %d", ends)
	}
}

func TestTypingCueStopWithoutStartIsANoOp(t *testing.T) {
	recorder := &cueRecorder{}
	cue := newTypingCue(5 * time.Millisecond)
	cue.SetCallbacks(recorder.tick, recorder.end)

	cue.Stop()
	cue.Stop()
	time.Sleep(10 * time.Millisecond)

	if _, ends := recorder.counts(); ends != 0 {
		t.Fatalf("expected no ended signal without a running trigger, got %d", ends)
	}
}
