package session

import "testing"

func TestStageTrackerDefaultsToFinal(t *testing.T) {
	tracker := newStageTracker()

	if got := tracker.Stage("never-seen"); got != StageFinal {
		t.Fatalf("expected unknown content to default to final, got %q", got)
	}
}

func TestStageTrackerRecordsSpeculativeAsInterim(t *testing.T) {
	tracker := newStageTracker()

	tracker.Record("c1", `{"generationStage":"SPECULATIVE"}`)

	if got := tracker.Stage("c1"); got != StageInterim {
		t.Fatalf("expected speculative hint to record interim, got %q", got)
	}
}

func TestStageTrackerFallsBackToFinalOnUnparsableHint(t *testing.T) {
	tracker := newStageTracker()

	tracker.Record("c1", `{not json`)

	if got := tracker.Stage("c1"); got != StageFinal {
		t.Fatalf("expected unparsable hint to fall back to final, got %q", got)
	}
}

func TestStageTrackerLaterStartOverwrites(t *testing.T) {
	tracker := newStageTracker()

	tracker.Record("c1", `{"generationStage":"SPECULATIVE"}`)
	tracker.Record("c1", `{"generationStage":"FINAL"}`)

	if got := tracker.Stage("c1"); got != StageFinal {
		t.Fatalf("expected later start to overwrite stage, got %q", got)
	}
}

func TestStageTrackerClearForgetsEverything(t *testing.T) {
	tracker := newStageTracker()

	tracker.Record("c1", `{"generationStage":"SPECULATIVE"}`)
	tracker.Clear()

	if got := tracker.Stage("c1"); got != StageFinal {
		t.Fatalf("expected cleared tracker to default to final, got %q", got)
	}
}
