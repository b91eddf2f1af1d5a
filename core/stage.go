package session

import "encoding/json"

// Stage marks a text span as interim (still being generated) or final.
type Stage string

const (
	StageInterim Stage = "INTERIM"
	StageFinal   Stage = "FINAL"
)

// stageTracker remembers, per content id, whether a text span is interim or
// final. The engine itself never consults the stage; it is preserved for
// downstream consumers. At most one stage per content id, a later content
// start overwrites.
//
// Entries are never evicted individually; the tracker lives and dies with
// the connection.
type stageTracker struct {
	stages map[string]Stage
}

func newStageTracker() *stageTracker {
	return &stageTracker{stages: map[string]Stage{}}
}

// Record extracts the generation stage hint from the secondary JSON payload
// of a text content start. A missing or unparsable payload silently falls
// back to final.
func (t *stageTracker) Record(contentID, rawModelFields string) {
	stage := StageFinal

	if rawModelFields != "" {
		var fields struct {
			GenerationStage string `json:"generationStage"`
		}
		if err := json.Unmarshal([]byte(rawModelFields), &fields); err == nil {
			switch fields.GenerationStage {
			case "SPECULATIVE", string(StageInterim):
				stage = StageInterim
			}
		}
	}

	t.stages[contentID] = stage
}

func (t *stageTracker) Stage(contentID string) Stage {
	if stage, ok := t.stages[contentID]; ok {
		return stage
	}
	return StageFinal
}

func (t *stageTracker) Clear() {
	t.stages = map[string]Stage{}
}
