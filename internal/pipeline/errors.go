package pipeline

import "fmt"

// Stage names one step of the per-image state machine.
type Stage string

const (
	StageExtracting    Stage = "EXTRACTING"
	StageDeduplicating Stage = "DEDUPLICATING"
	StageEnriching     Stage = "ENRICHING"
	StagePersisting    Stage = "PERSISTING"
)

// StageError reports which stage failed for which image. One image's
// StageError never aborts the pipeline as a whole.
type StageError struct {
	Stage Stage
	Image string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.Image, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
