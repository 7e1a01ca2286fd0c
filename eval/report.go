package eval

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/symex"
)

// Stats are counters collected during an evaluation session.
type Stats struct {
	Steps            int // rewrite steps
	RuleApplications int // rules tried
	TokenHits        int // evaluations skipped due to fresh tokens
	MaxDepth         int // maximum nesting of evaluation frames
	Duration         time.Duration
}

// Report is returned by every top-level evaluation. It collects the conditions
// raised during evaluation.
type Report struct {
	Session    uuid.UUID
	Conditions []*symex.Condition
	Stats      Stats
}

func (r *Report) add(c *symex.Condition) {
	r.Conditions = append(r.Conditions, c)
}

// Has checks if a condition of a kind has been raised.
func (r *Report) Has(kind symex.ConditionKind) bool {
	for _, c := range r.Conditions {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

// Aborted is true if the evaluation has been aborted.
func (r *Report) Aborted() bool {
	for _, c := range r.Conditions {
		if c.Kind.Aborts() {
			return true
		}
	}
	return false
}

// Err returns all conditions joined into one error, or nil.
func (r *Report) Err() error {
	if len(r.Conditions) == 0 {
		return nil
	}
	errs := make([]error, len(r.Conditions))
	for i, c := range r.Conditions {
		errs[i] = c
	}
	return errors.Join(errs...)
}

func (r *Report) String() string {
	return fmt.Sprintf("<report %s: %d conditions, %d steps, %d rules, %d hits, depth %d, %v>",
		r.Session, len(r.Conditions), r.Stats.Steps, r.Stats.RuleApplications,
		r.Stats.TokenHits, r.Stats.MaxDepth, r.Stats.Duration)
}
