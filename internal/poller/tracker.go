package poller

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Tracker keeps the latest outcome per solution. Once a solution reached
// Terminal its outcome is frozen: later observations are ignored.
type Tracker struct {
	outcomes *xsync.MapOf[uint32, Outcome]
}

func NewTracker() *Tracker {
	return &Tracker{outcomes: xsync.NewMapOf[uint32, Outcome]()}
}

// Record stores o unless the solution is already terminal and returns the
// outcome now held for it.
func (t *Tracker) Record(o Outcome) Outcome {
	held, _ := t.outcomes.Compute(o.SolutionID, func(old Outcome, loaded bool) (Outcome, bool) {
		if loaded && old.State == Terminal {
			return old, false
		}
		return o, false
	})
	return held
}

func (t *Tracker) Get(solutionID uint32) (Outcome, bool) {
	return t.outcomes.Load(solutionID)
}

func (t *Tracker) Len() int {
	return t.outcomes.Size()
}
