package respbuilder

import (
	"sync"
	"time"

	"github.com/programme-lv/bojclient/api"
	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/poller"
)

// Builder gathers run events and builds a complete api.RunReport.
type Builder struct {
	mu sync.Mutex

	runUuid  string
	started  time.Time
	finished *time.Time

	username   string
	problemID  boj.ProblemID
	language   string
	solutionID *uint32
	outcome    *poller.Outcome

	status       api.RunStatus
	errorMessage *string
}

func New(runUuid string) *Builder {
	return &Builder{
		runUuid: runUuid,
		started: time.Now(),
		status:  api.Submitted,
	}
}

// StartRun implements runner.ResultGatherer.
func (b *Builder) StartRun(problemID boj.ProblemID, language boj.Language) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.problemID = problemID
	b.language = language.Name()
}

// ResolveIdentity implements runner.ResultGatherer.
func (b *Builder) ResolveIdentity(username string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.username = username
}

// SubmitSolution implements runner.ResultGatherer.
func (b *Builder) SubmitSolution(problemID boj.ProblemID) {}

// LocateSolution implements runner.ResultGatherer.
func (b *Builder) LocateSolution(solutionID uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.solutionID = &solutionID
}

// UpdateVerdict implements runner.ResultGatherer.
func (b *Builder) UpdateVerdict(o poller.Outcome) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.outcome = &o
}

// FinishRun implements runner.ResultGatherer.
func (b *Builder) FinishRun(o *poller.Outcome, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	b.finished = &now
	if o != nil {
		last := *o
		b.outcome = &last
	}
	switch {
	case err != nil:
		b.status = api.Failed
		msg := err.Error()
		b.errorMessage = &msg
	case b.outcome != nil && b.outcome.State == poller.Terminal:
		b.status = api.Settled
	default:
		b.status = api.Submitted
	}
}

// Report builds the api.RunReport from gathered data.
func (b *Builder) Report() api.RunReport {
	b.mu.Lock()
	defer b.mu.Unlock()

	start := b.started.Format(time.RFC3339)
	finish := start
	total := int64(0)
	if b.finished != nil {
		finish = b.finished.Format(time.RFC3339)
		total = b.finished.Sub(b.started).Milliseconds()
	}
	r := api.RunReport{
		RunUuid:      b.runUuid,
		Status:       b.status,
		Username:     b.username,
		ProblemID:    uint32(b.problemID),
		Language:     b.language,
		SolutionID:   b.solutionID,
		ErrorMessage: b.errorMessage,
		StartTime:    start,
		FinishTime:   finish,
		TotalTimeMs:  total,
	}
	if o := b.outcome; o != nil {
		r.Verdict = o.Verdict.String()
		r.Label = o.Label
		r.Attempts = o.Attempts
		if o.Usage != nil {
			r.Usage = &api.Usage{TimeMs: o.Usage.Time, MemoryKB: o.Usage.Memory}
		}
	}
	return r
}
