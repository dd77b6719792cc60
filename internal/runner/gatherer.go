package runner

import (
	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/poller"
)

//go:generate mockgen -destination=mocks/mock_gatherer.go -package=mocks . ResultGatherer

// ResultGatherer receives the progress of a run. Implementations must not
// block for long: they are called from the goroutine driving the run.
type ResultGatherer interface {
	StartRun(problemID boj.ProblemID, language boj.Language)
	ResolveIdentity(username string)
	SubmitSolution(problemID boj.ProblemID)
	LocateSolution(solutionID uint32)
	UpdateVerdict(outcome poller.Outcome)

	// FinishRun is called exactly once per run. outcome is nil when the
	// run failed before a solution was located.
	FinishRun(outcome *poller.Outcome, err error)
}

// MultiGatherer fans every event out to all of its gatherers in order.
type MultiGatherer []ResultGatherer

func (m MultiGatherer) StartRun(problemID boj.ProblemID, language boj.Language) {
	for _, g := range m {
		g.StartRun(problemID, language)
	}
}

func (m MultiGatherer) ResolveIdentity(username string) {
	for _, g := range m {
		g.ResolveIdentity(username)
	}
}

func (m MultiGatherer) SubmitSolution(problemID boj.ProblemID) {
	for _, g := range m {
		g.SubmitSolution(problemID)
	}
}

func (m MultiGatherer) LocateSolution(solutionID uint32) {
	for _, g := range m {
		g.LocateSolution(solutionID)
	}
}

func (m MultiGatherer) UpdateVerdict(outcome poller.Outcome) {
	for _, g := range m {
		g.UpdateVerdict(outcome)
	}
}

func (m MultiGatherer) FinishRun(outcome *poller.Outcome, err error) {
	for _, g := range m {
		g.FinishRun(outcome, err)
	}
}
