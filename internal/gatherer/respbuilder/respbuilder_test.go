package respbuilder_test

import (
	"errors"
	"testing"

	"github.com/programme-lv/bojclient/api"
	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/gatherer/respbuilder"
	"github.com/programme-lv/bojclient/internal/poller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSettled(t *testing.T) {
	b := respbuilder.New("run-1")
	b.StartRun(1000, boj.Cpp17)
	b.ResolveIdentity("alice")
	b.SubmitSolution(1000)
	b.LocateSolution(101)
	b.UpdateVerdict(poller.Outcome{SolutionID: 101, State: poller.Pending, Label: "채점 중", Attempts: 1})
	final := poller.Outcome{
		SolutionID: 101,
		State:      poller.Terminal,
		Verdict:    boj.Wrong,
		Label:      "틀렸습니다",
		Usage:      &boj.ResourceUsage{Time: 8, Memory: 2020},
		Attempts:   2,
	}
	b.UpdateVerdict(final)
	b.FinishRun(&final, nil)

	r := b.Report()
	assert.Equal(t, "run-1", r.RunUuid)
	assert.Equal(t, api.Settled, r.Status)
	assert.Equal(t, "alice", r.Username)
	assert.Equal(t, uint32(1000), r.ProblemID)
	assert.Equal(t, "Cpp17", r.Language)
	require.NotNil(t, r.SolutionID)
	assert.Equal(t, uint32(101), *r.SolutionID)
	assert.Equal(t, "Wrong", r.Verdict)
	assert.Equal(t, "틀렸습니다", r.Label)
	assert.Equal(t, 2, r.Attempts)
	assert.Equal(t, &api.Usage{TimeMs: 8, MemoryKB: 2020}, r.Usage)
	assert.Nil(t, r.ErrorMessage)
	assert.GreaterOrEqual(t, r.TotalTimeMs, int64(0))
}

func TestReportFailed(t *testing.T) {
	b := respbuilder.New("run-2")
	b.StartRun(1000, boj.Go)
	b.FinishRun(nil, errors.New("not authenticated"))

	r := b.Report()
	assert.Equal(t, api.Failed, r.Status)
	assert.Nil(t, r.SolutionID)
	assert.Empty(t, r.Verdict)
	require.NotNil(t, r.ErrorMessage)
	assert.Equal(t, "not authenticated", *r.ErrorMessage)
}

func TestReportSubmittedWithoutWait(t *testing.T) {
	b := respbuilder.New("run-3")
	b.LocateSolution(5)
	o := poller.Outcome{SolutionID: 5, State: poller.Pending, Label: "기다리는 중"}
	b.UpdateVerdict(o)
	b.FinishRun(&o, nil)

	assert.Equal(t, api.Submitted, b.Report().Status)
}
