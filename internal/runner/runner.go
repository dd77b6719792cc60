package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/poller"
)

// ErrSolutionNotFound means the judge answered the submit but no new
// solution showed up in the status list afterwards.
var ErrSolutionNotFound = errors.New("submitted solution not found in status list")

// Judge is the part of *boj.Client a run needs.
type Judge interface {
	CurrentUsername(ctx context.Context) (string, error)
	FetchCsrfKey(ctx context.Context, id boj.ProblemID) (boj.CsrfKey, error)
	Submit(ctx context.Context, req boj.SubmissionRequest) error
	ListSolutions(ctx context.Context, filter boj.StatusFilter) ([]boj.Solution, error)
	poller.VerdictFetcher
}

type Request struct {
	ProblemID  boj.ProblemID
	Language   boj.Language
	Visibility boj.Visibility
	Source     string
	// Wait polls the verdict until it leaves Pending.
	Wait bool
}

type Result struct {
	Username string
	Solution boj.Solution
	Outcome  poller.Outcome
}

type Runner struct {
	judge   Judge
	poll    poller.Config
	tracker *poller.Tracker
	logger  *slog.Logger
}

func New(judge Judge, poll poller.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		judge:   judge,
		poll:    poll,
		tracker: poller.NewTracker(),
		logger:  logger,
	}
}

// Tracker holds the latest outcome of every solution this runner observed.
func (r *Runner) Tracker() *poller.Tracker { return r.tracker }

// Run submits req and reports every phase to gath. The returned result is
// filled up to the phase that failed.
func (r *Runner) Run(ctx context.Context, gath ResultGatherer, req Request) (res Result, err error) {
	gath.StartRun(req.ProblemID, req.Language)
	var located bool
	defer func() {
		if located {
			outcome := res.Outcome
			gath.FinishRun(&outcome, err)
		} else {
			gath.FinishRun(nil, err)
		}
	}()

	log := r.logger.With("problem_id", req.ProblemID, "language", req.Language)

	res.Username, err = r.judge.CurrentUsername(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to resolve identity: %w", err)
	}
	gath.ResolveIdentity(res.Username)
	log.Info("resolved identity", "username", res.Username)

	filter := boj.StatusFilter{ProblemID: req.ProblemID, UserID: res.Username}
	before, err := r.judge.ListSolutions(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to list solutions before submit: %w", err)
	}
	baseline := newestID(before)

	key, err := r.judge.FetchCsrfKey(ctx, req.ProblemID)
	if err != nil {
		return res, fmt.Errorf("failed to get submission token: %w", err)
	}

	err = r.judge.Submit(ctx, boj.SubmissionRequest{
		ProblemID:  req.ProblemID,
		Language:   req.Language,
		Visibility: req.Visibility,
		Source:     req.Source,
		CsrfKey:    key,
	})
	if err != nil {
		return res, err
	}
	gath.SubmitSolution(req.ProblemID)
	log.Info("submitted solution")

	after, err := r.judge.ListSolutions(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to list solutions after submit: %w", err)
	}
	sol, ok := firstAfter(after, baseline)
	if !ok {
		return res, fmt.Errorf("%w: problem %s, user %s, newest known id %d",
			ErrSolutionNotFound, req.ProblemID, res.Username, baseline)
	}
	res.Solution = sol
	located = true
	gath.LocateSolution(sol.ID)
	log.Info("located solution", "solution_id", sol.ID)

	res.Outcome = r.observe(gath, outcomeOf(sol))
	if !req.Wait || res.Outcome.State != poller.Pending {
		return res, nil
	}

	res.Outcome, err = r.wait(ctx, gath, sol.ID)
	return res, err
}

// Watch polls an already known solution until it leaves Pending.
func (r *Runner) Watch(ctx context.Context, gath ResultGatherer, solutionID uint32) (outcome poller.Outcome, err error) {
	gath.LocateSolution(solutionID)
	defer func() {
		o := outcome
		gath.FinishRun(&o, err)
	}()
	return r.wait(ctx, gath, solutionID)
}

func (r *Runner) wait(ctx context.Context, gath ResultGatherer, solutionID uint32) (poller.Outcome, error) {
	cfg := r.poll
	cfg.Logger = r.logger
	cfg.OnObserve = func(o poller.Outcome) { r.observe(gath, o) }

	outcome, err := poller.New(r.judge, cfg).Wait(ctx, solutionID)
	if err != nil {
		return outcome, fmt.Errorf("failed to wait for verdict of solution %d: %w", solutionID, err)
	}
	r.logger.Info("verdict settled", "solution_id", solutionID, "state", outcome.State, "label", outcome.Label)
	return outcome, nil
}

func (r *Runner) observe(gath ResultGatherer, o poller.Outcome) poller.Outcome {
	held := r.tracker.Record(o)
	gath.UpdateVerdict(held)
	return held
}

func outcomeOf(sol boj.Solution) poller.Outcome {
	return poller.Outcome{
		SolutionID: sol.ID,
		State:      poller.Classify(boj.VerdictStatus{Verdict: sol.Verdict, Label: sol.Label}),
		Verdict:    sol.Verdict,
		Label:      sol.Label,
		Usage:      sol.Usage,
	}
}

func newestID(sols []boj.Solution) uint32 {
	var id uint32
	for _, s := range sols {
		id = max(id, s.ID)
	}
	return id
}

// firstAfter picks the newest solution with an id above baseline.
func firstAfter(sols []boj.Solution, baseline uint32) (boj.Solution, bool) {
	var best boj.Solution
	found := false
	for _, s := range sols {
		if s.ID > baseline && (!found || s.ID > best.ID) {
			best, found = s, true
		}
	}
	return best, found
}
