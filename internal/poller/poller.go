package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/programme-lv/bojclient/internal/boj"
)

var ErrPollTimeout = errors.New("gave up waiting for a verdict")

var errBudgetSpent = errors.New("poll time budget spent")

type State int

const (
	// Pending: the judge has not finished grading.
	Pending State = iota
	// Terminal: a final verdict from the alias table was observed.
	Terminal
	// Unrecognized: the label is neither a known verdict nor an in-progress label.
	Unrecognized
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Terminal:
		return "terminal"
	case Unrecognized:
		return "unrecognized"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome is the latest observation for one solution.
type Outcome struct {
	SolutionID uint32
	State      State
	Verdict    boj.Verdict
	Label      string
	Usage      *boj.ResourceUsage
	Attempts   int
}

// VerdictFetcher is satisfied by *boj.Client.
type VerdictFetcher interface {
	FetchVerdict(ctx context.Context, solutionID uint32) (boj.VerdictStatus, error)
}

const (
	DefaultInterval    = time.Second
	DefaultMaxAttempts = 600
	DefaultTimeout     = 10 * time.Minute
)

type Config struct {
	// Interval is the fixed delay between two requests; <= 0 selects DefaultInterval.
	Interval time.Duration
	// MaxAttempts bounds the number of requests; <= 0 selects DefaultMaxAttempts.
	MaxAttempts int
	// Timeout bounds the total wait; <= 0 selects DefaultTimeout.
	Timeout time.Duration
	// OnObserve, if set, is called after every successful request.
	OnObserve func(Outcome)
	Logger    *slog.Logger
}

type Poller struct {
	fetcher VerdictFetcher
	cfg     Config
}

func New(fetcher VerdictFetcher, cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Poller{fetcher: fetcher, cfg: cfg}
}

// Classify decides the state of a single reading.
func Classify(status boj.VerdictStatus) State {
	if status.Verdict.IsTerminal() {
		return Terminal
	}
	if boj.IsPendingLabel(status.Label) {
		return Pending
	}
	return Unrecognized
}

// Wait requests the verdict until it leaves Pending. It returns with a nil
// error once the state is Terminal or Unrecognized. When the attempt or time
// budget runs out the error matches ErrPollTimeout; when ctx is done the
// error is ctx.Err(). In both cases the last observed outcome is returned.
// Transport and decode errors stop polling and are returned as is.
func (p *Poller) Wait(ctx context.Context, solutionID uint32) (Outcome, error) {
	ctx, cancel := context.WithTimeoutCause(ctx, p.cfg.Timeout, errBudgetSpent)
	defer cancel()

	last := Outcome{SolutionID: solutionID, State: Pending}
	log := p.cfg.Logger.With("solution_id", solutionID)

	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		status, err := p.fetcher.FetchVerdict(ctx, solutionID)
		if err != nil {
			if ctxErr := p.stopReason(ctx); ctxErr != nil {
				return last, ctxErr
			}
			return last, err
		}

		last = Outcome{
			SolutionID: solutionID,
			State:      Classify(status),
			Verdict:    status.Verdict,
			Label:      status.Label,
			Usage:      status.Usage,
			Attempts:   attempt,
		}
		if p.cfg.OnObserve != nil {
			p.cfg.OnObserve(last)
		}
		log.Debug("observed verdict", "attempt", attempt, "state", last.State, "label", last.Label)

		if last.State != Pending {
			return last, nil
		}
		if attempt == p.cfg.MaxAttempts {
			break
		}

		timer := time.NewTimer(p.cfg.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return last, p.stopReason(ctx)
		case <-timer.C:
		}
	}
	return last, fmt.Errorf("%w: solution %d still pending after %d attempts", ErrPollTimeout, solutionID, last.Attempts)
}

// stopReason tells our own deadline apart from the caller's cancellation.
func (p *Poller) stopReason(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if errors.Is(context.Cause(ctx), errBudgetSpent) {
		return fmt.Errorf("%w: no verdict within %s", ErrPollTimeout, p.cfg.Timeout)
	}
	return err
}
