package apigath

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/programme-lv/bojclient/api"
	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/poller"
)

// Publisher delivers one encoded event.
type Publisher interface {
	Publish(ctx context.Context, body []byte) error
}

const (
	publishTimeout = 10 * time.Second
	// shutdownTimeout bounds each publish once the run context is done.
	shutdownTimeout = time.Second
)

// Gatherer turns run progress into api messages and hands them to a
// Publisher. Delivery errors are logged and otherwise ignored so that a
// broken sink never fails a submission.
type Gatherer struct {
	ctx     context.Context
	runUuid string
	pub     Publisher
	logger  *slog.Logger
}

// New publishes under ctx, normally the run's context. Events sent after ctx
// is done still get a short grace period so the final message can leave.
func New(ctx context.Context, runUuid string, pub Publisher, logger *slog.Logger) *Gatherer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gatherer{ctx: ctx, runUuid: runUuid, pub: pub, logger: logger}
}

func (g *Gatherer) publishContext() (context.Context, context.CancelFunc) {
	if g.ctx.Err() != nil {
		return context.WithTimeout(context.WithoutCancel(g.ctx), shutdownTimeout)
	}
	return context.WithTimeout(g.ctx, publishTimeout)
}

func (g *Gatherer) send(msg any) {
	b, err := json.Marshal(msg)
	if err != nil {
		g.logger.Error("failed to marshal message", "run_uuid", g.runUuid, "error", err)
		return
	}

	ctx, cancel := g.publishContext()
	defer cancel()
	if err := g.pub.Publish(ctx, b); err != nil {
		g.logger.Warn("failed to publish message", "run_uuid", g.runUuid, "error", err)
	}
}

func (g *Gatherer) StartRun(problemID boj.ProblemID, language boj.Language) {
	g.send(api.NewStartRun(g.runUuid, uint32(problemID), language.Name()))
}

func (g *Gatherer) ResolveIdentity(username string) {
	g.send(api.NewResolveIdentity(g.runUuid, username))
}

func (g *Gatherer) SubmitSolution(problemID boj.ProblemID) {
	g.send(api.NewSubmitSolution(g.runUuid, uint32(problemID)))
}

func (g *Gatherer) LocateSolution(solutionID uint32) {
	g.send(api.NewLocateSolution(g.runUuid, solutionID))
}

func (g *Gatherer) UpdateVerdict(o poller.Outcome) {
	g.send(api.NewUpdateVerdict(g.runUuid, o.SolutionID, o.State.String(), o.Verdict.String(), o.Label, mapUsage(o.Usage), o.Attempts))
}

func (g *Gatherer) FinishRun(o *poller.Outcome, err error) {
	var solutionID *uint32
	var verdict *string
	if o != nil {
		id := o.SolutionID
		solutionID = &id
		v := o.Verdict.String()
		verdict = &v
	}
	var errMsg *string
	if err != nil {
		msg := err.Error()
		errMsg = &msg
	}
	g.send(api.NewFinishRun(g.runUuid, solutionID, verdict, errMsg))
}

func mapUsage(u *boj.ResourceUsage) *api.Usage {
	if u == nil {
		return nil
	}
	return &api.Usage{TimeMs: u.Time, MemoryKB: u.Memory}
}
