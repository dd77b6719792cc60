package termgath

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/poller"
)

var (
	okColor      = color.New(color.FgGreen, color.Bold)
	wrongColor   = color.New(color.FgRed, color.Bold)
	limitColor   = color.New(color.FgYellow, color.Bold)
	crashColor   = color.New(color.FgMagenta, color.Bold)
	pendingColor = color.New(color.Faint)
	errColor     = color.New(color.FgRed)
)

// TerminalGatherer prints run progress for humans. One instance may be
// shared by several concurrent watches.
type TerminalGatherer struct {
	StartedAt time.Time

	mu   sync.Mutex
	out  io.Writer
	last map[uint32]string
}

func New(out io.Writer) *TerminalGatherer {
	return &TerminalGatherer{
		StartedAt: time.Now(),
		out:       out,
		last:      map[uint32]string{},
	}
}

func (t *TerminalGatherer) printf(c *color.Color, format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c == nil {
		fmt.Fprintf(t.out, format, args...)
		return
	}
	c.Fprintf(t.out, format, args...)
}

func (t *TerminalGatherer) StartRun(problemID boj.ProblemID, language boj.Language) {
	t.printf(nil, "== Submitting problem %s as %s ==\n", problemID, language.DisplayName())
}

func (t *TerminalGatherer) ResolveIdentity(username string) {
	t.printf(nil, "-- Logged in as %s --\n", username)
}

func (t *TerminalGatherer) SubmitSolution(problemID boj.ProblemID) {
	t.printf(nil, "-- Solution for problem %s submitted --\n", problemID)
}

func (t *TerminalGatherer) LocateSolution(solutionID uint32) {
	t.printf(nil, "-> Solution %d\n", solutionID)
}

// UpdateVerdict prints a line only when the label of a solution changes.
func (t *TerminalGatherer) UpdateVerdict(o poller.Outcome) {
	t.mu.Lock()
	if last, seen := t.last[o.SolutionID]; seen && last == o.Label {
		t.mu.Unlock()
		return
	}
	t.last[o.SolutionID] = o.Label
	t.mu.Unlock()

	switch o.State {
	case poller.Pending:
		label := o.Label
		if label == "" {
			label = "waiting"
		}
		t.printf(pendingColor, "   #%d %s\n", o.SolutionID, label)
	case poller.Terminal:
		t.printf(verdictColor(o.Verdict), "<- #%d %s (%s)%s\n", o.SolutionID, o.Label, o.Verdict, usage(o.Usage))
	default:
		t.printf(nil, "<- #%d %s\n", o.SolutionID, o.Label)
	}
}

func (t *TerminalGatherer) FinishRun(o *poller.Outcome, err error) {
	dur := time.Since(t.StartedAt).Round(time.Millisecond)
	if err != nil {
		t.printf(errColor, "== Run failed after %s: %v ==\n", dur, err)
		return
	}
	if o != nil && o.State == poller.Pending {
		t.printf(nil, "== Solution %d is still being graded (%s) ==\n", o.SolutionID, dur)
		return
	}
	t.printf(nil, "== Finished in %s ==\n", dur)
}

func verdictColor(v boj.Verdict) *color.Color {
	switch v {
	case boj.Accepted:
		return okColor
	case boj.Wrong, boj.WrongFormat:
		return wrongColor
	case boj.Timeout, boj.OutOfMemory, boj.TooMuchOutput:
		return limitColor
	case boj.RuntimeError, boj.CompileError:
		return crashColor
	}
	return nil
}

func usage(u *boj.ResourceUsage) string {
	if u == nil {
		return ""
	}
	return fmt.Sprintf(" time=%dms mem=%dKB", u.Time, u.Memory)
}
