package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/config"
	"github.com/programme-lv/bojclient/internal/poller"
	"github.com/programme-lv/bojclient/internal/runner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCommand(os.Stdout, os.Stderr).Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bojsubmit:", describe(err))
		os.Exit(1)
	}
}

// describe turns the errors a user can act on into a hint.
func describe(err error) string {
	switch {
	case errors.Is(err, boj.ErrNotAuthenticated):
		return fmt.Sprintf("%v\nthe judge did not recognise the login: check the boj_auto_login and online_judge cookies (or %s / %s)",
			err, config.EnvAutoLogin, config.EnvOnlineJudge)
	case errors.Is(err, config.ErrMissingLogin):
		return fmt.Sprintf("%v\ncopy both cookies from a logged-in browser into .bc.yml or set %s and %s",
			err, config.EnvAutoLogin, config.EnvOnlineJudge)
	case errors.Is(err, boj.ErrUnknownLanguage):
		return fmt.Sprintf("%v\nrun `bojsubmit languages` for the supported names", err)
	case errors.Is(err, runner.ErrSolutionNotFound):
		return fmt.Sprintf("%v\nthe submit may have been rejected; check the status page", err)
	case errors.Is(err, poller.ErrPollTimeout):
		return fmt.Sprintf("%v\nthe solution is still being graded; follow it with `bojsubmit watch`", err)
	case errors.Is(err, context.Canceled):
		return "interrupted"
	}
	return err.Error()
}

func fprintf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
