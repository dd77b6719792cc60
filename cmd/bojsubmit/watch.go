package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/programme-lv/bojclient/internal/gatherer/termgath"
	"github.com/programme-lv/bojclient/internal/poller"
	"github.com/programme-lv/bojclient/internal/runner"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func watchCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "poll already submitted solutions until they are graded",
		ArgsUsage: "SOLUTION_ID...",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "parallel", Value: 1, Usage: "solutions polled at the same time"},
			&cli.DurationFlag{Name: "interval", Usage: "delay between verdict requests"},
			&cli.DurationFlag{Name: "timeout", Usage: "give up waiting after this long"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.watch(ctx, cmd)
		},
	}
}

func (a *app) watch(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("expected at least one SOLUTION_ID")
	}
	ids := make([]uint32, 0, cmd.Args().Len())
	for _, arg := range cmd.Args().Slice() {
		id, err := strconv.ParseUint(arg, 10, 32)
		if err != nil || id == 0 {
			return fmt.Errorf("invalid solution id %q", arg)
		}
		ids = append(ids, uint32(id))
	}

	poll := a.cfg.Poll()
	if cmd.IsSet("interval") {
		poll.Interval = cmd.Duration("interval")
	}
	if cmd.IsSet("timeout") {
		poll.Timeout = cmd.Duration("timeout")
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	r := runner.New(client, poll, a.logger)
	term := termgath.New(a.stdout)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, int(cmd.Int("parallel"))))
	for _, id := range ids {
		g.Go(func() error {
			_, err := r.Watch(ctx, term, id)
			return err
		})
	}
	err = g.Wait()

	settled := 0
	for _, id := range ids {
		if o, ok := r.Tracker().Get(id); ok && o.State != poller.Pending {
			settled++
		}
	}
	a.logger.Info("watch finished", "solutions", len(ids), "settled", settled)
	return err
}
