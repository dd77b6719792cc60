package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/config"
	"github.com/programme-lv/bojclient/internal/gatherer/natsgath"
	"github.com/programme-lv/bojclient/internal/gatherer/sqsgath"
	"github.com/programme-lv/bojclient/internal/logging"
	"github.com/programme-lv/bojclient/internal/runner"
	"github.com/urfave/cli/v3"
)

// app carries what every command shares once flags and config are read.
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	logger *slog.Logger

	closers []func()
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	loader := &config.Loader{WorkDir: cmd.String("dir")}
	if loader.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ctx, fmt.Errorf("failed to get working directory: %w", err)
		}
		loader.WorkDir = wd
	}
	cfg, err := loader.Load()
	if err != nil {
		return ctx, err
	}

	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("base-url") {
		cfg.BaseURL = cmd.String("base-url")
	}
	if cmd.IsSet("nats-url") {
		cfg.NatsURL = cmd.String("nats-url")
	}
	if cmd.IsSet("sqs-queue-url") {
		cfg.SQSQueueURL = cmd.String("sqs-queue-url")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return ctx, err
	}
	a.logger = logging.New(a.stderr, level)
	slog.SetDefault(a.logger)
	a.logger.Debug("loaded config", "sources", cfg.Sources)
	a.cfg = cfg
	return ctx, nil
}

func (a *app) after(ctx context.Context, cmd *cli.Command) error {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
	return nil
}

// client builds a logged-in judge client. The login is validated first so
// Apply never sees a malformed cookie.
func (a *app) client() (*boj.Client, error) {
	if err := a.cfg.ValidateLogin(); err != nil {
		return nil, err
	}
	session, err := boj.NewSession(
		boj.WithBaseURL(a.cfg.BaseURL),
		boj.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}
	session.Apply(a.cfg.Login())
	return boj.NewClient(session), nil
}

// sinks returns the event gatherers configured for a run besides the
// terminal one.
func (a *app) sinks(ctx context.Context, runUuid string) ([]runner.ResultGatherer, error) {
	var sinks []runner.ResultGatherer
	if a.cfg.NatsURL != "" {
		nc, err := natsgath.Connect(a.cfg.NatsURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { drain(nc, a.logger) })
		sinks = append(sinks, natsgath.New(ctx, nc, runUuid, a.cfg.NatsSubject, a.logger))
	}
	if a.cfg.SQSQueueURL != "" {
		client, err := sqsgath.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sqsgath.New(ctx, client, runUuid, a.cfg.SQSQueueURL, a.logger))
	}
	return sinks, nil
}

func drain(nc *nats.Conn, logger *slog.Logger) {
	if err := nc.Drain(); err != nil {
		logger.Warn("failed to drain nats connection", "error", err)
	}
}
