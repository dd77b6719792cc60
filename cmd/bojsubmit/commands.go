package main

import (
	"io"

	"github.com/urfave/cli/v3"
)

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return (&app{stdout: stdout, stderr: stderr}).command()
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "bojsubmit",
		Usage:     "submit solutions to Baekjoon Online Judge and follow their verdicts",
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "directory to start the config search from (default: working directory)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("BOJ_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "judge address",
				Sources: cli.EnvVars("BOJ_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "nats-url",
				Usage:   "publish run events to this NATS server",
				Sources: cli.EnvVars("BOJ_NATS_URL"),
			},
			&cli.StringFlag{
				Name:    "sqs-queue-url",
				Usage:   "send run events to this SQS queue",
				Sources: cli.EnvVars("BOJ_SQS_QUEUE_URL"),
			},
		},
		Before: a.before,
		After:  a.after,
		Commands: []*cli.Command{
			submitCommand(a),
			whoamiCommand(a),
			statusCommand(a),
			watchCommand(a),
			languagesCommand(a),
			configCommand(a),
		},
	}
}
