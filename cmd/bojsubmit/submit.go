package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/gatherer/respbuilder"
	"github.com/programme-lv/bojclient/internal/gatherer/termgath"
	"github.com/programme-lv/bojclient/internal/runner"
	"github.com/urfave/cli/v3"
)

func submitCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "submit",
		Usage:     "submit the target file for a problem",
		ArgsUsage: "PROBLEM_ID",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "source file (overrides target_file)"},
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Usage: "language name, see `bojsubmit languages`"},
			&cli.StringFlag{Name: "open", Usage: "source visibility: open, close or onlyaccepted"},
			&cli.BoolFlag{Name: "wait", Aliases: []string{"w"}, Usage: "wait for the verdict"},
			&cli.DurationFlag{Name: "interval", Usage: "delay between verdict requests"},
			&cli.DurationFlag{Name: "timeout", Usage: "give up waiting after this long"},
			&cli.IntFlag{Name: "max-attempts", Usage: "give up waiting after this many requests"},
			&cli.BoolFlag{Name: "json", Usage: "print a JSON report instead of progress lines"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.submit(ctx, cmd)
		},
	}
}

func (a *app) submit(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one PROBLEM_ID, got %d arguments", cmd.Args().Len())
	}
	problemID, err := boj.ParseProblemID(cmd.Args().First())
	if err != nil {
		return err
	}

	cfg := *a.cfg
	if cmd.IsSet("file") {
		cfg.TargetFile = cmd.String("file")
	}
	if cmd.IsSet("language") {
		cfg.Language = cmd.String("language")
	}
	if cmd.IsSet("open") {
		cfg.CodeOpen = cmd.String("open")
	}
	if cmd.IsSet("interval") {
		cfg.PollInterval = cmd.Duration("interval")
	}
	if cmd.IsSet("timeout") {
		cfg.PollTimeout = cmd.Duration("timeout")
	}
	if cmd.IsSet("max-attempts") {
		cfg.PollMaxAttempts = int(cmd.Int("max-attempts"))
	}
	if cfg.Language != "" {
		// surface the typed error before the generic validation message
		if _, err := boj.ParseLanguage(cfg.Language); err != nil {
			return err
		}
	}
	if err := cfg.ValidateSubmit(); err != nil {
		return err
	}

	language, err := boj.ParseLanguage(cfg.Language)
	if err != nil {
		return err
	}
	visibility, err := boj.ParseVisibility(cfg.CodeOpen)
	if err != nil {
		return err
	}
	source, err := os.ReadFile(cfg.TargetFile)
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}

	client, err := a.client()
	if err != nil {
		return err
	}

	runUuid := uuid.NewString()
	report := respbuilder.New(runUuid)
	gath := runner.MultiGatherer{report}
	if !cmd.Bool("json") {
		gath = append(gath, termgath.New(a.stdout))
	}
	sinks, err := a.sinks(ctx, runUuid)
	if err != nil {
		return err
	}
	gath = append(gath, sinks...)

	a.logger.Debug("starting run", "run_uuid", runUuid, "file", cfg.TargetFile)
	_, runErr := runner.New(client, cfg.Poll(), a.logger).Run(ctx, gath, runner.Request{
		ProblemID:  problemID,
		Language:   language,
		Visibility: visibility,
		Source:     string(source),
		Wait:       cmd.Bool("wait"),
	})

	if cmd.Bool("json") {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Report()); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	}
	return runErr
}
