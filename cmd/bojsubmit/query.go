package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func whoamiCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "print the username the login cookies belong to",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			name, err := client.CurrentUsername(ctx)
			if err != nil {
				return err
			}
			fprintf(a.stdout, "%s\n", name)
			return nil
		},
	}
}

func statusCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "list recent solutions from the status page",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "problem", Aliases: []string{"p"}, Usage: "only this problem"},
			&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Usage: "only this user"},
			&cli.BoolFlag{Name: "me", Usage: "only the logged-in user"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 20, Usage: "print at most this many rows, 0 for all"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			var filter boj.StatusFilter
			if cmd.IsSet("problem") {
				if filter.ProblemID, err = boj.ParseProblemID(cmd.String("problem")); err != nil {
					return err
				}
			}
			filter.UserID = cmd.String("user")
			if cmd.Bool("me") {
				if filter.UserID, err = client.CurrentUsername(ctx); err != nil {
					return err
				}
			}

			solutions, err := client.ListSolutions(ctx, filter)
			if err != nil {
				return err
			}
			if limit := int(cmd.Int("limit")); limit > 0 && len(solutions) > limit {
				solutions = solutions[:limit]
			}
			printSolutions(a, solutions)
			return nil
		},
	}
}

func printSolutions(a *app, solutions []boj.Solution) {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fprintf(tw, "ID\tUSER\tPROBLEM\tRESULT\tMEMORY\tTIME\tLANGUAGE\n")
	for _, s := range solutions {
		mem, tm := "-", "-"
		if s.Usage != nil {
			mem = fmt.Sprintf("%dKB", s.Usage.Memory)
			tm = fmt.Sprintf("%dms", s.Usage.Time)
		}
		fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.User, s.ProblemID, s.Label, mem, tm, s.Language)
	}
	_ = tw.Flush()
}

func languagesCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "languages",
		Usage: "list the languages a solution can be submitted in",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fprintf(tw, "NAME\tJUDGE NAME\tCODE\n")
			for _, l := range boj.Languages() {
				fprintf(tw, "%s\t%s\t%d\n", l.Name(), l.DisplayName(), l.Code())
			}
			return tw.Flush()
		},
	}
}

func configCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "print the merged configuration with cookies masked",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, src := range a.cfg.Sources {
				fprintf(a.stdout, "# %s\n", src)
			}
			masked := a.cfg.Masked()
			out, err := yaml.Marshal(&masked)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = a.stdout.Write(out)
			return err
		},
	}
}
