package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/statedemo/internal/app/replay"
	"github.com/alexisbeaulieu97/statedemo/internal/config"
	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	"github.com/alexisbeaulieu97/statedemo/internal/tui/components"
)

type replayOptions struct {
	Ops        []string
	ScriptPath string
	Variant    string
	Watch      []string
	Metrics    bool
}

func newReplayCmd(app *AppContext) *cobra.Command {
	opts := replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Drive the containers with one operation sequence and compare the results",
		Long: `Replay applies the same operations to the context provider and the store,
prints every intermediate snapshot and exits non-zero if the containers disagree.
The context provider has no reset, so replaying reset against both fails before
any operation runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.replay")

			input, err := resolveReplayInput(opts, cmd.Flags().Changed("variant"))
			if err != nil {
				return err
			}
			variant, err := replay.ParseVariant(input.variant)
			if err != nil {
				return err
			}
			fields, err := parseFields(opts.Watch)
			if err != nil {
				return err
			}

			logger.Info(ctx, "replay requested", "script", input.name, "variant", string(variant), "operations", len(input.ops))

			svc := replay.NewService(
				replay.WithLogger(logger),
				replay.WithPublisher(app.Events),
				replay.WithFields(fields...),
			)
			result, runErr := svc.Replay(ctx, variant, input.ops)
			if result == nil {
				return runErr
			}
			if runErr == nil && input.script != nil {
				runErr = input.script.Check(result.Traces[0].Final())
			}

			out := cmd.OutOrStdout()
			writeReplayTable(out, result)
			fmt.Fprintln(out)
			fmt.Fprintln(out, components.NewSummary(replaySummary(result, runErr, !app.Config.UI.Unicode)).View())
			var domainErr *appstate.DomainError
			if errors.As(runErr, &domainErr) {
				if rendered, ok := domainErr.Context["diff"].(string); ok && rendered != "" {
					fmt.Fprintln(out)
					fmt.Fprint(out, rendered)
				}
			}

			if opts.Metrics {
				fmt.Fprintln(out)
				if err := app.Metrics.WriteText(out); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringSliceVar(&opts.Ops, "ops", nil, "Comma separated operations (increment, decrement, reset, toggle_theme)")
	cmd.Flags().StringVar(&opts.ScriptPath, "script", "", "Path to a YAML replay script")
	cmd.Flags().StringVar(&opts.Variant, "variant", string(replay.VariantBoth), "Containers to drive: both, context or store")
	cmd.Flags().StringSliceVar(&opts.Watch, "watch", []string{"count", "theme"}, "Fields whose notifications are counted and compared")
	cmd.Flags().BoolVar(&opts.Metrics, "metrics", false, "Print Prometheus counters after the replay")

	return cmd
}

type replayInput struct {
	name    string
	variant string
	ops     []appstate.Operation
	// script is nil for --ops.
	script *config.Script
}

func resolveReplayInput(opts replayOptions, variantSet bool) (replayInput, error) {
	hasOps := len(opts.Ops) > 0
	hasScript := strings.TrimSpace(opts.ScriptPath) != ""
	switch {
	case hasOps && hasScript:
		return replayInput{}, errors.New("use either --ops or --script, not both")
	case !hasOps && !hasScript:
		return replayInput{}, errors.New("nothing to replay: pass --ops or --script")
	}

	if hasOps {
		ops, err := appstate.ParseOperations(opts.Ops)
		if err != nil {
			return replayInput{}, err
		}
		return replayInput{name: "inline", variant: opts.Variant, ops: ops}, nil
	}

	script, err := config.ParseScript(opts.ScriptPath)
	if err != nil {
		return replayInput{}, err
	}
	ops, err := script.Ops()
	if err != nil {
		return replayInput{}, err
	}
	variant := script.Variant
	if variantSet {
		variant = opts.Variant
	}
	return replayInput{name: script.Name, variant: variant, ops: ops, script: script}, nil
}

func parseFields(values []string) ([]appstate.Field, error) {
	fields := make([]appstate.Field, 0, len(values))
	for _, value := range values {
		field, err := appstate.ParseField(value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func writeReplayTable(w io.Writer, result *replay.Result) {
	header := fmt.Sprintf("%-5s %-14s", "Step", "Operation")
	for _, trace := range result.Traces {
		header += fmt.Sprintf(" %-16s", trace.Container)
	}
	fmt.Fprintln(w, strings.TrimRight(header, " "))
	fmt.Fprintln(w, strings.Repeat("-", len(strings.TrimRight(header, " "))))

	steps := len(result.Operations) + 1
	for step := 0; step < steps; step++ {
		op := "(initial)"
		if step > 0 {
			op = result.Operations[step-1].String()
		}
		row := fmt.Sprintf("%-5d %-14s", step, op)
		for _, trace := range result.Traces {
			cell := "-"
			if step < len(trace.Snapshots) {
				s := trace.Snapshots[step]
				cell = fmt.Sprintf("%d/%s", s.Count, s.Theme)
			}
			row += fmt.Sprintf(" %-16s", cell)
		}
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

func replaySummary(result *replay.Result, runErr error, ascii bool) components.SummaryData {
	names := make([]string, 0, len(result.Traces))
	for _, trace := range result.Traces {
		names = append(names, trace.Container)
	}
	final := result.Traces[0].Final()

	data := components.SummaryData{
		Operations: len(result.Operations),
		Containers: names,
		FinalCount: final.Count,
		FinalTheme: final.Theme.String(),
		ASCII:      ascii,
	}
	for _, trace := range result.Traces {
		counts := make([]string, 0, len(trace.Notifications))
		for _, field := range appstate.Fields() {
			if n, ok := trace.Notifications[field]; ok {
				counts = append(counts, fmt.Sprintf("%s %d time(s)", field, n))
			}
		}
		data.Checks = append(data.Checks, components.Check{
			Passed:  true,
			Message: fmt.Sprintf("%s notified %s", trace.Container, strings.Join(counts, ", ")),
		})
	}
	var divergence *appstate.DomainError
	diverged := errors.As(runErr, &divergence) && divergence.Code == appstate.ErrCodeDivergence
	if len(result.Traces) > 1 {
		check := components.Check{Passed: !diverged, Message: strings.Join(names, " and ") + " agree at every step"}
		if diverged {
			check.Message = runErr.Error()
		}
		data.Checks = append(data.Checks, check)
	}
	if runErr != nil && !diverged {
		data.Checks = append(data.Checks, components.Check{Passed: false, Message: runErr.Error()})
	}
	return data
}
