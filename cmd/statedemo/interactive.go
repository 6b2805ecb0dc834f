package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/statedemo/internal/container/provider"
	"github.com/alexisbeaulieu97/statedemo/internal/container/store"
	"github.com/alexisbeaulieu97/statedemo/internal/content"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/statedemo/internal/tui"
)

var errNotTerminal = errors.New("statedemo needs an interactive terminal; use `statedemo replay` or `statedemo compare` instead")

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runInteractive(cmd *cobra.Command, app *AppContext) error {
	ctx, logger := app.CommandContext(cmd, "command.interactive")
	if !isTerminal() {
		return errNotTerminal
	}

	// Log entries are held back while the program owns the screen.
	buffer := logging.NewEventBuffer(1000)
	screenLogger := logging.NewBufferedLogger(buffer)
	defer buffer.Flush(logger)

	publisher := events.NewLoggingPublisher(screenLogger.With("component", "events"))
	if _, err := app.Metrics.Observe(publisher); err != nil {
		return fmt.Errorf("observe events: %w", err)
	}

	ui := app.Config.UI
	recorder := store.NewRecorder(ui.HistoryLimit)
	s := store.Configure(
		store.WithMiddleware(store.LoggingMiddleware(screenLogger), recorder.Middleware()),
		store.WithPublisher(publisher),
		store.WithLogger(screenLogger),
		store.WithEventContext(ctx),
	)
	p := provider.New(
		provider.WithPublisher(publisher),
		provider.WithLogger(screenLogger),
		provider.WithEventContext(ctx),
	)

	cmp, err := content.Default()
	if err != nil {
		return err
	}

	model, err := tui.NewModel(tui.Deps{
		Context:    ctx,
		Provider:   p,
		Store:      s,
		Recorder:   recorder,
		Publisher:  publisher,
		Comparison: cmp,
		UI:         ui,
		Logger:     screenLogger,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	options := []tea.ProgramOption{tea.WithContext(ctx)}
	if ui.AltScreen {
		options = append(options, tea.WithAltScreen())
	}

	logger.Info(ctx, "starting interactive session", "start_page", ui.StartPage)
	if _, err := tea.NewProgram(model, options...).Run(); err != nil {
		logger.Error(ctx, "interactive session failed", "error", err)
		return fmt.Errorf("run interactive session: %w", err)
	}

	final := p.Snapshot()
	storeState := s.GetState().Snapshot()
	logger.Info(ctx, "interactive session finished",
		"context_count", final.Count, "context_theme", final.Theme.String(),
		"store_count", storeState.Count, "store_theme", storeState.Theme.String(),
		"dispatched", recorder.Len(),
		"buffered_logs", buffer.Len())
	return nil
}
