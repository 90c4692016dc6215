package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/softsholm/cadenza/internal/catalog"
	"github.com/softsholm/cadenza/internal/identity"
	"github.com/softsholm/cadenza/internal/playlist"
	"github.com/softsholm/cadenza/internal/shared"
	"github.com/softsholm/cadenza/internal/ui"
	"github.com/urfave/cli/v3"
)

// Shell launches the interactive terminal shell over the catalog and
// playlist components.
func (r *Runner) Shell(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	// Redirect logs to file to avoid interfering with shell rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.Path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	logger := shared.WithLogger(fileLogger, "session", shared.GenerateSessionID())
	r.SetLogger(logger)

	logger.Info("shell starting", "database", r.config.Database.Path)

	model := ui.NewModel(ctx,
		identity.NewService(db),
		catalog.NewAccess(db),
		playlist.NewEngine(db),
		logger,
	)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running shell: %w", err)
	}

	logger.Info("shell exited")
	return nil
}
