package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"sportsdeck/internal/shared"
	"sportsdeck/internal/ui"
)

// TUI launches the interactive event browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.sports == nil {
		return fmt.Errorf("%w: sports service not initialized", shared.ErrServiceUnavailable)
	}

	league := cmd.String("league")
	if league == "" {
		league = r.config.Defaults.LeagueID
	}
	season := cmd.String("season")
	if season == "" {
		season = r.config.Defaults.Season
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/sportsdeck-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.app, r.sports, league, season)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
