package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"sportsdeck/internal/shared"
)

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// ThemeShow prints the active theme.
func (r *Runner) ThemeShow(ctx context.Context, cmd *cli.Command) error {
	return r.writePlain("Theme: %s\n", themeName(r.app.Theme.IsDark()))
}

// ThemeToggle switches between light and dark.
func (r *Runner) ThemeToggle(ctx context.Context, cmd *cli.Command) error {
	dark := r.app.Theme.Toggle(ctx)
	return r.writePlain("Theme: %s\n", themeName(dark))
}

// ThemeSet sets the theme to light or dark.
func (r *Runner) ThemeSet(ctx context.Context, cmd *cli.Command) error {
	mode := cmd.StringArg("mode")
	switch mode {
	case "dark":
		r.app.Theme.Set(ctx, true)
	case "light":
		r.app.Theme.Set(ctx, false)
	default:
		return fmt.Errorf("%w: mode must be light or dark, got %q", shared.ErrInvalidArgument, mode)
	}
	return r.writePlain("Theme: %s\n", mode)
}
