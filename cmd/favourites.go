package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"sportsdeck/internal/shared"
)

// FavList lists saved favourites.
func (r *Runner) FavList(ctx context.Context, cmd *cli.Command) error {
	items := r.app.Favourites.Items()

	if cmd.Bool("json") {
		return r.writeJSON(items, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Favourites (%d)", len(items)))
	if len(items) == 0 {
		return r.writePlain("Nothing saved yet\n")
	}
	for _, event := range items {
		r.writeEventLine(event)
	}
	return nil
}

// FavAdd fetches an event by ID and saves it.
func (r *Runner) FavAdd(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: an event ID is required", shared.ErrMissingArgument)
	}

	event, err := r.sports.EventDetails(ctx, id)
	if err != nil {
		return err
	}

	if !r.app.Favourites.Add(ctx, *event) {
		return r.writePlain("Already saved: %s\n", event.Name)
	}
	return r.writePlain("✓ Saved %s\n", event.Name)
}

// FavRemove removes a saved event by ID.
func (r *Runner) FavRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: an event ID is required", shared.ErrMissingArgument)
	}

	if !r.app.Favourites.Remove(ctx, id) {
		return r.writePlain("Not in favourites: %s\n", id)
	}
	return r.writePlain("✓ Removed %s\n", id)
}

// FavClear removes all saved favourites.
func (r *Runner) FavClear(ctx context.Context, cmd *cli.Command) error {
	r.app.Favourites.Clear(ctx)
	return r.writePlain("✓ Favourites cleared\n")
}
