package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"sportsdeck/internal/models"
	"sportsdeck/internal/shared"
)

func (r *Runner) leagueOrDefault(cmd *cli.Command) string {
	if league := cmd.String("league"); league != "" {
		return league
	}
	return r.config.Defaults.LeagueID
}

func (r *Runner) seasonOrDefault(cmd *cli.Command) string {
	if season := cmd.String("season"); season != "" {
		return season
	}
	return r.config.Defaults.Season
}

// EventsUpcoming lists the season schedule for a league.
func (r *Runner) EventsUpcoming(ctx context.Context, cmd *cli.Command) error {
	league := r.leagueOrDefault(cmd)
	season := r.seasonOrDefault(cmd)

	r.logger.Info("fetching season schedule", "league", league, "season", season)

	events, err := r.sports.SeasonEvents(ctx, league, season)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(events, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Season %s", season))
	if len(events) == 0 {
		return r.writePlain("No events found\n")
	}
	for _, event := range events {
		r.writeEventLine(event)
	}
	return nil
}

// EventsPast lists recent results for a league.
func (r *Runner) EventsPast(ctx context.Context, cmd *cli.Command) error {
	league := r.leagueOrDefault(cmd)

	r.logger.Info("fetching past events", "league", league)

	events, err := r.sports.PastLeagueEvents(ctx, league)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(events, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Recent results")
	if len(events) == 0 {
		return r.writePlain("No events found\n")
	}
	for _, event := range events {
		r.writeEventLine(event)
	}
	return nil
}

// EventsSearch searches events by name.
func (r *Runner) EventsSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: a search query is required", shared.ErrMissingArgument)
	}

	events, err := r.sports.SearchEvents(ctx, query)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(events, cmd.Bool("pretty"))
	}

	if len(events) == 0 {
		return r.writePlain("No events matched %q\n", query)
	}
	for _, event := range events {
		r.writeEventLine(event)
	}
	return nil
}

// EventsLookup shows full details for one event.
func (r *Runner) EventsLookup(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: an event ID is required", shared.ErrMissingArgument)
	}

	event, err := r.sports.EventDetails(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(event, cmd.Bool("pretty"))
	}

	r.writeEventDetail(*event)
	return nil
}

// EventsTeam shows details for one team.
func (r *Runner) EventsTeam(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: a team ID is required", shared.ErrMissingArgument)
	}

	team, err := r.sports.TeamDetails(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(team, cmd.Bool("pretty"))
	}

	r.writePlainHeader(team.Name)
	r.writePlain("League:  %s\n", team.League)
	r.writePlain("Stadium: %s\n", team.Stadium)
	if team.Description != "" {
		r.writePlain("\n%s\n", team.Description)
	}
	return nil
}

func (r *Runner) writeEventDetail(event models.Event) {
	r.writePlainHeader(event.Name)
	r.writePlain("League: %s\n", event.League)
	r.writePlain("Date:   %s %s\n", event.Date, event.Time)
	r.writePlain("Venue:  %s\n", event.Venue)
	r.writePlain("Status: %s\n", event.DisplayStatus())
	if event.HasScore() {
		r.writePlain("Score:  %s %s - %s %s\n", event.HomeTeam, event.HomeScore, event.AwayScore, event.AwayTeam)
	}
	if r.app.Favourites.Contains(event.ID) {
		r.writePlain("★ favourited\n")
	}
	if event.Description != "" {
		r.writePlain("\n%s\n", event.Description)
	}
}
