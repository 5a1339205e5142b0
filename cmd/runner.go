package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"sportsdeck/internal/models"
	"sportsdeck/internal/services"
	"sportsdeck/internal/shared"
	"sportsdeck/internal/state"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	app    *state.App
	sports services.SportsAPI
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	App    *state.App
	Sports services.SportsAPI
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Sports == nil {
		opts.Sports = services.NewSportsService(opts.Config.API.SportsBaseURL, nil, opts.Config.API.RateLimit)
	}

	return &Runner{
		config: opts.Config,
		app:    opts.App,
		sports: opts.Sports,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// SetLogger swaps the runner's logger, used to redirect logs away from the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, eventsCommand, favCommand, themeCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// writeEventLine prints a one-line event summary, marking favourites with a star.
func (r *Runner) writeEventLine(event models.Event) {
	marker := " "
	if r.app.Favourites.Contains(event.ID) {
		marker = "★"
	}

	line := fmt.Sprintf("%s %-8s %-12s %s", marker, event.ID, event.DisplayStatus(), event.Name)
	if event.HasScore() {
		line = fmt.Sprintf("%s (%s-%s)", line, event.HomeScore, event.AwayScore)
	}
	r.writePlain("%s\n", line)
}
