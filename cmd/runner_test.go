package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"sportsdeck/internal/services"
	"sportsdeck/internal/shared"
	"sportsdeck/internal/state"
	"sportsdeck/internal/storage"
	tu "sportsdeck/internal/testing"
)

func newTestRunner(t *testing.T, sports services.SportsAPI) (*Runner, *bytes.Buffer) {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := shared.NewLogger(logs)
	shared.SetLogLevel(logger, log.ErrorLevel)

	store := storage.NewMemoryStore()
	auth := services.NewAuthService("http://127.0.0.1:0", &http.Client{})
	app := state.NewApp(store, auth, logger)

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		App:    app,
		Sports: sports,
		Logger: logger,
		Output: output,
	})
	return runner, output
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil sports builds one from config", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.sports == nil {
				t.Error("expected a default sports service")
			}
		})
	})

	t.Run("register includes all top-level commands", func(t *testing.T) {
		runner, _ := newTestRunner(t, nil)
		commands := runner.register()

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}
		for _, want := range []string{"setup", "auth", "events", "fav", "theme", "tui"} {
			if !names[want] {
				t.Errorf("expected command %q to be registered", want)
			}
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		runner, output := newTestRunner(t, nil)

		if err := runner.writeJSON(map[string]string{"k": "v"}, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if got := output.String(); got != "{\"k\":\"v\"}\n" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("writeJSON handles write failure", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

		err := runner.writeJSON(map[string]string{"k": "v"}, false)
		if err == nil || !strings.Contains(err.Error(), "failed to write output") {
			t.Fatalf("expected write error, got %v", err)
		}
	})
}

func TestRunnerActions(t *testing.T) {
	ctx := context.Background()
	bare := &cli.Command{}

	t.Run("theme lifecycle", func(t *testing.T) {
		runner, output := newTestRunner(t, nil)

		if err := runner.ThemeShow(ctx, bare); err != nil {
			t.Fatalf("ThemeShow failed: %v", err)
		}
		if !strings.Contains(output.String(), "light") {
			t.Errorf("expected light theme by default, got %q", output.String())
		}

		output.Reset()
		if err := runner.ThemeToggle(ctx, bare); err != nil {
			t.Fatalf("ThemeToggle failed: %v", err)
		}
		if !strings.Contains(output.String(), "dark") {
			t.Errorf("expected dark after toggle, got %q", output.String())
		}
	})

	t.Run("fav list is empty by default", func(t *testing.T) {
		runner, output := newTestRunner(t, nil)

		if err := runner.FavList(ctx, bare); err != nil {
			t.Fatalf("FavList failed: %v", err)
		}
		if !strings.Contains(output.String(), "Nothing saved yet") {
			t.Errorf("expected empty-state message, got %q", output.String())
		}
	})

	t.Run("fav clear empties the set", func(t *testing.T) {
		runner, output := newTestRunner(t, nil)

		if err := runner.FavClear(ctx, bare); err != nil {
			t.Fatalf("FavClear failed: %v", err)
		}
		if !strings.Contains(output.String(), "Favourites cleared") {
			t.Errorf("expected confirmation, got %q", output.String())
		}
		if runner.app.Favourites.Len() != 0 {
			t.Errorf("expected empty favourites, got %d", runner.app.Favourites.Len())
		}
	})

	t.Run("events upcoming renders fetched schedule", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if req.URL.Path != "/eventsseason.php" {
				t.Errorf("unexpected path %s", req.URL.Path)
			}
			w.Write([]byte(`{"events":[{"idEvent":"100","strEvent":"Arsenal vs Chelsea","dateEvent":"2025-05-01","strStatus":"Not Started"}]}`))
		}))
		defer server.Close()

		runner, output := newTestRunner(t, services.NewSportsService(server.URL, http.DefaultClient, 100))
		if err := runner.EventsUpcoming(ctx, bare); err != nil {
			t.Fatalf("EventsUpcoming failed: %v", err)
		}
		if !strings.Contains(output.String(), "Arsenal vs Chelsea") {
			t.Errorf("expected event in output, got %q", output.String())
		}
		if !strings.Contains(output.String(), "2025-05-01") {
			t.Errorf("expected date for an unstarted event, got %q", output.String())
		}
	})

	t.Run("fav add goes through the sports client", func(t *testing.T) {
		runner, output := newTestRunner(t, &tu.MockSportsService{})

		root := &cli.Command{Name: "sportsdeck", Commands: runner.register()}
		if err := root.Run(ctx, []string{"sportsdeck", "fav", "add", "100"}); err != nil {
			t.Fatalf("fav add failed: %v", err)
		}

		if !runner.app.Favourites.Contains("100") {
			t.Error("expected event 100 to be saved")
		}
		if !strings.Contains(output.String(), "Saved") {
			t.Errorf("expected confirmation, got %q", output.String())
		}

		output.Reset()
		if err := root.Run(ctx, []string{"sportsdeck", "fav", "add", "100"}); err != nil {
			t.Fatalf("second fav add failed: %v", err)
		}
		if !strings.Contains(output.String(), "Already saved") {
			t.Errorf("expected duplicate notice, got %q", output.String())
		}
		if runner.app.Favourites.Len() != 1 {
			t.Errorf("expected one favourite, got %d", runner.app.Favourites.Len())
		}
	})

	t.Run("setup creates the database file", func(t *testing.T) {
		wd := tu.MustGetwd(t)
		tu.MustChdir(t, t.TempDir())
		defer tu.MustChdir(t, wd)

		runner, _ := newTestRunner(t, nil)
		if err := runner.Setup(ctx, bare); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		tu.AssertFileExists(t, "sportsdeck.db")
	})

	t.Run("whoami without a session", func(t *testing.T) {
		runner, output := newTestRunner(t, nil)

		if err := runner.AuthWhoami(ctx, bare); err != nil {
			t.Fatalf("AuthWhoami failed: %v", err)
		}
		if !strings.Contains(output.String(), "Not logged in") {
			t.Errorf("expected logged-out message, got %q", output.String())
		}
	})

	t.Run("logout always succeeds", func(t *testing.T) {
		runner, output := newTestRunner(t, nil)

		if err := runner.AuthLogout(ctx, bare); err != nil {
			t.Fatalf("AuthLogout failed: %v", err)
		}
		if !strings.Contains(output.String(), "Logged out") {
			t.Errorf("expected confirmation, got %q", output.String())
		}
	})
}
