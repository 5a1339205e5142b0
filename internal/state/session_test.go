package state

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/oauth2"

	"sportsdeck/internal/models"
	"sportsdeck/internal/shared"
	"sportsdeck/internal/storage"
	tu "sportsdeck/internal/testing"
)

// fakeAuthAPI implements AuthAPI and counts calls so tests can assert the
// remote collaborator was never contacted.
type fakeAuthAPI struct {
	calls   int
	session models.Session
	err     error
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (models.Session, error) {
	f.calls++
	if f.err != nil {
		return models.Session{}, f.err
	}
	return f.session, nil
}

func remoteSession(username, token string) models.Session {
	return models.Session{
		User:  models.RemoteUser{ID: 1, Username: username},
		Token: &oauth2.Token{AccessToken: token},
	}
}

func newTestApp(store storage.Store, remote AuthAPI) *App {
	return NewApp(store, remote, shared.NewLogger(testLogger()))
}

func TestSessionManager(t *testing.T) {
	ctx := context.Background()

	t.Run("local-first login never contacts the remote", func(t *testing.T) {
		store := storage.NewMemoryStore()
		remote := &fakeAuthAPI{}
		app := newTestApp(store, remote)

		if _, err := app.Sessions.Register(ctx, "alice", "a@x.com", "secret"); err != nil {
			t.Fatalf("registration failed: %v", err)
		}

		session, err := app.Sessions.Login(ctx, "alice", "secret")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}

		if remote.calls != 0 {
			t.Errorf("expected no remote calls, got %d", remote.calls)
		}
		if app.Sessions.Status() != LoggedIn {
			t.Errorf("expected LoggedIn, got %v", app.Sessions.Status())
		}
		if session.Token == nil || session.Token.AccessToken == "" {
			t.Error("expected locally synthesized token")
		}

		// session mirrored to storage
		if tok, ok := store.Get(ctx, storage.KeyAuthToken); !ok || tok != session.Token.AccessToken {
			t.Errorf("expected persisted token %q, got %q", session.Token.AccessToken, tok)
		}
		if _, ok := store.Get(ctx, storage.KeyUser); !ok {
			t.Error("expected persisted user")
		}
	})

	t.Run("remote fallback on directory miss", func(t *testing.T) {
		store := storage.NewMemoryStore()
		remote := &fakeAuthAPI{session: remoteSession("emilys", "remote-tok")}
		app := newTestApp(store, remote)

		session, err := app.Sessions.Login(ctx, "emilys", "emilyspass")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}

		if remote.calls != 1 {
			t.Errorf("expected exactly one remote call, got %d", remote.calls)
		}
		if session.Token.AccessToken != "remote-tok" {
			t.Errorf("expected remote-issued token, got %s", session.Token.AccessToken)
		}
	})

	t.Run("remote failure lands in LoginFailed with reason", func(t *testing.T) {
		store := storage.NewMemoryStore()
		remote := &fakeAuthAPI{err: errors.New("authentication failed: Invalid credentials")}
		app := newTestApp(store, remote)

		_, err := app.Sessions.Login(ctx, "emilys", "wrong")
		if err == nil {
			t.Fatal("expected login error")
		}

		if app.Sessions.Status() != LoginFailed {
			t.Errorf("expected LoginFailed, got %v", app.Sessions.Status())
		}
		if app.Sessions.FailureReason() != "authentication failed: Invalid credentials" {
			t.Errorf("unexpected failure reason %q", app.Sessions.FailureReason())
		}
		if _, ok := app.Sessions.Session(); ok {
			t.Error("expected no active session after failure")
		}
		if _, ok := store.Get(ctx, storage.KeyAuthToken); ok {
			t.Error("expected no persisted token after failure")
		}
	})

	t.Run("register does not auto-login", func(t *testing.T) {
		store := storage.NewMemoryStore()
		app := newTestApp(store, &tu.MockAuthService{})

		if _, err := app.Sessions.Register(ctx, "alice", "a@x.com", "secret"); err != nil {
			t.Fatalf("registration failed: %v", err)
		}

		if app.Sessions.Status() != LoggedOut {
			t.Errorf("expected LoggedOut after registration, got %v", app.Sessions.Status())
		}
	})

	t.Run("registration scenario", func(t *testing.T) {
		// register alice, duplicate username fails, login stays local
		store := storage.NewMemoryStore()
		remote := &fakeAuthAPI{}
		app := newTestApp(store, remote)

		if _, err := app.Sessions.Register(ctx, "alice", "a@x.com", "secret"); err != nil {
			t.Fatalf("first registration failed: %v", err)
		}

		_, err := app.Sessions.Register(ctx, "alice", "other@x.com", "x")
		if !errors.Is(err, shared.ErrDuplicateAccount) {
			t.Fatalf("expected ErrDuplicateAccount, got %v", err)
		}

		if _, err := app.Sessions.Login(ctx, "alice", "secret"); err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if app.Sessions.Status() != LoggedIn {
			t.Errorf("expected LoggedIn, got %v", app.Sessions.Status())
		}
		if remote.calls != 0 {
			t.Errorf("expected no remote calls, got %d", remote.calls)
		}
	})

	t.Run("restore trusts a persisted session", func(t *testing.T) {
		store := storage.NewMemoryStore()
		remote := &fakeAuthAPI{session: remoteSession("emilys", "remote-tok")}
		app := newTestApp(store, remote)

		if _, err := app.Sessions.Login(ctx, "emilys", "emilyspass"); err != nil {
			t.Fatalf("login failed: %v", err)
		}

		// fresh process over the same persisted state
		fresh := storage.NewMemoryStore()
		fresh.Seed(store.Snapshot())
		app2 := newTestApp(fresh, &tu.MockAuthService{})
		app2.Restore(ctx)

		if app2.Sessions.Status() != LoggedIn {
			t.Fatalf("expected LoggedIn after restore, got %v", app2.Sessions.Status())
		}
		session, ok := app2.Sessions.Session()
		if !ok {
			t.Fatal("expected restored session")
		}
		if session.User.Username != "emilys" {
			t.Errorf("expected restored user emilys, got %s", session.User.Username)
		}
		if session.Token.AccessToken != "remote-tok" {
			t.Errorf("expected restored token, got %s", session.Token.AccessToken)
		}
	})

	t.Run("restore with missing pieces stays logged out", func(t *testing.T) {
		cases := map[string]map[string]string{
			"nothing persisted": {},
			"token only":        {storage.KeyAuthToken: "tok"},
			"user only":         {storage.KeyUser: `{"id":1,"username":"emilys"}`},
			"malformed user":    {storage.KeyAuthToken: "tok", storage.KeyUser: "{broken"},
		}

		for name, seed := range cases {
			t.Run(name, func(t *testing.T) {
				store := storage.NewMemoryStore()
				store.Seed(seed)

				app := newTestApp(store, &tu.MockAuthService{})
				app.Restore(ctx)

				if app.Sessions.Status() != LoggedOut {
					t.Errorf("expected LoggedOut, got %v", app.Sessions.Status())
				}
			})
		}
	})

	t.Run("logout clears session and favourites, restore stays logged out", func(t *testing.T) {
		store := storage.NewMemoryStore()
		remote := &fakeAuthAPI{session: remoteSession("emilys", "remote-tok")}
		app := newTestApp(store, remote)

		if _, err := app.Sessions.Login(ctx, "emilys", "emilyspass"); err != nil {
			t.Fatalf("login failed: %v", err)
		}
		app.Favourites.Add(ctx, models.Event{ID: "100"})

		app.Sessions.Logout(ctx)

		if app.Sessions.Status() != LoggedOut {
			t.Errorf("expected LoggedOut, got %v", app.Sessions.Status())
		}
		if app.Favourites.Len() != 0 {
			t.Errorf("expected favourites cleared, got %d", app.Favourites.Len())
		}

		// simulated fresh process: nothing to restore
		fresh := storage.NewMemoryStore()
		fresh.Seed(store.Snapshot())
		app2 := newTestApp(fresh, &tu.MockAuthService{})
		app2.Restore(ctx)

		if app2.Sessions.Status() != LoggedOut {
			t.Errorf("expected LoggedOut after restore, got %v", app2.Sessions.Status())
		}
		if _, ok := app2.Sessions.Session(); ok {
			t.Error("expected no session after restore")
		}
		if app2.Favourites.Len() != 0 {
			t.Errorf("expected no favourites after restore, got %d", app2.Favourites.Len())
		}
	})

	t.Run("local account shadows a remote account with the same username", func(t *testing.T) {
		store := storage.NewMemoryStore()
		remote := &fakeAuthAPI{session: remoteSession("emilys", "remote-tok")}
		app := newTestApp(store, remote)

		if _, err := app.Sessions.Register(ctx, "emilys", "local@x.com", "localpass"); err != nil {
			t.Fatalf("registration failed: %v", err)
		}

		session, err := app.Sessions.Login(ctx, "emilys", "localpass")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if remote.calls != 0 {
			t.Errorf("local match must win without a remote call, got %d calls", remote.calls)
		}
		if session.Token.AccessToken == "remote-tok" {
			t.Error("expected a locally synthesized token, not the remote one")
		}
	})

	t.Run("status strings", func(t *testing.T) {
		for status, want := range map[Status]string{
			LoggedOut:   "logged out",
			LoggingIn:   "logging in",
			LoggedIn:    "logged in",
			LoginFailed: "login failed",
			Status(99):  "unknown",
		} {
			if got := status.String(); got != want {
				t.Errorf("Status(%d): expected %q, got %q", status, want, got)
			}
		}
	})
}

func TestAppRestoreFull(t *testing.T) {
	ctx := context.Background()

	store := storage.NewMemoryStore()
	remote := &fakeAuthAPI{session: remoteSession("emilys", "remote-tok")}
	app := newTestApp(store, remote)

	if _, err := app.Sessions.Login(ctx, "emilys", "emilyspass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	app.Favourites.Add(ctx, models.Event{ID: "100", Name: "Arsenal vs Chelsea"})
	app.Theme.Set(ctx, true)

	fresh := storage.NewMemoryStore()
	fresh.Seed(store.Snapshot())
	app2 := newTestApp(fresh, &tu.MockAuthService{})
	app2.Restore(ctx)

	if app2.Sessions.Status() != LoggedIn {
		t.Errorf("expected LoggedIn, got %v", app2.Sessions.Status())
	}
	if app2.Favourites.Len() != 1 || !app2.Favourites.Contains("100") {
		t.Errorf("expected favourites restored, got %+v", app2.Favourites.Items())
	}
	if !app2.Theme.IsDark() {
		t.Error("expected dark theme restored")
	}
}
