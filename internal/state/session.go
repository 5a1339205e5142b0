package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"

	"sportsdeck/internal/models"
	"sportsdeck/internal/storage"
)

// Status is the authentication state of the client.
type Status int

const (
	LoggedOut Status = iota
	LoggingIn
	LoggedIn
	LoginFailed
)

func (s Status) String() string {
	switch s {
	case LoggedOut:
		return "logged out"
	case LoggingIn:
		return "logging in"
	case LoggedIn:
		return "logged in"
	case LoginFailed:
		return "login failed"
	default:
		return "unknown"
	}
}

// AuthAPI is the remote identity provider consumed by the SessionManager.
// Implemented by [services.AuthService].
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
}

// SessionManager orchestrates login, registration, logout, and cold-start
// session restoration across the local account directory and the remote
// auth API.
//
// Login consults the directory first: a locally-registered account gets a
// locally synthesized token and never touches the network. The remote API is
// only a fallback. A remote account sharing a username with a later local
// registration is therefore shadowed by the local one; the local match
// always wins.
type SessionManager struct {
	mu         sync.Mutex
	store      storage.Store
	directory  *UserDirectory
	remote     AuthAPI
	favourites *FavouritesStore
	logger     *log.Logger

	status  Status
	session *models.Session
	failure string
}

// NewSessionManager wires a session manager. favourites may be nil; when set
// it is cleared on logout.
func NewSessionManager(store storage.Store, directory *UserDirectory, remote AuthAPI, favourites *FavouritesStore, logger *log.Logger) *SessionManager {
	return &SessionManager{
		store:      store,
		directory:  directory,
		remote:     remote,
		favourites: favourites,
		logger:     logger,
		status:     LoggedOut,
	}
}

// Status returns the current authentication state.
func (m *SessionManager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.status
}

// Session returns a copy of the active session, if any.
func (m *SessionManager) Session() (models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return models.Session{}, false
	}
	return *m.session, true
}

// FailureReason returns the human-readable message of the last failed login.
func (m *SessionManager) FailureReason() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.failure
}

// Restore rebuilds the session from storage on cold start. A persisted
// token+user pair is trusted as-is: no server round-trip revalidates it.
// With either piece missing the client starts logged out.
func (m *SessionManager) Restore(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, haveToken := m.store.Get(ctx, storage.KeyAuthToken)
	rawUser, haveUser := m.store.Get(ctx, storage.KeyUser)
	if !haveToken || !haveUser || token == "" {
		m.status = LoggedOut
		m.session = nil
		return
	}

	var user models.RemoteUser
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		m.logger.Warn("discarding malformed persisted user", "error", err)
		m.status = LoggedOut
		m.session = nil
		return
	}

	m.session = &models.Session{
		User:  user,
		Token: &oauth2.Token{AccessToken: token},
	}
	m.status = LoggedIn
	m.logger.Info("session restored", "username", user.Username)
}

// Login authenticates with the directory first and the remote API second.
// On failure the manager lands in LoginFailed carrying the best available
// message; the returned error wraps the same cause.
func (m *SessionManager) Login(ctx context.Context, username, password string) (models.Session, error) {
	m.mu.Lock()
	m.status = LoggingIn
	m.failure = ""
	m.mu.Unlock()

	if account, ok := m.directory.FindByCredentials(ctx, username, password); ok {
		session := models.LocalSession(account)
		m.establish(ctx, session)
		m.logger.Info("logged in from local directory", "username", username)
		return session, nil
	}

	session, err := m.remote.Login(ctx, username, password)
	if err != nil {
		m.mu.Lock()
		m.status = LoginFailed
		m.failure = err.Error()
		m.session = nil
		m.mu.Unlock()
		return models.Session{}, err
	}

	m.establish(ctx, session)
	m.logger.Info("logged in via remote API", "username", username)
	return session, nil
}

// establish records the session and mirrors it to storage. The token is
// persisted as the raw access-token string, matching the original client's
// storage layout.
func (m *SessionManager) establish(ctx context.Context, session models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = &session
	m.status = LoggedIn

	m.store.Set(ctx, storage.KeyAuthToken, session.Token.AccessToken)

	data, err := json.Marshal(session.User)
	if err != nil {
		m.logger.Warn("failed to marshal session user", "error", err)
		return
	}
	m.store.Set(ctx, storage.KeyUser, string(data))
}

// Register creates a local account through the directory. Duplicate
// username/email conflicts surface as [shared.ErrDuplicateAccount] without
// any state change, and a successful registration does not log the user in.
func (m *SessionManager) Register(ctx context.Context, username, email, password string) (models.Account, error) {
	account, err := m.directory.Register(ctx, username, email, password)
	if err != nil {
		return models.Account{}, err
	}

	m.logger.Info("account registered", "username", username)
	return account, nil
}

// Logout drops the session from memory and storage and resets the
// favourites store. Always succeeds from the caller's perspective: a failed
// storage clear is logged by the store and otherwise ignored.
func (m *SessionManager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.session = nil
	m.status = LoggedOut
	m.failure = ""
	m.mu.Unlock()

	m.store.Remove(ctx, storage.KeyAuthToken)
	m.store.Remove(ctx, storage.KeyUser)

	if m.favourites != nil {
		m.favourites.Clear(ctx)
	}
	m.logger.Info("logged out")
}
