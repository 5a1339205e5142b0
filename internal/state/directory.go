package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"sportsdeck/internal/models"
	"sportsdeck/internal/shared"
	"sportsdeck/internal/storage"
)

// UserDirectory manages the locally self-registered accounts, independent of
// the remote identity provider. The backing sequence is loaded lazily from
// storage and rewritten wholesale on every successful registration.
type UserDirectory struct {
	mu       sync.Mutex
	store    storage.Store
	logger   *log.Logger
	accounts []models.Account
	loaded   bool
}

// NewUserDirectory creates a directory over the given store.
func NewUserDirectory(store storage.Store, logger *log.Logger) *UserDirectory {
	return &UserDirectory{store: store, logger: logger}
}

// loadLocked reads the persisted account list once. A missing or malformed
// blob yields an empty directory; malformed data is logged and discarded.
func (d *UserDirectory) loadLocked(ctx context.Context) {
	if d.loaded {
		return
	}
	d.loaded = true

	raw, ok := d.store.Get(ctx, storage.KeyRegisteredUsers)
	if !ok {
		return
	}

	var accounts []models.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		d.logger.Warn("discarding malformed account list", "error", err)
		return
	}
	d.accounts = accounts
}

// FindByCredentials returns the first account matching the exact username
// and password pair.
func (d *UserDirectory) FindByCredentials(ctx context.Context, username, password string) (models.Account, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadLocked(ctx)

	for _, account := range d.accounts {
		if account.Username == username && account.Password == password {
			return account, true
		}
	}
	return models.Account{}, false
}

// Register appends a new account if no existing account shares its username
// or email. Conflicts return [shared.ErrDuplicateAccount] and invalid fields
// return [shared.ErrInvalidInput]; neither mutates anything.
func (d *UserDirectory) Register(ctx context.Context, username, email, password string) (models.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadLocked(ctx)

	// conflicts are reported before field validation, so a taken username
	// surfaces as such even when the rest of the form is invalid
	for _, account := range d.accounts {
		if account.Username == username {
			return models.Account{}, fmt.Errorf("%w: username %q is taken", shared.ErrDuplicateAccount, username)
		}
		if account.Email == email {
			return models.Account{}, fmt.Errorf("%w: email %q is taken", shared.ErrDuplicateAccount, email)
		}
	}

	candidate := models.NewAccount(username, email, password)
	if err := candidate.Validate(); err != nil {
		return models.Account{}, err
	}

	d.accounts = append(d.accounts, candidate)
	d.persistLocked(ctx)
	return candidate, nil
}

// Count returns the number of registered accounts.
func (d *UserDirectory) Count(ctx context.Context) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadLocked(ctx)

	return len(d.accounts)
}

// persistLocked rewrites the whole sequence. Callers hold d.mu, so the
// snapshot always reflects the latest state.
func (d *UserDirectory) persistLocked(ctx context.Context) {
	data, err := json.Marshal(d.accounts)
	if err != nil {
		d.logger.Warn("failed to marshal account list", "error", err)
		return
	}
	d.store.Set(ctx, storage.KeyRegisteredUsers, string(data))
}
