package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"

	"sportsdeck/internal/storage"
)

// PreferenceStore holds the single persisted theme preference.
type PreferenceStore struct {
	mu     sync.Mutex
	store  storage.Store
	logger *log.Logger
	dark   bool
}

// NewPreferenceStore creates a preference store defaulting to light mode.
func NewPreferenceStore(store storage.Store, logger *log.Logger) *PreferenceStore {
	return &PreferenceStore{store: store, logger: logger}
}

// IsDark reports the current theme.
func (p *PreferenceStore) IsDark() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.dark
}

// Toggle flips the theme and returns the new value.
func (p *PreferenceStore) Toggle(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.dark = !p.dark
	p.persistLocked(ctx)
	return p.dark
}

// Set forces the theme to dark or light.
func (p *PreferenceStore) Set(ctx context.Context, dark bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.dark = dark
	p.persistLocked(ctx)
}

// Restore loads the persisted preference; absent or malformed values fall
// back to light mode.
func (p *PreferenceStore) Restore(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.dark = false

	raw, ok := p.store.Get(ctx, storage.KeyDarkMode)
	if !ok {
		return
	}

	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		p.logger.Warn("discarding malformed theme preference", "error", err)
		return
	}
	p.dark = dark
}

func (p *PreferenceStore) persistLocked(ctx context.Context) {
	data, _ := json.Marshal(p.dark)
	p.store.Set(ctx, storage.KeyDarkMode, string(data))
}
