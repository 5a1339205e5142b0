package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"

	"sportsdeck/internal/models"
	"sportsdeck/internal/storage"
)

// FavouritesStore maintains the deduplicated set of saved events, keyed by
// event ID. Insertion order is preserved for display. Every mutation rewrites
// the full persisted snapshot.
type FavouritesStore struct {
	mu     sync.Mutex
	store  storage.Store
	logger *log.Logger
	items  []models.Event
}

// NewFavouritesStore creates an empty favourites store.
func NewFavouritesStore(store storage.Store, logger *log.Logger) *FavouritesStore {
	return &FavouritesStore{store: store, logger: logger}
}

// Add appends the event unless one with the same ID is already present.
// Returns true if the set changed.
func (f *FavouritesStore) Add(ctx context.Context, event models.Event) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == event.ID {
			return false
		}
	}

	f.items = append(f.items, event)
	f.persistLocked(ctx)
	return true
}

// Remove deletes all entries matching eventID. Removing an absent ID is a
// no-op. Returns true if the set changed.
func (f *FavouritesStore) Remove(ctx context.Context, eventID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.items[:0]
	for _, item := range f.items {
		if item.ID != eventID {
			kept = append(kept, item)
		}
	}

	if len(kept) == len(f.items) {
		return false
	}
	f.items = kept
	f.persistLocked(ctx)
	return true
}

// Contains reports whether an event with the given ID is saved.
func (f *FavouritesStore) Contains(eventID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == eventID {
			return true
		}
	}
	return false
}

// Items returns a copy of the saved events in insertion order.
func (f *FavouritesStore) Items() []models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Event, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of saved events.
func (f *FavouritesStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.items)
}

// Clear empties the set. Used on logout.
func (f *FavouritesStore) Clear(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = nil
	f.persistLocked(ctx)
}

// Restore loads the persisted snapshot, replacing the in-memory set
// unconditionally. A missing or malformed blob yields an empty set.
func (f *FavouritesStore) Restore(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := f.store.Get(ctx, storage.KeyFavourites)
	if !ok {
		f.items = nil
		return
	}

	var items []models.Event
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		f.logger.Warn("discarding malformed favourites", "error", err)
		f.items = nil
		return
	}
	f.items = items
}

// persistLocked writes the full snapshot. Callers hold f.mu, so the write
// always carries the latest in-memory state.
func (f *FavouritesStore) persistLocked(ctx context.Context) {
	items := f.items
	if items == nil {
		items = []models.Event{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		f.logger.Warn("failed to marshal favourites", "error", err)
		return
	}
	f.store.Set(ctx, storage.KeyFavourites, string(data))
}
