// package storage provides the durable key/value substrate for all
// client-side state: session, favourites, theme, and the local account
// directory.
//
// Every value is a string-keyed JSON blob. Mutating operations are
// fail-soft: storage I/O errors are logged and swallowed, never returned.
// Callers must not assume a write succeeded; on the next cold start they
// re-derive defaults from whatever is actually present.
package storage

import "context"

// Well-known keys. These match the original client's device storage exactly,
// so a migrated data file keeps working.
const (
	KeyAuthToken       = "authToken"
	KeyUser            = "user"
	KeyFavourites      = "favourites"
	KeyDarkMode        = "isDarkMode"
	KeyRegisteredUsers = "registeredUsers"
)

// SessionKeys is the user-scoped key set for a full storage wipe, matching
// the set the original client removed in one sweep. The account directory is
// intentionally excluded: self-registered accounts outlive sessions. Logout
// itself is narrower, removing only the token and user while favourites are
// cleared through their store so memory stays in sync.
var SessionKeys = []string{KeyAuthToken, KeyUser, KeyFavourites, KeyDarkMode}

// Store is a durable string-keyed blob store.
//
// Get reports ok=false on a missing key and on read failure; the two are
// indistinguishable to callers under the fail-soft policy. Set, Remove and
// Clear never report failure.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
	Clear(ctx context.Context, keys ...string)
}
