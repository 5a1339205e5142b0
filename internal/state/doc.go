// package state holds the client-side application state: the session, the
// local account directory, the favourites set, and the theme preference.
//
// Each store owns its slice of state behind a mutex and mirrors every
// mutation to [storage.Store] as a whole-value snapshot taken while the lock
// is held, so a slow write can never clobber a newer in-memory state.
// Persistence is fail-soft: if a write is lost, memory stays authoritative
// for the rest of the session and the next cold start re-derives defaults.
//
// The [App] struct is the composition root's handle on all of it; UI layers
// receive the App rather than reaching into package-level singletons.
package state
