package state

import (
	"context"

	"github.com/charmbracelet/log"

	"sportsdeck/internal/storage"
)

// App is the explicit application-state container owned by the composition
// root. UI layers receive it by reference; nothing in this package is a
// package-level singleton.
type App struct {
	Store      storage.Store
	Directory  *UserDirectory
	Sessions   *SessionManager
	Favourites *FavouritesStore
	Theme      *PreferenceStore
}

// NewApp wires the stores over a shared storage substrate and remote auth
// collaborator.
func NewApp(store storage.Store, remote AuthAPI, logger *log.Logger) *App {
	directory := NewUserDirectory(store, logger)
	favourites := NewFavouritesStore(store, logger)

	return &App{
		Store:      store,
		Directory:  directory,
		Favourites: favourites,
		Theme:      NewPreferenceStore(store, logger),
		Sessions:   NewSessionManager(store, directory, remote, favourites, logger),
	}
}

// Restore performs the cold-start restoration pass: theme, favourites, and
// session are rebuilt from storage before the UI is considered ready.
func (a *App) Restore(ctx context.Context) {
	a.Theme.Restore(ctx)
	a.Favourites.Restore(ctx)
	a.Sessions.Restore(ctx)
}
