// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing league events:
//  1. [EventListView] : Browse upcoming and past events for the configured league
//  2. [FavouritesView] : Review saved events
//  3. [DetailView] : Inspect a single event, including scores and description
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Favourites toggled from any list view are written through [state.FavouritesStore],
// so the saved set survives quitting the TUI.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, f, t, tab, q) with
// contextual help displayed via charmbracelet/bubbles/help. The active
// [Palette] follows the persisted dark-mode preference.
package ui
