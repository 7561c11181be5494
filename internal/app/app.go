// Package app wires the session gate, collection store, search state and
// edit session into the single surface the view talks to. The view emits
// user intents through App's methods and renders Displayed(); it owns no
// state of its own.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"

	"note-keep/internal/services/editor"
	"note-keep/internal/services/notes"
	"note-keep/internal/session"
)

// App composes the client core for one authenticated user.
type App struct {
	gate   *session.Gate
	store  *notes.Store
	editor *editor.Session
	gw     notes.Gateway
	nf     notes.Notifier
	log    *slog.Logger

	mu       sync.Mutex
	identity string
	search   notes.SearchState
}

// New builds the client core from its collaborators.
func New(gate *session.Gate, gw notes.Gateway, nf notes.Notifier, v *validator.Validate, log *slog.Logger) *App {
	store := notes.NewStore(gw, nf, log)
	return &App{
		gate:   gate,
		store:  store,
		editor: editor.NewSession(gw, store, nf, v, log),
		gw:     gw,
		nf:     nf,
		log:    log,
	}
}

const (
	msgNotAuthorised = "First, Authorise yourself!"

	deleteFailurePrefix = "Failed to delete note"
	pinFailurePrefix    = "Failed to update pin status"
)

// Start admits the user and performs the initial collection load. When the
// gate rejects, no load is attempted.
func (a *App) Start(ctx context.Context) error {
	identity, err := a.gate.Admit()
	if err != nil {
		a.nf.Error(msgNotAuthorised)
		return err
	}

	a.mu.Lock()
	a.identity = identity
	a.mu.Unlock()

	if err := a.store.Reload(ctx, identity); err != nil {
		return fmt.Errorf("initial reload: %w", err)
	}
	return nil
}

// Identity returns the admitted identity, empty before Start succeeds.
func (a *App) Identity() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.identity
}

// Editor exposes the edit session controller to the view.
func (a *App) Editor() *editor.Session {
	return a.editor
}

// Store exposes the collection store, read-only for callers.
func (a *App) Store() *notes.Store {
	return a.store
}

// Search activates filtering for query.
func (a *App) Search(query string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.search = notes.SearchState{Query: query, Active: true}
}

// ClearSearch deactivates filtering, restoring the full collection view.
func (a *App) ClearSearch() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.search = notes.ClearedSearch()
}

// SearchState returns the current search state.
func (a *App) SearchState() notes.SearchState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.search
}

// Displayed derives the notes the view should render right now.
func (a *App) Displayed() []notes.Note {
	return notes.Filter(a.store.Snapshot(), a.SearchState())
}

// OpenAdd opens the add modal with an empty form.
func (a *App) OpenAdd() {
	a.editor.OpenAdd()
}

// OpenEdit opens the edit modal seeded from n.
func (a *App) OpenEdit(n notes.Note) {
	a.editor.OpenEdit(n)
}

// Submit routes the current form through the edit session.
func (a *App) Submit(ctx context.Context) error {
	return a.editor.Submit(ctx, a.Identity())
}

// Delete removes the note with the given id, then reloads. The local
// collection only changes after the service confirms and the reload
// completes; a failure leaves it untouched.
func (a *App) Delete(ctx context.Context, noteID string) error {
	if err := a.gw.DeleteNote(ctx, noteID); err != nil {
		a.log.Error("delete failed", "note_id", noteID, "error", err)
		a.nf.Error(notes.FailureMessage(deleteFailurePrefix, err))
		return err
	}
	a.nf.Success("Note deleted successfully")
	return a.store.Reload(ctx, a.Identity())
}

// TogglePin flips n's pinned flag on the server, then reloads.
func (a *App) TogglePin(ctx context.Context, n notes.Note) error {
	if err := a.gw.SetPinned(ctx, n.ID, !n.IsPinned); err != nil {
		a.log.Error("pin toggle failed", "note_id", n.ID, "error", err)
		a.nf.Error(notes.FailureMessage(pinFailurePrefix, err))
		return err
	}
	a.nf.Success("Note pin status updated")
	return a.store.Reload(ctx, a.Identity())
}
