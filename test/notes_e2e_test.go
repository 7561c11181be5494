//go:build e2e

package test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"note-keep/internal/app"
	"note-keep/internal/clients/noteapi"
	"note-keep/internal/config"
	"note-keep/internal/services/editor"
	"note-keep/internal/services/notes"
	"note-keep/internal/session"
	"note-keep/internal/stub"
	"note-keep/internal/utils/validate"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// recorderNotifier collects notification events for assertions.
type recorderNotifier struct {
	successes []string
	errors    []string
}

func (r *recorderNotifier) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorderNotifier) Error(msg string)   { r.errors = append(r.errors, msg) }

// startStubServer runs the in-memory note service on a random local port.
func startStubServer(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	fApp := stub.NewApp(config.Config{}, silentLogger)
	go func() {
		_ = fApp.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = fApp.Shutdown()
	})

	baseURL := "http://" + ln.Addr().String()
	require.NoError(t, waitHealthy(baseURL, 10*time.Second))
	return baseURL
}

// waitHealthy polls /healthz until the server answers or timeout expires.
func waitHealthy(baseURL string, timeout time.Duration) error {
	healthURL := baseURL + "/healthz"
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().UTC().Add(timeout)
	for {
		if time.Now().UTC().After(deadline) {
			return fmt.Errorf("server never responded on %s", healthURL)
		}

		resp, err := client.Get(healthURL)
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return nil
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func newClientApp(t *testing.T, baseURL, identity string) (*app.App, *recorderNotifier) {
	t.Helper()

	nf := &recorderNotifier{}
	gw := noteapi.New(baseURL, 5*time.Second, silentLogger)
	gate := session.NewGate(
		session.IdentityFunc(func() (string, bool) { return identity, identity != "" }),
		session.RedirectFunc(func() {}),
		silentLogger,
	)
	return app.New(gate, gw, nf, validate.V(), silentLogger), nf
}

func addNote(t *testing.T, a *app.App, form editor.Form) notes.Note {
	t.Helper()

	before := len(a.Store().Snapshot())
	a.OpenAdd()
	a.Editor().SetForm(form)
	require.NoError(t, a.Submit(context.Background()))

	snap := a.Store().Snapshot()
	require.Len(t, snap, before+1)
	return snap[len(snap)-1]
}

func TestNoteLifecycleE2E(t *testing.T) {
	baseURL := startStubServer(t)
	a, nf := newClientApp(t, baseURL, "alice@example.com")

	ctx := context.Background()
	require.NoError(t, a.Start(ctx))
	assert.Empty(t, a.Displayed())

	// Create: a subsequent reload carries the submitted fields.
	groceries := addNote(t, a, editor.Form{
		Title:   "Groceries",
		Content: "milk, eggs",
		Tags:    []string{"home"},
	})
	assert.Equal(t, "Groceries", groceries.Title)
	assert.Equal(t, "milk, eggs", groceries.Content)
	assert.Equal(t, []string{"home"}, groceries.Tags)
	assert.NotEmpty(t, groceries.ID)
	assert.Contains(t, nf.successes, "Note added successfully")

	work := addNote(t, a, editor.Form{Title: "Work", Content: "finish report"})

	// Search narrows, clearing restores.
	a.Search("milk")
	displayed := a.Displayed()
	require.Len(t, displayed, 1)
	assert.Equal(t, groceries.ID, displayed[0].ID)

	a.ClearSearch()
	assert.Len(t, a.Displayed(), 2)

	// Pin toggle survives the round trip.
	require.False(t, groceries.IsPinned)
	require.NoError(t, a.TogglePin(ctx, groceries))
	displayed = a.Displayed()
	for _, n := range displayed {
		if n.ID == groceries.ID {
			assert.True(t, n.IsPinned)
		}
	}

	// Edit through the modal state machine.
	a.OpenEdit(groceries)
	form := a.Editor().Form()
	form.Content = "milk, eggs, bread"
	a.Editor().SetForm(form)
	require.NoError(t, a.Submit(ctx))

	for _, n := range a.Displayed() {
		if n.ID == groceries.ID {
			assert.Equal(t, "milk, eggs, bread", n.Content)
		}
	}

	// Delete: the id disappears from the next reload.
	require.NoError(t, a.Delete(ctx, work.ID))
	displayed = a.Displayed()
	require.Len(t, displayed, 1)
	assert.NotEqual(t, work.ID, displayed[0].ID)
}

func TestEditUnknownNoteE2E(t *testing.T) {
	baseURL := startStubServer(t)
	a, nf := newClientApp(t, baseURL, "alice@example.com")

	ctx := context.Background()
	require.NoError(t, a.Start(ctx))

	ghost := notes.Note{ID: "does-not-exist", Title: "Ghost", Content: "boo"}
	a.OpenEdit(ghost)

	err := a.Submit(ctx)
	require.Error(t, err)

	assert.Equal(t, editor.StateEditOpen, a.Editor().State())
	assert.Contains(t, nf.errors, "Note not found")
	assert.Empty(t, a.Displayed())
}

func TestSearchOverManyNotesE2E(t *testing.T) {
	baseURL := startStubServer(t)
	a, _ := newClientApp(t, baseURL, "carol@example.com")

	ctx := context.Background()
	require.NoError(t, a.Start(ctx))

	gofakeit.Seed(42)
	for i := 0; i < 20; i++ {
		addNote(t, a, editor.Form{
			Title:   gofakeit.Sentence(3),
			Content: gofakeit.Sentence(8),
		})
	}
	needle := addNote(t, a, editor.Form{
		Title:   "Dentist appointment",
		Content: "Tuesday 9am, bring insurance card",
	})

	a.Search("dentist")
	displayed := a.Displayed()
	require.Len(t, displayed, 1)
	assert.Equal(t, needle.ID, displayed[0].ID)

	a.ClearSearch()
	assert.Len(t, a.Displayed(), 21)

	// Every displayed note matches the active query.
	a.Search("a")
	for _, n := range a.Displayed() {
		matched := strings.Contains(strings.ToLower(n.Title), "a") ||
			strings.Contains(strings.ToLower(n.Content), "a")
		assert.True(t, matched)
	}
}

func TestUnauthorisedE2E(t *testing.T) {
	baseURL := startStubServer(t)
	a, nf := newClientApp(t, baseURL, "")

	err := a.Start(context.Background())
	require.Error(t, err)

	assert.Contains(t, nf.errors, "First, Authorise yourself!")
	assert.Empty(t, a.Displayed())
}
