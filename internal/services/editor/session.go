// Package editor drives the add/edit modal lifecycle: which mode is open,
// which note is being edited, and where a submitted form goes.
package editor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"

	"note-keep/internal/services/notes"
	"note-keep/internal/utils/sanitize"
	"note-keep/internal/utils/validate"
)

// State is the modal lifecycle state.
type State int

const (
	StateClosed State = iota
	StateAddOpen
	StateEditOpen
)

func (s State) String() string {
	switch s {
	case StateAddOpen:
		return "add_open"
	case StateEditOpen:
		return "edit_open"
	default:
		return "closed"
	}
}

// Form holds the in-progress values of the add/edit form. It is always a
// copy; editing it never touches a note held by the collection.
type Form struct {
	Title   string
	Content string
	Tags    []string
}

// Reloader triggers a full collection reload after a successful submission.
type Reloader interface {
	Reload(ctx context.Context, identity string) error
}

// Session is the edit session controller. Transient: it is never persisted
// and resets to closed on successful submission or explicit close.
type Session struct {
	gw    notes.Gateway
	store Reloader
	nf    notes.Notifier
	v     *validator.Validate
	log   *slog.Logger

	mu     sync.Mutex
	state  State
	target notes.Note // valid only while StateEditOpen
	form   Form
}

// NewSession creates a closed edit session.
func NewSession(gw notes.Gateway, store Reloader, nf notes.Notifier, v *validator.Validate, log *slog.Logger) *Session {
	return &Session{
		gw:    gw,
		store: store,
		nf:    nf,
		v:     v,
		log:   log,
	}
}

// State reports the current modal state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Form returns a copy of the current form values.
func (s *Session) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.clone()
}

// Target returns the note being edited, valid only while StateEditOpen.
func (s *Session) Target() (notes.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditOpen {
		return notes.Note{}, false
	}
	return s.target.Clone(), true
}

// OpenAdd opens the modal in add mode with an empty form.
func (s *Session) OpenAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAddOpen
	s.target = notes.Note{}
	s.form = Form{}
}

// OpenEdit opens the modal in edit mode seeded with a copy of n.
func (s *Session) OpenEdit(n notes.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEditOpen
	s.target = n.Clone()
	s.form = Form{
		Title:   n.Title,
		Content: n.Content,
		Tags:    n.Clone().Tags,
	}
}

// SetForm replaces the form values. Ignored while closed.
func (s *Session) SetForm(f Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		return
	}
	s.form = f.clone()
}

// Close discards the form without any server call.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

const submitFailurePrefix = "Failed to save note"

// Success notifications mirror the messages the note service sends back.
const (
	msgNoteAdded   = "Note added successfully"
	msgNoteUpdated = "Note updated successfully"
)

// Submit validates the form and routes it to the gateway operation matching
// the open mode. Validation failures surface inline (returned error) and
// make zero network calls. A gateway failure keeps the session open so the
// user can correct input and retry; success notifies, reloads the
// collection and closes the session.
func (s *Session) Submit(ctx context.Context, identity string) error {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return ErrNoOpenSession
	}
	state := s.state
	targetID := s.target.ID
	draft := notes.Draft{
		Title:   sanitize.Clean(s.form.Title),
		Content: sanitize.Clean(s.form.Content),
		Tags:    sanitize.CleanAll(s.form.Tags),
	}
	s.mu.Unlock()

	if err := s.v.Struct(draft); err != nil {
		return validate.Humanize(err)
	}

	var (
		err error
		msg string
	)
	if state == StateEditOpen {
		_, err = s.gw.UpdateNote(ctx, targetID, identity, draft)
		msg = msgNoteUpdated
	} else {
		_, err = s.gw.CreateNote(ctx, identity, draft)
		msg = msgNoteAdded
	}
	if err != nil {
		s.log.Error("submit failed", "state", state.String(), "error", err)
		s.nf.Error(notes.FailureMessage(submitFailurePrefix, err))
		return err
	}

	s.nf.Success(msg)
	// Best effort: a reload failure already notified via the store and must
	// not resurrect the modal.
	_ = s.store.Reload(ctx, identity)

	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
	return nil
}

// reset must be called with the lock held.
func (s *Session) reset() {
	s.state = StateClosed
	s.target = notes.Note{}
	s.form = Form{}
}

func (f Form) clone() Form {
	c := f
	if f.Tags != nil {
		c.Tags = make([]string, len(f.Tags))
		copy(c.Tags, f.Tags)
	}
	return c
}
