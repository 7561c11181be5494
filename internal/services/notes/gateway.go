package notes

import "context"

// Gateway defines the remote operations the note service exposes.
// ListNotes is the only idempotent call; CreateNote is not, and callers
// must not debounce or dedupe submissions on its behalf.
//
// SetPinned and DeleteNote address notes by id alone, matching the wire
// contract of the service.
type Gateway interface {
	ListNotes(ctx context.Context, identity string) ([]Note, error)
	CreateNote(ctx context.Context, identity string, draft Draft) (*Note, error)
	UpdateNote(ctx context.Context, noteID, identity string, draft Draft) (*Note, error)
	SetPinned(ctx context.Context, noteID string, pinned bool) error
	DeleteNote(ctx context.Context, noteID string) error
}

// Notifier receives discrete success and failure events for display.
// The core reports, it never renders.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
