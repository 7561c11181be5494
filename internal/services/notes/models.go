package notes

import "time"

// Note represents a single note as returned by the note service.
// Field names mirror the service's JSON contract; ID and CreatedAt are
// server-assigned and immutable after creation.
type Note struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the note. Tags are copied so that form
// edits never reach a note still held by the collection.
func (n Note) Clone() Note {
	c := n
	if n.Tags != nil {
		c.Tags = make([]string, len(n.Tags))
		copy(c.Tags, n.Tags)
	}
	return c
}

// Draft carries the user-editable fields of a note for create and update
// calls. Title and content are required; tags may be empty.
type Draft struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}
