package stub

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"note-keep/internal/services/notes"
)

// memStore is the in-memory backing of the stub note service. Notes are
// kept per identity in insertion order, which is the order the list
// endpoint returns.
type memStore struct {
	mu     sync.RWMutex
	byUser map[string][]notes.Note
}

func newMemStore() *memStore {
	return &memStore{
		byUser: make(map[string][]notes.Note),
	}
}

func newNoteID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
}

func (m *memStore) list(identity string) []notes.Note {
	m.mu.RLock()
	defer m.mu.RUnlock()
	owned := m.byUser[identity]
	out := make([]notes.Note, len(owned))
	for i, n := range owned {
		out[i] = n.Clone()
	}
	return out
}

func (m *memStore) add(identity string, d notes.Draft) notes.Note {
	n := notes.Note{
		ID:        newNoteID(),
		Title:     d.Title,
		Content:   d.Content,
		Tags:      d.Tags,
		CreatedAt: time.Now().UTC(),
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUser[identity] = append(m.byUser[identity], n)
	return n.Clone()
}

func (m *memStore) edit(identity, noteID string, d notes.Draft) (notes.Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	owned := m.byUser[identity]
	for i := range owned {
		if owned[i].ID == noteID {
			owned[i].Title = d.Title
			owned[i].Content = d.Content
			owned[i].Tags = d.Tags
			if owned[i].Tags == nil {
				owned[i].Tags = []string{}
			}
			return owned[i].Clone(), true
		}
	}
	return notes.Note{}, false
}

// setPinned and remove address notes by id alone: the wire contract for
// these operations carries no identity, so all users are scanned.
func (m *memStore) setPinned(noteID string, pinned bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for identity := range m.byUser {
		owned := m.byUser[identity]
		for i := range owned {
			if owned[i].ID == noteID {
				owned[i].IsPinned = pinned
				return true
			}
		}
	}
	return false
}

func (m *memStore) remove(noteID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for identity := range m.byUser {
		owned := m.byUser[identity]
		for i := range owned {
			if owned[i].ID == noteID {
				m.byUser[identity] = append(owned[:i], owned[i+1:]...)
				return true
			}
		}
	}
	return false
}
