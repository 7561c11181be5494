package notes

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Store owns the authoritative local copy of the user's notes.
//
// Reload is the only writer: on success it replaces the whole collection
// with the service's answer, on failure it leaves the previous collection
// untouched and reports through the notifier. Every mutation elsewhere in
// the app (create, update, pin, delete) is followed by a Reload rather
// than a local patch; the extra round trip buys guaranteed agreement with
// server state.
type Store struct {
	gw  Gateway
	nf  Notifier
	log *slog.Logger

	// Concurrent reloads for the same identity share one flight, and each
	// reload carries a sequence number so a slow response can never
	// overwrite a newer one.
	group singleflight.Group
	seq   atomic.Uint64

	mu         sync.RWMutex
	collection []Note
	appliedSeq uint64
}

// NewStore creates a store backed by the given gateway.
func NewStore(gw Gateway, nf Notifier, log *slog.Logger) *Store {
	return &Store{
		gw:  gw,
		nf:  nf,
		log: log,
	}
}

const reloadFailurePrefix = "Failed to fetch notes"

// Reload fetches the full note list for identity and replaces the local
// collection. A response older than the last applied one is discarded.
func (s *Store) Reload(ctx context.Context, identity string) error {
	seq := s.seq.Add(1)

	v, err, shared := s.group.Do(identity, func() (any, error) {
		return s.gw.ListNotes(ctx, identity)
	})
	if err != nil {
		s.log.Error("reload failed", "error", err)
		s.nf.Error(FailureMessage(reloadFailurePrefix, err))
		return err
	}
	fetched := v.([]Note)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		s.log.Debug("discarding stale reload", "seq", seq, "applied", s.appliedSeq)
		return nil
	}
	s.appliedSeq = seq
	s.collection = fetched
	s.log.Debug("collection reloaded", "count", len(fetched), "shared", shared)
	return nil
}

// Snapshot returns a deep copy of the current collection in service order.
func (s *Store) Snapshot() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Note, len(s.collection))
	for i, n := range s.collection {
		out[i] = n.Clone()
	}
	return out
}

// Len reports the number of notes currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collection)
}
