package notes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func sampleCollection() []Note {
	return []Note{
		{ID: "1", Title: "Groceries", Content: "milk, eggs"},
		{ID: "2", Title: "Work", Content: "finish report"},
	}
}

func TestFilterInactiveIsIdentity(t *testing.T) {
	collection := sampleCollection()

	got := Filter(collection, SearchState{Query: "milk", Active: false})
	assert.Equal(t, collection, got)

	got = Filter(collection, SearchState{})
	assert.Equal(t, collection, got)
}

func TestFilterBlankQueryIsIdentity(t *testing.T) {
	collection := sampleCollection()

	for _, q := range []string{"", "   ", "\t"} {
		got := Filter(collection, SearchState{Query: q, Active: true})
		assert.Equal(t, collection, got, "query %q", q)
	}
}

func TestFilterMatchesTitleOrContent(t *testing.T) {
	collection := sampleCollection()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "content match", query: "milk", wantIDs: []string{"1"}},
		{name: "title match", query: "work", wantIDs: []string{"2"}},
		{name: "case-insensitive", query: "GROCERIES", wantIDs: []string{"1"}},
		{name: "substring", query: "repo", wantIDs: []string{"2"}},
		{name: "both match", query: "i", wantIDs: []string{"1", "2"}},
		{name: "no match", query: "dentist", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(collection, SearchState{Query: tt.query, Active: true})
			ids := make([]string, 0, len(got))
			for _, n := range got {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterThenClearRestoresCollection(t *testing.T) {
	collection := sampleCollection()

	filtered := Filter(collection, SearchState{Query: "milk", Active: true})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)

	restored := Filter(collection, ClearedSearch())
	assert.Equal(t, collection, restored)
}

func TestClearedSearchIdempotent(t *testing.T) {
	once := ClearedSearch()
	twice := ClearedSearch()
	assert.Equal(t, once, twice)
	assert.Equal(t, SearchState{Query: "", Active: false}, once)
}

func TestFilterIgnoresPinState(t *testing.T) {
	collection := sampleCollection()
	state := SearchState{Query: "milk", Active: true}

	before := Filter(collection, state)

	pinned := make([]Note, len(collection))
	copy(pinned, collection)
	pinned[0].IsPinned = true
	pinned[1].IsPinned = true
	after := Filter(pinned, state)

	assert.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
}

var genNote = rapid.Custom(func(t *rapid.T) Note {
	return Note{
		ID:      rapid.StringMatching(`[0-9A-Z]{8}`).Draw(t, "id"),
		Title:   rapid.StringMatching(`[a-zA-Z ]{0,20}`).Draw(t, "title"),
		Content: rapid.StringMatching(`[a-zA-Z ,.]{0,40}`).Draw(t, "content"),
	}
})

func TestFilterProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		collection := rapid.SliceOfN(genNote, 0, 25).Draw(t, "collection")
		query := rapid.StringMatching(`[a-zA-Z]{1,6}`).Draw(t, "query")

		got := Filter(collection, SearchState{Query: query, Active: true})

		q := strings.ToLower(query)
		matches := func(n Note) bool {
			return strings.Contains(strings.ToLower(n.Title), q) ||
				strings.Contains(strings.ToLower(n.Content), q)
		}

		// Every returned note satisfies the predicate.
		for _, n := range got {
			if !matches(n) {
				t.Fatalf("note %q/%q does not contain %q", n.Title, n.Content, query)
			}
		}

		// No satisfying note is excluded, and input order is preserved.
		want := make([]Note, 0, len(collection))
		for _, n := range collection {
			if matches(n) {
				want = append(want, n)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("got %d notes, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i].ID != want[i].ID {
				t.Fatalf("order not preserved at index %d", i)
			}
		}
	})
}
