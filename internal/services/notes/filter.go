package notes

import "strings"

// SearchState is the pair driving the displayed view. When Active is false
// (or the query is blank) the displayed view equals the full collection.
type SearchState struct {
	Query  string
	Active bool
}

// ClearedSearch is the state after the user clears the search box.
// Clearing is idempotent: applying it twice equals applying it once.
func ClearedSearch() SearchState {
	return SearchState{}
}

// Filter derives the displayed subset of collection from state.
// Pure function: collection order is preserved and the input is never
// mutated. Matching is a case-insensitive substring test over title OR
// content, so pin and tag changes never affect the result.
func Filter(collection []Note, state SearchState) []Note {
	q := strings.ToLower(strings.TrimSpace(state.Query))
	if !state.Active || q == "" {
		return collection
	}

	filtered := make([]Note, 0, len(collection))
	for _, n := range collection {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
