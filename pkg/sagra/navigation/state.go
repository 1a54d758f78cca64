package navigation

import "sync"

// EntryState holds the transient UI state of one stack entry: scroll
// position, selection, and any screen-private values (view models, draft
// input). It survives recompositions and is restored when the user
// navigates back to the entry. State is keyed by EntryID, so two entries
// with the same route kind never share it.
type EntryState struct {
	ScrollOffset  int
	SelectedIndex int

	mu     sync.Mutex
	values map[string]any
}

// Set stores a screen-private value under the given key.
func (st *EntryState) Set(key string, value any) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.values == nil {
		st.values = make(map[string]any)
	}
	st.values[key] = value
}

// Get returns the screen-private value stored under the given key.
func (st *EntryState) Get(key string) (any, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	v, ok := st.values[key]
	return v, ok
}

// stateStore keeps per-entry UI state for the entries currently on the
// stack. Entries that leave the stack have their state pruned, ending the
// lifetime of any view model stored in it.
type stateStore struct {
	mu     sync.Mutex
	states map[EntryID]*EntryState
}

func newStateStore() *stateStore {
	return &stateStore{states: make(map[EntryID]*EntryState)}
}

// stateFor returns the state for an entry, creating it on first use.
func (ss *stateStore) stateFor(id EntryID) *EntryState {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	st, ok := ss.states[id]
	if !ok {
		st = &EntryState{}
		ss.states[id] = st
	}
	return st
}

// prune drops state for every entry not in the live set.
func (ss *stateStore) prune(live []Entry) {
	alive := make(map[EntryID]bool, len(live))
	for _, e := range live {
		alive[e.ID] = true
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	for id := range ss.states {
		if !alive[id] {
			delete(ss.states, id)
		}
	}
}
