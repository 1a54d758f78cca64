package navigation

import (
	"sync"

	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

// EntryID uniquely identifies one entry on the stack for the lifetime of the
// stack. IDs are never reused, so two pushes of the same route kind are
// distinguishable and hold independent UI state.
type EntryID uint64

// Entry is one element of the navigation stack.
type Entry struct {
	ID    EntryID
	Route route.Route
}

// Navigator is the mutation surface handed to screen entries. It exposes
// only the three stack transitions, so screens cannot inspect or rewrite
// history they do not own.
type Navigator interface {
	Push(r route.Route)
	Pop()
	ReplaceAll(r route.Route)
}

// Stack is the ordered, mutable back-stack of routes. The last element is
// the active screen. Mutations are atomic with respect to readers, and every
// mutation arms the Changed signal so a render loop can react on its next
// pass.
//
// The same route kind may appear more than once; the stack imposes no
// uniqueness.
type Stack struct {
	mu      sync.Mutex
	entries []Entry
	nextID  EntryID
	changed chan struct{}
}

// New creates a stack seeded with the given start route. The start route is
// fixed at creation time and is never re-derived.
func New(start route.Route) *Stack {
	s := &Stack{changed: make(chan struct{}, 1)}
	s.entries = append(s.entries, s.newEntry(start))
	return s
}

// Restore rebuilds a stack from an ordered route list, preserving order.
// An empty list is a configuration error: a live stack is never empty.
func Restore(routes []route.Route) (*Stack, error) {
	if len(routes) == 0 {
		return nil, NewConfigurationError("restore", ErrEmptyStack)
	}
	s := &Stack{changed: make(chan struct{}, 1)}
	for _, r := range routes {
		s.entries = append(s.entries, s.newEntry(r))
	}
	return s, nil
}

// Load rebuilds a stack from its serialized form, as produced by Save.
func Load(data []byte) (*Stack, error) {
	routes, err := route.UnmarshalList(data)
	if err != nil {
		return nil, NewConfigurationError("restore", err)
	}
	return Restore(routes)
}

// newEntry assigns the next EntryID. Callers hold s.mu or have exclusive
// access during construction.
func (s *Stack) newEntry(r route.Route) Entry {
	s.nextID++
	return Entry{ID: s.nextID, Route: r}
}

// Push appends a route, making it the active screen.
func (s *Stack) Push(r route.Route) {
	s.mu.Lock()
	s.entries = append(s.entries, s.newEntry(r))
	s.mu.Unlock()
	s.notify()
}

// Pop removes the active screen and returns to the previous one.
// Popping a single-element stack is a no-op: the stack never empties.
func (s *Stack) Pop() {
	s.mu.Lock()
	if len(s.entries) <= 1 {
		s.mu.Unlock()
		return
	}
	s.entries = s.entries[:len(s.entries)-1]
	s.mu.Unlock()
	s.notify()
}

// ReplaceAll clears the stack and pushes exactly one route. Used for
// reset-to-main transitions so the user cannot navigate back into
// onboarding.
func (s *Stack) ReplaceAll(r route.Route) {
	s.mu.Lock()
	s.entries = append(s.entries[:0], s.newEntry(r))
	s.mu.Unlock()
	s.notify()
}

// Current returns the active route (the last element).
func (s *Stack) Current() route.Route {
	return s.CurrentEntry().Route
}

// CurrentEntry returns the active entry, including its EntryID.
func (s *Stack) CurrentEntry() Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[len(s.entries)-1]
}

// Routes returns a copy of the stack's routes in navigation order.
func (s *Stack) Routes() []route.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	routes := make([]route.Route, len(s.entries))
	for i, e := range s.entries {
		routes[i] = e.Route
	}
	return routes
}

// Entries returns a copy of the stack's entries in navigation order.
func (s *Stack) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len returns the number of entries on the stack.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Changed returns a signal channel armed after every mutation. Signals
// coalesce: a reader observing one signal sees the cumulative effect of all
// mutations since its previous read.
func (s *Stack) Changed() <-chan struct{} {
	return s.changed
}

// Save serializes the stack to an ordered route list. Load restores the
// exact same kinds, payloads and order.
func (s *Stack) Save() ([]byte, error) {
	return route.MarshalList(s.Routes())
}

func (s *Stack) notify() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}
