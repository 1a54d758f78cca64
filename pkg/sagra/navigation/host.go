package navigation

import (
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sagra/pkg/sagra/internal"
	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

// Receiver is the consumer side of the notification bridge. Tests substitute
// their own implementation; production code passes bridge.Default().
type Receiver interface {
	Receive() <-chan route.Route
}

// HostOptions configures a navigation host.
type HostOptions struct {
	// OnboardingComplete selects the start route for a fresh stack: true
	// starts at the main screen, false at the initial privacy notice. It is
	// read once at host creation and never re-evaluated.
	OnboardingComplete bool

	// Persisted is an optional serialized stack from a previous session, as
	// produced by Stack.Save. When present it wins over the computed start
	// route. Unreadable data is a configuration error.
	Persisted []byte

	// Registry is the exhaustive route-to-entry table.
	Registry *Registry

	// Requests is the notification bridge consumer side. Optional; when nil
	// no listener is mounted.
	Requests Receiver

	// Logger overrides the framework logger. Optional.
	Logger *slog.Logger
}

// Host composes the navigation core: it owns the stack, resolves the active
// route through the registry, keeps per-entry UI state, and drains the
// notification bridge into the stack for as long as it is mounted.
type Host struct {
	stack    *Stack
	registry *Registry
	requests Receiver
	logger   *slog.Logger

	mounted   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
	states    *stateStore
}

// NewHost creates a host with a restored or freshly seeded stack.
func NewHost(opts HostOptions) (*Host, error) {
	if opts.Registry == nil {
		return nil, NewConfigurationError("host", ErrNilRegistry)
	}

	var stack *Stack
	if len(opts.Persisted) > 0 {
		var err error
		stack, err = Load(opts.Persisted)
		if err != nil {
			return nil, err
		}
	} else {
		stack = New(startRoute(opts.OnboardingComplete))
	}

	logger := opts.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	return &Host{
		stack:    stack,
		registry: opts.Registry,
		requests: opts.Requests,
		logger:   logger,
		done:     make(chan struct{}),
		states:   newStateStore(),
	}, nil
}

// startRoute picks the first element of a fresh stack. Decided once; never
// re-derived afterward.
func startRoute(onboardingComplete bool) route.Route {
	if onboardingComplete {
		return route.Main{}
	}
	return route.StartPrivacyNotice{}
}

// Mount starts the notification listener. Mounting is idempotent per host
// lifetime: remounts after a recomposition are no-ops and never create a
// second listener. Requests buffered on the bridge before Mount are
// delivered once the listener starts.
func (h *Host) Mount() {
	if h.requests == nil {
		return
	}
	if !h.mounted.CompareAndSwap(false, true) {
		return
	}
	go h.listen()
}

func (h *Host) listen() {
	for {
		select {
		case r := <-h.requests.Receive():
			h.logger.Debug("notification navigation request", "screen", r.Kind())
			h.stack.Push(r)
		case <-h.done:
			return
		}
	}
}

// Close ends the host lifetime and stops the listener. The stack itself
// remains readable, e.g. for a final Save.
func (h *Host) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

// Stack returns the live navigation stack.
func (h *Host) Stack() *Stack {
	return h.stack
}

// GoBack is the single back capability shared by all entries:
// pop-if-more-than-one-element.
func (h *Host) GoBack() {
	h.stack.Pop()
}

// Changed exposes the stack's change signal for the embedding render loop.
func (h *Host) Changed() <-chan struct{} {
	return h.stack.Changed()
}

// Render resolves the active route through the registry and returns its
// screen. It also prunes UI state for entries that have left the stack.
func (h *Host) Render() (Screen, error) {
	entries := h.stack.Entries()
	h.states.prune(entries)
	current := entries[len(entries)-1]
	return h.registry.Render(current.Route, h.stack)
}

// StateFor returns the UI state of a stack entry, creating it on first use.
func (h *Host) StateFor(id EntryID) *EntryState {
	return h.states.stateFor(id)
}
