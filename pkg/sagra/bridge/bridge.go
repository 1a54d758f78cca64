// Package bridge delivers externally-triggered navigation requests into the
// live navigation stack. External code (a notification tap callback, a
// system event delivered while the UI is not yet mounted) calls
// RequestNavigation; the host's listener drains the buffered request and
// pushes it onto the stack.
//
// The process-wide Default bridge is created lazily, lives for the process
// lifetime and is never torn down. Only send and receive capabilities are
// exposed, so tests can substitute their own Bridge instance.
package bridge

import (
	"strings"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sagra/pkg/sagra/internal"
	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

// slotCapacity bounds the number of unconsumed requests. A single slot is
// enough: the listener drains it promptly once mounted, and a burst of taps
// before mount only ever needs the first to win.
const slotCapacity = 1

// Bridge is a single-slot, capacity-bounded channel of navigation requests.
//
// Drop policy: drop-newest. When the slot is already full the incoming
// request is discarded and the buffered one stays; the caller is never
// blocked and never sees an error.
type Bridge struct {
	requests chan route.Route
	dropped  atomic.Int64
}

// New creates a bridge. Production code uses Default; tests create their
// own.
func New() *Bridge {
	return &Bridge{requests: make(chan route.Route, slotCapacity)}
}

// RequestNavigation enqueues a navigation request. Safe to call from any
// goroutine, before or after the consuming listener starts; requests made
// before the listener starts stay buffered until it does. Never blocks.
func (b *Bridge) RequestNavigation(r route.Route) {
	select {
	case b.requests <- r:
	default:
		b.dropped.Inc()
		internal.GetInternalLogger().Debug("navigation request dropped, slot full",
			"screen", r.Kind())
	}
}

// Receive returns the consumer side of the bridge. Intended for a single
// listener bound to the host lifetime.
func (b *Bridge) Receive() <-chan route.Route {
	return b.requests
}

// Dropped reports how many requests have been discarded because the slot
// was full. Diagnostic only.
func (b *Bridge) Dropped() int64 {
	return b.dropped.Load()
}

// NavigateByExternalID maps an opaque external identifier of the form
// "<type>:<id>" to a navigation request. Recognized types are "session" and
// "speaker"; anything unrecognized or unparsable is silently ignored.
func (b *Bridge) NavigateByExternalID(id string) {
	r, ok := parseExternalID(id)
	if !ok {
		internal.GetInternalLogger().Debug("ignoring unrecognized external id", "id", id)
		return
	}
	b.RequestNavigation(r)
}

func parseExternalID(id string) (route.Route, bool) {
	typ, rest, ok := strings.Cut(id, ":")
	if !ok || rest == "" {
		return nil, false
	}
	switch typ {
	case "session":
		return route.Session{SessionID: rest}, true
	case "speaker":
		return route.SpeakerDetail{SpeakerID: rest}, true
	}
	return nil, false
}
