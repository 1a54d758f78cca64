package bridge

import (
	"sync"

	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

var (
	defaultOnce   sync.Once
	defaultBridge *Bridge
)

// Default returns the process-wide bridge, creating it on first use. It is
// never torn down.
func Default() *Bridge {
	defaultOnce.Do(func() {
		defaultBridge = New()
	})
	return defaultBridge
}

// RequestNavigation enqueues a request on the process-wide bridge.
func RequestNavigation(r route.Route) {
	Default().RequestNavigation(r)
}

// NavigateByExternalID maps an external identifier to a request on the
// process-wide bridge. Unrecognized ids are silently ignored.
func NavigateByExternalID(id string) {
	Default().NavigateByExternalID(id)
}
