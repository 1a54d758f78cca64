// Package navigation provides the back-stack navigation core: a reactive
// stack of route values, an exhaustive registry from route kind to screen
// entry, and a host that composes the two with the notification bridge.
//
// Data flow is explicit: each screen entry receives its route's payload and a
// Navigator exposing only Push, Pop and ReplaceAll, so no screen holds more
// mutation power than it needs.
//
// # Basic Usage
//
//	reg, err := navigation.NewRegistry(screens.Entries(deps))
//	if err != nil {
//	    // a route variant is missing its entry: configuration error, fail fast
//	}
//
//	host, err := navigation.NewHost(navigation.HostOptions{
//	    OnboardingComplete: cfg.OnboardingComplete,
//	    Registry:           reg,
//	    Requests:           bridge.Default(),
//	})
//	host.Mount()
//	defer host.Close()
//
//	for {
//	    screen, err := host.Render()
//	    // hand screen to the embedding UI layer
//	    <-host.Changed()
//	}
//
// # Stack Semantics
//
// The stack is never empty while the host is alive: Pop on a single-element
// stack is a no-op, and ReplaceAll resets the stack to exactly one element.
// The first element is the start route, chosen once at creation time and
// never re-derived.
//
// # Per-Entry State
//
// Each stack entry gets a unique EntryID at push time. UI state (scroll
// position, transient view state) is keyed by EntryID, so two pushes of the
// same route kind hold independent state and are restored independently when
// the user navigates back.
package navigation
