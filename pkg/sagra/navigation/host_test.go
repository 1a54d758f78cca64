package navigation_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/BrandonKowalski/sagra/pkg/sagra/bridge"
	"github.com/BrandonKowalski/sagra/pkg/sagra/navigation"
	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newHost(t *testing.T, opts navigation.HostOptions) *navigation.Host {
	t.Helper()
	if opts.Registry == nil {
		reg, err := navigation.NewRegistry(fullEntryTable())
		require.NoError(t, err)
		opts.Registry = reg
	}
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	host, err := navigation.NewHost(opts)
	require.NoError(t, err)
	t.Cleanup(host.Close)
	return host
}

func TestStartRouteSelection(t *testing.T) {
	onboarded := newHost(t, navigation.HostOptions{OnboardingComplete: true})
	require.Equal(t, []route.Route{route.Main{}}, onboarded.Stack().Routes())

	fresh := newHost(t, navigation.HostOptions{OnboardingComplete: false})
	require.Equal(t, []route.Route{route.StartPrivacyNotice{}}, fresh.Stack().Routes())
}

func TestPersistedStackWinsOverStartRoute(t *testing.T) {
	previous := navigation.New(route.Main{})
	previous.Push(route.Session{SessionID: "7"})
	data, err := previous.Save()
	require.NoError(t, err)

	host := newHost(t, navigation.HostOptions{
		OnboardingComplete: false,
		Persisted:          data,
	})
	require.Equal(t, previous.Routes(), host.Stack().Routes())
}

func TestNewHostRejectsBadPersistedState(t *testing.T) {
	reg, err := navigation.NewRegistry(fullEntryTable())
	require.NoError(t, err)

	_, err = navigation.NewHost(navigation.HostOptions{
		Registry:  reg,
		Persisted: []byte(`[{"screen":"wormhole"}]`),
	})
	require.Error(t, err)
	assert.True(t, navigation.IsConfigurationError(err))
}

func TestNewHostRequiresRegistry(t *testing.T) {
	_, err := navigation.NewHost(navigation.HostOptions{})
	require.ErrorIs(t, err, navigation.ErrNilRegistry)
}

func TestNotificationRequestBeforeMountDeliveredOnce(t *testing.T) {
	br := bridge.New()

	// The request fires before any listener exists, e.g. a notification tap
	// that cold-started the app.
	br.RequestNavigation(route.Session{SessionID: "7"})

	host := newHost(t, navigation.HostOptions{
		OnboardingComplete: true,
		Requests:           br,
	})
	host.Mount()

	require.Eventually(t, func() bool {
		return host.Stack().Len() == 2
	}, time.Second, time.Millisecond, "buffered request should be pushed after mount")

	assert.Equal(t, route.Session{SessionID: "7"}, host.Stack().Current())

	// No duplicate delivery.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 2, host.Stack().Len())
}

func TestMountIsIdempotent(t *testing.T) {
	br := bridge.New()
	host := newHost(t, navigation.HostOptions{
		OnboardingComplete: true,
		Requests:           br,
	})

	// A remount after recomposition must not create a second listener that
	// would double-apply requests.
	host.Mount()
	host.Mount()
	host.Mount()

	br.RequestNavigation(route.SpeakerDetail{SpeakerID: "42"})
	require.Eventually(t, func() bool {
		return host.Stack().Len() == 2
	}, time.Second, time.Millisecond)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 2, host.Stack().Len())
}

func TestGoBackScenario(t *testing.T) {
	host := newHost(t, navigation.HostOptions{OnboardingComplete: true})
	stack := host.Stack()

	stack.Push(route.SpeakerDetail{SpeakerID: "42"})
	stack.Push(route.Session{SessionID: "7"})

	host.GoBack()
	host.GoBack()
	require.Equal(t, []route.Route{route.Main{}}, stack.Routes())

	// Third goBack on the root is a no-op.
	host.GoBack()
	require.Equal(t, 1, stack.Len())
}

func TestRenderResolvesCurrentRoute(t *testing.T) {
	host := newHost(t, navigation.HostOptions{OnboardingComplete: true})

	screen, err := host.Render()
	require.NoError(t, err)
	assert.Equal(t, route.KindMain, screen.ScreenKind())

	host.Stack().Push(route.Licenses{})
	screen, err = host.Render()
	require.NoError(t, err)
	assert.Equal(t, route.KindLicenses, screen.ScreenKind())
}

func TestPerEntryStateIndependence(t *testing.T) {
	host := newHost(t, navigation.HostOptions{OnboardingComplete: true})
	stack := host.Stack()

	// Two pushes of the same route kind: each entry keeps its own state.
	stack.Push(route.TermsOfUse{})
	first := stack.CurrentEntry()
	stack.Push(route.TermsOfUse{})
	second := stack.CurrentEntry()

	host.StateFor(first.ID).ScrollOffset = 120
	host.StateFor(second.ID).ScrollOffset = 5

	assert.Equal(t, 120, host.StateFor(first.ID).ScrollOffset)
	assert.Equal(t, 5, host.StateFor(second.ID).ScrollOffset)
}

func TestStatePrunedWhenEntryLeavesStack(t *testing.T) {
	host := newHost(t, navigation.HostOptions{OnboardingComplete: true})
	stack := host.Stack()

	stack.Push(route.Session{SessionID: "7"})
	entry := stack.CurrentEntry()
	host.StateFor(entry.ID).Set("draft", "my question")

	stack.Pop()
	_, err := host.Render() // render pass prunes departed entries
	require.NoError(t, err)

	_, ok := host.StateFor(entry.ID).Get("draft")
	assert.False(t, ok, "state should not survive the entry leaving the stack")
}
