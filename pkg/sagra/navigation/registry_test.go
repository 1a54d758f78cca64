package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sagra/pkg/sagra/navigation"
	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

// stubScreen is the minimal navigation.Screen used by registry tests.
type stubScreen struct {
	kind route.Kind
}

func (s stubScreen) ScreenKind() route.Kind { return s.kind }

func fullEntryTable() map[route.Kind]navigation.EntryFunc {
	entries := make(map[route.Kind]navigation.EntryFunc)
	for _, kind := range route.Kinds() {
		kind := kind
		entries[kind] = func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			return stubScreen{kind: kind}, nil
		}
	}
	return entries
}

func TestNewRegistryExhaustive(t *testing.T) {
	reg, err := navigation.NewRegistry(fullEntryTable())
	require.NoError(t, err)
	require.NotNil(t, reg)
}

func TestNewRegistryMissingKindFailsFast(t *testing.T) {
	entries := fullEntryTable()
	delete(entries, route.KindSession)

	_, err := navigation.NewRegistry(entries)
	require.Error(t, err)
	assert.True(t, navigation.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "session")
}

func TestNewRegistryUnknownKindFailsFast(t *testing.T) {
	entries := fullEntryTable()
	entries["jukebox"] = entries[route.KindMain]

	_, err := navigation.NewRegistry(entries)
	require.Error(t, err)
	assert.True(t, navigation.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "jukebox")
}

func TestNewRegistryNilEntryFailsFast(t *testing.T) {
	entries := fullEntryTable()
	entries[route.KindMain] = nil

	_, err := navigation.NewRegistry(entries)
	require.Error(t, err)
	assert.True(t, navigation.IsConfigurationError(err))
}

func TestRenderDispatchesByKind(t *testing.T) {
	reg, err := navigation.NewRegistry(fullEntryTable())
	require.NoError(t, err)

	stack := navigation.New(route.Main{})

	screen, err := reg.Render(route.Session{SessionID: "7"}, stack)
	require.NoError(t, err)
	assert.Equal(t, route.KindSession, screen.ScreenKind())

	screen, err = reg.Render(route.Main{}, stack)
	require.NoError(t, err)
	assert.Equal(t, route.KindMain, screen.ScreenKind())
}
