package navigation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sagra/pkg/sagra/navigation"
	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

func TestPopNeverEmpties(t *testing.T) {
	s := navigation.New(route.Main{})
	s.Push(route.Session{SessionID: "1"})
	s.Push(route.Session{SessionID: "2"})

	for i := 0; i < 10; i++ {
		s.Pop()
	}

	require.Equal(t, 1, s.Len())
	assert.Equal(t, route.Main{}, s.Current())
}

func TestReplaceAll(t *testing.T) {
	s := navigation.New(route.StartPrivacyNotice{})
	s.Push(route.Notifications{})
	s.Push(route.TermsOfUse{})

	s.ReplaceAll(route.Main{})

	require.Equal(t, []route.Route{route.Main{}}, s.Routes())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := navigation.New(route.Main{})
	s.Push(route.SpeakerDetail{SpeakerID: "42"})
	s.Push(route.Session{SessionID: "7"})
	s.Push(route.PrivacyNoticePrompt{ConfirmationRequired: true})

	data, err := s.Save()
	require.NoError(t, err)

	restored, err := navigation.Load(data)
	require.NoError(t, err)

	if diff := cmp.Diff(s.Routes(), restored.Routes()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRestoreRejectsEmpty(t *testing.T) {
	_, err := navigation.Restore(nil)
	require.ErrorIs(t, err, navigation.ErrEmptyStack)
	assert.True(t, navigation.IsConfigurationError(err))

	_, err = navigation.Load([]byte(`[]`))
	require.ErrorIs(t, err, navigation.ErrEmptyStack)
}

func TestLoadRejectsMalformed(t *testing.T) {
	_, err := navigation.Load([]byte(`[{"screen":"wormhole"}]`))
	require.Error(t, err)
	assert.True(t, navigation.IsConfigurationError(err))
}

func TestEntryIDsDistinguishDuplicates(t *testing.T) {
	// The same route kind pushed twice gets distinct entry identities, so
	// per-entry UI state never bleeds between the two.
	s := navigation.New(route.Main{})
	s.Push(route.TermsOfUse{})
	s.Push(route.TermsOfUse{})

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, entries[1].Route, entries[2].Route)
	assert.NotEqual(t, entries[1].ID, entries[2].ID)
}

func TestChangedSignalCoalesces(t *testing.T) {
	s := navigation.New(route.Main{})

	// Multiple mutations before a read arm the signal exactly once; the
	// reader then observes the cumulative state.
	s.Push(route.Session{SessionID: "1"})
	s.Push(route.Session{SessionID: "2"})
	s.Pop()

	select {
	case <-s.Changed():
	default:
		t.Fatal("expected changed signal after mutations")
	}

	select {
	case <-s.Changed():
		t.Fatal("expected signal to coalesce to a single delivery")
	default:
	}

	require.Equal(t, 2, s.Len())
}

func TestPopOnSingleDoesNotSignal(t *testing.T) {
	s := navigation.New(route.Main{})
	s.Pop()

	select {
	case <-s.Changed():
		t.Fatal("no-op pop must not arm the changed signal")
	default:
	}
}
