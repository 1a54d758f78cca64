package route_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

func TestMarshalListRoundTrip(t *testing.T) {
	// A stack-shaped list touching every payload field, including a
	// duplicate kind: the codec must preserve order and payloads exactly.
	stack := []route.Route{
		route.Main{},
		route.SpeakerDetail{SpeakerID: "42"},
		route.Session{SessionID: "7"},
		route.RoomSlots{RoomName: "Aula Magna"},
		route.TermsOfUse{},
		route.PartnerDetail{PartnerID: "acme"},
		route.TermsOfUse{},
		route.LicenseDetail{LibraryName: "toml", LicenseText: "MIT License"},
		route.PrivacyNoticePrompt{ConfirmationRequired: true},
		route.Settings{},
	}

	data, err := route.MarshalList(stack)
	require.NoError(t, err)

	restored, err := route.UnmarshalList(data)
	require.NoError(t, err)

	if diff := cmp.Diff(stack, restored); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalShape(t *testing.T) {
	data, err := route.Marshal(route.Session{SessionID: "7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"screen":"session","session_id":"7"}`, string(data))

	// Empty payloads serialize to just the tag.
	data, err = route.Marshal(route.Main{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"screen":"main"}`, string(data))
}

func TestUnmarshalUnknownKind(t *testing.T) {
	_, err := route.Unmarshal([]byte(`{"screen":"time_machine"}`))
	require.ErrorIs(t, err, route.ErrUnknownKind)

	_, err = route.UnmarshalList([]byte(`[{"screen":"main"},{"screen":"nope"}]`))
	require.ErrorIs(t, err, route.ErrUnknownKind)
}

func TestKindsCoverEveryVariant(t *testing.T) {
	variants := []route.Route{
		route.StartPrivacyNotice{},
		route.PrivacyNoticePrompt{},
		route.Notifications{},
		route.Main{},
		route.Session{},
		route.SpeakerDetail{},
		route.PartnerDetail{},
		route.RoomSlots{},
		route.TermsOfUse{},
		route.Licenses{},
		route.LicenseDetail{},
		route.Settings{},
	}
	require.Len(t, variants, len(route.Kinds()))

	seen := make(map[route.Kind]bool)
	for _, v := range variants {
		seen[v.Kind()] = true
	}
	for _, k := range route.Kinds() {
		assert.True(t, seen[k], "kind %q has no variant", k)
	}
}
