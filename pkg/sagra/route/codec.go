package route

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownKind indicates serialized data referenced a screen that is not a
// member of the closed variant set.
var ErrUnknownKind = errors.New("unknown route kind")

// envelope is the flat serialized form of a route: the kind tag plus the
// union of all payload fields. Empty fields are omitted, so each variant
// round-trips to a minimal JSON object.
type envelope struct {
	Screen               Kind   `json:"screen"`
	SessionID            string `json:"session_id,omitempty"`
	SpeakerID            string `json:"speaker_id,omitempty"`
	PartnerID            string `json:"partner_id,omitempty"`
	RoomName             string `json:"room_name,omitempty"`
	LibraryName          string `json:"library_name,omitempty"`
	LicenseText          string `json:"license_text,omitempty"`
	ConfirmationRequired bool   `json:"confirmation_required,omitempty"`
}

func toEnvelope(r Route) envelope {
	e := envelope{Screen: r.Kind()}
	switch v := r.(type) {
	case Session:
		e.SessionID = v.SessionID
	case SpeakerDetail:
		e.SpeakerID = v.SpeakerID
	case PartnerDetail:
		e.PartnerID = v.PartnerID
	case RoomSlots:
		e.RoomName = v.RoomName
	case LicenseDetail:
		e.LibraryName = v.LibraryName
		e.LicenseText = v.LicenseText
	case PrivacyNoticePrompt:
		e.ConfirmationRequired = v.ConfirmationRequired
	}
	return e
}

func fromEnvelope(e envelope) (Route, error) {
	switch e.Screen {
	case KindStartPrivacyNotice:
		return StartPrivacyNotice{}, nil
	case KindPrivacyNoticePrompt:
		return PrivacyNoticePrompt{ConfirmationRequired: e.ConfirmationRequired}, nil
	case KindNotifications:
		return Notifications{}, nil
	case KindMain:
		return Main{}, nil
	case KindSession:
		return Session{SessionID: e.SessionID}, nil
	case KindSpeakerDetail:
		return SpeakerDetail{SpeakerID: e.SpeakerID}, nil
	case KindPartnerDetail:
		return PartnerDetail{PartnerID: e.PartnerID}, nil
	case KindRoomSlots:
		return RoomSlots{RoomName: e.RoomName}, nil
	case KindTermsOfUse:
		return TermsOfUse{}, nil
	case KindLicenses:
		return Licenses{}, nil
	case KindLicenseDetail:
		return LicenseDetail{LibraryName: e.LibraryName, LicenseText: e.LicenseText}, nil
	case KindSettings:
		return Settings{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, e.Screen)
}

// Marshal serializes a single route to its flat JSON form.
func Marshal(r Route) ([]byte, error) {
	return json.Marshal(toEnvelope(r))
}

// Unmarshal reconstructs a route from its flat JSON form.
// The result is identical in kind and payload to the marshaled route.
func Unmarshal(data []byte) (Route, error) {
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return fromEnvelope(e)
}

// MarshalList serializes an ordered list of routes, preserving order.
// This is the persisted form of a navigation back-stack.
func MarshalList(routes []Route) ([]byte, error) {
	envelopes := make([]envelope, len(routes))
	for i, r := range routes {
		envelopes[i] = toEnvelope(r)
	}
	return json.Marshal(envelopes)
}

// UnmarshalList reconstructs an ordered list of routes.
func UnmarshalList(data []byte) ([]Route, error) {
	var envelopes []envelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return nil, err
	}
	routes := make([]Route, len(envelopes))
	for i, e := range envelopes {
		r, err := fromEnvelope(e)
		if err != nil {
			return nil, err
		}
		routes[i] = r
	}
	return routes, nil
}
