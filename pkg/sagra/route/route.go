// Package route defines the closed set of screens the conference app can
// navigate to. Each screen is one Route variant carrying exactly the value
// data needed to render it, so a route can be persisted and restored without
// additional lookups.
//
// The set is sealed: the Route interface has an unexported marker method, and
// Kinds lists every variant so higher layers can verify their dispatch tables
// are exhaustive at startup.
package route

// Kind identifies one screen variant. It doubles as the discriminator tag in
// the serialized form of a route.
type Kind string

const (
	KindStartPrivacyNotice  Kind = "start_privacy_notice"
	KindPrivacyNoticePrompt Kind = "privacy_notice_prompt"
	KindNotifications       Kind = "notifications"
	KindMain                Kind = "main"
	KindSession             Kind = "session"
	KindSpeakerDetail       Kind = "speaker_detail"
	KindPartnerDetail       Kind = "partner_detail"
	KindRoomSlots           Kind = "room_slots"
	KindTermsOfUse          Kind = "terms_of_use"
	KindLicenses            Kind = "licenses"
	KindLicenseDetail       Kind = "license_detail"
	KindSettings            Kind = "settings"
)

// Kinds returns every member of the closed variant set.
// Registry validation iterates this to enforce exhaustive dispatch.
func Kinds() []Kind {
	return []Kind{
		KindStartPrivacyNotice,
		KindPrivacyNoticePrompt,
		KindNotifications,
		KindMain,
		KindSession,
		KindSpeakerDetail,
		KindPartnerDetail,
		KindRoomSlots,
		KindTermsOfUse,
		KindLicenses,
		KindLicenseDetail,
		KindSettings,
	}
}

// Route is implemented by exactly one struct per screen. All variants are
// comparable value types, so two routes are equal iff their kind and payload
// fields are equal.
type Route interface {
	Kind() Kind
	isRoute()
}

// StartPrivacyNotice is the first onboarding screen, shown when the user has
// not yet completed onboarding. It renders the privacy notice prompt in its
// onboarding mode.
type StartPrivacyNotice struct{}

// PrivacyNoticePrompt is the reusable privacy notice prompt.
// ConfirmationRequired selects the render mode: false during onboarding
// (accepting or rejecting advances the flow), true for the re-confirmation
// flow reached from settings (either choice simply goes back).
type PrivacyNoticePrompt struct {
	ConfirmationRequired bool
}

// Notifications is the onboarding notifications opt-in screen.
type Notifications struct{}

// Main is the conference schedule screen, the start route once onboarding is
// complete.
type Main struct{}

// Session shows the detail of a single conference session.
type Session struct {
	SessionID string
}

// SpeakerDetail shows a speaker's profile and their sessions.
type SpeakerDetail struct {
	SpeakerID string
}

// PartnerDetail shows a partner/sponsor profile.
type PartnerDetail struct {
	PartnerID string
}

// RoomSlots shows the schedule of a single room.
type RoomSlots struct {
	RoomName string
}

// TermsOfUse shows the terms of use. It is reachable from several source
// screens and may legitimately appear on the stack more than once.
type TermsOfUse struct{}

// Licenses lists the open-source libraries the app ships with.
type Licenses struct{}

// LicenseDetail shows the license body of one library. The text travels in
// the route so the screen renders without a lookup.
type LicenseDetail struct {
	LibraryName string
	LicenseText string
}

// Settings is the settings screen hosting the re-confirmation entry points.
type Settings struct{}

func (StartPrivacyNotice) Kind() Kind  { return KindStartPrivacyNotice }
func (PrivacyNoticePrompt) Kind() Kind { return KindPrivacyNoticePrompt }
func (Notifications) Kind() Kind       { return KindNotifications }
func (Main) Kind() Kind                { return KindMain }
func (Session) Kind() Kind             { return KindSession }
func (SpeakerDetail) Kind() Kind       { return KindSpeakerDetail }
func (PartnerDetail) Kind() Kind       { return KindPartnerDetail }
func (RoomSlots) Kind() Kind           { return KindRoomSlots }
func (TermsOfUse) Kind() Kind          { return KindTermsOfUse }
func (Licenses) Kind() Kind            { return KindLicenses }
func (LicenseDetail) Kind() Kind       { return KindLicenseDetail }
func (Settings) Kind() Kind            { return KindSettings }

func (StartPrivacyNotice) isRoute()  {}
func (PrivacyNoticePrompt) isRoute() {}
func (Notifications) isRoute()       {}
func (Main) isRoute()                {}
func (Session) isRoute()             {}
func (SpeakerDetail) isRoute()       {}
func (PartnerDetail) isRoute()       {}
func (RoomSlots) isRoute()           {}
func (TermsOfUse) isRoute()          {}
func (Licenses) isRoute()            {}
func (LicenseDetail) isRoute()       {}
func (Settings) isRoute()            {}
