// Package screens defines the screen descriptors produced for each route and
// wires their outgoing actions to the navigation stack or to external
// collaborators. Rendering the visual content of a screen is the embedding
// layer's job; this package only describes what a screen is and what its
// controls do.
package screens

import (
	"github.com/BrandonKowalski/sagra/pkg/sagra/i18n"
	"github.com/BrandonKowalski/sagra/pkg/sagra/internal"
	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

// LinkOpener opens an external URL in the system browser. Implemented by the
// native/embedding side.
type LinkOpener interface {
	OpenURL(url string) error
}

// StoreResolver resolves the platform store page URL for rate-the-app.
// The second return value is false when the platform has no store page.
type StoreResolver interface {
	StoreURL() (string, bool)
}

// NotificationSupport reports whether the platform can deliver
// notifications. It decides where accepting the onboarding privacy notice
// leads.
type NotificationSupport interface {
	Supported() bool
}

// License is one entry of the open-source licenses screen.
type License struct {
	LibraryName string
	LicenseText string
}

// Deps bundles the external collaborators and data the screen entries need.
type Deps struct {
	Links         LinkOpener
	Store         StoreResolver
	Notifications NotificationSupport
	Localizer     *i18n.Localizer
	Licenses      []License
}

// title resolves a localized screen title; without a localizer the message
// id itself is used, which keeps tests free of catalog setup.
func (d Deps) title(id string) string {
	if d.Localizer == nil {
		return id
	}
	return d.Localizer.T(id)
}

// openURL delegates to the link opener; a failed open is logged and
// swallowed, never surfaced to the screen.
func (d Deps) openURL(url string) {
	if d.Links == nil {
		return
	}
	if err := d.Links.OpenURL(url); err != nil {
		internal.GetInternalLogger().Warn("failed to open external link",
			"url", url, "error", err)
	}
}

// PrivacyNoticeScreen is the reusable privacy notice prompt. It serves two
// route variants (the onboarding start route and the prompt pushed from
// settings) and two render modes; ConfirmationRequired distinguishes the
// latter.
type PrivacyNoticeScreen struct {
	Kind                 route.Kind
	Title                string
	ConfirmationRequired bool
	Accept               func()
	Reject               func()
}

func (s *PrivacyNoticeScreen) ScreenKind() route.Kind { return s.Kind }

// NotificationsScreen is the onboarding notifications opt-in screen. Both
// choices finish onboarding.
type NotificationsScreen struct {
	Title   string
	Enable  func()
	Decline func()
}

func (*NotificationsScreen) ScreenKind() route.Kind { return route.KindNotifications }

// MainScreen is the conference schedule. It is the root of the post-
// onboarding stack and has no back action.
type MainScreen struct {
	Title        string
	OpenSession  func(sessionID string)
	OpenSpeaker  func(speakerID string)
	OpenPartner  func(partnerID string)
	OpenRoom     func(roomName string)
	OpenSettings func()
}

func (*MainScreen) ScreenKind() route.Kind { return route.KindMain }

// SessionScreen shows one session.
type SessionScreen struct {
	Title       string
	SessionID   string
	Back        func()
	OpenSpeaker func(speakerID string)
	OpenRoom    func(roomName string)
}

func (*SessionScreen) ScreenKind() route.Kind { return route.KindSession }

// SpeakerDetailScreen shows one speaker.
type SpeakerDetailScreen struct {
	Title       string
	SpeakerID   string
	Back        func()
	OpenSession func(sessionID string)
	OpenProfile func(url string)
}

func (*SpeakerDetailScreen) ScreenKind() route.Kind { return route.KindSpeakerDetail }

// PartnerDetailScreen shows one partner/sponsor.
type PartnerDetailScreen struct {
	Title       string
	PartnerID   string
	Back        func()
	OpenWebsite func(url string)
}

func (*PartnerDetailScreen) ScreenKind() route.Kind { return route.KindPartnerDetail }

// RoomSlotsScreen shows one room's schedule.
type RoomSlotsScreen struct {
	Title       string
	RoomName    string
	Back        func()
	OpenSession func(sessionID string)
}

func (*RoomSlotsScreen) ScreenKind() route.Kind { return route.KindRoomSlots }

// TermsOfUseScreen shows the terms of use.
type TermsOfUseScreen struct {
	Title string
	Back  func()
}

func (*TermsOfUseScreen) ScreenKind() route.Kind { return route.KindTermsOfUse }

// LicensesScreen lists bundled open-source libraries.
type LicensesScreen struct {
	Title       string
	Licenses    []License
	Back        func()
	OpenLicense func(l License)
}

func (*LicensesScreen) ScreenKind() route.Kind { return route.KindLicenses }

// LicenseDetailScreen shows one license body.
type LicenseDetailScreen struct {
	Title       string
	LibraryName string
	LicenseText string
	Back        func()
}

func (*LicenseDetailScreen) ScreenKind() route.Kind { return route.KindLicenseDetail }

// SettingsScreen hosts the re-confirmation and about entry points.
type SettingsScreen struct {
	Title             string
	Back              func()
	ShowPrivacyNotice func()
	ShowTermsOfUse    func()
	ShowLicenses      func()
	RateApp           func()
}

func (*SettingsScreen) ScreenKind() route.Kind { return route.KindSettings }
