package screens

import (
	"github.com/BrandonKowalski/sagra/pkg/sagra/navigation"
	"github.com/BrandonKowalski/sagra/pkg/sagra/route"
)

// Entries builds the complete route-to-entry table over the closed variant
// set. Pass the result to navigation.NewRegistry, which verifies
// exhaustiveness at startup.
func Entries(deps Deps) map[route.Kind]navigation.EntryFunc {
	return map[route.Kind]navigation.EntryFunc{
		route.KindStartPrivacyNotice: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			return deps.privacyNotice(route.KindStartPrivacyNotice, false, nav), nil
		},

		route.KindPrivacyNoticePrompt: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			in := r.(route.PrivacyNoticePrompt)
			return deps.privacyNotice(route.KindPrivacyNoticePrompt, in.ConfirmationRequired, nav), nil
		},

		route.KindNotifications: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			// Either choice finishes onboarding; the stack resets so the
			// user cannot navigate back into it.
			finish := func() { nav.ReplaceAll(route.Main{}) }
			return &NotificationsScreen{
				Title:   deps.title("screen_notifications"),
				Enable:  finish,
				Decline: finish,
			}, nil
		},

		route.KindMain: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			return &MainScreen{
				Title:        deps.title("screen_main"),
				OpenSession:  func(id string) { nav.Push(route.Session{SessionID: id}) },
				OpenSpeaker:  func(id string) { nav.Push(route.SpeakerDetail{SpeakerID: id}) },
				OpenPartner:  func(id string) { nav.Push(route.PartnerDetail{PartnerID: id}) },
				OpenRoom:     func(name string) { nav.Push(route.RoomSlots{RoomName: name}) },
				OpenSettings: func() { nav.Push(route.Settings{}) },
			}, nil
		},

		route.KindSession: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			in := r.(route.Session)
			return &SessionScreen{
				Title:       deps.title("screen_session"),
				SessionID:   in.SessionID,
				Back:        nav.Pop,
				OpenSpeaker: func(id string) { nav.Push(route.SpeakerDetail{SpeakerID: id}) },
				OpenRoom:    func(name string) { nav.Push(route.RoomSlots{RoomName: name}) },
			}, nil
		},

		route.KindSpeakerDetail: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			in := r.(route.SpeakerDetail)
			return &SpeakerDetailScreen{
				Title:       deps.title("screen_speaker_detail"),
				SpeakerID:   in.SpeakerID,
				Back:        nav.Pop,
				OpenSession: func(id string) { nav.Push(route.Session{SessionID: id}) },
				OpenProfile: deps.openURL,
			}, nil
		},

		route.KindPartnerDetail: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			in := r.(route.PartnerDetail)
			return &PartnerDetailScreen{
				Title:       deps.title("screen_partner_detail"),
				PartnerID:   in.PartnerID,
				Back:        nav.Pop,
				OpenWebsite: deps.openURL,
			}, nil
		},

		route.KindRoomSlots: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			in := r.(route.RoomSlots)
			return &RoomSlotsScreen{
				Title:       deps.title("screen_room_slots"),
				RoomName:    in.RoomName,
				Back:        nav.Pop,
				OpenSession: func(id string) { nav.Push(route.Session{SessionID: id}) },
			}, nil
		},

		route.KindTermsOfUse: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			return &TermsOfUseScreen{
				Title: deps.title("screen_terms_of_use"),
				Back:  nav.Pop,
			}, nil
		},

		route.KindLicenses: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			return &LicensesScreen{
				Title:    deps.title("screen_licenses"),
				Licenses: deps.Licenses,
				Back:     nav.Pop,
				OpenLicense: func(l License) {
					nav.Push(route.LicenseDetail{
						LibraryName: l.LibraryName,
						LicenseText: l.LicenseText,
					})
				},
			}, nil
		},

		route.KindLicenseDetail: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			in := r.(route.LicenseDetail)
			return &LicenseDetailScreen{
				Title:       deps.title("screen_license_detail"),
				LibraryName: in.LibraryName,
				LicenseText: in.LicenseText,
				Back:        nav.Pop,
			}, nil
		},

		route.KindSettings: func(r route.Route, nav navigation.Navigator) (navigation.Screen, error) {
			return &SettingsScreen{
				Title: deps.title("screen_settings"),
				Back:  nav.Pop,
				ShowPrivacyNotice: func() {
					nav.Push(route.PrivacyNoticePrompt{ConfirmationRequired: true})
				},
				ShowTermsOfUse: func() { nav.Push(route.TermsOfUse{}) },
				ShowLicenses:   func() { nav.Push(route.Licenses{}) },
				RateApp: func() {
					if deps.Store == nil {
						return
					}
					url, ok := deps.Store.StoreURL()
					if !ok {
						// No store page on this platform; silent no-op.
						return
					}
					deps.openURL(url)
				},
			}, nil
		},
	}
}

// privacyNotice wires the shared privacy notice prompt.
//
// Onboarding mode (confirmationRequired == false): accepting or rejecting
// advances the flow. When the platform supports notifications the opt-in
// screen comes next; otherwise onboarding is done and the stack resets to
// the main screen.
//
// Re-confirmation mode (confirmationRequired == true): the prompt was pushed
// from settings, and either choice simply goes back.
func (d Deps) privacyNotice(kind route.Kind, confirmationRequired bool, nav navigation.Navigator) *PrivacyNoticeScreen {
	titleID := "screen_privacy_notice_prompt"
	if kind == route.KindStartPrivacyNotice {
		titleID = "screen_start_privacy_notice"
	}

	var decide func()
	if confirmationRequired {
		decide = nav.Pop
	} else {
		decide = func() {
			if d.Notifications != nil && d.Notifications.Supported() {
				nav.Push(route.Notifications{})
				return
			}
			nav.ReplaceAll(route.Main{})
		}
	}

	return &PrivacyNoticeScreen{
		Kind:                 kind,
		Title:                d.title(titleID),
		ConfirmationRequired: confirmationRequired,
		Accept:               decide,
		Reject:               decide,
	}
}
