// Package i18n provides localized screen titles and labels for the
// navigation core. Message catalogs are TOML files embedded in the binary;
// unknown languages and missing messages fall back to English and to the
// message id respectively, so lookups never fail.
package i18n

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/sagra/pkg/sagra/internal"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *goi18n.Bundle
)

func getBundle() *goi18n.Bundle {
	bundleOnce.Do(func() {
		bundle = goi18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		for _, path := range []string{"locales/en.toml", "locales/it.toml"} {
			if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
				internal.GetInternalLogger().Error("failed to load message catalog",
					"path", path, "error", err)
			}
		}
	})
	return bundle
}

// Localizer resolves message ids for one language.
type Localizer struct {
	loc *goi18n.Localizer
}

// NewLocalizer creates a localizer for the given BCP 47 language tag.
// Unknown tags fall back to English.
func NewLocalizer(lang string) *Localizer {
	return &Localizer{loc: goi18n.NewLocalizer(getBundle(), lang)}
}

// T resolves a message id. A missing message falls back to the id itself
// rather than failing, so a late catalog addition never breaks navigation.
func (l *Localizer) T(id string) string {
	msg, err := l.loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
