package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs of the built-in strings.
const (
	MsgToolbarTitle = "toolbar_title"
	MsgMenuSections = "menu_header_sections"
	MsgMenuAllNotes = "menu_all_notes"
	MsgMenuTagged   = "menu_tagged"
	MsgMenuSettings = "menu_settings"

	localeDir = "locales"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error

	localizerMu sync.RWMutex
	localizer   *i18n.Localizer
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := fs.ReadDir(localeFS, localeDir)
		if err != nil {
			bundleErr = fmt.Errorf("reading embedded locales: %w", err)
			return
		}
		for _, entry := range entries {
			path := localeDir + "/" + entry.Name()
			if _, err := b.LoadMessageFileFS(localeFS, path); err != nil {
				bundleErr = fmt.Errorf("loading %s: %w", path, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// SetLocale selects the language of Localize. Tags are matched against the
// embedded translations, falling back to English.
func SetLocale(tags ...string) error {
	b, err := loadBundle()
	if err != nil {
		return err
	}
	localizerMu.Lock()
	localizer = i18n.NewLocalizer(b, tags...)
	localizerMu.Unlock()
	GetInternalLogger().Debug("Locale set", "tags", tags)
	return nil
}

// SupportedLocales lists the languages with embedded translations.
func SupportedLocales() []language.Tag {
	b, err := loadBundle()
	if err != nil {
		return []language.Tag{language.English}
	}
	return b.LanguageTags()
}

// Localize returns the translation of id, or id itself if it has none.
func Localize(id string) string {
	localizerMu.RLock()
	l := localizer
	localizerMu.RUnlock()

	if l == nil {
		if err := SetLocale(language.English.String()); err != nil {
			return id
		}
		localizerMu.RLock()
		l = localizer
		localizerMu.RUnlock()
	}

	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		GetInternalLogger().Warn("Missing translation", "id", id, "error", err)
		return id
	}
	return msg
}
