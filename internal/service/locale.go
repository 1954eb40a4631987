package service

import (
	"context"
	"encoding/json"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/identity"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"
)

const localeKeyBase = "locale_prefs"

// Supported app languages.
const (
	LocaleEnglish = "en"
	LocaleUrdu    = "ur"
)

// LocalePrefs is the per-user language preference, persisted on device so
// the choice survives restarts and never bleeds across accounts.
type LocalePrefs struct {
	store    localstore.Store
	identity identity.Provider
}

type localePrefsRecord struct {
	Language string `json:"language"`
	// Transliterate renders Urdu in Latin script for users who speak it
	// but read it slowly.
	Transliterate bool `json:"transliterate"`
}

func NewLocalePrefs(store localstore.Store, ident identity.Provider) *LocalePrefs {
	return &LocalePrefs{store: store, identity: ident}
}

// Get returns the user's language and transliteration preference,
// defaulting to English.
func (l *LocalePrefs) Get(ctx context.Context) (language string, transliterate bool) {
	userID, err := l.identity.CurrentUserID(ctx)
	if err != nil {
		return LocaleEnglish, false
	}
	raw, ok, err := l.store.GetItem(ctx, localstore.UserScopedKey(localeKeyBase, userID))
	if err != nil || !ok {
		return LocaleEnglish, false
	}
	var rec localePrefsRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || (rec.Language != LocaleEnglish && rec.Language != LocaleUrdu) {
		return LocaleEnglish, false
	}
	return rec.Language, rec.Transliterate
}

// Set stores the preference for the current user.
func (l *LocalePrefs) Set(ctx context.Context, language string, transliterate bool) error {
	userID, err := l.identity.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	if language != LocaleUrdu {
		language = LocaleEnglish
	}
	raw, err := json.Marshal(localePrefsRecord{Language: language, Transliterate: transliterate})
	if err != nil {
		return err
	}
	return l.store.SetItem(ctx, localstore.UserScopedKey(localeKeyBase, userID), string(raw))
}
