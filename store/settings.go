package store

const (
	darkThemeKey = "dark_theme"
	languageKey  = "language"
)

// Settings exposes the persisted UI preferences.
type Settings struct {
	store *Store
}

// NewSettings creates a settings view over the preference store.
func NewSettings(store *Store) *Settings {
	return &Settings{store: store}
}

// DarkTheme reports whether the dark theme is enabled.
func (s *Settings) DarkTheme() bool {
	v, err := s.store.Get(darkThemeKey)
	if err != nil {
		s.store.logger.Error("Failed to read theme setting: %v", err)
		return false
	}
	return v == "true"
}

// SetDarkTheme persists the theme preference.
func (s *Settings) SetDarkTheme(dark bool) error {
	v := "false"
	if dark {
		v = "true"
	}
	return s.store.Set(darkThemeKey, v)
}

// Language returns the persisted language code, or the empty string when
// none has been chosen yet.
func (s *Settings) Language() string {
	v, err := s.store.Get(languageKey)
	if err != nil {
		s.store.logger.Error("Failed to read language setting: %v", err)
		return ""
	}
	return v
}

// SetLanguage persists the language preference.
func (s *Settings) SetLanguage(code string) error {
	return s.store.Set(languageKey, code)
}

// SeedDefaults fills preferences that have never been set from the config
// defaults. Already-persisted values are left alone.
func (s *Settings) SeedDefaults(dark bool, language string) {
	if v, err := s.store.Get(darkThemeKey); err == nil && v == "" && dark {
		if err := s.SetDarkTheme(true); err != nil {
			s.store.logger.Error("Failed to seed theme default: %v", err)
		}
	}
	if v, err := s.store.Get(languageKey); err == nil && v == "" && language != "" {
		if err := s.SetLanguage(language); err != nil {
			s.store.logger.Error("Failed to seed language default: %v", err)
		}
	}
}
