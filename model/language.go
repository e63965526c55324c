package model

// Language is one of the application's supported UI languages.
type Language struct {
	Code        string
	DisplayName string
	NativeName  string
}

var (
	Spanish = Language{Code: "es", DisplayName: "Spanish", NativeName: "Español"}
	English = Language{Code: "en", DisplayName: "English", NativeName: "English"}
)

// Languages lists every supported language.
func Languages() []Language {
	return []Language{Spanish, English}
}

// LanguageFromCode resolves a language code, falling back to Spanish for
// anything unknown.
func LanguageFromCode(code string) Language {
	for _, lang := range Languages() {
		if lang.Code == code {
			return lang
		}
	}
	return Spanish
}
