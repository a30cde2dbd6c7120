package i18n

import (
	"fmt"
	"os"
	"strings"
)

// Supported language codes
const (
	LangSystem  = "system"
	LangSpanish = "es"
	LangEnglish = "en"

	fallbackLanguage = LangEnglish
)

// Localization manages console text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// NewLocalization creates a new localization manager set to Spanish
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangSpanish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem || lang == "" {
		lang = SystemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[fallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// T returns localized text for key, formatted with args when given
func (l *Localization) T(key string, args ...any) string {
	text := l.GetText(key)
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangSpanish: "Español",
		LangEnglish: "English",
	}
}

// SystemLanguage maps LC_ALL / LANG to a supported language, defaulting to Spanish
func SystemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := strings.ToLower(os.Getenv(env))
		if value == "" || value == "c" || value == "posix" {
			continue
		}
		if strings.HasPrefix(value, LangEnglish) {
			return LangEnglish
		}
		return LangSpanish
	}
	return LangSpanish
}
