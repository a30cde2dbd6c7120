package i18n

import (
	"reflect"
	"testing"
)

func TestNewLocalization(t *testing.T) {
	l := NewLocalization()
	if l.GetCurrentLanguage() != LangSpanish {
		t.Errorf("Expected default language %s, got %s", LangSpanish, l.GetCurrentLanguage())
	}
	if l.GetText(KeyStepURL) != "1. URL del video:" {
		t.Errorf("Unexpected Spanish text: %s", l.GetText(KeyStepURL))
	}
}

func TestSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage(LangEnglish)
	if l.GetCurrentLanguage() != LangEnglish {
		t.Errorf("Expected language %s, got %s", LangEnglish, l.GetCurrentLanguage())
	}

	// unknown codes keep the current language
	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != LangEnglish {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestSetLanguage_System(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")

	l := NewLocalization()
	l.SetLanguage(LangSystem)
	if l.GetCurrentLanguage() != LangEnglish {
		t.Errorf("Expected system language %s, got %s", LangEnglish, l.GetCurrentLanguage())
	}
}

func TestSystemLanguage(t *testing.T) {
	tests := []struct {
		name     string
		lcAll    string
		lang     string
		expected string
	}{
		{"english LANG", "", "en_GB.UTF-8", LangEnglish},
		{"spanish LANG", "", "es_MX.UTF-8", LangSpanish},
		{"LC_ALL wins", "en_US.UTF-8", "es_ES.UTF-8", LangEnglish},
		{"C locale skipped", "C", "en_US", LangEnglish},
		{"other language", "", "de_DE.UTF-8", LangSpanish},
		{"nothing set", "", "", LangSpanish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LC_MESSAGES", "")
			t.Setenv("LANG", tt.lang)
			if got := SystemLanguage(); got != tt.expected {
				t.Errorf("SystemLanguage() = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestGetText_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Missing key should return itself, got %s", got)
	}

	l.texts[LangEnglish]["only_english"] = "english only"
	if got := l.GetText("only_english"); got != "english only" {
		t.Errorf("Expected English fallback, got %s", got)
	}
}

func TestT_Formats(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage(LangEnglish)

	if got := l.T(KeyPlatformDetected, "YOUTUBE"); got != "Detected platform: YOUTUBE" {
		t.Errorf("Unexpected formatted text: %s", got)
	}
	if got := l.T(KeyURLEmpty); got != "The URL cannot be empty." {
		t.Errorf("Unexpected text: %s", got)
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	l := NewLocalization()

	keys := func(m map[string]string) map[string]bool {
		out := make(map[string]bool, len(m))
		for k := range m {
			out[k] = true
		}
		return out
	}

	es := keys(l.texts[LangSpanish])
	en := keys(l.texts[LangEnglish])
	if !reflect.DeepEqual(es, en) {
		for k := range es {
			if !en[k] {
				t.Errorf("key %s missing in English", k)
			}
		}
		for k := range en {
			if !es[k] {
				t.Errorf("key %s missing in Spanish", k)
			}
		}
	}
}

func TestGetAvailableLanguages(t *testing.T) {
	l := NewLocalization()
	langs := l.GetAvailableLanguages()
	for _, code := range []string{LangSpanish, LangEnglish} {
		if _, ok := langs[code]; !ok {
			t.Errorf("Expected language option '%s' to exist", code)
		}
		if _, ok := l.texts[code]; !ok {
			t.Errorf("Expected texts for '%s'", code)
		}
	}
}
