package i18n

import (
	"testing"

	"github.com/younivent/platform/internal/core/domain"
)

func TestT_ResolvesPerLocale(t *testing.T) {
	if got := T(domain.LangEnglish, "nav.dashboard"); got != "Dashboard" {
		t.Fatalf("en nav.dashboard: got %q", got)
	}
	if got := T(domain.LangFrench, "nav.dashboard"); got != "Tableau de bord" {
		t.Fatalf("fr nav.dashboard: got %q", got)
	}
	if got := T(domain.LangSpanish, "auth.login"); got != "Iniciar sesión" {
		t.Fatalf("es auth.login: got %q", got)
	}
	if got := T(domain.LangGerman, "nav.settings"); got != "Einstellungen" {
		t.Fatalf("de nav.settings: got %q", got)
	}
}

func TestT_UnsupportedLocaleFallsBackToEnglish(t *testing.T) {
	if got := T(domain.Language("pt"), "nav.dashboard"); got != "Dashboard" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestT_MissingKeyReturnsKey(t *testing.T) {
	if got := T(domain.LangEnglish, "nav.does_not_exist"); got != "nav.does_not_exist" {
		t.Fatalf("expected raw key, got %q", got)
	}
	if got := T(domain.LangFrench, "totally.unknown"); got != "totally.unknown" {
		t.Fatalf("expected raw key, got %q", got)
	}
}

func TestTable_EveryLocaleCoversEnglishKeys(t *testing.T) {
	ref := Table(domain.LangEnglish)
	for _, lang := range []domain.Language{domain.LangFrench, domain.LangSpanish, domain.LangGerman} {
		table := Table(lang)
		for section, v := range ref {
			keys, ok := v.(map[string]any)
			if !ok {
				continue
			}
			got, ok := table[section].(map[string]any)
			if !ok {
				t.Fatalf("%s: missing section %q", lang, section)
			}
			for k := range keys {
				if _, ok := got[k]; !ok {
					t.Fatalf("%s: missing key %s.%s", lang, section, k)
				}
			}
		}
	}
}
