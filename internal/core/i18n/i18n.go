// Package i18n resolves dot-delimited translation keys against embedded
// per-locale tables. Lookups fall back to English when the active locale is
// missing a key, and to the raw key when English is missing it too.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/younivent/platform/internal/core/domain"
)

//go:embed locales/*.json
var localeFS embed.FS

var tables = map[domain.Language]map[string]any{}

func init() {
	for _, lang := range []domain.Language{domain.LangEnglish, domain.LangFrench, domain.LangSpanish, domain.LangGerman} {
		raw, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", lang))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing locale %s: %v", lang, err))
		}
		var table map[string]any
		if err := json.Unmarshal(raw, &table); err != nil {
			panic(fmt.Sprintf("i18n: bad locale %s: %v", lang, err))
		}
		tables[lang] = table
	}
}

// T resolves key ("nav.dashboard") for lang. Unsupported locales resolve
// against English wholesale; an unresolvable key is returned verbatim.
func T(lang domain.Language, key string) string {
	if !lang.Supported() {
		lang = domain.DefaultLanguage
	}
	if s, ok := lookup(tables[lang], key); ok {
		return s
	}
	if lang != domain.DefaultLanguage {
		if s, ok := lookup(tables[domain.DefaultLanguage], key); ok {
			return s
		}
	}
	return key
}

// Table returns the full resolved table for lang (English when unsupported).
func Table(lang domain.Language) map[string]any {
	if !lang.Supported() {
		lang = domain.DefaultLanguage
	}
	return tables[lang]
}

func lookup(table map[string]any, key string) (string, bool) {
	node := any(table)
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = m[part]
		if !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}
