// internal/domain/i18n/i18n.go
package i18n

import "strings"

// Lang is the storefront display language.
type Lang string

const (
	LangEN Lang = "en"
	LangES Lang = "es"
)

// DefaultLang is used when a request carries no usable language hint.
const DefaultLang = LangEN

// IsLang reports whether value is a supported language code.
func IsLang(value string) bool {
	switch Lang(strings.TrimSpace(strings.ToLower(value))) {
	case LangEN, LangES:
		return true
	}
	return false
}

// ParseLang normalizes a language hint ("es-MX", "EN", ...) to a supported Lang.
func ParseLang(value string) Lang {
	v := strings.TrimSpace(strings.ToLower(value))
	if i := strings.IndexByte(v, '-'); i >= 0 {
		v = v[:i]
	}
	if IsLang(v) {
		return Lang(v)
	}
	return DefaultLang
}

// Text is a bilingual value stored as-is in Firestore documents.
type Text struct {
	EN string `json:"en" firestore:"en"`
	ES string `json:"es" firestore:"es"`
}

// Pick returns the value for lang, falling back to English.
func (t Text) Pick(lang Lang) string {
	if lang == LangES && strings.TrimSpace(t.ES) != "" {
		return t.ES
	}
	return t.EN
}

// IsZero reports whether both translations are empty.
func (t Text) IsZero() bool {
	return strings.TrimSpace(t.EN) == "" && strings.TrimSpace(t.ES) == ""
}
