package plurals

import (
	"strings"

	"golang.org/x/text/language"
)

// The rule table keys are gettext-style codes (pt_BR, es_AR), so the
// canonical separator inside this package is the underscore. BCP 47 form is
// only produced transiently for x/text parsing.

// normalizeLocale trims whitespace and canonicalizes the separator. It is
// used by the catalog and fallback layers only; FormCount and FormIndex
// match raw codes exactly.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")
}

func bcp47(locale string) string {
	return strings.ReplaceAll(locale, "_", "-")
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(bcp47(locale))
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return normalizeLocale(value)
	}

	if idx := strings.LastIndex(locale, "_"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeParentChain returns all parent locales for the given code, ordered
// from closest parent to root.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(bcp47(locale)); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			parentValue = normalizeLocale(parentValue)
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}
