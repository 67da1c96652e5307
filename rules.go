package plurals

import (
	"fmt"
	"sort"
)

// ruleFamily tags one pluralization formula. Locales sharing a formula share
// a tag; languages with a formula of their own get a dedicated tag.
type ruleFamily uint8

const (
	familyInvariant ruleFamily = iota
	familyTwoForm
	familyZeroOne
	familySlavic
	familyCzech
	familyArabic
	familyKashubian
	familyWelsh
	familyIrish
	familyGaelic
	familyIcelandic
	familyJavanese
	familyCornish
	familyLithuanian
	familyLatvian
	familyMacedonian
	familyMandinka
	familyMaltese
	familyPolish
	familyRomanian
	familySlovenian
)

// cardinalRule pairs a formula tag with the number of plural forms the
// formula can produce.
type cardinalRule struct {
	family ruleFamily
	forms  int
}

// FormCount returns how many plural forms the locale's language uses.
// Locale codes are matched exactly, with no normalization or fallback;
// unknown codes fail with ErrUnknownLocale.
func FormCount(locale string) (int, error) {
	rule, ok := cardinalRules[locale]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return rule.forms, nil
}

// FormIndex returns the zero-based plural form for count in the locale's
// language. The result is always in [0, FormCount(locale)) for count >= 0;
// negative counts are not validated against any language data. Unknown
// codes fail with ErrUnknownLocale.
func FormIndex(locale string, count int) (int, error) {
	rule, ok := cardinalRules[locale]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return formIndex(rule.family, count), nil
}

// Has reports whether the locale exists in the rule table.
func Has(locale string) bool {
	_, ok := cardinalRules[locale]
	return ok
}

// Locales returns every locale code in the rule table, sorted alphabetically.
func Locales() []string {
	out := make([]string, 0, len(cardinalRules))
	for code := range cardinalRules {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func formIndex(family ruleFamily, n int) int {
	switch family {
	case familyInvariant:
		return invariantIndex(n)
	case familyTwoForm:
		return twoFormIndex(n)
	case familyZeroOne:
		return zeroOneIndex(n)
	case familySlavic:
		return slavicIndex(n)
	case familyCzech:
		return czechIndex(n)
	case familyArabic:
		return arabicIndex(n)
	case familyKashubian:
		return kashubianIndex(n)
	case familyWelsh:
		return welshIndex(n)
	case familyIrish:
		return irishIndex(n)
	case familyGaelic:
		return gaelicIndex(n)
	case familyIcelandic:
		return icelandicIndex(n)
	case familyJavanese:
		return javaneseIndex(n)
	case familyCornish:
		return cornishIndex(n)
	case familyLithuanian:
		return lithuanianIndex(n)
	case familyLatvian:
		return latvianIndex(n)
	case familyMacedonian:
		return macedonianIndex(n)
	case familyMandinka:
		return mandinkaIndex(n)
	case familyMaltese:
		return malteseIndex(n)
	case familyPolish:
		return polishIndex(n)
	case familyRomanian:
		return romanianIndex(n)
	case familySlovenian:
		return slovenianIndex(n)
	default:
		return 0
	}
}
