package plurals

import (
	"fmt"
	"strconv"
	"strings"
)

// Translator resolves a string for a given locale and message key.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
	// TranslateCount picks the plural variant the rule table selects for
	// count, substituting {count} in the template.
	TranslateCount(locale, key string, count int, args ...any) (string, error)
}

// Formatter renders a resolved template with positional args.
type Formatter interface {
	Format(template string, args ...any) (string, error)
}

// FormatterFunc adapters allow bare functions to implement Formatter
type FormatterFunc func(template string, args ...any) (string, error)

func (fn FormatterFunc) Format(template string, args ...any) (string, error) {
	return fn(template, args...)
}

func sprintfFormatter(template string, args ...any) (string, error) {
	if len(args) == 0 {
		return template, nil
	}
	return fmt.Sprintf(template, args...), nil
}

// SimpleTranslator serves templates from a Store, walking the fallback
// candidate chain until a catalog has the key.
type SimpleTranslator struct {
	store         Store
	resolver      FallbackResolver
	formatter     Formatter
	defaultLocale string
}

var _ Translator = &SimpleTranslator{}

// TranslatorOption mutates SimpleTranslator during construction
type TranslatorOption func(*SimpleTranslator) error

// WithTranslatorDefaultLocale sets the locale used when none is supplied.
func WithTranslatorDefaultLocale(locale string) TranslatorOption {
	return func(t *SimpleTranslator) error {
		t.defaultLocale = normalizeLocale(locale)
		return nil
	}
}

// WithTranslatorResolver sets the fallback resolver.
func WithTranslatorResolver(resolver FallbackResolver) TranslatorOption {
	return func(t *SimpleTranslator) error {
		t.resolver = resolver
		return nil
	}
}

// WithTranslatorFormatter replaces the sprintf-based default formatter.
func WithTranslatorFormatter(formatter Formatter) TranslatorOption {
	return func(t *SimpleTranslator) error {
		if formatter == nil {
			return fmt.Errorf("plurals: nil formatter")
		}
		t.formatter = formatter
		return nil
	}
}

// NewSimpleTranslator builds a translator over the given store.
func NewSimpleTranslator(store Store, opts ...TranslatorOption) (*SimpleTranslator, error) {
	if store == nil {
		return nil, fmt.Errorf("plurals: nil store")
	}

	t := &SimpleTranslator{
		store:     store,
		formatter: FormatterFunc(sprintfFormatter),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Translate returns the default template for locale/key, formatted with args.
func (t *SimpleTranslator) Translate(locale, key string, args ...any) (string, error) {
	msg, _, ok := t.lookup(locale, key)
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, locale, key)
	}
	return t.formatter.Format(msg.Content(), args...)
}

// TranslateCount selects the plural variant for count. The plural rule is
// the one of the catalog locale that actually matched; catalog locales the
// rule table does not know use the common two-form rule.
func (t *SimpleTranslator) TranslateCount(locale, key string, count int, args ...any) (string, error) {
	msg, matched, ok := t.lookup(locale, key)
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, locale, key)
	}

	index, err := FormIndex(matched, count)
	if err != nil {
		index = twoFormIndex(count)
	}

	template, ok := msg.Variant(index)
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, locale, key)
	}

	template = strings.ReplaceAll(template, "{count}", strconv.Itoa(count))
	return t.formatter.Format(template, args...)
}

// lookup walks the candidate chain and returns the first matching message
// together with the catalog locale that held it.
func (t *SimpleTranslator) lookup(locale, key string) (Message, string, bool) {
	if locale == "" {
		locale = t.defaultLocale
	}

	candidates := resolveCandidates(locale, t.resolver)
	if t.defaultLocale != "" {
		candidates = append(candidates, t.defaultLocale)
	}

	for _, candidate := range candidates {
		if msg, ok := t.store.Message(candidate, key); ok {
			return msg, candidate, true
		}
	}

	return Message{}, "", false
}
