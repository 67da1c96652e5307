package plurals

import (
	"fmt"
	"sort"
)

// Message is a single translatable entry. Variants are ordered by plural
// form index: Variants[i] is the template FormIndex selects with result i.
// A message with one variant is an ordinary non-pluralized string.
type Message struct {
	Key      string
	Locale   string
	Variants []string
}

// Variant returns the template for the given plural form index. Messages
// with fewer variants than the language declares fall back to their last
// variant.
func (m Message) Variant(index int) (string, bool) {
	if len(m.Variants) == 0 || index < 0 {
		return "", false
	}
	if index >= len(m.Variants) {
		return m.Variants[len(m.Variants)-1], true
	}
	return m.Variants[index], true
}

// Content returns the default (first) template.
func (m Message) Content() string {
	if len(m.Variants) == 0 {
		return ""
	}
	return m.Variants[0]
}

func (m Message) clone() Message {
	out := m
	if len(m.Variants) > 0 {
		out.Variants = append([]string(nil), m.Variants...)
	}
	return out
}

// Translations maps locale code to key to message.
type Translations map[string]map[string]Message

// Store exposes read only access to translated message templates.
type Store interface {
	// Get returns the default template for locale/key and ok=false if missing
	Get(locale, key string) (string, bool)
	// Message returns the full message payload for locale/key
	Message(locale, key string) (Message, bool)
	// Locales returns the list of locales known to the store
	Locales() []string
}

// Loader retrieves the translations used to seed a Store
type Loader interface {
	Load() (Translations, error)
}

// LoaderFunc adapters allow bare functions to implement Loader
type LoaderFunc func() (Translations, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Translations, error) {
	return fn()
}

// StaticStore is an in memory store, read only after construction.
type StaticStore struct {
	translations Translations
	locales      []string
}

var _ Store = &StaticStore{}

// NewStaticStore builds an immutable snapshot from the given translations.
// Pluralized messages for locales the rule table knows must carry exactly
// FormCount variants.
func NewStaticStore(data Translations) (*StaticStore, error) {
	translations := make(Translations, len(data))
	locales := make([]string, 0, len(data))

	for locale, messages := range data {
		if locale == "" {
			return nil, fmt.Errorf("plurals: empty locale in store data")
		}

		bucket := make(map[string]Message, len(messages))
		for key, message := range messages {
			if key == "" {
				return nil, fmt.Errorf("plurals: empty key for locale %q", locale)
			}
			if err := validateMessage(locale, key, message); err != nil {
				return nil, err
			}

			clone := message.clone()
			clone.Key = key
			if clone.Locale == "" {
				clone.Locale = locale
			}
			bucket[key] = clone
		}

		translations[locale] = bucket
		locales = append(locales, locale)
	}

	// make locales deterministic
	sort.Strings(locales)

	return &StaticStore{
		translations: translations,
		locales:      locales,
	}, nil
}

// NewStaticStoreFromLoader hydrates a StaticStore using the provided loader
func NewStaticStoreFromLoader(loader Loader) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil)
	}

	translations, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewStaticStore(translations)
}

func validateMessage(locale, key string, message Message) error {
	if len(message.Variants) == 0 {
		return fmt.Errorf("plurals: message %s/%s has no variants", locale, key)
	}
	if len(message.Variants) == 1 {
		return nil
	}

	forms, err := FormCount(locale)
	if err != nil {
		// locales outside the rule table carry whatever the catalog provides
		return nil
	}
	if len(message.Variants) != forms {
		return fmt.Errorf("plurals: message %s/%s has %d variants, locale uses %d forms",
			locale, key, len(message.Variants), forms)
	}
	return nil
}

func (s *StaticStore) Message(locale, key string) (Message, bool) {
	if s == nil {
		return Message{}, false
	}

	bucket, ok := s.translations[locale]
	if !ok {
		return Message{}, false
	}

	msg, ok := bucket[key]
	if !ok {
		return Message{}, false
	}

	return msg.clone(), true
}

// Get returns the default template for locale/key
func (s *StaticStore) Get(locale, key string) (string, bool) {
	msg, ok := s.Message(locale, key)
	if !ok {
		return "", false
	}
	return msg.Content(), true
}

// Locales returns a slice with all locale codes
func (s *StaticStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}
