package plurals

import (
	"fmt"
	"sort"
)

// Config captures translator setup
type Config struct {
	DefaultLocale string
	Locales       []string
	Loader        Loader
	Store         Store
	Resolver      FallbackResolver
	Formatter     Formatter

	fallbacks map[string][]string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.normalizeLocales()

	if cfg.Store == nil {
		if cfg.Loader != nil {
			store, err := NewStaticStoreFromLoader(cfg.Loader)
			if err != nil {
				return nil, err
			}
			cfg.Store = store
		} else {
			store, err := NewStaticStore(nil)
			if err != nil {
				return nil, err
			}
			cfg.Store = store
		}
	}

	if cfg.Resolver == nil {
		resolver := NewStaticFallbackResolver()
		for locale, chain := range cfg.fallbacks {
			resolver.Set(locale, chain...)
		}
		cfg.Resolver = resolver
	}

	if cfg.DefaultLocale == "" && len(cfg.Locales) > 0 {
		cfg.DefaultLocale = cfg.Locales[0]
	}

	return cfg, nil
}

// WithDefaultLocale sets the default locale in Config
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = normalizeLocale(locale)
		return nil
	}
}

// WithLocales registers supported locales
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithLoader sets the catalog loader used to seed the store
func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithStore sets an explicit store, bypassing the loader
func WithStore(store Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

// WithResolver sets an explicit fallback resolver
func WithResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback registers an explicit fallback chain for a locale
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return fmt.Errorf("plurals: fallback for empty locale")
		}
		if c.fallbacks == nil {
			c.fallbacks = make(map[string][]string)
		}
		c.fallbacks[locale] = append(c.fallbacks[locale], fallbacks...)
		return nil
	}
}

// WithFormatter sets the formatter handed to built translators
func WithFormatter(formatter Formatter) Option {
	return func(c *Config) error {
		if formatter == nil {
			return fmt.Errorf("plurals: nil formatter")
		}
		c.Formatter = formatter
		return nil
	}
}

// BuildTranslator wires the configured store and resolver into a translator.
func (c *Config) BuildTranslator() (Translator, error) {
	if c == nil {
		return nil, fmt.Errorf("plurals: nil config")
	}

	opts := []TranslatorOption{
		WithTranslatorDefaultLocale(c.DefaultLocale),
		WithTranslatorResolver(c.Resolver),
	}
	if c.Formatter != nil {
		opts = append(opts, WithTranslatorFormatter(c.Formatter))
	}

	return NewSimpleTranslator(c.Store, opts...)
}

func (c *Config) normalizeLocales() {
	if len(c.Locales) == 0 {
		return
	}

	seen := make(map[string]struct{}, len(c.Locales))
	result := make([]string, 0, len(c.Locales))
	for _, locale := range c.Locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	c.Locales = result
}
