package plurals

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(
		WithLocales("es", "en", "en"),
		WithDefaultLocale("es"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DefaultLocale != "es" {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}

	expected := []string{"en", "es"}
	if len(cfg.Locales) != len(expected) {
		t.Fatalf("Locales length = %d, want %d", len(cfg.Locales), len(expected))
	}
	for i, locale := range expected {
		if cfg.Locales[i] != locale {
			t.Fatalf("Locales[%d] = %q, want %q", i, cfg.Locales[i], locale)
		}
	}

	if cfg.Store == nil {
		t.Fatal("expected default store")
	}

	if cfg.Resolver == nil {
		t.Fatal("expected fallback resolver")
	}
}

func TestNewConfigDefaultLocaleFromLocales(t *testing.T) {
	cfg, err := NewConfig(WithLocales("pl", "en"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DefaultLocale != "en" {
		t.Fatalf("DefaultLocale = %q, want first sorted locale", cfg.DefaultLocale)
	}
}

func TestNewConfigWithLoader(t *testing.T) {
	loader := LoaderFunc(func() (Translations, error) {
		return Translations{
			"en": {"home.title": {Variants: []string{"Welcome"}}},
		}, nil
	})

	cfg, err := NewConfig(WithLoader(loader))
	if err != nil {
		t.Fatalf("NewConfig with loader: %v", err)
	}

	msg, ok := cfg.Store.Get("en", "home.title")
	if !ok || msg != "Welcome" {
		t.Fatalf("store lookup returned %q,%v", msg, ok)
	}
}

func TestConfigWithFallbackOption(t *testing.T) {
	cfg, err := NewConfig(
		WithLocales("en", "el", "el_CY"),
		WithDefaultLocale("en"),
		WithFallback("el_CY", "el"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	chain := cfg.Resolver.Resolve("el_CY")
	if len(chain) != 1 || chain[0] != "el" {
		t.Fatalf("Resolve(el_CY) = %v", chain)
	}
}

func TestConfigBuildTranslator(t *testing.T) {
	loader := LoaderFunc(func() (Translations, error) {
		return Translations{
			"en": {"cart.items": {Variants: []string{"{count} item", "{count} items"}}},
			"ru": {"cart.items": {Variants: []string{"{count} файл", "{count} файла", "{count} файлов"}}},
		}, nil
	})

	cfg, err := NewConfig(
		WithLoader(loader),
		WithDefaultLocale("en"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	translator, err := cfg.BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator: %v", err)
	}

	tests := []struct {
		locale string
		count  int
		want   string
	}{
		{"en", 1, "1 item"},
		{"ru", 1, "1 файл"},
		{"ru", 3, "3 файла"},
		{"ru", 11, "11 файлов"},
		{"ru", 21, "21 файл"},
		{"fr", 2, "2 items"},
	}

	for _, tc := range tests {
		got, err := translator.TranslateCount(tc.locale, "cart.items", tc.count)
		if err != nil {
			t.Fatalf("TranslateCount(%q, %d): %v", tc.locale, tc.count, err)
		}
		if got != tc.want {
			t.Fatalf("TranslateCount(%q, %d) = %q, want %q", tc.locale, tc.count, got, tc.want)
		}
	}
}
