package plurals

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileLoaderJSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	enPath := writeCatalog(t, dir, "en.json", `{
		"en": {
			"home.title": "Welcome",
			"cart.items": ["{count} item", "{count} items"]
		}
	}`)

	plPath := writeCatalog(t, dir, "pl.yaml", `
pl:
  home.title: Witamy
  cart.items:
    - "{count} plik"
    - "{count} pliki"
    - "{count} plików"
`)

	loader := NewFileLoader(enPath, plPath)

	translations, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(translations) != 2 {
		t.Fatalf("expected 2 locales, got %d", len(translations))
	}

	if got := translations["en"]["home.title"].Content(); got != "Welcome" {
		t.Fatalf("en/home.title = %q", got)
	}

	enItems := translations["en"]["cart.items"]
	if len(enItems.Variants) != 2 || enItems.Variants[1] != "{count} items" {
		t.Fatalf("en/cart.items variants = %v", enItems.Variants)
	}

	plItems := translations["pl"]["cart.items"]
	if len(plItems.Variants) != 3 || plItems.Variants[2] != "{count} plików" {
		t.Fatalf("pl/cart.items variants = %v", plItems.Variants)
	}
}

func TestFileLoaderMergesFiles(t *testing.T) {
	dir := t.TempDir()

	first := writeCatalog(t, dir, "base.json", `{"en": {"home.title": "Welcome"}}`)
	second := writeCatalog(t, dir, "extra.json", `{"en": {"home.bye": "Goodbye"}}`)

	translations, err := NewFileLoader(first, second).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(translations["en"]) != 2 {
		t.Fatalf("expected merged catalog, got %v", translations["en"])
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	valid := writeCatalog(t, dir, "en.json", `{"en": {"home.title": "Welcome"}}`)
	badShape := writeCatalog(t, dir, "bad.json", `{"en": {"home.title": 42}}`)
	badYAML := writeCatalog(t, dir, "bad.yaml", "en:\n  key:\n    nested: true\n")
	emptyList := writeCatalog(t, dir, "empty.json", `{"en": {"home.title": []}}`)

	tests := []struct {
		name  string
		paths []string
	}{
		{name: "no paths"},
		{name: "missing file", paths: []string{filepath.Join(dir, "nope.json")}},
		{name: "unsupported extension", paths: []string{valid, filepath.Join(dir, "en.txt")}},
		{name: "non string value", paths: []string{badShape}},
		{name: "nested yaml value", paths: []string{badYAML}},
		{name: "empty variant list", paths: []string{emptyList}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewFileLoader(tc.paths...).Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
