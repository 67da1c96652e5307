package plurals

import (
	"reflect"
	"testing"
)

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("el_CY", "el", "el", "")
	resolver.Set("fr_CA", "fr", "en")

	if got := resolver.Resolve("el_CY"); !reflect.DeepEqual(got, []string{"el"}) {
		t.Fatalf("Resolve(el_CY) = %v", got)
	}

	if got := resolver.Resolve("fr_CA"); !reflect.DeepEqual(got, []string{"fr", "en"}) {
		t.Fatalf("Resolve(fr_CA) = %v", got)
	}

	// hyphenated lookups normalize to the stored key
	if got := resolver.Resolve("el-CY"); !reflect.DeepEqual(got, []string{"el"}) {
		t.Fatalf("Resolve(el-CY) = %v", got)
	}

	if got := resolver.Resolve("pl"); got != nil {
		t.Fatalf("Resolve(pl) = %v, want nil", got)
	}

	// returned chain is a copy
	chain := resolver.Resolve("fr_CA")
	chain[0] = "de"
	if got := resolver.Resolve("fr_CA"); got[0] != "fr" {
		t.Fatalf("resolver chain mutated: %v", got)
	}
}

func TestResolveCandidates(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("fr", "es")

	tests := []struct {
		name   string
		locale string
		want   []string
	}{
		{name: "plain locale", locale: "en", want: []string{"en"}},
		{name: "regional variant derives parent", locale: "pt_BR", want: []string{"pt_BR", "pt"}},
		{name: "hyphen form normalized", locale: "pt-BR", want: []string{"pt_BR", "pt"}},
		{name: "resolver chain appended", locale: "fr", want: []string{"fr", "es"}},
		{name: "empty locale", locale: "", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveCandidates(tc.locale, resolver)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("resolveCandidates(%q) = %v, want %v", tc.locale, got, tc.want)
			}
		})
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{" en ", "en"},
		{"pt-BR", "pt_BR"},
		{"pt_BR", "pt_BR"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := normalizeLocale(tc.in); got != tc.want {
			t.Fatalf("normalizeLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLocaleParentChain(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{"pt_BR", []string{"pt"}},
		{"el_CY", []string{"el"}},
		{"en", nil},
		{"", nil},
	}

	for _, tc := range tests {
		got := localeParentChain(tc.locale)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("localeParentChain(%q) = %v, want %v", tc.locale, got, tc.want)
		}
	}
}
