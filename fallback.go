package plurals

// FallbackResolver resolves explicit fallback locale chains. Fallback policy
// lives entirely in this layer; the rule table itself never falls back.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver serves fallback chains from a fixed map.
type StaticFallbackResolver struct {
	chains map[string][]string
}

// NewStaticFallbackResolver builds a resolver with no configured chains.
func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set registers the fallback chain for a locale, replacing any previous one.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil || locale == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[normalizeLocale(locale)] = normalizeLocales(fallbacks)
}

// Resolve returns the configured fallback chain for the locale.
func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || len(s.chains) == 0 {
		return nil
	}
	chain, ok := s.chains[normalizeLocale(locale)]
	if !ok || len(chain) == 0 {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}

func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
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
	return result
}

// resolveCandidates composes the lookup order for catalog access: the locale
// itself, its derived parents, then configured fallbacks and their parents.
func resolveCandidates(locale string, resolver FallbackResolver) []string {
	if locale == "" {
		return nil
	}

	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	normalized := normalizeLocale(locale)
	appendLocale(normalized)

	for _, parent := range localeParentChain(normalized) {
		appendLocale(parent)
	}

	if resolver != nil {
		for _, fallback := range resolver.Resolve(normalized) {
			appendLocale(fallback)
			for _, parent := range localeParentChain(fallback) {
				appendLocale(parent)
			}
		}
	}

	return candidates
}
