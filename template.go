package plurals

// HelperConfig configures template helper exports
type HelperConfig struct {
	// OnMissing renders a stand-in when a translation cannot be resolved.
	// Defaults to the empty string.
	OnMissing func(locale, key string, args []any, err error) string
}

// TemplateHelpers exposes translator helpers for text/template FuncMaps:
// "t" for plain lookups and "t_count" for plural-aware lookups.
func TemplateHelpers(t Translator, cfg HelperConfig) map[string]any {
	missing := cfg.OnMissing
	if missing == nil {
		missing = func(string, string, []any, error) string { return "" }
	}

	return map[string]any{
		"t": func(locale, key string, args ...any) string {
			out, err := t.Translate(locale, key, args...)
			if err != nil {
				return missing(locale, key, args, err)
			}
			return out
		},
		"t_count": func(locale, key string, count int, args ...any) string {
			out, err := t.TranslateCount(locale, key, count, args...)
			if err != nil {
				return missing(locale, key, args, err)
			}
			return out
		},
	}
}
