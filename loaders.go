package plurals

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader reads translation catalogs from JSON or YAML files. Each file
// maps locale code to key to either a single template string or an ordered
// list of plural variants (index == plural form index).
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Translations, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("plurals: no loader paths configured")
	}

	out := make(Translations)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("plurals: read %s: %w", path, err)
		}

		src, err := decodeCatalogFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("plurals: decode %s: %w", path, err)
		}
		mergeCatalogs(out, src)
	}

	return out, nil
}

func decodeCatalogFile(path string, data []byte) (Translations, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeCatalogJSON(data)
	case ".yaml", ".yml":
		return decodeCatalogYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeCatalogJSON(data []byte) (Translations, error) {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	result := make(Translations, len(raw))
	for locale, catalog := range raw {
		if locale == "" {
			return nil, errors.New("empty locale")
		}
		bucket := make(map[string]Message, len(catalog))
		for key, rawMessage := range catalog {
			if key == "" {
				return nil, fmt.Errorf("empty key in locale %q", locale)
			}
			message, err := buildMessageFromJSON(locale, key, rawMessage)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", locale, key, err)
			}
			bucket[key] = message
		}
		result[locale] = bucket
	}
	return result, nil
}

func buildMessageFromJSON(locale, key string, raw json.RawMessage) (Message, error) {
	var singular string
	if err := json.Unmarshal(raw, &singular); err == nil {
		return Message{Key: key, Locale: locale, Variants: []string{singular}}, nil
	}

	var variants []string
	if err := json.Unmarshal(raw, &variants); err == nil {
		if len(variants) == 0 {
			return Message{}, errors.New("empty variant list")
		}
		return Message{Key: key, Locale: locale, Variants: variants}, nil
	}

	return Message{}, errors.New("expected string or array of strings")
}

func decodeCatalogYAML(data []byte) (Translations, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	result := make(Translations, len(raw))
	for locale, catalog := range raw {
		if locale == "" {
			return nil, errors.New("empty locale")
		}
		bucket := make(map[string]Message, len(catalog))
		for key, value := range catalog {
			if key == "" {
				return nil, fmt.Errorf("empty key in locale %q", locale)
			}
			message, err := buildMessageFromYAML(locale, key, value)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", locale, key, err)
			}
			bucket[key] = message
		}
		result[locale] = bucket
	}
	return result, nil
}

func buildMessageFromYAML(locale, key string, value any) (Message, error) {
	switch v := value.(type) {
	case string:
		return Message{Key: key, Locale: locale, Variants: []string{v}}, nil
	case []any:
		if len(v) == 0 {
			return Message{}, errors.New("empty variant list")
		}
		variants := make([]string, 0, len(v))
		for _, item := range v {
			template, ok := item.(string)
			if !ok {
				return Message{}, fmt.Errorf("variant %T is not a string", item)
			}
			variants = append(variants, template)
		}
		return Message{Key: key, Locale: locale, Variants: variants}, nil
	default:
		return Message{}, fmt.Errorf("expected string or list, got %T", value)
	}
}

func mergeCatalogs(dst, src Translations) {
	for locale, messages := range src {
		bucket, ok := dst[locale]
		if !ok {
			bucket = make(map[string]Message, len(messages))
			dst[locale] = bucket
		}
		for key, message := range messages {
			bucket[key] = message
		}
	}
}
