package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bundle serves locale-specific UI strings and structured values (FAQ
// entries, testimonials) loaded once at startup from per-locale YAML files.
// Values are addressed by dotted keys ("home.hero.title"); a key missing in
// the requested locale falls back to the default locale.
type Bundle struct {
	defaultLocale string
	messages      map[string]map[string]any // locale -> nested message tree
}

// NewBundle loads <dir>/<locale>.yaml for every locale. The default locale's
// file must exist; other locales may be partial or absent and fall back.
func NewBundle(dir, defaultLocale string, locales []string) (*Bundle, error) {
	b := &Bundle{
		defaultLocale: defaultLocale,
		messages:      make(map[string]map[string]any, len(locales)),
	}

	for _, locale := range locales {
		data, err := os.ReadFile(filepath.Join(dir, locale+".yaml"))
		if err != nil {
			if locale == defaultLocale {
				return nil, fmt.Errorf("failed to load default locale bundle: %w", err)
			}
			continue
		}

		tree := map[string]any{}
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("invalid locale bundle %s: %w", locale, err)
		}
		b.messages[locale] = tree
	}

	if _, ok := b.messages[defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q has no message bundle", defaultLocale)
	}

	return b, nil
}

// HasLocale reports whether a bundle was loaded for the locale
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.messages[locale]
	return ok
}

// Lookup resolves a dotted key in the given locale, falling back to the
// default locale. The returned value is a string for leaf messages or a
// decoded map/slice for structured entries.
func (b *Bundle) Lookup(locale, key string) (any, bool) {
	if v, ok := walk(b.messages[locale], key); ok {
		return v, true
	}
	if locale != b.defaultLocale {
		return walk(b.messages[b.defaultLocale], key)
	}
	return nil, false
}

// Messages returns the full message tree for a locale, with entries missing
// from the locale filled in from the default locale.
func (b *Bundle) Messages(locale string) map[string]any {
	merged := deepCopy(b.messages[b.defaultLocale])
	if locale != b.defaultLocale {
		mergeTree(merged, b.messages[locale])
	}
	return merged
}

// walk descends a nested message tree along a dotted key
func walk(tree map[string]any, key string) (any, bool) {
	if tree == nil {
		return nil, false
	}
	parts := strings.Split(key, ".")
	var current any = tree
	for _, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = node[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

// mergeTree overlays src onto dst, descending into maps present in both
func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		if srcMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeTree(dstMap, srcMap)
				continue
			}
		}
		dst[k] = v
	}
}

func deepCopy(tree map[string]any) map[string]any {
	out := make(map[string]any, len(tree))
	for k, v := range tree {
		if m, ok := v.(map[string]any); ok {
			out[k] = deepCopy(m)
		} else {
			out[k] = v
		}
	}
	return out
}
