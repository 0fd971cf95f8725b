package service

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBundle(t *testing.T, dir, locale, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, locale+".yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestBundle(t *testing.T) *Bundle {
	t.Helper()
	dir := t.TempDir()
	writeBundle(t, dir, "bg", `
nav:
  home: Начало
  services: Услуги
home:
  hero:
    title: Хидроизолация, на която може да разчитате
faq:
  - q: Колко струва?
    a: Зависи от площта.
`)
	writeBundle(t, dir, "en", `
nav:
  home: Home
home:
  hero:
    title: Waterproofing you can rely on
`)

	bundle, err := NewBundle(dir, "bg", []string{"bg", "en"})
	if err != nil {
		t.Fatal(err)
	}
	return bundle
}

func TestBundle_Lookup(t *testing.T) {
	bundle := newTestBundle(t)

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
		found  bool
	}{
		{"localized leaf", "en", "nav.home", "Home", true},
		{"default locale leaf", "bg", "nav.services", "Услуги", true},
		{"fallback to default", "en", "nav.services", "Услуги", true},
		{"nested key", "en", "home.hero.title", "Waterproofing you can rely on", true},
		{"missing everywhere", "en", "nav.careers", "", false},
		{"key through a leaf", "bg", "nav.home.deeper", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := bundle.Lookup(tt.locale, tt.key)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if tt.found {
				if s, _ := v.(string); s != tt.want {
					t.Errorf("Lookup(%s, %s) = %v, want %q", tt.locale, tt.key, v, tt.want)
				}
			}
		})
	}
}

func TestBundle_StructuredValues(t *testing.T) {
	bundle := newTestBundle(t)

	v, ok := bundle.Lookup("bg", "faq")
	if !ok {
		t.Fatal("faq entries not found")
	}
	entries, ok := v.([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("faq = %#v, want a one-entry list", v)
	}
}

func TestBundle_MessagesMergeOverDefault(t *testing.T) {
	bundle := newTestBundle(t)

	msgs := bundle.Messages("en")
	nav, _ := msgs["nav"].(map[string]any)
	if nav == nil {
		t.Fatal("nav tree missing")
	}
	if nav["home"] != "Home" {
		t.Errorf("nav.home = %v, want the en override", nav["home"])
	}
	if nav["services"] != "Услуги" {
		t.Errorf("nav.services = %v, want the bg fallback", nav["services"])
	}

	// Merging must not mutate the default tree
	bgNav, _ := bundle.Messages("bg")["nav"].(map[string]any)
	if bgNav["home"] != "Начало" {
		t.Errorf("default bundle was mutated: nav.home = %v", bgNav["home"])
	}
}

func TestBundle_MissingDefaultLocaleFails(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en", "nav:\n  home: Home\n")

	if _, err := NewBundle(dir, "bg", []string{"bg", "en"}); err == nil {
		t.Fatal("expected an error when the default locale bundle is missing")
	}
}
