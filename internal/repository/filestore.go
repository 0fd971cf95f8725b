package repository

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoContent is returned when no document exists for a (locale, slug) key.
// Read failures are folded into it: callers cannot distinguish a missing
// document from an unreadable one.
var ErrNoContent = errors.New("no content for key")

// FileStore resolves content documents from a directory tree laid out as
// <root>/<locale>/<slug>.md.
type FileStore struct {
	root string
}

// NewFileStore creates a content store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{root: dir}
}

// Get returns the raw document for (locale, slug), or ErrNoContent
func (s *FileStore) Get(locale, slug string) ([]byte, error) {
	if !safeKey(locale) || !safeKey(slug) {
		return nil, ErrNoContent
	}
	data, err := os.ReadFile(filepath.Join(s.root, locale, slug+".md"))
	if err != nil {
		return nil, ErrNoContent
	}
	return data, nil
}

// safeKey rejects keys that could escape the store's directory tree
func safeKey(k string) bool {
	return k != "" && k != "." && k != ".." && !strings.ContainsAny(k, `/\`)
}

// LoadRegistry reads the ordered slug registry from a YAML file of the form:
//
//	posts:
//	  - newest-slug
//	  - older-slug
//
// Registry order is the tie-break order for listings, so the file is kept
// newest-first by convention.
func LoadRegistry(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var reg struct {
		Posts []string `yaml:"posts"`
	}
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, err
	}

	return reg.Posts, nil
}
