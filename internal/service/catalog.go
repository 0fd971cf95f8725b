package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"aquaseal/internal/model"
	"aquaseal/internal/utils"

	"gopkg.in/yaml.v3"
)

// ErrPostNotFound is returned when a slug is outside the registry or no
// content file resolves for it in the requested locale or the default one
var ErrPostNotFound = errors.New("post not found")

// ContentStore is the abstract (locale, slug) -> raw document lookup the
// catalog reads from. The filesystem implementation lives in repository.
type ContentStore interface {
	Get(locale, slug string) ([]byte, error)
}

// Catalog loads, parses and ranks blog content. Every call re-reads from the
// store; nothing is cached, so edits to content files show up on the next
// request. The registry is fixed for the process lifetime, which makes the
// catalog safe for concurrent use.
type Catalog struct {
	store          ContentStore
	registry       []string
	known          map[string]bool
	defaultLocale  string
	wordsPerMinute int
}

// NewCatalog creates a catalog over the given store and ordered slug registry
func NewCatalog(store ContentStore, registry []string, defaultLocale string, wordsPerMinute int) *Catalog {
	known := make(map[string]bool, len(registry))
	for _, slug := range registry {
		known[slug] = true
	}
	return &Catalog{
		store:          store,
		registry:       registry,
		known:          known,
		defaultLocale:  defaultLocale,
		wordsPerMinute: wordsPerMinute,
	}
}

// frontMatter is the decoded content file header
type frontMatter struct {
	Title    string   `yaml:"title"`
	Excerpt  string   `yaml:"excerpt"`
	Category string   `yaml:"category"`
	Author   string   `yaml:"author"`
	Date     string   `yaml:"date"`
	Updated  string   `yaml:"updated"`
	Tags     []string `yaml:"tags"`
	Cover    string   `yaml:"cover"`
	ReadTime string   `yaml:"read_time"`
}

const dateLayout = "2006-01-02"

// ListMeta returns listing metadata for every published post in the given
// locale, sorted by publish date descending. Registered slugs with no
// resolvable file in the locale or the default locale are skipped: they are
// simply not published yet. Ties keep registry order (the sort is stable).
func (c *Catalog) ListMeta(locale string) []model.PostMeta {
	metas := make([]model.PostMeta, 0, len(c.registry))
	for _, slug := range c.registry {
		post, err := c.resolve(locale, slug)
		if err != nil {
			continue
		}
		metas = append(metas, post.PostMeta)
	}

	sort.SliceStable(metas, func(i, j int) bool {
		return metas[i].PublishedAt.After(metas[j].PublishedAt)
	})

	return metas
}

// GetFull returns the full post for a slug, including the body.
// Returns ErrPostNotFound for slugs outside the registry or with no
// resolvable content file.
func (c *Catalog) GetFull(locale, slug string) (*model.Post, error) {
	if !c.known[slug] {
		return nil, fmt.Errorf("%w: %q", ErrPostNotFound, slug)
	}
	return c.resolve(locale, slug)
}

// Related returns up to limit other posts for a detail page: posts sharing
// the source's category come first (newest first), then the remaining posts
// (newest first) fill the leftover slots. The source itself is excluded.
func (c *Catalog) Related(locale, slug string, limit int) ([]model.PostMeta, error) {
	source, err := c.GetFull(locale, slug)
	if err != nil {
		return nil, err
	}

	all := c.ListMeta(locale)
	sameCategory := make([]model.PostMeta, 0, len(all))
	rest := make([]model.PostMeta, 0, len(all))
	for _, meta := range all {
		if meta.Slug == slug {
			continue
		}
		if meta.Category == source.Category {
			sameCategory = append(sameCategory, meta)
		} else {
			rest = append(rest, meta)
		}
	}

	related := append(sameCategory, rest...)
	if limit >= 0 && len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

// SitemapEntries enumerates every published (locale, slug) pair across the
// given locales for sitemap export, with the last-modified timestamp taken
// from the update date when present.
func (c *Catalog) SitemapEntries(locales []string) []model.SitemapEntry {
	entries := make([]model.SitemapEntry, 0, len(locales)*len(c.registry))
	for _, locale := range locales {
		for _, meta := range c.ListMeta(locale) {
			entries = append(entries, model.SitemapEntry{
				Locale:       locale,
				Slug:         meta.Slug,
				LastModified: meta.LastModified(),
			})
		}
	}
	return entries
}

// resolve finds and parses one post, trying the requested locale first and
// the default locale second. A read failure or a malformed document counts
// as absence for that candidate.
func (c *Catalog) resolve(locale, slug string) (*model.Post, error) {
	for _, loc := range c.lookupChain(locale) {
		raw, err := c.store.Get(loc, slug)
		if err != nil {
			continue
		}
		post, err := c.parse(slug, raw)
		if err != nil {
			continue
		}
		return post, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrPostNotFound, slug)
}

// lookupChain returns the ordered candidate locales for a lookup
func (c *Catalog) lookupChain(locale string) []string {
	if locale == c.defaultLocale || locale == "" {
		return []string{c.defaultLocale}
	}
	return []string{locale, c.defaultLocale}
}

// parse decodes one content document into a post. Parsing is all-or-nothing:
// a bad header or an unparseable publish date fails the whole document.
func (c *Catalog) parse(slug string, raw []byte) (*model.Post, error) {
	header, body, err := utils.SplitFrontMatter(raw)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return nil, fmt.Errorf("invalid front matter in %q: %w", slug, err)
	}

	publishedAt, err := time.Parse(dateLayout, fm.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid publish date in %q: %w", slug, err)
	}

	var updatedAt *time.Time
	if fm.Updated != "" {
		t, err := time.Parse(dateLayout, fm.Updated)
		if err != nil {
			return nil, fmt.Errorf("invalid update date in %q: %w", slug, err)
		}
		updatedAt = &t
	}

	readTime := fm.ReadTime
	if readTime == "" {
		readTime = utils.EstimateReadTime(body, c.wordsPerMinute)
	}

	return &model.Post{
		PostMeta: model.PostMeta{
			Slug:        slug,
			Title:       fm.Title,
			Excerpt:     fm.Excerpt,
			Category:    fm.Category,
			Author:      fm.Author,
			PublishedAt: publishedAt,
			UpdatedAt:   updatedAt,
			Tags:        fm.Tags,
			CoverImage:  fm.Cover,
			ReadTime:    readTime,
		},
		Body: body,
	}, nil
}
