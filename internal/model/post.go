package model

import "time"

// PostMeta represents the listing-level metadata of a blog post.
// The slug is the stable cross-locale key; title, excerpt and the other
// strings are locale-specific renderings.
type PostMeta struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Category    string     `json:"category,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt time.Time  `json:"published_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
	ReadTime    string     `json:"read_time"`
}

// LastModified returns the timestamp to advertise in listing feeds:
// the update time when present, the publish time otherwise.
func (m *PostMeta) LastModified() time.Time {
	if m.UpdatedAt != nil {
		return *m.UpdatedAt
	}
	return m.PublishedAt
}

// Post is a full blog post: listing metadata plus the unrendered body text
type Post struct {
	PostMeta
	Body string `json:"body"`
}

// PostListResponse represents the blog listing response
type PostListResponse struct {
	Posts  []PostMeta `json:"posts"`
	Total  int        `json:"total"`
	Locale string     `json:"locale"`
}

// SitemapEntry is one (locale, slug, lastModified) tuple of the listing feed
type SitemapEntry struct {
	Locale       string
	Slug         string
	LastModified time.Time
}
