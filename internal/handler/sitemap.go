package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"aquaseal/internal/service"

	"github.com/gin-gonic/gin"
)

// SitemapHandler renders the blog listing feed as a sitemap urlset
type SitemapHandler struct {
	catalog *service.Catalog
	baseURL string
	locales []string
}

// NewSitemapHandler creates a new sitemap handler
func NewSitemapHandler(catalog *service.Catalog, baseURL string, locales []string) *SitemapHandler {
	return &SitemapHandler{
		catalog: catalog,
		baseURL: strings.TrimRight(baseURL, "/"),
		locales: locales,
	}
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// Serve handles GET /sitemap.xml
func (h *SitemapHandler) Serve(c *gin.Context) {
	entries := h.catalog.SitemapEntries(h.locales)

	set := urlset{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/%s/blog/%s", h.baseURL, e.Locale, e.Slug),
			LastMod: e.LastModified.Format("2006-01-02"),
		})
	}

	c.XML(http.StatusOK, set)
}
