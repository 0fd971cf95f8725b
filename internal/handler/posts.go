package handler

import (
	"errors"
	"net/http"
	"strconv"

	"aquaseal/internal/model"
	"aquaseal/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultRelatedLimit = 3
	maxRelatedLimit     = 12
)

// PostHandler handles blog content HTTP requests
type PostHandler struct {
	catalog       *service.Catalog
	defaultLocale string
	locales       map[string]bool
}

// NewPostHandler creates a new post handler
func NewPostHandler(catalog *service.Catalog, defaultLocale string, locales []string) *PostHandler {
	supported := make(map[string]bool, len(locales))
	for _, l := range locales {
		supported[l] = true
	}
	return &PostHandler{
		catalog:       catalog,
		defaultLocale: defaultLocale,
		locales:       supported,
	}
}

// List handles GET /api/v1/posts
func (h *PostHandler) List(c *gin.Context) {
	locale, ok := h.locale(c)
	if !ok {
		return
	}

	posts := h.catalog.ListMeta(locale)
	c.JSON(http.StatusOK, model.PostListResponse{
		Posts:  posts,
		Total:  len(posts),
		Locale: locale,
	})
}

// Get handles GET /api/v1/posts/:slug
func (h *PostHandler) Get(c *gin.Context) {
	locale, ok := h.locale(c)
	if !ok {
		return
	}

	post, err := h.catalog.GetFull(locale, c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// Related handles GET /api/v1/posts/:slug/related
func (h *PostHandler) Related(c *gin.Context) {
	locale, ok := h.locale(c)
	if !ok {
		return
	}

	limit := defaultRelatedLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}
	if limit > maxRelatedLimit {
		limit = maxRelatedLimit
	}

	related, err := h.catalog.Related(locale, c.Param("slug"), limit)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load related posts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": related, "total": len(related)})
}

// locale validates the ?locale query parameter, defaulting to the site's
// default locale. Writes the error response itself when unsupported.
func (h *PostHandler) locale(c *gin.Context) (string, bool) {
	locale := c.DefaultQuery("locale", h.defaultLocale)
	if !h.locales[locale] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported locale: " + locale})
		return "", false
	}
	return locale, true
}
