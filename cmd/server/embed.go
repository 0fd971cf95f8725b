//go:build embed
// +build embed

package main

import (
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"embed"

	"aquaseal/internal/logging"

	"github.com/gin-gonic/gin"
)

//go:embed web/dist
var webDist embed.FS

// setupStaticFiles serves the embedded frontend build, with an index.html
// fallback so client-side routes resolve on hard refresh
func setupStaticFiles(router *gin.Engine) {
	logging.Sugar.Infof("📦 Using embedded frontend assets")

	distFS, err := fs.Sub(webDist, "web/dist")
	if err != nil {
		logging.Sugar.Fatalf("Failed to get dist subdirectory: %v", err)
	}

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path

		// API routes have their own 404s
		if strings.HasPrefix(urlPath, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}

		cleanPath := strings.TrimPrefix(path.Clean(urlPath), "/")
		if cleanPath == "" {
			cleanPath = "index.html"
		}

		if data, ok := readEmbedded(distFS, cleanPath); ok {
			contentType := mime.TypeByExtension(path.Ext(cleanPath))
			if contentType == "" {
				contentType = "application/octet-stream"
			}
			c.Data(http.StatusOK, contentType, data)
			return
		}

		// Unknown path: hand the SPA its entry point
		if data, ok := readEmbedded(distFS, "index.html"); ok {
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
			return
		}

		c.String(http.StatusNotFound, "404 page not found")
	})
}

// readEmbedded reads a regular file from the embedded tree
func readEmbedded(fsys fs.FS, name string) ([]byte, bool) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, false
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		return nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, false
	}
	return data, true
}
