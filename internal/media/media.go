// Package media serves images from the media directory and substitutes a
// placeholder for anything that is missing.
package media

import (
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// Prefix is the URL path media is mounted under.
const Prefix = "/media/"

type Resolver struct {
	fsys     fs.FS
	fallback string
}

func NewResolver(fsys fs.FS, fallback string) *Resolver {
	return &Resolver{fsys: fsys, fallback: fallback}
}

// clean normalizes a request path into an fs.FS name. ok is false for paths
// that try to leave the media root.
func clean(name string) (string, bool) {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "", false
	}
	cleaned := path.Clean(name)
	if !fs.ValidPath(cleaned) || cleaned == "." {
		return "", false
	}
	return cleaned, true
}

// Exists reports whether name is a regular file in the media directory.
func (r *Resolver) Exists(name string) bool {
	if r == nil || r.fsys == nil {
		return false
	}
	name, ok := clean(name)
	if !ok {
		return false
	}
	info, err := fs.Stat(r.fsys, name)
	return err == nil && !info.IsDir()
}

// URL is the public URL for name, or the fallback when the file is missing.
func (r *Resolver) URL(name string) string {
	if r.Exists(name) {
		cleaned, _ := clean(name)
		return Prefix + cleaned
	}
	return r.fallback
}

func (r *Resolver) Fallback() string {
	return r.fallback
}

// OnError is the img onerror attribute value that swaps in the fallback once.
func (r *Resolver) OnError() template.JS {
	return template.JS("this.onerror=null;this.src='" + template.JSEscapeString(r.fallback) + "';")
}

// Handler serves GET /media/*filepath, redirecting to the fallback for
// missing files.
func (r *Resolver) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := clean(c.Param("filepath"))
		if !ok || !r.Exists(name) {
			c.Redirect(http.StatusFound, r.fallback)
			return
		}
		c.Header("Cache-Control", "public, max-age=86400")
		c.FileFromFS(name, http.FS(r.fsys))
	}
}
