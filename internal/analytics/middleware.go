package analytics

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var untrackedPrefixes = []string{
	"/static/",
	"/media/",
	"/admin/",
	"/api/",
	"/out/",
	"/about/",
	"/work/",
	"/contact",
	"/health",
	"/favicon",
	"/privacy",
	"/welcome/",
}

// Tracked reports whether a request path counts as a page view.
func Tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Middleware records page views in the background. Requests that send
// "DNT: 1" are not tracked.
func Middleware(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != "GET" || !Tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.RecordVisit(ctx, ip, ua, path); err != nil {
				log.Printf("[analytics] %v", err)
			}
		}()
		c.Next()
	}
}
