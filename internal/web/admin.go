package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PavanTalluri45/portfolio/config"
	"github.com/PavanTalluri45/portfolio/internal/analytics"
	"github.com/PavanTalluri45/portfolio/internal/content"
)

const (
	adminCookie    = "admin_token"
	adminCookieAge = 3600 * 24
)

// admin serves the analytics dashboard. Access is a random per-process token
// handed out on login, so restarting the server logs everyone out.
type admin struct {
	username  string
	password  string
	token     string
	secure    bool
	retention time.Duration
	site      *content.Site
	store     *analytics.Store
}

func newAdmin(cfg *config.Config, site *content.Site, store *analytics.Store) *admin {
	a := &admin{
		username:  cfg.Admin.Username,
		password:  cfg.Admin.Password,
		token:     generateToken(),
		secure:    cfg.Release(),
		retention: cfg.Database.Retention,
		site:      site,
		store:     store,
	}

	log.Printf("[admin] access available at /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("[admin] token (dev only): %s", a.token)
	}
	return a
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("[admin] failed to generate token: %v", err)
	}
	return hex.EncodeToString(b)
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (a *admin) authenticated(c *gin.Context) bool {
	token, err := c.Cookie(adminCookie)
	return err == nil && equal(token, a.token)
}

func (a *admin) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticated(c) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *admin) register(r *gin.Engine) {
	r.GET("/admin/login", a.loginPage)
	r.POST("/admin/login", a.login)
	r.GET("/admin/logout", a.logout)

	g := r.Group("/admin", a.requireAuth())
	g.GET("/dashboard", a.dashboard)
	g.GET("/api/stats", a.apiStats)
	g.GET("/visitors", a.visitors)
	g.GET("/links", a.links)
	g.GET("/export/stats", a.exportStats)
	g.POST("/privacy/cleanup", a.cleanup)
}

func (a *admin) loginPage(c *gin.Context) {
	if a.authenticated(c) {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.HTML(http.StatusOK, "admin-login.html", gin.H{
		"title": "Admin Login",
	})
}

func (a *admin) login(c *gin.Context) {
	// Both comparisons always run.
	userOK := equal(c.PostForm("username"), a.username)
	passOK := equal(c.PostForm("password"), a.password)
	visitor := a.store.HashIP(c.ClientIP())

	if !userOK || !passOK {
		log.Printf("[admin] failed login attempt from %s", visitor)
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, a.token, adminCookieAge, "/admin", "", a.secure, true)
	log.Printf("[admin] login from %s", visitor)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *admin) logout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/admin", "", a.secure, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

func (a *admin) renderError(c *gin.Context, msg string, err error) {
	log.Printf("[admin] %s: %v", msg, err)
	c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
		"title": "Admin Error",
		"error": msg,
	})
}

func (a *admin) dashboard(c *gin.Context) {
	stats, err := a.store.Stats(c.Request.Context())
	if err != nil {
		a.renderError(c, "Failed to load statistics", err)
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"title":     "Dashboard",
		"stats":     stats,
		"Labels":    a.labels(),
		"Retention": int(a.retention.Hours() / 24),
	})
}

func (a *admin) apiStats(c *gin.Context) {
	stats, err := a.store.Stats(c.Request.Context())
	if err != nil {
		log.Printf("[admin] stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *admin) visitors(c *gin.Context) {
	visitors, err := a.store.RecentVisitors(c.Request.Context(), 200)
	if err != nil {
		a.renderError(c, "Failed to load visitors", err)
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
		"title":    "Visitors",
		"visitors": visitors,
	})
}

func (a *admin) links(c *gin.Context) {
	links, err := a.store.Links(c.Request.Context())
	if err != nil {
		a.renderError(c, "Failed to load links", err)
		return
	}
	c.HTML(http.StatusOK, "admin-links.html", gin.H{
		"title":  "Outbound Links",
		"links":  links,
		"Labels": a.labels(),
	})
}

// labels maps link ids to their human readable labels.
func (a *admin) labels() map[string]string {
	out := make(map[string]string, len(a.site.Links))
	for _, l := range a.site.Links {
		out[l.ID] = l.Label
	}
	return out
}

func (a *admin) exportStats(c *gin.Context) {
	stats, err := a.store.Stats(c.Request.Context())
	if err != nil {
		log.Printf("[admin] export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
	log.Printf("[admin] stats exported by %s", a.store.HashIP(c.ClientIP()))
	c.JSON(http.StatusOK, stats)
}

func (a *admin) cleanup(c *gin.Context) {
	cutoff := time.Now().Add(-a.retention)
	n, err := a.store.Cleanup(c.Request.Context(), cutoff)
	if err != nil {
		log.Printf("[admin] cleanup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "privacy cleanup failed"})
		return
	}
	log.Printf("[admin] privacy cleanup removed %d records", n)
	c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": n})
}
