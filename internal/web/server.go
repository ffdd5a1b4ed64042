// Package web is the HTTP surface of the portfolio: page rendering, HTMX
// fragments, the navigation API, outbound link redirects, the contact form and
// the admin area.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/PavanTalluri45/portfolio/config"
	"github.com/PavanTalluri45/portfolio/internal/analytics"
	"github.com/PavanTalluri45/portfolio/internal/contact"
	"github.com/PavanTalluri45/portfolio/internal/content"
	"github.com/PavanTalluri45/portfolio/internal/media"
	"github.com/PavanTalluri45/portfolio/internal/session"
	"github.com/PavanTalluri45/portfolio/internal/trace"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Deps is everything the router needs. Analytics, Contact, Limiter and Tracer
// are optional.
type Deps struct {
	Config    *config.Config
	Site      *content.Site
	Gate      *session.Gate
	Media     *media.Resolver
	Analytics *analytics.Store
	Contact   contact.Sender
	Limiter   *contact.Limiter
	Tracer    oteltrace.Tracer
}

func (d Deps) validate() error {
	switch {
	case d.Config == nil:
		return fmt.Errorf("web: config is required")
	case d.Site == nil:
		return fmt.Errorf("web: site content is required")
	case d.Gate == nil:
		return fmt.Errorf("web: session gate is required")
	case d.Media == nil:
		return fmt.Errorf("web: media resolver is required")
	}
	return nil
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d Deps) (*gin.Engine, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	if d.Tracer != nil {
		r.Use(trace.Middleware(d.Tracer))
	}
	if d.Analytics != nil {
		r.Use(analytics.Middleware(d.Analytics))
	}

	tmpl, err := parseTemplates(d.Media)
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to mount static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))
	r.GET("/media/*filepath", d.Media.Handler())

	h := &handler{
		site:      d.Site,
		gate:      d.Gate,
		analytics: d.Analytics,
		sender:    d.Contact,
		limiter:   d.Limiter,
		secure:    d.Config.Release(),
	}

	pages := r.Group("/", clientHints())
	pages.GET("/", h.home)
	pages.POST("/welcome/complete", h.welcomeComplete)
	pages.GET("/welcome/complete", h.welcomeComplete)
	pages.GET("/about/intro", h.aboutIntro)
	pages.GET("/about/skills", h.aboutSkills)
	pages.GET("/work/:index/tab/:tab", h.workTab)
	pages.POST("/theme", h.toggleTheme)
	pages.GET("/out/:id", h.outbound)
	pages.GET("/contact-form", h.contactForm)
	pages.POST("/contact", h.submitContact)
	pages.GET("/privacy", h.privacy)
	pages.POST("/privacy/forget", h.forgetMe)

	api := r.Group("/api")
	if len(d.Config.Server.CORSOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins: d.Config.Server.CORSOrigins,
			AllowMethods: []string{http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type", requestIDHeader},
			MaxAge:       12 * time.Hour,
		}))
		// Preflight requests need a route for the middleware to answer on.
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
	api.POST("/nav/state", h.navState)

	var db Pinger
	if d.Analytics != nil {
		db = d.Analytics
	}
	NewHealthHandler(d.Config.Tracing.ServiceName, d.Config.App.Version, db, d.Gate.Store()).RegisterRoutes(r)

	if d.Config.Admin.Enabled() && d.Analytics != nil {
		newAdmin(d.Config, d.Site, d.Analytics).register(r)
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"title": "Not Found",
			"error": "The page you are looking for does not exist.",
		})
	})

	return r, nil
}

func parseTemplates(m *media.Resolver) (*template.Template, error) {
	funcs := template.FuncMap{
		"mediaURL":    m.URL,
		"mediaExists": m.Exists,
		"onError":     m.OnError,
		"outURL":      func(id string) string { return "/out/" + id },
		"repoLink":    content.RepoLinkID,
		"caseLink":    content.CaseStudyLinkID,
		"certLink":    content.CertificateLinkID,
		"workTab":     firstWorkTab,
		"workTabs":    func() []tabInfo { return workTabs },
		"join":        strings.Join,
		"inc":         func(i int) int { return i + 1 },
		"year":        func() int { return time.Now().Year() },
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
