package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PavanTalluri45/portfolio/internal/analytics"
	"github.com/PavanTalluri45/portfolio/internal/contact"
	"github.com/PavanTalluri45/portfolio/internal/content"
	"github.com/PavanTalluri45/portfolio/internal/nav"
	"github.com/PavanTalluri45/portfolio/internal/session"
	"github.com/PavanTalluri45/portfolio/internal/theme"
)

const (
	// welcomeDuration is the typing phase plus the fade out.
	welcomeDuration = 4 * time.Second
	// skipWelcome is set on the redirect after a failed flag write so the
	// browser does not loop back into the welcome screen.
	skipWelcome = "welcome"
)

type handler struct {
	site      *content.Site
	gate      *session.Gate
	analytics *analytics.Store
	sender    contact.Sender
	limiter   *contact.Limiter
	secure    bool
}

func (h *handler) page(c *gin.Context, extra gin.H) gin.H {
	mode := theme.FromRequest(c)
	data := gin.H{
		"Site":      h.site,
		"Profile":   h.site.Profile,
		"Theme":     mode,
		"Nav":       nav.Resolve(nav.State{Width: nav.WidthFromRequest(c.Request), Current: nav.DefaultSection}),
		"NavItems":  nav.Items,
		"RequestID": c.GetString("request_id"),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// home renders the welcome screen the first time a browser session asks for
// the page and the portfolio afterwards.
func (h *handler) home(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	sid := h.gate.SessionID(c)

	shown := c.Query(skipWelcome) == "skip"
	if !shown {
		var err error
		shown, err = h.gate.Shown(c.Request.Context(), sid)
		if err != nil {
			log.Printf("[session] id=%s %v; skipping welcome screen", RequestIDFrom(c.Request.Context()), err)
			shown = true
		}
	}

	if !shown {
		c.Header("X-Robots-Tag", "noindex")
		c.HTML(http.StatusOK, "welcome.html", h.page(c, gin.H{
			"title":          h.site.Title,
			"WelcomeSeconds": int(welcomeDuration / time.Second),
		}))
		return
	}

	c.HTML(http.StatusOK, "index.html", h.page(c, gin.H{
		"title":       h.site.Title,
		"SkillGroups": h.site.SkillsByCategory(),
		"Icons":       h.site.IconURLs(),
	}))
}

// welcomeComplete marks the flag once the welcome screen has run. Browsers
// that did not send a session cookie back, and prefetchers, only get the
// skip redirect.
func (h *handler) welcomeComplete(c *gin.Context) {
	sid, ok := h.gate.Existing(c)
	if !ok || prefetch(c.Request) {
		c.Redirect(http.StatusSeeOther, "/?"+skipWelcome+"=skip")
		return
	}
	if err := h.gate.MarkShown(c.Request.Context(), sid); err != nil {
		log.Printf("[session] id=%s %v", RequestIDFrom(c.Request.Context()), err)
		c.Redirect(http.StatusSeeOther, "/?"+skipWelcome+"=skip")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func prefetch(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Sec-Purpose"), "prefetch") ||
		r.Header.Get("Purpose") == "prefetch" ||
		r.Header.Get("X-Moz") == "prefetch"
}

func (h *handler) aboutIntro(c *gin.Context) {
	c.HTML(http.StatusOK, "about-intro.html", h.page(c, nil))
}

func (h *handler) aboutSkills(c *gin.Context) {
	c.HTML(http.StatusOK, "about-skills.html", h.page(c, gin.H{
		"SkillGroups": h.site.SkillsByCategory(),
		"Icons":       h.site.IconURLs(),
	}))
}

func (h *handler) workTab(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(h.site.CaseStudies) {
		c.String(http.StatusNotFound, "case study not found")
		return
	}
	tab, ok := newWorkTab(index, h.site.CaseStudies[index], c.Param("tab"))
	if !ok {
		c.String(http.StatusNotFound, "unknown tab")
		return
	}
	c.HTML(http.StatusOK, "work-tab.html", tab)
}

func (h *handler) navState(c *gin.Context) {
	var state nav.State
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid navigation state"})
		return
	}
	if state.Width < 0 {
		state.Width = 0
	}
	c.JSON(http.StatusOK, nav.Resolve(state))
}

func (h *handler) toggleTheme(c *gin.Context) {
	next := theme.FromRequest(c).Toggle()
	if m := c.PostForm("mode"); m != "" {
		next = theme.Parse(m)
	}
	theme.Save(c, next, h.secure)

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Trigger", `{"themeChanged":"`+string(next)+`"}`)
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, backTo(c.GetHeader("Referer")))
}

// backTo reduces a Referer to a same-site path, falling back to "/".
func backTo(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if u.Fragment != "" {
		return u.Path + "#" + u.Fragment
	}
	return u.Path
}

func (h *handler) outbound(c *gin.Context) {
	link, ok := h.site.Link(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"title": "Not Found",
			"error": "That link does not exist.",
		})
		return
	}

	if h.analytics != nil && c.GetHeader("DNT") != "1" {
		ip := c.ClientIP()
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := h.analytics.RecordClick(ctx, link.ID, ip); err != nil {
				log.Printf("[analytics] %v", err)
			}
		}()
	}
	c.Redirect(http.StatusFound, link.URL)
}

func (h *handler) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

func (h *handler) submitContact(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.HTML(http.StatusTooManyRequests, "contact-error.html", gin.H{
			"error": "You have sent several messages already. Please try again later.",
		})
		return
	}

	msg := contact.Message{
		Name:  c.PostForm("fullName"),
		Email: c.PostForm("email"),
		Body:  c.PostForm("message"),
	}
	if err := msg.Validate(); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "contact-error.html", gin.H{
			"error": strings.TrimPrefix(err.Error(), contact.ErrInvalidMessage.Error()+": "),
		})
		return
	}

	if h.sender == nil {
		c.HTML(http.StatusServiceUnavailable, "contact-error.html", gin.H{
			"error": "Sorry, the contact form is unavailable right now. Please email me directly.",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()
	if err := h.sender.Send(ctx, msg); err != nil {
		log.Printf("[contact] id=%s %v", RequestIDFrom(ctx), err)
		status := http.StatusBadGateway
		if errors.Is(err, contact.ErrNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		c.HTML(status, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

func (h *handler) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", h.page(c, gin.H{
		"title": "Privacy Policy",
	}))
}

// forgetMe deletes the analytics recorded for the caller's address.
func (h *handler) forgetMe(c *gin.Context) {
	data := gin.H{"title": "Privacy Policy"}
	if h.analytics == nil {
		data["Forgot"], data["Forgotten"] = true, int64(0)
		c.HTML(http.StatusOK, "privacy.html", h.page(c, data))
		return
	}

	n, err := h.analytics.ForgetVisitor(c.Request.Context(), c.ClientIP())
	if err != nil {
		log.Printf("[analytics] id=%s %v", RequestIDFrom(c.Request.Context()), err)
		data["error"] = "Your data could not be removed right now. Please try again later."
		c.HTML(http.StatusInternalServerError, "privacy.html", h.page(c, data))
		return
	}
	data["Forgot"], data["Forgotten"] = true, n
	c.HTML(http.StatusOK, "privacy.html", h.page(c, data))
}
