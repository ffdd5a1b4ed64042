// Package theme resolves the colour scheme for a request.
package theme

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Mode string

const (
	Dark   Mode = "dark"
	Light  Mode = "light"
	System Mode = "system"

	Default    = Dark
	CookieName = "theme"
	cookieAge  = 365 * 24 * 60 * 60
)

// Parse returns the mode named by s, or Default for anything unknown.
func Parse(s string) Mode {
	switch m := Mode(s); m {
	case Dark, Light, System:
		return m
	}
	return Default
}

// Toggle flips between dark and light. System resolves to Default first.
func (m Mode) Toggle() Mode {
	if m == System {
		m = Default
	}
	if m == Light {
		return Dark
	}
	return Light
}

// Class is the class placed on <html>. System leaves it empty so CSS
// prefers-color-scheme decides.
func (m Mode) Class() string {
	if m == System {
		return ""
	}
	return string(m)
}

func FromRequest(c *gin.Context) Mode {
	v, err := c.Cookie(CookieName)
	if err != nil {
		return Default
	}
	return Parse(v)
}

// Save persists m in the theme cookie for a year.
func Save(c *gin.Context, m Mode, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, string(m), cookieAge, "/", "", secure, false)
}
