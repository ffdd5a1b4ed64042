// Package session tracks the per-browser-session welcome flag.
//
// A browser session is identified by a cookie without an expiry, so it lasts
// exactly as long as the browser keeps the session alive. The flag itself is
// kept server-side in a Store. It is written when the welcome screen finishes
// and read once per page load, and each read pushes its expiry out by the TTL.
package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CookieName = "sid"

	welcomeKey   = "welcome:"
	welcomeShown = "true"
)

type Gate struct {
	store  Store
	ttl    time.Duration
	secure bool
}

// NewGate builds a Gate over store. Flags expire after ttl so sessions the
// browser abandoned do not accumulate. secure marks the cookie Secure.
func NewGate(store Store, ttl time.Duration, secure bool) *Gate {
	return &Gate{store: store, ttl: ttl, secure: secure}
}

// Existing returns the session id the request carried, if it is well formed.
func (g *Gate) Existing(c *gin.Context) (string, bool) {
	sid, err := c.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(sid); err != nil {
		return "", false
	}
	return sid, true
}

// SessionID returns the caller's session id, minting and setting a new cookie
// when the request has none or carries a malformed one.
func (g *Gate) SessionID(c *gin.Context) string {
	if sid, ok := g.Existing(c); ok {
		return sid
	}

	sid := uuid.New().String()
	c.SetSameSite(http.SameSiteLaxMode)
	// maxAge 0 leaves out Max-Age and Expires: a browser-session cookie.
	c.SetCookie(CookieName, sid, 0, "/", "", g.secure, true)
	return sid
}

// Shown reports whether the welcome screen already ran in this session. A set
// flag gets its TTL renewed, so it outlives any session that keeps loading
// pages.
func (g *Gate) Shown(ctx context.Context, sid string) (bool, error) {
	v, ok, err := g.store.Get(ctx, welcomeKey+sid)
	if err != nil {
		return false, fmt.Errorf("failed to read welcome flag: %w", err)
	}
	if !ok || v != welcomeShown {
		return false, nil
	}
	if err := g.store.Set(ctx, welcomeKey+sid, welcomeShown, g.ttl); err != nil {
		return true, fmt.Errorf("failed to refresh welcome flag: %w", err)
	}
	return true, nil
}

// MarkShown records that the welcome screen completed for this session.
func (g *Gate) MarkShown(ctx context.Context, sid string) error {
	if err := g.store.Set(ctx, welcomeKey+sid, welcomeShown, g.ttl); err != nil {
		return fmt.Errorf("failed to write welcome flag: %w", err)
	}
	return nil
}

// Store exposes the backing store for health checks.
func (g *Gate) Store() Store {
	return g.store
}
