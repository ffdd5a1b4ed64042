package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavanTalluri45/portfolio/internal/analytics"
)

func login(t *testing.T, s *testServer) *http.Cookie {
	t.Helper()
	rec := s.do(postForm("/admin/login", url.Values{"username": {"owner"}, "password": {"s3cret"}}))
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	c := cookie(rec, adminCookie)
	require.NotNil(t, c)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/admin", c.Path)
	return c
}

func TestAdminDisabledWithoutCredentials(t *testing.T) {
	s := newTestServer(t, func(d *Deps) {
		d.Config.Admin.Username = ""
		d.Config.Admin.Password = ""
	})
	assert.Equal(t, http.StatusNotFound, s.get("/admin/login").Code)
	assert.Equal(t, http.StatusNotFound, s.get("/admin/dashboard").Code)
}

func TestAdminLogin(t *testing.T) {
	s := newTestServer(t, nil)

	assert.Equal(t, http.StatusOK, s.get("/admin/login").Code)

	rec := s.get("/admin/dashboard")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	rec = s.do(postForm("/admin/login", url.Values{"username": {"owner"}, "password": {"wrong"}}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.Nil(t, cookie(rec, adminCookie))

	forged := &http.Cookie{Name: adminCookie, Value: "forged"}
	assert.Equal(t, http.StatusFound, s.get("/admin/dashboard", forged).Code)

	token := login(t, s)
	rec = s.get("/admin/dashboard", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total visits")

	// Already logged in.
	assert.Equal(t, http.StatusFound, s.get("/admin/login", token).Code)

	rec = s.get("/admin/logout", token)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, -1, cookie(rec, adminCookie).MaxAge)
}

func TestAdminPages(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()
	require.NoError(t, s.analytics.RecordVisit(ctx, "203.0.113.1", "Mozilla/5.0", "/"))
	require.NoError(t, s.analytics.RecordClick(ctx, "github", "203.0.113.1"))

	token := login(t, s)

	rec := s.get("/admin/api/stats", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalVisitors)
	assert.Equal(t, int64(1), stats.TotalClicks)

	rec = s.get("/admin/visitors", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), s.analytics.HashIP("203.0.113.1"))
	assert.NotContains(t, rec.Body.String(), "203.0.113.1")

	rec = s.get("/admin/links", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "GitHub")

	rec = s.get("/admin/export/stats", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	req := postForm("/admin/privacy/cleanup", url.Values{})
	rec = s.do(req, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Removed int64 `json:"removed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Removed, "fresh records are inside the retention window")
}
