package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	store := openTestStore(t)

	h := store.HashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, store.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, store.HashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	require.NoError(t, store.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	require.NoError(t, store.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	require.NoError(t, store.RecordVisit(ctx, "2.2.2.2", "ua", "/"))

	store.now = func() time.Time { return now.Add(-3 * 24 * time.Hour) }
	require.NoError(t, store.RecordVisit(ctx, "3.3.3.3", "ua", "/"))

	store.now = func() time.Time { return now.Add(-30 * 24 * time.Hour) }
	require.NoError(t, store.RecordVisit(ctx, "4.4.4.4", "ua", "/"))

	store.now = func() time.Time { return now }
	require.NoError(t, store.RecordClick(ctx, "resume", "1.1.1.1"))
	require.NoError(t, store.RecordClick(ctx, "resume", "2.2.2.2"))
	require.NoError(t, store.RecordClick(ctx, "github", "2.2.2.2"))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalVisitors)
	assert.Equal(t, int64(4), stats.UniqueVisitors)
	assert.Equal(t, int64(3), stats.VisitorsToday)
	assert.Equal(t, int64(4), stats.VisitorsThisWeek)
	assert.Equal(t, int64(3), stats.TotalClicks)

	require.Len(t, stats.TopLinks, 2)
	assert.Equal(t, "resume", stats.TopLinks[0].LinkID)
	assert.Equal(t, int64(2), stats.TopLinks[0].Clicks)
	assert.Equal(t, now, stats.TopLinks[0].LastClick)

	require.Len(t, stats.RecentVisitors, 5)
	assert.Equal(t, now, stats.RecentVisitors[0].Timestamp)
}

func TestCleanupAndForget(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	now := time.Now().UTC()
	store.now = func() time.Time { return now.AddDate(-2, 0, 0) }
	require.NoError(t, store.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	require.NoError(t, store.RecordClick(ctx, "resume", "1.1.1.1"))

	store.now = func() time.Time { return now }
	require.NoError(t, store.RecordVisit(ctx, "2.2.2.2", "ua", "/"))
	require.NoError(t, store.RecordClick(ctx, "github", "2.2.2.2"))

	n, err := store.Cleanup(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = store.ForgetVisitor(ctx, "2.2.2.2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisitors)
	assert.Zero(t, stats.TotalClicks)
}

func TestForgetVisitorAfterReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "analytics.db")

	store, err := Open(ctx, path)
	require.NoError(t, err)
	hashed := store.HashIP("203.0.113.7")
	require.NoError(t, store.RecordVisit(ctx, "203.0.113.7", "ua", "/"))
	require.NoError(t, store.RecordClick(ctx, "resume", "203.0.113.7"))
	require.NoError(t, store.Close())

	store, err = Open(ctx, path)
	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, hashed, store.HashIP("203.0.113.7"), "salt survives a restart")

	require.NoError(t, store.RecordVisit(ctx, "203.0.113.7", "ua", "/"))
	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.UniqueVisitors)

	n, err := store.ForgetVisitor(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	stats, err = store.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisitors)
	assert.Zero(t, stats.TotalClicks)
}

func TestSeparateDatabasesUseSeparateSalts(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	assert.NotEqual(t, a.HashIP("203.0.113.7"), b.HashIP("203.0.113.7"))
}

func TestSchedulerCleanupUsesRetention(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	now := time.Now().UTC()
	store.now = func() time.Time { return now.Add(-48 * time.Hour) }
	require.NoError(t, store.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	store.now = func() time.Time { return now }
	require.NoError(t, store.RecordVisit(ctx, "1.1.1.1", "ua", "/"))

	sweeper := &countingSweeper{}
	sched := NewScheduler(store, 24*time.Hour, sweeper)
	sched.RunCleanup()
	sched.RunSweep()

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVisitors)
	assert.Equal(t, 1, sweeper.calls)

	require.NoError(t, sched.Start())
	sched.Stop()
}

type countingSweeper struct{ calls int }

func (c *countingSweeper) Sweep() int {
	c.calls++
	return 0
}

func TestTracked(t *testing.T) {
	assert.True(t, Tracked("/"))
	assert.False(t, Tracked("/welcome/complete"))
	assert.False(t, Tracked("/static/css/site.css"))
	assert.False(t, Tracked("/media/My_image/my_image.png"))
	assert.False(t, Tracked("/admin/dashboard"))
	assert.False(t, Tracked("/api/nav/state"))
	assert.False(t, Tracked("/healthz"))
	assert.False(t, Tracked("/work/0/tab/stack"))
	assert.False(t, Tracked("/contact-form"))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := openTestStore(t)

	router := gin.New()
	router.Use(Middleware(store))
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/static/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	do := func(path string, dnt bool) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if dnt {
			req.Header.Set("DNT", "1")
		}
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	do("/", false)
	do("/", true)
	do("/static/x", false)

	assert.Eventually(t, func() bool {
		stats, err := store.Stats(context.Background())
		return err == nil && stats.TotalVisitors == 1
	}, 2*time.Second, 20*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVisitors, "DNT and static requests are not tracked")
}
