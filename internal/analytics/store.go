// Package analytics records privacy-conscious visitor and outbound-link
// metrics in SQLite. Raw IP addresses are never stored, only salted hashes.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type VisitorMetric struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type LinkStat struct {
	LinkID    string    `json:"link_id"`
	Clicks    int64     `json:"clicks"`
	LastClick time.Time `json:"last_click"`
}

type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TotalClicks      int64           `json:"total_clicks"`
	TopLinks         []LinkStat      `json:"top_links"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open opens (or creates) the SQLite database at path and migrates it.
// ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics db: %w", err)
	}
	// SQLite serialises writers; one connection also keeps :memory: databases
	// from splitting per connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.loadSalt(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// loadSalt reads the hashing salt from settings, creating it on first open.
func (s *Store) loadSalt(ctx context.Context) error {
	salt, err := newSalt()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, saltKey, salt); err != nil {
		return fmt.Errorf("failed to store hashing salt: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, saltKey).Scan(&s.salt); err != nil {
		return fmt.Errorf("failed to read hashing salt: %w", err)
	}
	return nil
}

const saltKey = "ip_salt"

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate hashing salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate creates the schema. It is safe to run on every start.
func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			user_agent TEXT,
			path TEXT,
			visited_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_visitors_visited_at ON visitors(visited_at)`,
		`CREATE TABLE IF NOT EXISTS link_clicks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			link_id TEXT NOT NULL,
			hashed_ip TEXT NOT NULL,
			clicked_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_link_clicks_link ON link_clicks(link_id)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate analytics db: %w", err)
		}
	}
	return nil
}

// HashIP hashes an IP address with the database's salt (consistent per IP).
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

func (s *Store) RecordClick(ctx context.Context, linkID, ip string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO link_clicks (link_id, hashed_ip, clicked_at) VALUES (?, ?, ?)`,
		linkID, s.HashIP(ip), s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}
	return nil
}

// Stats gathers the admin dashboard numbers.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		query string
		args  []any
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{startOfDay.Unix()}, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{now.Add(-7 * 24 * time.Hour).Unix()}, &stats.VisitorsThisWeek},
		{`SELECT COUNT(*) FROM link_clicks`, nil, &stats.TotalClicks},
	}
	for _, q := range counts {
		if err := s.db.QueryRowContext(ctx, q.query, q.args...).Scan(q.dst); err != nil {
			return nil, fmt.Errorf("failed to load stats: %w", err)
		}
	}

	top, err := s.links(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopLinks = top

	recent, err := s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent

	return stats, nil
}

// Links returns click totals for every link that has been clicked, most
// clicked first.
func (s *Store) Links(ctx context.Context) ([]LinkStat, error) {
	return s.links(ctx, -1)
}

func (s *Store) links(ctx context.Context, limit int) ([]LinkStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT link_id, COUNT(*) AS clicks, MAX(clicked_at)
		FROM link_clicks
		GROUP BY link_id
		ORDER BY clicks DESC, MAX(clicked_at) DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load link stats: %w", err)
	}
	defer rows.Close()

	var out []LinkStat
	for rows.Next() {
		var l LinkStat
		var last int64
		if err := rows.Scan(&l.LinkID, &l.Clicks, &last); err != nil {
			return nil, fmt.Errorf("failed to scan link stat: %w", err)
		}
		l.LastClick = time.Unix(last, 0).UTC()
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load visitors: %w", err)
	}
	defer rows.Close()

	var out []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// Cleanup deletes visits and clicks recorded before cutoff.
func (s *Store) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	var total int64
	for _, stmt := range []string{
		`DELETE FROM visitors WHERE visited_at < ?`,
		`DELETE FROM link_clicks WHERE clicked_at < ?`,
	} {
		res, err := s.db.ExecContext(ctx, stmt, cutoff.Unix())
		if err != nil {
			return total, fmt.Errorf("failed to clean up analytics: %w", err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

// ForgetVisitor removes every record tied to ip.
func (s *Store) ForgetVisitor(ctx context.Context, ip string) (int64, error) {
	hashed := s.HashIP(ip)
	var total int64
	for _, stmt := range []string{
		`DELETE FROM visitors WHERE hashed_ip = ?`,
		`DELETE FROM link_clicks WHERE hashed_ip = ?`,
	} {
		res, err := s.db.ExecContext(ctx, stmt, hashed)
		if err != nil {
			return total, fmt.Errorf("failed to forget visitor: %w", err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
