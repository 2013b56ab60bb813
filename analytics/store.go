package analytics

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Store persists page views and bot hits. It shares the site's SQLite
// handle and owns the page_views, bot_hits and settings tables.
type Store struct {
	db   *sql.DB
	salt string
}

// NewStore creates the analytics tables on db and loads (or generates) the
// hashing salt.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := s.initSalt(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS page_views (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			path TEXT NOT NULL,
			browser TEXT NOT NULL,
			os TEXT NOT NULL,
			device TEXT NOT NULL,
			referrer TEXT NOT NULL,
			ts INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS bot_hits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			bot_name TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			path TEXT NOT NULL,
			ts INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_page_views_ts ON page_views(ts);
		CREATE INDEX IF NOT EXISTS idx_page_views_path ON page_views(path);
		CREATE INDEX IF NOT EXISTS idx_bot_hits_ts ON bot_hits(ts);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// initSalt loads the per-installation salt, creating it on first run.
func (s *Store) initSalt() error {
	v, err := s.GetSetting("hash_salt")
	if err != nil {
		return fmt.Errorf("read hash salt: %w", err)
	}
	if v == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("generate salt: %w", err)
		}
		v = hex.EncodeToString(b)
		if err := s.SetSetting("hash_salt", v); err != nil {
			return fmt.Errorf("store hash salt: %w", err)
		}
	}
	s.salt = v
	return nil
}

// Salt returns the hashing salt.
func (s *Store) Salt() string {
	return s.salt
}

// GetSetting retrieves a setting value by key. Returns "" if not found.
func (s *Store) GetSetting(key string) (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return v, err
}

// SetSetting stores a setting value by key.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// RecordView stores a page view.
func (s *Store) RecordView(v *View) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now().UTC()
	}
	res, err := s.db.Exec(`
		INSERT INTO page_views (visitor_id, path, browser, os, device, referrer, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.VisitorID, v.Path, v.Browser, v.OS, v.Device, v.Referrer, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	v.ID, _ = res.LastInsertId()
	return nil
}

// RecordBot stores a crawler hit.
func (s *Store) RecordBot(b *BotHit) error {
	if b.Timestamp.IsZero() {
		b.Timestamp = time.Now().UTC()
	}
	res, err := s.db.Exec(`
		INSERT INTO bot_hits (bot_name, ip_hash, path, ts) VALUES (?, ?, ?, ?)`,
		b.BotName, b.IPHash, b.Path, b.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("record bot: %w", err)
	}
	b.ID, _ = res.LastInsertId()
	return nil
}

// ViewsByPath counts views per path since the given time, busiest first.
func (s *Store) ViewsByPath(since time.Time) ([]PathCount, error) {
	rows, err := s.db.Query(`
		SELECT path, COUNT(*) AS n FROM page_views
		WHERE ts >= ?
		GROUP BY path
		ORDER BY n DESC, path ASC`, since.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Views); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// UniqueVisitors counts distinct visitor ids since the given time.
func (s *Store) UniqueVisitors(since time.Time) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(DISTINCT visitor_id) FROM page_views WHERE ts >= ?`, since.Unix()).Scan(&n)
	return n, err
}

// BotCount counts crawler hits since the given time.
func (s *Store) BotCount(since time.Time) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM bot_hits WHERE ts >= ?`, since.Unix()).Scan(&n)
	return n, err
}

// Prune removes views and bot hits older than before.
func (s *Store) Prune(before time.Time) (int64, error) {
	var total int64
	for _, table := range []string{"page_views", "bot_hits"} {
		res, err := s.db.Exec(`DELETE FROM `+table+` WHERE ts < ?`, before.Unix())
		if err != nil {
			return total, fmt.Errorf("prune %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

// StartCleanupScheduler prunes data older than retention every interval.
// It returns a stop function.
func (s *Store) StartCleanupScheduler(retention, interval time.Duration, log zerolog.Logger) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				n, err := s.Prune(time.Now().Add(-retention))
				if err != nil {
					log.Error().Err(err).Msg("analytics cleanup")
					continue
				}
				log.Debug().Int64("rows", n).Msg("analytics cleanup")
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
