package bistro

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested inquiry does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database holding contact inquiries. The analytics
// tables live in the same file.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets readers run alongside the single writer; busy_timeout makes
	// writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the handle so the analytics store can share the file.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping checks the database is reachable.
func (s *Store) Ping() error {
	return s.db.Ping()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS inquiries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    restaurant TEXT NOT NULL DEFAULT '',
    plan TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    handled INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries(created_at);
`)
	return err
}

// SaveInquiry inserts in and fills its ID and, when zero, CreatedAt.
func (s *Store) SaveInquiry(in *Inquiry) error {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(`
INSERT INTO inquiries (name, email, restaurant, plan, message, created_at, handled)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.Email, in.Restaurant, in.Plan, in.Message, in.CreatedAt.UnixNano(), boolToInt(in.Handled))
	if err != nil {
		return fmt.Errorf("save inquiry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save inquiry: %w", err)
	}
	in.ID = id
	return nil
}

// ListInquiries returns every inquiry, newest first.
func (s *Store) ListInquiries() ([]Inquiry, error) {
	rows, err := s.db.Query(`
SELECT id, name, email, restaurant, plan, message, created_at, handled
FROM inquiries
ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Inquiry
	for rows.Next() {
		var in Inquiry
		var created int64
		var handled int
		if err := rows.Scan(&in.ID, &in.Name, &in.Email, &in.Restaurant, &in.Plan, &in.Message, &created, &handled); err != nil {
			return nil, err
		}
		in.CreatedAt = time.Unix(0, created).UTC()
		in.Handled = handled == 1
		out = append(out, in)
	}
	return out, rows.Err()
}

// GetInquiry returns one inquiry by id, or ErrNotFound.
func (s *Store) GetInquiry(id int64) (Inquiry, error) {
	var in Inquiry
	var created int64
	var handled int
	err := s.db.QueryRow(`
SELECT id, name, email, restaurant, plan, message, created_at, handled
FROM inquiries WHERE id = ?`, id).
		Scan(&in.ID, &in.Name, &in.Email, &in.Restaurant, &in.Plan, &in.Message, &created, &handled)
	if err != nil {
		return Inquiry{}, err
	}
	in.CreatedAt = time.Unix(0, created).UTC()
	in.Handled = handled == 1
	return in, nil
}

// MarkHandled flags an inquiry as dealt with.
func (s *Store) MarkHandled(id int64) error {
	res, err := s.db.Exec(`UPDATE inquiries SET handled = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

// DeleteInquiry removes an inquiry.
func (s *Store) DeleteInquiry(id int64) error {
	res, err := s.db.Exec(`DELETE FROM inquiries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

// CountOpen returns the number of inquiries not yet handled.
func (s *Store) CountOpen() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM inquiries WHERE handled = 0`).Scan(&n)
	return n, err
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
