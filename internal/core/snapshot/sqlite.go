package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/telemetry"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists snapshots in a single-table SQLite database, one
// row per storage key.
type SQLiteStore struct {
	db    *sql.DB
	loads singleflight.Group
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		sport      TEXT NOT NULL,
		data       BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	var count int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count); err != nil {
		db.Close()
		return nil, fmt.Errorf("read row count: %w", err)
	}

	telemetry.Infof("Started snapshot db  path=%s  saved=%d", path, count)

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sport events.Sport, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, sport, data, updated_at) VALUES (?,?,?,?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		sport.StorageKey(),
		string(sport),
		data,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", sport, err)
	}
	return nil
}

// Load collapses concurrent loads of the same key into one query.
func (s *SQLiteStore) Load(ctx context.Context, sport events.Sport) ([]byte, error) {
	key := sport.StorageKey()
	v, err, _ := s.loads.Do(key, func() (any, error) {
		var data []byte
		err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", sport, err)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *SQLiteStore) Delete(ctx context.Context, sport events.Sport) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, sport.StorageKey()); err != nil {
		return fmt.Errorf("delete %s: %w", sport, err)
	}
	return nil
}

// Record describes one saved snapshot without its payload.
type Record struct {
	Sport     events.Sport
	Size      int
	UpdatedAt time.Time
}

// List returns every saved snapshot, most recently updated first.
func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT sport, length(data), updated_at FROM snapshots ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r       Record
			updated string
		)
		if err := rows.Scan(&r.Sport, &r.Size, &updated); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		r.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
