package recorder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"InvestSim/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps every snapshot in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite rate store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rate_snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			fetched_at     INTEGER NOT NULL,
			reference_date TEXT,
			selic          REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rate_fetched ON rate_snapshots(fetched_at)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, b model.Benchmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fetched := b.FetchedAt
	if fetched.IsZero() {
		fetched = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO rate_snapshots
		(fetched_at, reference_date, selic)
		VALUES (?,?,?)`,
		fetched.Unix(), formatDate(b.ReferenceDate), b.Selic,
	)
	return err
}

func (s *SQLiteStore) Latest(ctx context.Context) (model.Benchmark, bool, error) {
	var (
		fetched int64
		refDate sql.NullString
		b       model.Benchmark
	)
	err := s.db.QueryRowContext(ctx, `SELECT fetched_at, reference_date, selic
		FROM rate_snapshots ORDER BY fetched_at DESC, id DESC LIMIT 1`,
	).Scan(&fetched, &refDate, &b.Selic)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Benchmark{}, false, nil
	}
	if err != nil {
		return model.Benchmark{}, false, fmt.Errorf("query latest snapshot: %w", err)
	}

	b.FetchedAt = time.Unix(fetched, 0)
	if b.ReferenceDate, err = parseDate(refDate.String); err != nil {
		return model.Benchmark{}, false, fmt.Errorf("parse reference date %q: %w", refDate.String, err)
	}
	return b, true, nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite rate store")
	return s.db.Close()
}
