package recorder

import (
	"context"
	"log"
	"time"

	"InvestSim/internal/model"
)

// dateLayout is how reference dates are persisted; they carry no time of day.
const dateLayout = "2006-01-02"

// Store persists benchmark snapshots so a later run can fall back on the
// last good observation when the remote source is down.
type Store interface {
	Save(ctx context.Context, b model.Benchmark) error
	// Latest returns the most recently fetched snapshot; ok is false when
	// nothing has been stored yet.
	Latest(ctx context.Context) (b model.Benchmark, ok bool, err error)
	Close() error
}

// Open picks a backend: SQLite when a path is set, else Redis when an
// address is set, else a no-op store.
func Open(sqlitePath, redisAddr, redisKey string) (Store, error) {
	switch {
	case sqlitePath != "":
		return NewSQLiteStore(sqlitePath)
	case redisAddr != "":
		return NewRedisStore(redisAddr, redisKey), nil
	default:
		log.Println("[INFO] no rate store configured, snapshots will not be kept")
		return NewNoopStore(), nil
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}
