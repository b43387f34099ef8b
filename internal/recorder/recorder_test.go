package recorder

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"InvestSim/internal/model"
)

func TestSQLiteStore_SaveAndLatest(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "rates.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Latest(ctx); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}

	older := model.Benchmark{
		Selic:         0.1075,
		ReferenceDate: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		FetchedAt:     time.Unix(1715300000, 0),
	}
	newer := model.Benchmark{
		Selic:         0.105,
		ReferenceDate: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		FetchedAt:     time.Unix(1718900000, 0),
	}
	for _, b := range []model.Benchmark{newer, older} {
		if err := s.Save(ctx, b); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, ok, err := s.Latest(ctx)
	if err != nil || !ok {
		t.Fatalf("expected a snapshot, got ok=%v err=%v", ok, err)
	}
	if got.Selic != newer.Selic {
		t.Errorf("expected selic %.4f, got %.4f", newer.Selic, got.Selic)
	}
	if !got.ReferenceDate.Equal(newer.ReferenceDate) {
		t.Errorf("expected reference date %v, got %v", newer.ReferenceDate, got.ReferenceDate)
	}
	if got.FetchedAt.Unix() != newer.FetchedAt.Unix() {
		t.Errorf("expected fetched at %d, got %d", newer.FetchedAt.Unix(), got.FetchedAt.Unix())
	}
}

func TestSQLiteStore_UndatedSnapshot(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "rates.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	if err := s.Save(ctx, model.Benchmark{Selic: 0.13}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := s.Latest(ctx)
	if err != nil || !ok {
		t.Fatalf("expected a snapshot, got ok=%v err=%v", ok, err)
	}
	if !got.ReferenceDate.IsZero() {
		t.Errorf("expected no reference date, got %v", got.ReferenceDate)
	}
	if got.FetchedAt.IsZero() {
		t.Error("expected fetch time to default to now")
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rates.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Save(ctx, model.Benchmark{Selic: 0.1175, FetchedAt: time.Unix(1700000000, 0)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Close()

	s, err = NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s.Close()
	got, ok, err := s.Latest(ctx)
	if err != nil || !ok || got.Selic != 0.1175 {
		t.Errorf("expected persisted 0.1175, got %+v ok=%v err=%v", got, ok, err)
	}
}

func TestNoopStore(t *testing.T) {
	ctx := context.Background()
	s := NewNoopStore()
	if err := s.Save(ctx, model.Benchmark{Selic: 0.1}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, ok, err := s.Latest(ctx); ok || err != nil {
		t.Errorf("noop store must stay empty, got ok=%v err=%v", ok, err)
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "x.db"), "localhost:6379", "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("expected sqlite to win over redis, got %T", s)
	}

	r, err := Open("", "localhost:6379", "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()
	rs, ok := r.(*RedisStore)
	if !ok {
		t.Fatalf("expected redis store, got %T", r)
	}
	if rs.key != DefaultRedisKey {
		t.Errorf("expected default key %q, got %q", DefaultRedisKey, rs.key)
	}

	n, err := Open("", "", "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := n.(*NoopStore); !ok {
		t.Errorf("expected noop store, got %T", n)
	}
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	// nothing listens on port 1
	s := NewRedisStore("127.0.0.1:1", "test:selic")
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, ok, err := s.Latest(ctx); err == nil || ok {
		t.Errorf("expected an error from an unreachable server, got ok=%v err=%v", ok, err)
	}
	if err := s.Save(ctx, model.Benchmark{Selic: 0.1}); err == nil {
		t.Error("expected save to fail against an unreachable server")
	}
}

func TestRedisStore_SaveAndLatest(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr(), "test:selic")
	defer s.Close()
	ctx := context.Background()

	if _, ok, err := s.Latest(ctx); err != nil || ok {
		t.Fatalf("expected empty key, got ok=%v err=%v", ok, err)
	}

	ref := time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC)
	fetched := time.Date(2026, 9, 18, 9, 0, 5, 0, time.Local)
	if err := s.Save(ctx, model.Benchmark{Selic: 0.15, ReferenceDate: ref, FetchedAt: fetched}); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := mr.Get("test:selic")
	if err != nil {
		t.Fatalf("key not written: %v", err)
	}
	var snap redisSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("stored value is not a JSON snapshot: %v", err)
	}
	if snap.ReferenceDate != "2026-09-17" || snap.FetchedAt != fetched.Unix() {
		t.Errorf("unexpected stored snapshot %+v", snap)
	}

	got, ok, err := s.Latest(ctx)
	if err != nil || !ok {
		t.Fatalf("latest: ok=%v err=%v", ok, err)
	}
	if got.Selic != 0.15 || !got.ReferenceDate.Equal(ref) || got.FetchedAt.Unix() != fetched.Unix() {
		t.Errorf("unexpected snapshot %+v", got)
	}

	// a newer undated observation replaces the key
	if err := s.Save(ctx, model.Benchmark{Selic: 0.1425}); err != nil {
		t.Fatalf("save undated: %v", err)
	}
	got, ok, err = s.Latest(ctx)
	if err != nil || !ok {
		t.Fatalf("latest: ok=%v err=%v", ok, err)
	}
	if got.Selic != 0.1425 || !got.ReferenceDate.IsZero() {
		t.Errorf("expected undated 14.25%% snapshot, got %+v", got)
	}
	if got.FetchedAt.IsZero() {
		t.Error("expected save to stamp the fetch time")
	}
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr(), "")
	defer s.Close()

	mr.Set(DefaultRedisKey, "not json")
	if _, ok, err := s.Latest(context.Background()); err == nil || ok {
		t.Errorf("expected a decode error, got ok=%v err=%v", ok, err)
	}
}
