package kv_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/playperu/worldtour/internal/database"
	"github.com/playperu/worldtour/internal/kv"
	"github.com/playperu/worldtour/internal/migrations"
)

type backend struct {
	name  string
	store func(t *testing.T) kv.Store
}

func backends() []backend {
	return []backend{
		{"memory", func(*testing.T) kv.Store { return kv.NewMemory() }},
		{"sqlite", openSQLite},
		{"redis", openRedis},
		{"postgres", openPostgres},
	}
}

func openSQLite(t *testing.T) kv.Store {
	t.Helper()
	db, err := database.Open(context.Background(), database.Memory)
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := migrations.Run(context.Background(), db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return kv.NewSQLite(db)
}

func openRedis(t *testing.T) kv.Store {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	rdb, err := kv.OpenRedis(ctx, url)
	if err != nil {
		t.Fatalf("opening redis: %v", err)
	}
	t.Cleanup(func() { rdb.Close() })
	return kv.NewRedis(rdb, "test:"+uuid.NewString()+":")
}

func openPostgres(t *testing.T) kv.Store {
	t.Helper()
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN not set")
	}
	p, err := kv.OpenPostgres(context.Background(), dsn)
	if err != nil {
		t.Fatalf("opening postgres: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestStoreContract(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.store(t)
			ctx := context.Background()
			key := "contract/" + uuid.NewString()

			if _, err := s.Get(ctx, key); !errors.Is(err, kv.ErrNotFound) {
				t.Fatalf("get missing: expected ErrNotFound, got %v", err)
			}

			if err := s.Set(ctx, key, []byte("one")); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, key, []byte("two")); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, err := s.Get(ctx, key)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !bytes.Equal(got, []byte("two")) {
				t.Errorf("expected %q, got %q", "two", got)
			}

			if err := s.Delete(ctx, key); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := s.Get(ctx, key); !errors.Is(err, kv.ErrNotFound) {
				t.Errorf("get deleted: expected ErrNotFound, got %v", err)
			}
			if err := s.Delete(ctx, key); err != nil {
				t.Errorf("delete missing: expected no error, got %v", err)
			}
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	m := kv.NewMemory()
	ctx := context.Background()

	v := []byte("abc")
	m.Set(ctx, "k", v)
	v[0] = 'x'

	got, _ := m.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("expected stored value to be isolated from caller, got %q", got)
	}
	if keys := m.Keys(); len(keys) != 1 || keys[0] != "k" {
		t.Errorf("expected [k], got %v", keys)
	}
}

func TestQuota(t *testing.T) {
	ctx := context.Background()
	s := kv.WithQuota(kv.NewMemory(), 4)

	if err := s.Set(ctx, "small", []byte("1234")); err != nil {
		t.Fatalf("expected value at the limit to fit, got %v", err)
	}
	if err := s.Set(ctx, "big", []byte("12345")); !errors.Is(err, kv.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if _, err := s.Get(ctx, "big"); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("expected rejected value to be absent, got %v", err)
	}

	unlimited := kv.NewMemory()
	if kv.WithQuota(unlimited, 0) != kv.Store(unlimited) {
		t.Error("expected zero quota to return the store unchanged")
	}
}

func TestSetWithFallback(t *testing.T) {
	ctx := context.Background()
	enc := func(s string) kv.Encoder {
		return func() ([]byte, error) { return []byte(s), nil }
	}

	tests := []struct {
		name      string
		value     string
		fallbacks []kv.Encoder
		want      string
		wantErr   error
	}{
		{"fits first time", "abc", []kv.Encoder{enc("a")}, "abc", nil},
		{"first fallback fits", "abcdefgh", []kv.Encoder{enc("abc")}, "abc", nil},
		{"second fallback fits", "abcdefgh", []kv.Encoder{enc("abcdefg"), enc("ab")}, "ab", nil},
		{"nothing fits", "abcdefgh", []kv.Encoder{enc("abcdefg")}, "", kv.ErrQuotaExceeded},
		{"no fallbacks", "abcdefgh", nil, "", kv.ErrQuotaExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := kv.WithQuota(kv.NewMemory(), 4)
			err := kv.SetWithFallback(ctx, s, "k", []byte(tt.value), tt.fallbacks...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}
			got, err := s.Get(ctx, "k")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSetWithFallbackEncoderError(t *testing.T) {
	s := kv.WithQuota(kv.NewMemory(), 1)
	boom := errors.New("boom")
	err := kv.SetWithFallback(context.Background(), s, "k", []byte("too long"),
		func() ([]byte, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected encoder error, got %v", err)
	}
}
