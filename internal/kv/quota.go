package kv

import (
	"context"
	"errors"
	"fmt"
)

// Quota wraps a Store and refuses values larger than a byte limit.
type Quota struct {
	Store
	max int
}

// WithQuota limits the size of any single value written through the
// returned store. A non-positive max disables the limit.
func WithQuota(s Store, max int) Store {
	if max <= 0 {
		return s
	}
	return &Quota{Store: s, max: max}
}

func (q *Quota) Set(ctx context.Context, key string, value []byte) error {
	if len(value) > q.max {
		return fmt.Errorf("%s is %d bytes, limit %d: %w", key, len(value), q.max, ErrQuotaExceeded)
	}
	return q.Store.Set(ctx, key, value)
}

// Encoder produces an alternative encoding of a value, usually a smaller
// one.
type Encoder func() ([]byte, error)

// SetWithFallback writes value and, if the store reports quota pressure,
// tries each fallback encoding in order. Errors other than
// ErrQuotaExceeded are returned immediately.
func SetWithFallback(ctx context.Context, s Store, key string, value []byte, fallbacks ...Encoder) error {
	err := s.Set(ctx, key, value)
	for _, fb := range fallbacks {
		if !errors.Is(err, ErrQuotaExceeded) {
			break
		}
		var reduced []byte
		reduced, err = fb()
		if err != nil {
			return fmt.Errorf("encoding fallback for %s: %w", key, err)
		}
		err = s.Set(ctx, key, reduced)
	}
	return err
}
