// Package persist saves and restores journey state through a kv.Store.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/playperu/worldtour/internal/kv"
	"github.com/playperu/worldtour/internal/travel"
)

var ErrNoSavedSession = errors.New("no saved session")

const (
	partProfile   = "profile"
	partHistory   = "history"
	partProgress  = "progress"
	partStartDate = "start_date"
)

var parts = []string{partProfile, partHistory, partProgress, partStartDate}

// Key is the storage key of one part of a journey's saved state.
func Key(id, part string) string {
	return "journey/" + id + "/" + part
}

type Profile struct {
	Nickname string       `json:"nickname"`
	Selfie   travel.Photo `json:"selfie"`
}

type Progress struct {
	Round        int     `json:"round"`
	Latitude     float64 `json:"latitude"`
	LocationName string  `json:"locationName"`
}

// Saved is everything Load restores. StartDate is zero when no anchor
// was persisted.
type Saved struct {
	Profile   Profile
	History   []travel.HistoryEntry
	Progress  Progress
	StartDate time.Time
}

type Store struct {
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

func (s *Store) put(ctx context.Context, id, part string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", part, err)
	}
	return s.kv.Set(ctx, Key(id, part), data)
}

func (s *Store) SaveProfile(ctx context.Context, id string, p Profile) error {
	return s.put(ctx, id, partProfile, p)
}

func (s *Store) SaveProgress(ctx context.Context, id string, p Progress) error {
	return s.put(ctx, id, partProgress, p)
}

// SaveStartDate persists the date anchor. It is only written once per
// journey and survives reloads until Clear.
func (s *Store) SaveStartDate(ctx context.Context, id string, t time.Time) error {
	return s.put(ctx, id, partStartDate, t.UTC())
}

// SaveHistory writes the full history. When the store refuses it for
// size, the entries are written again without photo payloads; refs and
// text are always kept.
func (s *Store) SaveHistory(ctx context.Context, id string, history []travel.HistoryEntry) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	reduced := func() ([]byte, error) {
		slim := make([]travel.HistoryEntry, len(history))
		for i, e := range history {
			slim[i] = e.WithoutPhotos()
		}
		return json.Marshal(slim)
	}
	return kv.SetWithFallback(ctx, s.kv, Key(id, partHistory), data, reduced)
}

// Load restores a journey. A missing profile or progress record, or any
// record that does not decode, yields ErrNoSavedSession.
func (s *Store) Load(ctx context.Context, id string) (Saved, error) {
	var saved Saved
	if err := s.get(ctx, id, partProfile, &saved.Profile); err != nil {
		return Saved{}, err
	}
	if err := s.get(ctx, id, partProgress, &saved.Progress); err != nil {
		return Saved{}, err
	}
	if saved.Profile.Nickname == "" || saved.Progress.Round < 1 {
		return Saved{}, ErrNoSavedSession
	}

	err := s.get(ctx, id, partHistory, &saved.History)
	if err != nil && !errors.Is(err, errMissing) {
		return Saved{}, err
	}
	if saved.History == nil {
		saved.History = []travel.HistoryEntry{}
	}

	err = s.get(ctx, id, partStartDate, &saved.StartDate)
	if err != nil && !errors.Is(err, errMissing) {
		return Saved{}, err
	}
	return saved, nil
}

var errMissing = fmt.Errorf("missing record: %w", ErrNoSavedSession)

func (s *Store) get(ctx context.Context, id, part string, v any) error {
	data, err := s.kv.Get(ctx, Key(id, part))
	if errors.Is(err, kv.ErrNotFound) {
		return errMissing
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", part, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %v: %w", part, err, ErrNoSavedSession)
	}
	return nil
}

// Clear removes every saved part of the journey, the date anchor
// included.
func (s *Store) Clear(ctx context.Context, id string) error {
	var errs []error
	for _, p := range parts {
		if err := s.kv.Delete(ctx, Key(id, p)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
