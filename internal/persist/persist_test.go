package persist_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playperu/worldtour/internal/kv"
	"github.com/playperu/worldtour/internal/persist"
	"github.com/playperu/worldtour/internal/travel"
)

func entry(round int, payload string) travel.HistoryEntry {
	p := &travel.Photo{MIMEType: "image/png", Data: []byte(payload)}
	city := travel.DefaultPools[round-1][0]
	return travel.HistoryEntry{
		Round:            round,
		City:             city,
		Landmark:         city.Landmarks[0],
		CityPhotoRef:     p.Ref(),
		LandmarkPhotoRef: p.Ref(),
		CityPhoto:        p,
		LandmarkPhoto:    p,
		Diary:            "diary " + city.Name,
		Date:             "2025/12/20",
	}
}

func seed(t *testing.T, s *persist.Store, id string) {
	t.Helper()
	ctx := context.Background()
	if err := s.SaveProfile(ctx, id, persist.Profile{Nickname: "Mia", Selfie: travel.Photo{MIMEType: "image/png", Data: []byte("me")}}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if err := s.SaveProgress(ctx, id, persist.Progress{Round: 2, Latitude: 35.6, LocationName: "Tokyo"}); err != nil {
		t.Fatalf("save progress: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := persist.New(kv.NewMemory())
	seed(t, s, "j1")

	start := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
	if err := s.SaveStartDate(ctx, "j1", start); err != nil {
		t.Fatalf("save start date: %v", err)
	}
	if err := s.SaveHistory(ctx, "j1", []travel.HistoryEntry{entry(1, "photo")}); err != nil {
		t.Fatalf("save history: %v", err)
	}

	saved, err := s.Load(ctx, "j1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if saved.Profile.Nickname != "Mia" {
		t.Errorf("expected nickname Mia, got %q", saved.Profile.Nickname)
	}
	if saved.Progress.Round != 2 || saved.Progress.LocationName != "Tokyo" {
		t.Errorf("unexpected progress %+v", saved.Progress)
	}
	if !saved.StartDate.Equal(start) {
		t.Errorf("expected start %v, got %v", start, saved.StartDate)
	}
	if len(saved.History) != 1 || saved.History[0].LandmarkPhoto == nil {
		t.Fatalf("expected one entry with photos, got %+v", saved.History)
	}
}

func TestLoadMissingOrPartial(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(store kv.Store, s *persist.Store)
	}{
		{"nothing saved", func(kv.Store, *persist.Store) {}},
		{"profile only", func(_ kv.Store, s *persist.Store) {
			s.SaveProfile(ctx, "j", persist.Profile{Nickname: "Mia"})
		}},
		{"progress only", func(_ kv.Store, s *persist.Store) {
			s.SaveProgress(ctx, "j", persist.Progress{Round: 1})
		}},
		{"corrupt progress", func(store kv.Store, s *persist.Store) {
			s.SaveProfile(ctx, "j", persist.Profile{Nickname: "Mia"})
			store.Set(ctx, persist.Key("j", "progress"), []byte("{not json"))
		}},
		{"corrupt history", func(store kv.Store, s *persist.Store) {
			s.SaveProfile(ctx, "j", persist.Profile{Nickname: "Mia"})
			s.SaveProgress(ctx, "j", persist.Progress{Round: 1})
			store.Set(ctx, persist.Key("j", "history"), []byte("[{"))
		}},
		{"round zero", func(_ kv.Store, s *persist.Store) {
			s.SaveProfile(ctx, "j", persist.Profile{Nickname: "Mia"})
			s.SaveProgress(ctx, "j", persist.Progress{Round: 0})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kv.NewMemory()
			s := persist.New(store)
			tt.setup(store, s)

			if _, err := s.Load(ctx, "j"); !errors.Is(err, persist.ErrNoSavedSession) {
				t.Errorf("expected ErrNoSavedSession, got %v", err)
			}
		})
	}
}

func TestLoadWithoutHistory(t *testing.T) {
	s := persist.New(kv.NewMemory())
	seed(t, s, "j")

	saved, err := s.Load(context.Background(), "j")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if saved.History == nil || len(saved.History) != 0 {
		t.Errorf("expected empty history, got %v", saved.History)
	}
	if !saved.StartDate.IsZero() {
		t.Errorf("expected zero start date, got %v", saved.StartDate)
	}
}

func TestSaveHistoryFallsBackWithoutPhotos(t *testing.T) {
	ctx := context.Background()
	big := string(bytes.Repeat([]byte("x"), 8192))
	history := []travel.HistoryEntry{entry(1, big), entry(2, big+"y")}

	s := persist.New(kv.WithQuota(kv.NewMemory(), 4096))
	seed(t, s, "j")
	if err := s.SaveHistory(ctx, "j", history); err != nil {
		t.Fatalf("save history: %v", err)
	}

	saved, err := s.Load(ctx, "j")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(saved.History) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(saved.History))
	}
	for i, e := range saved.History {
		if e.CityPhoto != nil || e.LandmarkPhoto != nil {
			t.Errorf("entry %d: expected photo payloads dropped", i)
		}
		if e.City.Name != history[i].City.Name || e.Landmark.Name != history[i].Landmark.Name {
			t.Errorf("entry %d: expected city and landmark kept", i)
		}
		if e.Diary != history[i].Diary {
			t.Errorf("entry %d: expected diary %q, got %q", i, history[i].Diary, e.Diary)
		}
		if e.LandmarkPhotoRef != history[i].LandmarkPhotoRef {
			t.Errorf("entry %d: expected photo ref kept", i)
		}
	}
}

func TestClearRemovesEverything(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := persist.New(store)
	seed(t, s, "j")
	s.SaveStartDate(ctx, "j", time.Now())
	s.SaveHistory(ctx, "j", []travel.HistoryEntry{entry(1, "p")})
	seed(t, s, "other")

	if err := s.Clear(ctx, "j"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	for _, part := range []string{"profile", "history", "progress", "start_date"} {
		if _, err := store.Get(ctx, persist.Key("j", part)); !errors.Is(err, kv.ErrNotFound) {
			t.Errorf("%s: expected deleted, got %v", part, err)
		}
	}
	if _, err := s.Load(ctx, "other"); err != nil {
		t.Errorf("expected other journey untouched, got %v", err)
	}
}
