package journey

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/playperu/worldtour/internal/travel"
)

// session pairs a journey with its owner lock and the snapshots readers
// use while the lock is held by a running step.
type session struct {
	mu  sync.Mutex
	j   *Journey
	rng *rand.Rand

	view   atomic.Pointer[View]
	assets atomic.Pointer[assets]

	// lastSeen is the UnixNano time of the last registry lookup.
	lastSeen atomic.Int64
}

// assets is the photo-bearing part of a journey, published alongside the
// view.
type assets struct {
	nickname string
	history  []travel.HistoryEntry
	pending  *travel.Photo
}

// photo looks a photo up by ref in the history and the pending city
// photo.
func (a *assets) photo(ref string) (travel.Photo, bool) {
	if ref == "" {
		return travel.Photo{}, false
	}
	if p := a.pending; p != nil && p.Ref() == ref {
		return *p, true
	}
	for _, e := range a.history {
		if e.CityPhoto != nil && e.CityPhotoRef == ref {
			return *e.CityPhoto, true
		}
		if e.LandmarkPhoto != nil && e.LandmarkPhotoRef == ref {
			return *e.LandmarkPhoto, true
		}
	}
	return travel.Photo{}, false
}

type loadFunc func(ctx context.Context, id string) (*session, error)

// Registry holds live journeys and loads saved ones on first access.
// Idle journeys can be evicted and are loaded again when next used.
type Registry struct {
	load     loadFunc
	now      func() time.Time
	mu       sync.RWMutex
	sessions map[string]*session
}

func newRegistry(load loadFunc, now func() time.Time) *Registry {
	return &Registry{
		load:     load,
		now:      now,
		sessions: make(map[string]*session),
	}
}

func (r *Registry) touch(s *session) {
	s.lastSeen.Store(r.now().UnixNano())
}

func (r *Registry) get(ctx context.Context, id string) (*session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	if ok {
		r.touch(s)
	}
	r.mu.RUnlock()
	if ok {
		return s, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock.
	if s, ok := r.sessions[id]; ok {
		r.touch(s)
		return s, nil
	}

	s, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	r.touch(s)
	r.sessions[id] = s
	return s, nil
}

func (r *Registry) add(s *session) {
	r.touch(s)
	r.mu.Lock()
	r.sessions[s.j.ID] = s
	r.mu.Unlock()
}

// evict drops journeys not looked up since cutoff. A journey in the
// middle of a step holds its lock and is kept.
func (r *Registry) evict(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		if s.lastSeen.Load() >= cutoff.UnixNano() || !s.mu.TryLock() {
			continue
		}
		delete(r.sessions, id)
		s.mu.Unlock()
		n++
	}
	return n
}

// Len is the number of journeys currently in memory.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
