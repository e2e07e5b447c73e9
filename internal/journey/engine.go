package journey

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/playperu/worldtour/internal/export"
	"github.com/playperu/worldtour/internal/gemini"
	"github.com/playperu/worldtour/internal/kv"
	"github.com/playperu/worldtour/internal/persist"
	"github.com/playperu/worldtour/internal/travel"
)

const (
	DefaultIntroDelay = 1500 * time.Millisecond
	maxNicknameLen    = 40

	// saveTimeout bounds a save that outlives the request that caused it.
	saveTimeout = 10 * time.Second
)

// Generator produces the photos and diary text of each stop.
type Generator interface {
	GenerateImage(ctx context.Context, req gemini.ImageRequest) (travel.Photo, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Persister is the saved copy of journeys.
type Persister interface {
	SaveProfile(ctx context.Context, id string, p persist.Profile) error
	SaveProgress(ctx context.Context, id string, p persist.Progress) error
	SaveStartDate(ctx context.Context, id string, t time.Time) error
	SaveHistory(ctx context.Context, id string, history []travel.HistoryEntry) error
	Load(ctx context.Context, id string) (persist.Saved, error)
	Clear(ctx context.Context, id string) error
}

// Event is published on every visible change of a journey.
type Event struct {
	Type       string `json:"type"`
	Phase      Phase  `json:"phase"`
	Round      int    `json:"round"`
	Generating bool   `json:"generating"`
}

type Notifier interface {
	Publish(id string, ev Event)
}

type Options struct {
	Pools      [][]travel.City
	IntroDelay time.Duration
	// Persona is the companion's reference photo. When nil the player's
	// selfie stands in for city photos and souvenirs show the player
	// alone.
	Persona *travel.Photo
	// Seed makes route selection reproducible. Zero seeds from the clock.
	Seed      int64
	PublicURL string
	// IdleTTL is how long an untouched journey stays in memory. Zero
	// keeps journeys until the process exits.
	IdleTTL time.Duration
	Now     func() time.Time
}

type Engine struct {
	gen      Generator
	store    Persister
	notify   Notifier
	logger   *slog.Logger
	opts     Options
	sessions *Registry
	seq      atomic.Int64
}

func NewEngine(gen Generator, store Persister, notify Notifier, logger *slog.Logger, opts Options) *Engine {
	if opts.Pools == nil {
		opts.Pools = travel.DefaultPools
	}
	if opts.IntroDelay < 0 {
		opts.IntroDelay = 0
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	e := &Engine{gen: gen, store: store, notify: notify, logger: logger, opts: opts}
	e.sessions = newRegistry(e.restore, opts.Now)
	return e
}

// Sessions exposes the in-memory registry, mainly for health reporting.
func (e *Engine) Sessions() *Registry { return e.sessions }

// Sweep evicts journeys idle for longer than Options.IdleTTL. Saved
// journeys are restored from the store on their next request.
func (e *Engine) Sweep() int {
	if e.opts.IdleTTL <= 0 {
		return 0
	}
	n := e.sessions.evict(e.opts.Now().Add(-e.opts.IdleTTL))
	if n > 0 {
		e.logger.Info("evicted idle journeys", "count", n, "remaining", e.sessions.Len())
	}
	return n
}

// RunSweeper calls Sweep periodically until ctx is done.
func (e *Engine) RunSweeper(ctx context.Context) error {
	if e.opts.IdleTTL <= 0 {
		<-ctx.Done()
		return nil
	}
	t := time.NewTicker(max(e.opts.IdleTTL/4, time.Second))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			e.Sweep()
		}
	}
}

func (e *Engine) newRand() *rand.Rand {
	if e.opts.Seed == 0 {
		return travel.NewClockRand()
	}
	return travel.NewRand(e.opts.Seed + e.seq.Add(1))
}

func (e *Engine) newSession(id string) *session {
	s := &session{j: newJourney(id), rng: e.newRand()}
	s.view.Store(s.j.snapshot())
	s.assets.Store(&assets{})
	return s
}

// acquire returns the journey locked for a mutating step.
func (e *Engine) acquire(ctx context.Context, id string) (*session, error) {
	s, err := e.sessions.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.mu.TryLock() {
		return nil, ErrBusy
	}
	return s, nil
}

// publish swaps in fresh snapshots and notifies subscribers. Callers hold
// the session lock.
func (e *Engine) publish(s *session, event string) {
	j := s.j
	s.view.Store(j.snapshot())
	s.assets.Store(&assets{
		nickname: j.Profile.Nickname,
		history:  slices.Clone(j.History),
		pending:  j.PendingCityPhoto,
	})
	if e.notify != nil {
		e.notify.Publish(j.ID, Event{Type: event, Phase: j.Phase, Round: j.Round, Generating: j.Generating})
	}
}

func (e *Engine) logPersist(id, op string, err error) {
	if err != nil {
		e.logger.Warn("saving journey failed", "journey", id, "op", op, "error", err)
	}
}

// saveCtx detaches a save from the caller. Once a step is committed in
// memory a dropped client must not keep it from reaching the store.
func saveCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
}

func (e *Engine) saveProgress(ctx context.Context, j *Journey) {
	e.logPersist(j.ID, "progress", e.store.SaveProgress(ctx, j.ID, persist.Progress{
		Round:        j.Round,
		Latitude:     j.Latitude,
		LocationName: j.LocationName,
	}))
}

func validateProfile(nickname string, selfie travel.Photo) (string, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return "", &ValidationError{Field: "nickname", Message: "nickname is required"}
	}
	if utf8.RuneCountInString(nickname) > maxNicknameLen {
		return "", &ValidationError{Field: "nickname", Message: fmt.Sprintf("nickname must be at most %d characters", maxNicknameLen)}
	}
	if len(selfie.Data) == 0 {
		return "", &ValidationError{Field: "selfie", Message: "selfie is required"}
	}
	if !strings.HasPrefix(selfie.MIMEType, "image/") {
		return "", &ValidationError{Field: "selfie", Message: "selfie must be an image"}
	}
	return nickname, nil
}

// Start creates a journey for a new player and moves it to INTRO.
// Invalid input creates nothing.
func (e *Engine) Start(ctx context.Context, nickname string, selfie travel.Photo) (View, error) {
	nickname, err := validateProfile(nickname, selfie)
	if err != nil {
		return View{}, err
	}

	s := e.newSession(uuid.NewString())
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := e.begin(ctx, s, nickname, selfie); err != nil {
		return View{}, err
	}
	e.sessions.add(s)
	return *s.view.Load(), nil
}

// Begin starts an existing journey that is back at START after a reset.
func (e *Engine) Begin(ctx context.Context, id, nickname string, selfie travel.Photo) (View, error) {
	s, err := e.acquire(ctx, id)
	if err != nil {
		return View{}, err
	}
	defer s.mu.Unlock()

	if s.j.Phase != PhaseStart {
		return View{}, wrongPhase("start", s.j.Phase)
	}
	nickname, err = validateProfile(nickname, selfie)
	if err != nil {
		return View{}, err
	}
	if err := e.begin(ctx, s, nickname, selfie); err != nil {
		return View{}, err
	}
	return *s.view.Load(), nil
}

// begin saves the profile first: a journey whose profile the store
// refuses for size could never be restored, so it is not started.
func (e *Engine) begin(ctx context.Context, s *session, nickname string, selfie travel.Photo) error {
	j := s.j
	now := e.opts.Now()
	ctx, cancel := saveCtx(ctx)
	defer cancel()

	profile := persist.Profile{Nickname: nickname, Selfie: selfie}
	err := e.store.SaveProfile(ctx, j.ID, profile)
	if errors.Is(err, kv.ErrQuotaExceeded) {
		return &ValidationError{Field: "selfie", Message: "selfie is too large to save"}
	}
	e.logPersist(j.ID, "profile", err)

	j.Profile = profile
	if j.StartDate.IsZero() {
		j.StartDate = now
		e.logPersist(j.ID, "start_date", e.store.SaveStartDate(ctx, j.ID, now))
	}
	e.saveProgress(ctx, j)

	j.Phase = PhaseIntro
	j.IntroEndsAt = now.Add(e.opts.IntroDelay)
	e.logger.Info("journey started", "journey", j.ID, "nickname", nickname)
	e.publish(s, "started")
	return nil
}

// advanceIntro leaves INTRO once its delay has passed. Callers hold the
// session lock.
func (e *Engine) advanceIntro(s *session) {
	j := s.j
	if j.Phase != PhaseIntro || e.opts.Now().Before(j.IntroEndsAt) {
		return
	}
	j.Phase = PhaseCitySelection
	j.CityOptions = travel.SelectNextCities(e.opts.Pools, j.Round, j.Latitude, s.rng)
	e.publish(s, "departed")
}

// View returns the journey's current snapshot. It never waits for a
// running generation step; while one runs the last published snapshot is
// returned.
func (e *Engine) View(ctx context.Context, id string) (View, error) {
	s, err := e.sessions.get(ctx, id)
	if err != nil {
		return View{}, err
	}
	if s.mu.TryLock() {
		e.advanceIntro(s)
		s.mu.Unlock()
	}
	return *s.view.Load(), nil
}

func (e *Engine) companion(j *Journey) []travel.Photo {
	if e.opts.Persona != nil {
		return []travel.Photo{*e.opts.Persona}
	}
	return []travel.Photo{j.Profile.Selfie}
}

// SelectCity picks the next destination and generates its city photo.
// On failure the journey stays in CITY_SELECTION at the same latitude.
func (e *Engine) SelectCity(ctx context.Context, id string, choice Choice) (View, error) {
	s, err := e.acquire(ctx, id)
	if err != nil {
		return View{}, err
	}
	defer s.mu.Unlock()

	e.advanceIntro(s)
	j := s.j
	if j.Phase != PhaseCitySelection {
		return View{}, wrongPhase("select city", j.Phase)
	}
	names := make([]string, len(j.CityOptions))
	for i, c := range j.CityOptions {
		names[i] = c.Name
	}
	i, err := resolve("city", choice, names)
	if err != nil {
		return View{}, err
	}
	city := j.CityOptions[i]

	j.SelectedCity = &city
	j.Generating = true
	e.publish(s, "generating")

	photo, err := e.gen.GenerateImage(context.WithoutCancel(ctx), gemini.ImageRequest{
		Images:      e.companion(j),
		Prompt:      cityPrompt(city, e.opts.Persona != nil),
		AspectRatio: cityAspect,
	})
	j.Generating = false
	if err != nil {
		j.SelectedCity = nil
		e.publish(s, "generation_failed")
		e.logger.Warn("city photo failed", "journey", id, "city", city.Name, "error", err)
		return *s.view.Load(), &GenerationError{Step: "city photo", Err: err}
	}

	j.Latitude = city.Latitude
	j.LandmarkOptions = travel.SampleLandmarks(city.Landmarks, travel.LandmarksPerCity, s.rng)
	j.PendingCityPhoto = &photo
	j.Phase = PhaseLandmarkSelection
	e.logger.Info("city selected", "journey", id, "round", j.Round, "city", city.Name)
	e.publish(s, "city_selected")
	return *s.view.Load(), nil
}

// SelectLandmark generates the souvenir photo and diary for the chosen
// landmark and closes the round. An image failure returns the journey to
// LANDMARK_SELECTION with its history untouched; a diary failure falls
// back to a stock line.
func (e *Engine) SelectLandmark(ctx context.Context, id string, choice Choice) (View, error) {
	s, err := e.acquire(ctx, id)
	if err != nil {
		return View{}, err
	}
	defer s.mu.Unlock()

	j := s.j
	if j.Phase != PhaseLandmarkSelection || j.SelectedCity == nil {
		return View{}, wrongPhase("select landmark", j.Phase)
	}
	names := make([]string, len(j.LandmarkOptions))
	for i, l := range j.LandmarkOptions {
		names[i] = l.Name
	}
	i, err := resolve("landmark", choice, names)
	if err != nil {
		return View{}, err
	}
	city, landmark := *j.SelectedCity, j.LandmarkOptions[i]

	j.SelectedLandmark = &landmark
	j.Phase = PhasePhotoGeneration
	j.Generating = true
	e.publish(s, "generating")

	genCtx := context.WithoutCancel(ctx)
	images := e.companion(j)
	if e.opts.Persona != nil {
		images = append(images, j.Profile.Selfie)
	}
	photo, err := e.gen.GenerateImage(genCtx, gemini.ImageRequest{
		Images:      images,
		Prompt:      souvenirPrompt(city, landmark, e.opts.Persona != nil),
		AspectRatio: souvenirAspect,
	})
	if err != nil {
		j.Generating = false
		j.SelectedLandmark = nil
		j.Phase = PhaseLandmarkSelection
		e.publish(s, "generation_failed")
		e.logger.Warn("souvenir photo failed", "journey", id, "landmark", landmark.Name, "error", err)
		return *s.view.Load(), &GenerationError{Step: "souvenir photo", Err: err}
	}

	diary, err := e.gen.GenerateText(genCtx, diaryPrompt(j.Profile.Nickname, city, landmark, e.opts.Persona != nil))
	if err != nil {
		e.logger.Warn("diary failed, using fallback", "journey", id, "error", err)
		diary = fallbackDiary(city, landmark)
	}
	j.Generating = false

	entry := travel.HistoryEntry{
		Round:            j.Round,
		City:             city,
		Landmark:         landmark,
		LandmarkPhotoRef: photo.Ref(),
		LandmarkPhoto:    &photo,
		Diary:            diary,
		Date:             travel.TravelDate(j.StartDate, j.Round),
	}
	if p := j.PendingCityPhoto; p != nil {
		entry.CityPhoto = p
		entry.CityPhotoRef = p.Ref()
	}
	j.History = append(j.History, entry)
	j.clearSelection()

	event := "stop_completed"
	if j.Round >= travel.TotalRounds {
		j.Round = travel.TotalRounds + 1
		j.Phase = PhaseSummary
		event = "completed"
	} else {
		j.Round++
		j.LocationName = city.Name
		j.CityOptions = travel.SelectNextCities(e.opts.Pools, j.Round, j.Latitude, s.rng)
		j.Phase = PhaseCitySelection
	}

	sctx, cancel := saveCtx(ctx)
	defer cancel()
	e.logPersist(id, "history", e.store.SaveHistory(sctx, id, j.History))
	e.saveProgress(sctx, j)
	e.logger.Info("stop completed", "journey", id, "round", entry.Round, "city", city.Name, "landmark", landmark.Name)
	e.publish(s, event)
	return *s.view.Load(), nil
}

// Reset wipes the journey back to START and removes everything saved
// for it, the travel date anchor included.
func (e *Engine) Reset(ctx context.Context, id string) (View, error) {
	s, err := e.acquire(ctx, id)
	if err != nil {
		return View{}, err
	}
	defer s.mu.Unlock()

	s.j.clear()
	sctx, cancel := saveCtx(ctx)
	defer cancel()
	e.logPersist(id, "clear", e.store.Clear(sctx, id))
	e.logger.Info("journey reset", "journey", id)
	e.publish(s, "reset")
	return *s.view.Load(), nil
}

// Photo returns a generated photo of the journey by ref.
func (e *Engine) Photo(ctx context.Context, id, ref string) (travel.Photo, error) {
	s, err := e.sessions.get(ctx, id)
	if err != nil {
		return travel.Photo{}, err
	}
	p, ok := s.assets.Load().photo(ref)
	if !ok {
		return travel.Photo{}, fmt.Errorf("photo %s: %w", ref, ErrNotFound)
	}
	return p, nil
}

// ShareURL is the public address of the journey's itinerary, or "" when
// no public URL is configured.
func (e *Engine) ShareURL(id string) string {
	if e.opts.PublicURL == "" {
		return ""
	}
	return strings.TrimRight(e.opts.PublicURL, "/") + "/api/journeys/" + id + "/itinerary"
}

// Export writes the journey's itinerary as a standalone HTML page.
func (e *Engine) Export(ctx context.Context, id string, w io.Writer) error {
	s, err := e.sessions.get(ctx, id)
	if err != nil {
		return err
	}
	a := s.assets.Load()
	if len(a.history) == 0 {
		return ErrNoHistory
	}
	return export.Write(w, export.Itinerary{
		Nickname:    a.nickname,
		Entries:     a.history,
		ShareURL:    e.ShareURL(id),
		GeneratedAt: e.opts.Now(),
	})
}

// restore rebuilds a journey from its saved copy. A restored journey
// resumes at city selection for its current round.
func (e *Engine) restore(ctx context.Context, id string) (*session, error) {
	saved, err := e.store.Load(ctx, id)
	if errors.Is(err, persist.ErrNoSavedSession) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading journey %s: %w", id, err)
	}

	s := e.newSession(id)
	j := s.j
	j.Profile = saved.Profile
	j.History = saved.History
	if len(j.History) > travel.TotalRounds {
		e.logger.Warn("saved history is longer than a journey, truncating", "journey", id, "stops", len(j.History))
		j.History = j.History[:travel.TotalRounds]
	}
	j.Round = min(saved.Progress.Round, travel.TotalRounds+1)
	j.Latitude = saved.Progress.Latitude
	j.LocationName = saved.Progress.LocationName
	j.StartDate = saved.StartDate

	if n := len(j.History); j.Round != n+1 {
		e.logger.Warn("saved progress disagrees with history, following history", "journey", id, "round", j.Round, "stops", n)
		j.Round = n + 1
		if n > 0 {
			last := j.History[n-1].City
			j.Latitude, j.LocationName = last.Latitude, last.Name
		} else {
			j.Latitude, j.LocationName = travel.OriginLatitude, travel.OriginName
		}
	}
	if j.StartDate.IsZero() {
		j.StartDate = e.opts.Now()
		sctx, cancel := saveCtx(ctx)
		e.logPersist(id, "start_date", e.store.SaveStartDate(sctx, id, j.StartDate))
		cancel()
	}

	if j.complete() {
		j.Phase = PhaseSummary
	} else {
		j.Phase = PhaseCitySelection
		j.CityOptions = travel.SelectNextCities(e.opts.Pools, j.Round, j.Latitude, s.rng)
	}
	s.view.Store(j.snapshot())
	s.assets.Store(&assets{nickname: j.Profile.Nickname, history: slices.Clone(j.History)})
	e.logger.Info("journey restored", "journey", id, "round", j.Round, "phase", j.Phase)
	return s, nil
}
