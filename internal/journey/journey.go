// Package journey runs the world tour game loop: it owns each journey's
// state machine, drives generation for every stop and keeps the saved
// copy in step.
package journey

import (
	"slices"
	"time"

	"github.com/playperu/worldtour/internal/persist"
	"github.com/playperu/worldtour/internal/travel"
)

// Journey is the mutable state of one player's tour. It is only touched
// while holding the owning session's lock.
type Journey struct {
	ID               string
	Phase            Phase
	Round            int
	Latitude         float64
	LocationName     string
	History          []travel.HistoryEntry
	CityOptions      []travel.City
	SelectedCity     *travel.City
	LandmarkOptions  []travel.Landmark
	SelectedLandmark *travel.Landmark
	PendingCityPhoto *travel.Photo
	Profile          persist.Profile
	IntroEndsAt      time.Time
	StartDate        time.Time
	Generating       bool
}

func newJourney(id string) *Journey {
	j := &Journey{ID: id}
	j.clear()
	return j
}

// clear puts the journey back at the origin with nothing collected.
func (j *Journey) clear() {
	*j = Journey{
		ID:           j.ID,
		Phase:        PhaseStart,
		Round:        1,
		Latitude:     travel.OriginLatitude,
		LocationName: travel.OriginName,
		History:      []travel.HistoryEntry{},
	}
}

func (j *Journey) clearSelection() {
	j.CityOptions = nil
	j.SelectedCity = nil
	j.LandmarkOptions = nil
	j.SelectedLandmark = nil
	j.PendingCityPhoto = nil
}

func (j *Journey) complete() bool {
	return j.Round > travel.TotalRounds
}

// View is a read-only snapshot of a journey, safe to share between
// goroutines. Photos are referenced, never embedded.
type View struct {
	ID               string                `json:"id"`
	Phase            Phase                 `json:"phase"`
	Round            int                   `json:"round"`
	TotalRounds      int                   `json:"totalRounds"`
	Latitude         float64               `json:"latitude"`
	LocationName     string                `json:"locationName"`
	Nickname         string                `json:"nickname,omitempty"`
	History          []travel.HistoryEntry `json:"history"`
	CityOptions      []travel.City         `json:"cityOptions,omitempty"`
	SelectedCity     *travel.City          `json:"selectedCity,omitempty"`
	LandmarkOptions  []travel.Landmark     `json:"landmarkOptions,omitempty"`
	SelectedLandmark *travel.Landmark      `json:"selectedLandmark,omitempty"`
	CityPhotoRef     string                `json:"cityPhotoRef,omitempty"`
	IntroEndsAt      *time.Time            `json:"introEndsAt,omitempty"`
	StartDate        *time.Time            `json:"startDate,omitempty"`
	Generating       bool                  `json:"generating"`
}

func (j *Journey) snapshot() *View {
	v := &View{
		ID:              j.ID,
		Phase:           j.Phase,
		Round:           j.Round,
		TotalRounds:     travel.TotalRounds,
		Latitude:        j.Latitude,
		LocationName:    j.LocationName,
		Nickname:        j.Profile.Nickname,
		History:         make([]travel.HistoryEntry, len(j.History)),
		CityOptions:     slices.Clone(j.CityOptions),
		LandmarkOptions: slices.Clone(j.LandmarkOptions),
		Generating:      j.Generating,
	}
	for i, e := range j.History {
		v.History[i] = e.WithoutPhotos()
	}
	if j.SelectedCity != nil {
		c := *j.SelectedCity
		v.SelectedCity = &c
	}
	if j.SelectedLandmark != nil {
		l := *j.SelectedLandmark
		v.SelectedLandmark = &l
	}
	if j.PendingCityPhoto != nil {
		v.CityPhotoRef = j.PendingCityPhoto.Ref()
	}
	if j.Phase == PhaseIntro {
		t := j.IntroEndsAt
		v.IntroEndsAt = &t
	}
	if !j.StartDate.IsZero() {
		t := j.StartDate
		v.StartDate = &t
	}
	return v
}
