// Package travel defines the reference data and pure decision logic of a
// world tour: destination pools, route selection, landmark sampling and
// travel dates. Nothing here touches storage or the network.
package travel

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const (
	TotalRounds      = 6
	CitiesPerRound   = 3
	LandmarksPerCity = 3
	DaysBetweenStops = 14

	OriginLatitude = 25.0
	OriginName     = "Taipei 101"
)

// Vibe is a coarse tag used to pick an outfit hint for generation prompts.
type Vibe string

const (
	VibeUrban    Vibe = "urban"
	VibeBeach    Vibe = "beach"
	VibeHistoric Vibe = "historic"
	VibeNature   Vibe = "nature"
	VibeCold     Vibe = "cold"
	VibeDesert   Vibe = "desert"
)

type Landmark struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BestAngle   string `json:"bestAngle"`
}

type City struct {
	Name        string     `json:"name"`
	Country     string     `json:"country"`
	Latitude    float64    `json:"latitude"`
	Vibe        Vibe       `json:"vibe"`
	Description string     `json:"description"`
	Landmarks   []Landmark `json:"landmarks"`
}

// Photo is an image payload as produced by the generator or uploaded by
// the player.
type Photo struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// Ref returns a stable content reference for the photo. Empty photos have
// an empty ref.
func (p Photo) Ref() string {
	if len(p.Data) == 0 {
		return ""
	}
	sum := blake2b.Sum256(p.Data)
	return hex.EncodeToString(sum[:16])
}

// HistoryEntry is the record of one completed round. The photo payloads
// may be nil when the entry was restored from a reduced save; the refs are
// always kept.
type HistoryEntry struct {
	Round            int      `json:"round"`
	City             City     `json:"city"`
	Landmark         Landmark `json:"landmark"`
	CityPhotoRef     string   `json:"cityPhotoRef"`
	LandmarkPhotoRef string   `json:"landmarkPhotoRef"`
	CityPhoto        *Photo   `json:"cityPhoto,omitempty"`
	LandmarkPhoto    *Photo   `json:"landmarkPhoto,omitempty"`
	Diary            string   `json:"diary"`
	Date             string   `json:"date"`
}

// WithoutPhotos returns a copy of the entry with the photo payloads
// dropped.
func (e HistoryEntry) WithoutPhotos() HistoryEntry {
	e.CityPhoto = nil
	e.LandmarkPhoto = nil
	return e
}
