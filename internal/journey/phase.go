package journey

import "fmt"

// Phase is the screen a journey is on.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseIntro
	PhaseCitySelection
	PhaseLandmarkSelection
	PhasePhotoGeneration
	PhaseSummary
)

var phaseNames = map[Phase]string{
	PhaseStart:             "START",
	PhaseIntro:             "INTRO",
	PhaseCitySelection:     "CITY_SELECTION",
	PhaseLandmarkSelection: "LANDMARK_SELECTION",
	PhasePhotoGeneration:   "PHOTO_GENERATION",
	PhaseSummary:           "SUMMARY",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	for k, v := range phaseNames {
		if v == string(b) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", b)
}
