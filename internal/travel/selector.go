package travel

import (
	"math"
	"math/rand/v2"
	"slices"
)

// latitudeNoise is the upper bound of the uniform noise added to each
// candidate's latitude distance, so nearby cities are favoured without the
// route becoming fully predictable.
const latitudeNoise = 30.0

// SelectNextCities returns up to CitiesPerRound candidates from the pool
// for round, biased towards cities whose latitude is close to prevLat.
// Rounds past the last pool reuse the last pool. Pools of CitiesPerRound
// or fewer are returned as-is, in order, without consuming randomness.
func SelectNextCities(pools [][]City, round int, prevLat float64, rng *rand.Rand) []City {
	if len(pools) == 0 {
		return nil
	}
	idx := min(max(round-1, 0), len(pools)-1)
	pool := pools[idx]

	if len(pool) <= CitiesPerRound {
		return slices.Clone(pool)
	}

	type scored struct {
		city  City
		score float64
	}
	candidates := make([]scored, len(pool))
	for i, c := range pool {
		candidates[i] = scored{
			city:  c,
			score: math.Abs(c.Latitude-prevLat) + rng.Float64()*latitudeNoise,
		}
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		switch {
		case a.score < b.score:
			return -1
		case a.score > b.score:
			return 1
		}
		return 0
	})

	out := make([]City, CitiesPerRound)
	for i := range out {
		out[i] = candidates[i].city
	}
	return out
}

// SampleLandmarks returns n distinct landmarks chosen at random. When the
// city has n or fewer landmarks they are all returned in order.
func SampleLandmarks(landmarks []Landmark, n int, rng *rand.Rand) []Landmark {
	if len(landmarks) <= n {
		return slices.Clone(landmarks)
	}
	idx := rng.Perm(len(landmarks))[:n]
	out := make([]Landmark, n)
	for i, j := range idx {
		out[i] = landmarks[j]
	}
	return out
}

// Selector binds a pool set and a random source.
type Selector struct {
	pools [][]City
	rng   *rand.Rand
}

func NewSelector(pools [][]City, rng *rand.Rand) *Selector {
	return &Selector{pools: pools, rng: rng}
}

func (s *Selector) NextCities(round int, prevLat float64) []City {
	return SelectNextCities(s.pools, round, prevLat, s.rng)
}

func (s *Selector) Landmarks(c City) []Landmark {
	return SampleLandmarks(c.Landmarks, LandmarksPerCity, s.rng)
}
