package travel

import "time"

const dateLayout = "2006/01/02"

// TravelDate is the diary date for round, counting DaysBetweenStops days
// per stop from the journey's start date.
func TravelDate(start time.Time, round int) string {
	if round < 1 {
		round = 1
	}
	return start.AddDate(0, 0, (round-1)*DaysBetweenStops).Format(dateLayout)
}
