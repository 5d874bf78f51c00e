package itinerary

import (
	"fmt"
	"math"

	"tripplanner-api/internal/models"
)

// MetersPerMile converts routing distances for display.
const MetersPerMile = 1609.34

// Summary is one row of the itinerary list.
type Summary struct {
	ID                int      `json:"id"`
	FormattedDuration string   `json:"formattedDuration"`
	DistanceMiles     float64  `json:"distanceMiles"`
	Modes             []string `json:"modes"`
	Via               string   `json:"via"`
	StartTime         string   `json:"startTime"`
	EndTime           string   `json:"endTime"`
}

// Summaries builds list rows for the given itineraries.
func Summaries(list []models.Itinerary) []Summary {
	out := make([]Summary, 0, len(list))
	for _, it := range list {
		out = append(out, Summary{
			ID:                it.ID,
			FormattedDuration: FormatDuration(it.Duration),
			DistanceMiles:     Miles(it.Distance),
			Modes:             it.Modes,
			Via:               it.Via,
			StartTime:         it.StartTime.Format("3:04 pm"),
			EndTime:           it.EndTime.Format("3:04 pm"),
		})
	}
	return out
}

// FormatDuration renders seconds as "45 min" or "1 hr 5 min".
func FormatDuration(seconds int) string {
	minutes := int(math.Round(float64(seconds) / 60))
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours, minutes := minutes/60, minutes%60
	if minutes == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, minutes)
}

// Miles converts meters to miles rounded to two decimals.
func Miles(meters float64) float64 {
	return math.Round(meters/MetersPerMile*100) / 100
}

// Select returns the itinerary with the given id.
func Select(list []models.Itinerary, id int) (models.Itinerary, bool) {
	for _, it := range list {
		if it.ID == id {
			return it, true
		}
	}
	return models.Itinerary{}, false
}
