package itinerary

import (
	"reflect"

	"tripplanner-api/internal/models"
)

// Dedupe drops itineraries that repeat an earlier one field for field.
//
// OpenTripPlanner can answer a transit+walk or transit+bike search with up to three
// identical itineraries when no transit is used
// (https://github.com/opentripplanner/OpenTripPlanner/issues/1894).
// The first itinerary is always kept, order is preserved, and IDs are reassigned to
// match positions in the returned slice.
func Dedupe(list []models.Itinerary) []models.Itinerary {
	if len(list) == 0 {
		return []models.Itinerary{}
	}

	kept := make([]models.Itinerary, 0, len(list))
	kept = append(kept, list[0])

	for _, it := range list[1:] {
		if !containsEqual(kept, it) {
			kept = append(kept, it)
		}
	}

	for i := range kept {
		kept[i].ID = i
	}
	return kept
}

func containsEqual(list []models.Itinerary, it models.Itinerary) bool {
	for _, other := range list {
		if Equal(other, it) {
			return true
		}
	}
	return false
}

// Equal compares two itineraries ignoring their positional ID.
func Equal(a, b models.Itinerary) bool {
	a.ID, b.ID = 0, 0
	return reflect.DeepEqual(a, b)
}
