package preferences

import "tripplanner-api/internal/models"

// CityHall is the fallback origin when the user has not chosen one and geolocation is
// unavailable.
var CityHall = models.Location{
	Name: "City Hall, Philadelphia, Pennsylvania, USA",
	Extent: &models.Extent{
		XMax: -75.158978,
		XMin: -75.168978,
		YMax: 39.958449,
		YMin: 39.948449,
	},
	Feature: models.Feature{
		Attributes: models.Attributes{
			City:   "Philadelphia",
			Region: "Pennsylvania",
			StAddr: "1450 John F Kennedy Blvd",
		},
		Geometry: models.Point{
			X: -75.16397666699964,
			Y: 39.95344911900048,
		},
	},
}

// Defaults maps preference names to the value used when nothing usable is stored.
// A nil entry means the preference has no default.
type Defaults map[Name]any

// DefaultValues returns the static defaults, using origin as the default origin.
func DefaultValues(origin models.Location) Defaults {
	return Defaults{
		ArriveBy:        false, // depart at the set time
		BikeTriangle:    "neutral",
		ExploreTime:     20,
		MaxWalk:         2,
		Method:          MethodExplore,
		Mode:            "TRANSIT,WALK",
		Origin:          origin,
		OriginText:      origin.Name,
		Destination:     nil,
		DestinationText: "",
		Waypoints:       []models.Location{},
		Wheelchair:      false,
	}
}
