package models

import "time"

// Itinerary is one computed trip option as returned by the routing backend, reduced
// to what the client displays and draws.
type Itinerary struct {
	ID        int       `json:"id"`
	Duration  int       `json:"duration"`
	Distance  float64   `json:"distance"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Modes     []string  `json:"modes"`
	Via       string    `json:"via"`
	Transfers int       `json:"transfers"`
	Legs      []Leg     `json:"legs"`
	Bounds    Bounds    `json:"bounds"`
}

// Leg is a single walk, bike or transit segment of an itinerary.
type Leg struct {
	Mode      string       `json:"mode"`
	Route     string       `json:"route,omitempty"`
	From      Place        `json:"from"`
	To        Place        `json:"to"`
	Distance  float64      `json:"distance"`
	Duration  float64      `json:"duration"`
	StartTime time.Time    `json:"startTime"`
	EndTime   time.Time    `json:"endTime"`
	Points    [][2]float64 `json:"points"` // [lon, lat]
	Steps     []Step       `json:"steps,omitempty"`
}

type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Step is one turn-by-turn instruction within a leg.
type Step struct {
	RelativeDirection string  `json:"relativeDirection"`
	StreetName        string  `json:"streetName"`
	Distance          float64 `json:"distance"`
	Lat               float64 `json:"lat"`
	Lon               float64 `json:"lon"`
}

// Bounds is a south-west / north-east box.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// Empty reports whether the bounds have never been extended.
func (b Bounds) Empty() bool {
	return b == Bounds{}
}

// Extend grows the bounds to include the given point.
func (b Bounds) Extend(lat, lon float64) Bounds {
	if b.Empty() {
		return Bounds{South: lat, West: lon, North: lat, East: lon}
	}
	if lat < b.South {
		b.South = lat
	}
	if lat > b.North {
		b.North = lat
	}
	if lon < b.West {
		b.West = lon
	}
	if lon > b.East {
		b.East = lon
	}
	return b
}

// Pad extends every side by ratio times the span of the box, matching what the map
// library does before fitting an itinerary into view.
func (b Bounds) Pad(ratio float64) Bounds {
	dLat := (b.North - b.South) * ratio
	dLon := (b.East - b.West) * ratio
	return Bounds{
		South: b.South - dLat,
		West:  b.West - dLon,
		North: b.North + dLat,
		East:  b.East + dLon,
	}
}
