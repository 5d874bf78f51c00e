package preferences

import (
	"errors"

	"tripplanner-api/internal/models"
)

// Settings is a typed snapshot of a session's preferences. It is handed down the call
// chain instead of letting every component reach into the store.
type Settings struct {
	Origin          *models.Location  `json:"origin"`
	OriginText      string            `json:"originText"`
	Destination     *models.Location  `json:"destination"`
	DestinationText string            `json:"destinationText"`
	Mode            string            `json:"mode"`
	ArriveBy        bool              `json:"arriveBy"`
	BikeTriangle    string            `json:"bikeTriangle"`
	MaxWalk         float64           `json:"maxWalk"`
	Wheelchair      bool              `json:"wheelchair"`
	Method          string            `json:"method"`
	ExploreTime     int               `json:"exploreTime"`
	PlaceID         int               `json:"placeId"`
	Waypoints       []models.Location `json:"waypoints"`
}

// Settings reads every preference, applying defaults the same way Get does.
func (s *Store) Settings() (Settings, error) {
	var out Settings

	var origin, destination models.Location
	if err := s.Get(Origin, &origin); err == nil {
		out.Origin = &origin
	} else if !errors.Is(err, ErrNotSet) {
		return out, err
	}
	if err := s.Get(Destination, &destination); err == nil {
		out.Destination = &destination
	} else if !errors.Is(err, ErrNotSet) {
		return out, err
	}

	fields := []struct {
		name Name
		dst  any
	}{
		{OriginText, &out.OriginText},
		{DestinationText, &out.DestinationText},
		{Mode, &out.Mode},
		{ArriveBy, &out.ArriveBy},
		{BikeTriangle, &out.BikeTriangle},
		{MaxWalk, &out.MaxWalk},
		{Wheelchair, &out.Wheelchair},
		{Method, &out.Method},
		{ExploreTime, &out.ExploreTime},
		{PlaceID, &out.PlaceID},
		{Waypoints, &out.Waypoints},
	}
	for _, f := range fields {
		if err := s.Get(f.name, f.dst); err != nil && !errors.Is(err, ErrNotSet) {
			return out, err
		}
	}
	return out, nil
}

// HasDirections reports whether both trip endpoints carry coordinates.
func (s Settings) HasDirections() bool {
	return s.Origin.HasGeometry() && s.Destination.HasGeometry()
}
