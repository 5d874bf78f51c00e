package preferences

import (
	"encoding/json"
	"errors"
	"fmt"

	"tripplanner-api/internal/models"
)

// ErrInvalidValue is returned by Decode when a value does not have the preference's type.
var ErrInvalidValue = errors.New("preferences: invalid value")

// newValue returns a pointer to a zero value of the type stored under n, matching the
// fields of Settings.
func newValue(n Name) (any, bool) {
	switch n {
	case Origin, Destination:
		return new(models.Location), true
	case OriginText, DestinationText, Mode, BikeTriangle, Method:
		return new(string), true
	case ArriveBy, Wheelchair:
		return new(bool), true
	case MaxWalk:
		return new(float64), true
	case ExploreTime, PlaceID:
		return new(int), true
	case Waypoints:
		return new([]models.Location), true
	}
	return nil, false
}

// Decode parses raw JSON into the type stored under n. A JSON null decodes to nil.
func Decode(n Name, raw json.RawMessage) (any, error) {
	dst, ok := newValue(n)
	if !ok {
		return nil, fmt.Errorf("%w: unknown preference %q", ErrInvalidValue, n)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrInvalidValue, n)
	}
	if v == nil {
		return nil, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, n, err)
	}
	return dst, nil
}
