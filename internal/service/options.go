package service

import (
	"fmt"
	"strings"

	"tripplanner-api/internal/itinerary"
	"tripplanner-api/internal/otp"
)

// maxWalkBikeMiles lets bike+transit trips ride much further than anyone would walk.
const maxWalkBikeMiles = 300

// BikeTriangles are the named bike routing presets.
var BikeTriangles = map[string]otp.Triangle{
	"neutral": {Safety: 0.34, Slope: 0.33, Time: 0.33},
	"flatter": {Safety: 0.17, Slope: 0.66, Time: 0.17},
	"faster":  {Safety: 0.17, Slope: 0.17, Time: 0.66},
	"safer":   {Safety: 0.66, Slope: 0.17, Time: 0.17},
}

// TripOptions is the user's choice of how to travel.
type TripOptions struct {
	Mode         string
	ArriveBy     bool
	BikeTriangle string
	MaxWalk      *float64 // miles
	Wheelchair   bool
}

// IsBike reports whether the mode includes cycling.
func (o TripOptions) IsBike() bool {
	return strings.Contains(o.Mode, "BICYCLE")
}

// BuildPlanOptions maps trip options to routing parameters. Bike trips get the
// triangle weighting and a long walk cap; other trips get the user's walk cap and the
// wheelchair flag.
func BuildPlanOptions(in TripOptions) (otp.Options, error) {
	if in.Mode == "" {
		return otp.Options{}, fmt.Errorf("%w: mode is required", ErrInvalidInput)
	}

	opts := otp.Options{
		Mode:     in.Mode,
		ArriveBy: in.ArriveBy,
	}

	if in.IsBike() {
		triangle, ok := BikeTriangles[in.BikeTriangle]
		if !ok {
			return otp.Options{}, fmt.Errorf("%w: unknown bike triangle %q", ErrInvalidInput, in.BikeTriangle)
		}
		maxWalk := maxWalkBikeMiles * itinerary.MetersPerMile
		opts.Optimize = "TRIANGLE"
		opts.Triangle = &triangle
		opts.MaxWalkDistance = &maxWalk
		return opts, nil
	}

	if in.MaxWalk != nil {
		if *in.MaxWalk < 0 {
			return otp.Options{}, fmt.Errorf("%w: maxWalk must not be negative", ErrInvalidInput)
		}
		maxWalk := *in.MaxWalk * itinerary.MetersPerMile
		opts.MaxWalkDistance = &maxWalk
	}
	wheelchair := in.Wheelchair
	opts.Wheelchair = &wheelchair
	return opts, nil
}
