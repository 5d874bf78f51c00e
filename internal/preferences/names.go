package preferences

// Name identifies a stored preference.
type Name string

const (
	Origin          Name = "origin"
	OriginText      Name = "originText"
	Destination     Name = "destination"
	DestinationText Name = "destinationText"
	Mode            Name = "mode"
	ArriveBy        Name = "arriveBy"
	BikeTriangle    Name = "bikeTriangle"
	MaxWalk         Name = "maxWalk"
	Wheelchair      Name = "wheelchair"
	Method          Name = "method"
	ExploreTime     Name = "exploreTime"
	PlaceID         Name = "placeId"
	Waypoints       Name = "waypoints"
)

var names = []Name{
	Origin, OriginText, Destination, DestinationText, Mode, ArriveBy, BikeTriangle,
	MaxWalk, Wheelchair, Method, ExploreTime, PlaceID, Waypoints,
}

// Names lists every preference the store knows about.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

// Valid reports whether n is a known preference name.
func (n Name) Valid() bool {
	for _, known := range names {
		if n == known {
			return true
		}
	}
	return false
}

// TextName returns the companion "...Text" preference for a location key.
func (n Name) TextName() Name {
	return n + "Text"
}

// Method values.
const (
	MethodExplore    = "explore"
	MethodDirections = "directions"
)
