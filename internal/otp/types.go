package otp

// Wire types for the OpenTripPlanner plan endpoint. Only the fields the planner
// displays are decoded.

type planResponse struct {
	Plan  *plan      `json:"plan"`
	Error *PlanError `json:"error"`
}

type plan struct {
	Date        int64       `json:"date"`
	From        place       `json:"from"`
	To          place       `json:"to"`
	Itineraries []itinerary `json:"itineraries"`
}

type itinerary struct {
	Duration     int     `json:"duration"`
	StartTime    int64   `json:"startTime"`
	EndTime      int64   `json:"endTime"`
	WalkTime     int     `json:"walkTime"`
	TransitTime  int     `json:"transitTime"`
	WaitingTime  int     `json:"waitingTime"`
	WalkDistance float64 `json:"walkDistance"`
	Transfers    int     `json:"transfers"`
	Legs         []leg   `json:"legs"`
}

type leg struct {
	Mode           string      `json:"mode"`
	Route          string      `json:"route"`
	RouteShortName string      `json:"routeShortName"`
	RouteLongName  string      `json:"routeLongName"`
	StartTime      int64       `json:"startTime"`
	EndTime        int64       `json:"endTime"`
	Distance       float64     `json:"distance"`
	Duration       float64     `json:"duration"`
	TransitLeg     bool        `json:"transitLeg"`
	From           place       `json:"from"`
	To             place       `json:"to"`
	LegGeometry    legGeometry `json:"legGeometry"`
	Steps          []step      `json:"steps"`
}

type place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type legGeometry struct {
	Points string `json:"points"`
	Length int    `json:"length"`
}

type step struct {
	Distance          float64 `json:"distance"`
	RelativeDirection string  `json:"relativeDirection"`
	StreetName        string  `json:"streetName"`
	Lat               float64 `json:"lat"`
	Lon               float64 `json:"lon"`
}
