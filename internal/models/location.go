package models

// Location is a named place with geographic coordinates. The same shape is used for
// the trip origin, the trip destination and reverse-geocoded points, so clients can
// hand back whatever the typeahead or the geocoder gave them.
type Location struct {
	Name    string  `json:"name"`
	Extent  *Extent `json:"extent,omitempty"`
	Feature Feature `json:"feature"`
}

// Extent is the bounding box of a geocoded match, in degrees.
type Extent struct {
	XMax float64 `json:"xmax"`
	XMin float64 `json:"xmin"`
	YMax float64 `json:"ymax"`
	YMin float64 `json:"ymin"`
}

type Feature struct {
	Attributes Attributes `json:"attributes"`
	Geometry   Point      `json:"geometry"`
}

type Attributes struct {
	City   string `json:"City"`
	Postal string `json:"Postal"`
	Region string `json:"Region"`
	StAddr string `json:"StAddr"`
}

// Point holds a longitude (X) / latitude (Y) pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LatLng returns the location as [lat, lon], the order the routing backend expects.
func (l Location) LatLng() [2]float64 {
	return [2]float64{l.Feature.Geometry.Y, l.Feature.Geometry.X}
}

// HasGeometry reports whether the location carries usable coordinates.
func (l *Location) HasGeometry() bool {
	return l != nil && (l.Feature.Geometry.X != 0 || l.Feature.Geometry.Y != 0)
}

// NewPointLocation builds a location with only a name and coordinates.
func NewPointLocation(name string, lat, lon float64) Location {
	return Location{
		Name: name,
		Feature: Feature{
			Geometry: Point{X: lon, Y: lat},
		},
	}
}
