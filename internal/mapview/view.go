package mapview

import (
	"sort"
	"sync"

	"tripplanner-api/internal/models"

	geojson "github.com/paulmach/go.geojson"
)

// Layer names carried in the "layer" property of every feature.
const (
	LayerIsochrone   = "isochrone"
	LayerItinerary   = "itinerary"
	LayerDestination = "destination"
	LayerOrigin      = "origin"
	LayerTarget      = "target"
	LayerGeocode     = "geocode"
)

const (
	colorOrigin               = "green"
	colorTarget               = "red"
	colorGeocode              = "darkred"
	colorDestination          = "blue"
	colorHighlightDestination = "lightblue"
	colorItinerary            = "#8c8c8c"
	colorHighlightItinerary   = "#1c96d6"
)

type plotted struct {
	itinerary   models.Itinerary
	highlighted bool
	visible     bool
}

// Fit is a bounds-fitting instruction for the client.
type Fit struct {
	Bounds  models.Bounds `json:"bounds"`
	Options FitOptions    `json:"options"`
}

// View is one session's map. It is safe for concurrent use.
type View struct {
	mu                     sync.Mutex
	itineraries            map[int]*plotted
	origin                 *[2]float64
	target                 *[2]float64
	geocode                *[2]float64
	isochrone              *geojson.FeatureCollection
	destinations           []models.Destination
	highlightedDestination int
	fit                    *Fit
}

// NewView returns an empty map.
func NewView() *View {
	return &View{itineraries: make(map[int]*plotted)}
}

// PlotItinerary adds it to the map, replacing any itinerary with the same ID.
func (v *View) PlotItinerary(it models.Itinerary, highlight bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.itineraries[it.ID] = &plotted{itinerary: it, highlighted: highlight, visible: true}
}

// ClearItineraries removes every plotted itinerary.
func (v *View) ClearItineraries() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.itineraries = make(map[int]*plotted)
}

// Highlight marks id as the current itinerary and un-highlights the others. It
// reports false when id is not plotted.
func (v *View) Highlight(id int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.itineraries[id]; !ok {
		return false
	}
	for key, p := range v.itineraries {
		p.highlighted = key == id
	}
	return true
}

// ShowItineraries toggles the visibility of every plotted itinerary.
func (v *View) ShowItineraries(show bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, p := range v.itineraries {
		p.visible = show
	}
}

// ShowOnly hides every itinerary but id, which is shown highlighted.
func (v *View) ShowOnly(id int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.itineraries[id]; !ok {
		return false
	}
	for key, p := range v.itineraries {
		p.visible = key == id
		p.highlighted = key == id
	}
	return true
}

// Itinerary returns a plotted itinerary.
func (v *View) Itinerary(id int) (models.Itinerary, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	p, ok := v.itineraries[id]
	if !ok {
		return models.Itinerary{}, false
	}
	return p.itinerary, true
}

// Highlighted returns the ID of the highlighted itinerary.
func (v *View) Highlighted() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for id, p := range v.itineraries {
		if p.highlighted {
			return id, true
		}
	}
	return 0, false
}

// Itineraries returns the plotted itineraries ordered by ID.
func (v *View) Itineraries() []models.Itinerary {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]models.Itinerary, 0, len(v.itineraries))
	for _, p := range v.itineraries {
		out = append(out, p.itinerary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SetOriginDestinationMarkers places the trip endpoint markers, given as [lat, lon].
// Both markers are removed when either point is nil.
func (v *View) SetOriginDestinationMarkers(origin, destination *[2]float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if origin == nil || destination == nil {
		v.origin, v.target = nil, nil
		return
	}
	o, d := *origin, *destination
	v.origin, v.target = &o, &d
}

// SetGeocodeMarker places the geocoded-point marker; nil removes it.
func (v *View) SetGeocodeMarker(latLng *[2]float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if latLng == nil {
		v.geocode = nil
		return
	}
	p := *latLng
	v.geocode = &p
}

// SetIsochrone replaces the travelshed outline.
func (v *View) SetIsochrone(fc *geojson.FeatureCollection) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.isochrone = fc
}

// SetDestinations replaces the destination markers.
func (v *View) SetDestinations(destinations []models.Destination) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.destinations = append([]models.Destination(nil), destinations...)
	v.highlightedDestination = 0
}

// HighlightDestination highlights one destination marker; 0 reverts to none.
func (v *View) HighlightDestination(id int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if id == 0 {
		v.highlightedDestination = 0
		return true
	}
	for _, d := range v.destinations {
		if d.ID == id {
			v.highlightedDestination = id
			return true
		}
	}
	return false
}

// Destination returns a drawn destination by ID.
func (v *View) Destination(id int) (models.Destination, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, d := range v.destinations {
		if d.ID == id {
			return d, true
		}
	}
	return models.Destination{}, false
}

// ClearDiscoverPlaces removes the travelshed and the destinations inside it.
func (v *View) ClearDiscoverPlaces() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.isochrone = nil
	v.destinations = nil
	v.highlightedDestination = 0
}

// FitBounds records bounds for the client to fit, with the default options.
func (v *View) FitBounds(bounds models.Bounds) Fit {
	fit := Fit{Bounds: bounds, Options: DefaultFitOptions()}

	v.mu.Lock()
	v.fit = &fit
	v.mu.Unlock()
	return fit
}

// Fit returns the last bounds recorded with FitBounds.
func (v *View) Fit() *Fit {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.fit == nil {
		return nil
	}
	fit := *v.fit
	return &fit
}

// Layers renders the map as a single feature collection. Features are ordered bottom
// to top: isochrone, itineraries, destinations, then markers.
func (v *View) Layers() *geojson.FeatureCollection {
	v.mu.Lock()
	defer v.mu.Unlock()

	fc := geojson.NewFeatureCollection()

	if v.isochrone != nil {
		for _, f := range v.isochrone.Features {
			feature := *f
			feature.Properties = copyProperties(f.Properties)
			feature.SetProperty("layer", LayerIsochrone)
			feature.SetProperty("stroke", "red")
			feature.SetProperty("stroke-opacity", 0.8)
			fc.AddFeature(&feature)
		}
	}

	ids := make([]int, 0, len(v.itineraries))
	for id := range v.itineraries {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		p := v.itineraries[id]
		if !p.visible {
			continue
		}
		fc.AddFeature(itineraryFeature(p))
	}

	for _, d := range v.destinations {
		fc.AddFeature(destinationFeature(d, d.ID == v.highlightedDestination))
	}

	if v.origin != nil && v.target != nil {
		fc.AddFeature(marker(*v.origin, LayerOrigin, colorOrigin))
		fc.AddFeature(marker(*v.target, LayerTarget, colorTarget))
	}
	if v.geocode != nil {
		fc.AddFeature(marker(*v.geocode, LayerGeocode, colorGeocode))
	}
	return fc
}

func itineraryFeature(p *plotted) *geojson.Feature {
	lines := make([][][]float64, 0, len(p.itinerary.Legs))
	for _, leg := range p.itinerary.Legs {
		line := make([][]float64, 0, len(leg.Points))
		for _, pt := range leg.Points {
			line = append(line, []float64{pt[0], pt[1]})
		}
		lines = append(lines, line)
	}

	f := geojson.NewMultiLineStringFeature(lines...)
	f.SetProperty("layer", LayerItinerary)
	f.SetProperty("itinerary", p.itinerary.ID)
	f.SetProperty("highlighted", p.highlighted)
	f.SetProperty("modes", p.itinerary.Modes)
	if p.highlighted {
		f.SetProperty("stroke", colorHighlightItinerary)
	} else {
		f.SetProperty("stroke", colorItinerary)
	}
	return f
}

// destinationFeature carries every destination field except its coordinates, which
// become the point geometry.
func destinationFeature(d models.Destination, highlighted bool) *geojson.Feature {
	f := geojson.NewPointFeature([]float64{d.Longitude, d.Latitude})

	f.Properties = map[string]interface{}{
		"id":          d.ID,
		"name":        d.Name,
		"description": d.Description,
		"address":     d.Address,
		"city":        d.City,
		"state":       d.State,
		"zip":         d.Zip,
		"website_url": d.WebsiteURL,
		"image_url":   d.ImageURL,
		"published":   d.Published,
	}

	f.SetProperty("layer", LayerDestination)
	f.SetProperty("highlighted", highlighted)
	if highlighted {
		f.SetProperty("marker-color", colorHighlightDestination)
	} else {
		f.SetProperty("marker-color", colorDestination)
	}
	return f
}

func marker(latLng [2]float64, layer, color string) *geojson.Feature {
	f := geojson.NewPointFeature([]float64{latLng[1], latLng[0]})
	f.SetProperty("layer", layer)
	f.SetProperty("marker-color", color)
	return f
}

func copyProperties(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in)+3)
	for k, v := range in {
		out[k] = v
	}
	return out
}
