package mapview

import (
	"testing"
	"time"

	"tripplanner-api/internal/models"

	"github.com/bluele/gcache"
	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItinerary(id int) models.Itinerary {
	return models.Itinerary{
		ID:    id,
		Modes: []string{"WALK"},
		Legs: []models.Leg{
			{Mode: "WALK", Points: [][2]float64{{-75.16, 39.95}, {-75.17, 39.96}}},
		},
		Bounds: models.Bounds{South: 39.95, West: -75.17, North: 39.96, East: -75.16},
	}
}

func featuresIn(fc *geojson.FeatureCollection, layer string) []*geojson.Feature {
	var out []*geojson.Feature
	for _, f := range fc.Features {
		if f.Properties["layer"] == layer {
			out = append(out, f)
		}
	}
	return out
}

func TestView_Highlight(t *testing.T) {
	v := NewView()
	v.PlotItinerary(testItinerary(0), true)
	v.PlotItinerary(testItinerary(1), false)

	id, ok := v.Highlighted()
	require.True(t, ok)
	assert.Equal(t, 0, id)

	assert.True(t, v.Highlight(1))
	id, _ = v.Highlighted()
	assert.Equal(t, 1, id)
	assert.False(t, v.Highlight(5))

	layers := featuresIn(v.Layers(), LayerItinerary)
	require.Len(t, layers, 2)
	assert.Equal(t, false, layers[0].Properties["highlighted"])
	assert.Equal(t, true, layers[1].Properties["highlighted"])
	assert.Equal(t, colorHighlightItinerary, layers[1].Properties["stroke"])
}

func TestView_ShowOnlyAndShowAll(t *testing.T) {
	v := NewView()
	for i := 0; i < 3; i++ {
		v.PlotItinerary(testItinerary(i), i == 0)
	}

	require.True(t, v.ShowOnly(2))
	layers := featuresIn(v.Layers(), LayerItinerary)
	require.Len(t, layers, 1)
	assert.Equal(t, 2, layers[0].Properties["itinerary"])

	v.ShowItineraries(true)
	assert.Len(t, featuresIn(v.Layers(), LayerItinerary), 3)

	v.ClearItineraries()
	assert.Empty(t, v.Itineraries())
	assert.Empty(t, featuresIn(v.Layers(), LayerItinerary))
}

func TestView_OriginDestinationMarkers(t *testing.T) {
	origin := [2]float64{39.95, -75.16}
	destination := [2]float64{39.97, -75.13}

	tests := []struct {
		name        string
		origin      *[2]float64
		destination *[2]float64
		wantMarkers int
	}{
		{name: "both set", origin: &origin, destination: &destination, wantMarkers: 2},
		{name: "origin missing", origin: nil, destination: &destination, wantMarkers: 0},
		{name: "destination missing", origin: &origin, destination: nil, wantMarkers: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView()
			v.SetOriginDestinationMarkers(&origin, &destination)
			v.SetOriginDestinationMarkers(tt.origin, tt.destination)

			fc := v.Layers()
			got := len(featuresIn(fc, LayerOrigin)) + len(featuresIn(fc, LayerTarget))
			assert.Equal(t, tt.wantMarkers, got)
		})
	}

	v := NewView()
	v.SetOriginDestinationMarkers(&origin, &destination)
	markers := featuresIn(v.Layers(), LayerOrigin)
	require.Len(t, markers, 1)
	// GeoJSON points are lon, lat
	assert.Equal(t, []float64{-75.16, 39.95}, markers[0].Geometry.Point)
	assert.Equal(t, colorOrigin, markers[0].Properties["marker-color"])
}

func TestView_GeocodeMarker(t *testing.T) {
	v := NewView()
	v.SetGeocodeMarker(&[2]float64{39.9, -75.2})
	assert.Len(t, featuresIn(v.Layers(), LayerGeocode), 1)

	v.SetGeocodeMarker(nil)
	assert.Empty(t, featuresIn(v.Layers(), LayerGeocode))
}

func TestView_DiscoverPlaces(t *testing.T) {
	v := NewView()

	iso := geojson.NewFeatureCollection()
	iso.AddFeature(geojson.NewPolygonFeature([][][]float64{{{-75.2, 39.9}, {-75.1, 39.9}, {-75.1, 40.0}, {-75.2, 39.9}}}))
	v.SetIsochrone(iso)
	v.SetDestinations([]models.Destination{
		{ID: 3, Name: "Bartram's Garden", WebsiteURL: "http://bartramsgarden.org", Latitude: 39.93, Longitude: -75.21},
		{ID: 7, Name: "Fairmount Park", Latitude: 39.98, Longitude: -75.2},
	})

	fc := v.Layers()
	require.Len(t, featuresIn(fc, LayerIsochrone), 1)
	// the stored isochrone is not mutated
	assert.Nil(t, iso.Features[0].Properties["layer"])

	dests := featuresIn(fc, LayerDestination)
	require.Len(t, dests, 2)
	assert.Equal(t, "Bartram's Garden", dests[0].Properties["name"])
	assert.Equal(t, "http://bartramsgarden.org", dests[0].Properties["website_url"])
	assert.Equal(t, 3, dests[0].Properties["id"])
	assert.NotContains(t, dests[0].Properties, "latitude")
	assert.NotContains(t, dests[0].Properties, "longitude")
	assert.Equal(t, []float64{-75.21, 39.93}, dests[0].Geometry.Point)

	require.True(t, v.HighlightDestination(7))
	dests = featuresIn(v.Layers(), LayerDestination)
	assert.Equal(t, colorDestination, dests[0].Properties["marker-color"])
	assert.Equal(t, colorHighlightDestination, dests[1].Properties["marker-color"])
	assert.False(t, v.HighlightDestination(99))

	d, ok := v.Destination(3)
	require.True(t, ok)
	assert.Equal(t, "Bartram's Garden", d.Name)

	v.ClearDiscoverPlaces()
	fc = v.Layers()
	assert.Empty(t, featuresIn(fc, LayerIsochrone))
	assert.Empty(t, featuresIn(fc, LayerDestination))
}

func TestView_FitBounds(t *testing.T) {
	v := NewView()
	assert.Nil(t, v.Fit())

	b := models.Bounds{South: 39.9, West: -75.2, North: 40.0, East: -75.1}
	fit := v.FitBounds(b)
	assert.Equal(t, b, fit.Bounds)
	assert.False(t, fit.Options.Animate)
	assert.Equal(t, MaxZoom, fit.Options.MaxZoom)
	assert.Equal(t, [2]int{400, 0}, fit.Options.PaddingTopLeft)
	assert.Equal(t, &fit, v.Fit())
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, [2]float64{39.95, -75.1667}, c.Center)
	assert.Equal(t, 14, c.Zoom)
	require.Len(t, c.Basemaps, 3)
	assert.Equal(t, "Terrain", c.Basemaps[0].Name)
	assert.True(t, c.Basemaps[0].Default)
	assert.Equal(t, "Bike Share Locations", c.Overlays[0].Name)
}

func TestViews(t *testing.T) {
	views := NewViews(10, time.Hour)

	a := views.Get("a")
	assert.Same(t, a, views.Get("a"))
	assert.NotSame(t, a, views.Get("b"))

	views.Forget("a")
	assert.NotSame(t, a, views.Get("a"))
}

func TestViews_IdleExpiration(t *testing.T) {
	clock := gcache.NewFakeClock()
	views := newViews(10, time.Hour, clock)

	a := views.Get("a")
	clock.Advance(50 * time.Minute)
	assert.Same(t, a, views.Get("a"))

	// used 50 minutes ago, so still alive at 100 minutes after creation
	clock.Advance(50 * time.Minute)
	assert.Same(t, a, views.Get("a"))

	clock.Advance(61 * time.Minute)
	assert.NotSame(t, a, views.Get("a"))
}
