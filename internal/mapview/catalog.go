// Package mapview keeps the server-side state of each session's map: the layers a
// client draws and the bounds it should fit.
package mapview

// MaxZoom caps both the tile layers and bounds fitting.
const MaxZoom = 18

const (
	esriSatelliteAttribution = `&copy; <a href="http://www.esri.com/">Esri</a> ` +
		`Source: Esri, DigitalGlobe, GeoEye, Earthstar Geographics, CNES/Airbus DS, USDA, USGS, ` +
		`AEX, Getmapping, Aerogrid, IGN, IGP, swisstopo, and the GIS User Community`
	stamenTonerAttribution = `Map tiles by <a href="http://stamen.com">Stamen Design</a>, ` +
		`under <a href="http://creativecommons.org/licenses/by/3.0">CC BY 3.0</a>. ` +
		`Data by <a href="http://openstreetmap.org">OpenStreetMap</a>, ` +
		`under <a href="http://www.openstreetmap.org/copyright">ODbL</a>.`
	stamenAttribution = `Map tiles by <a href="http://stamen.com">Stamen Design</a>, ` +
		`under <a href="http://creativecommons.org/licenses/by/3.0">CC BY 3.0</a>. ` +
		`Data by <a href="http://openstreetmap.org">OpenStreetMap</a>, ` +
		`under <a href="http://creativecommons.org/licenses/by-sa/3.0">CC BY SA</a>.`
)

// TileLayer is a third-party basemap.
type TileLayer struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	Default     bool   `json:"default"`
}

// Overlay is a toggleable layer drawn on top of the basemap.
type Overlay struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// FitOptions control how a client fits the map to a set of bounds.
type FitOptions struct {
	Animate        bool   `json:"animate"`
	MaxZoom        int    `json:"maxZoom"`
	PaddingTopLeft [2]int `json:"paddingTopLeft"`
}

// Catalog is everything a client needs to set up an empty map.
type Catalog struct {
	Center   [2]float64  `json:"center"`
	Zoom     int         `json:"zoom"`
	MaxZoom  int         `json:"maxZoom"`
	Basemaps []TileLayer `json:"basemaps"`
	Overlays []Overlay   `json:"overlays"`
	Fit      FitOptions  `json:"fit"`
}

// DefaultFitOptions keeps fitted features clear of the 400px sidebar.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		Animate:        false,
		MaxZoom:        MaxZoom,
		PaddingTopLeft: [2]int{400, 0},
	}
}

// DefaultCatalog returns the Philadelphia map setup.
func DefaultCatalog() Catalog {
	return Catalog{
		Center:  [2]float64{39.95, -75.1667},
		Zoom:    14,
		MaxZoom: MaxZoom,
		Basemaps: []TileLayer{
			{
				Name:        "Terrain",
				URL:         "https://stamen-tiles-{s}.a.ssl.fastly.net/terrain/{z}/{x}/{y}.png",
				Attribution: stamenAttribution,
				Default:     true,
			},
			{
				Name:        "Satellite",
				URL:         "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
				Attribution: esriSatelliteAttribution,
			},
			{
				Name:        "Streets",
				URL:         "https://stamen-tiles-{s}.a.ssl.fastly.net/toner-lite/{z}/{x}/{y}.png",
				Attribution: stamenTonerAttribution,
			},
		},
		Overlays: []Overlay{
			{Name: "Bike Share Locations"},
			{Name: "Bike Parking"},
			{Name: "Nearby Events", Visible: true},
		},
		Fit: DefaultFitOptions(),
	}
}
