package reachable

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reachableBody = `{
  "matched": [
    {
      "id": 7,
      "name": "Bartram's Garden",
      "description": "America's oldest botanic garden",
      "address": "5400 Lindbergh Blvd",
      "city": "Philadelphia",
      "state": "PA",
      "zip": "19143",
      "website_url": "http://bartramsgarden.org",
      "point": {"type": "Point", "coordinates": [-75.2123, 39.9322]}
    }
  ],
  "isochrone": {
    "type": "FeatureCollection",
    "features": [
      {
        "type": "Feature",
        "properties": {"time": 1200},
        "geometry": {"type": "Polygon", "coordinates": [[[-75.2, 39.9], [-75.1, 39.9], [-75.1, 40.0], [-75.2, 39.9]]]}
      }
    ]
  }
}`

func TestClient_Fetch(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(reachableBody))
	}))
	defer srv.Close()

	client := New(srv.URL+"/map/reachable", srv.Client(), time.UTC, zerolog.Nop())
	result, err := client.Fetch(context.Background(), Request{
		From:    [2]float64{39.9534, -75.1639},
		When:    time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC),
		Minutes: 20,
		Params:  url.Values{"mode": {"TRANSIT,WALK"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "09:05am", got.Get("time"))
	assert.Equal(t, "2024/05/01", got.Get("date"))
	assert.Equal(t, "1200", got.Get("cutoffSec"))
	assert.Equal(t, "39.9534,-75.1639", got.Get("fromPlace"))
	assert.Equal(t, "TRANSIT,WALK", got.Get("mode"))

	require.Len(t, result.Matched, 1)
	d := result.Matched[0]
	assert.Equal(t, 7, d.ID)
	assert.Equal(t, "Bartram's Garden", d.Name)
	assert.InDelta(t, 39.9322, d.Latitude, 1e-9)
	assert.InDelta(t, -75.2123, d.Longitude, 1e-9)

	require.Len(t, result.Isochrone.Features, 1)
	assert.True(t, result.Isochrone.Features[0].Geometry.IsPolygon())
}

func TestClient_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client(), time.UTC, zerolog.Nop())
	_, err := client.Fetch(context.Background(), Request{When: time.Now(), Minutes: 10})
	assert.Error(t, err)
}

func TestClient_FetchWithoutIsochrone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"matched": [], "isochrone": null}`))
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client(), time.UTC, zerolog.Nop())
	result, err := client.Fetch(context.Background(), Request{When: time.Now(), Minutes: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Isochrone.Features)
}
