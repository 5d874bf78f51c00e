package main

import (
	"strings"
	"testing"

	"tripplanner-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDestinations(t *testing.T) {
	csv := `name,address,city,state,zip,latitude,longitude,published
Bartram's Garden,5400 Lindbergh Blvd,Philadelphia,PA,19143,39.9325,-75.2125,true
"Valley Green Inn, Wissahickon",Valley Green Rd,Philadelphia,PA,19128,40.0545,-75.2185,
Draft place,,,,,39.95,-75.16,false
`

	destinations, err := parseDestinations(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, destinations, 3)

	assert.Equal(t, models.Destination{
		Name:      "Bartram's Garden",
		Address:   "5400 Lindbergh Blvd",
		City:      "Philadelphia",
		State:     "PA",
		Zip:       "19143",
		Published: true,
		Latitude:  39.9325,
		Longitude: -75.2125,
	}, destinations[0])
	assert.Equal(t, "Valley Green Inn, Wissahickon", destinations[1].Name)
	assert.True(t, destinations[1].Published)
	assert.False(t, destinations[2].Published)
}

func TestParseDestinationsErrors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr string
	}{
		{
			name:    "missing column",
			csv:     "name,latitude\nPark,39.9\n",
			wantErr: `missing required column "longitude"`,
		},
		{
			name:    "bad latitude",
			csv:     "name,latitude,longitude\nPark,north,-75.1\n",
			wantErr: "line 2: invalid latitude",
		},
		{
			name:    "longitude out of range",
			csv:     "name,latitude,longitude\nPark,39.9,-275.1\n",
			wantErr: "line 2: invalid longitude",
		},
		{
			name:    "empty name",
			csv:     "name,latitude,longitude\n,39.9,-75.1\n",
			wantErr: "line 2: name is empty",
		},
		{
			name:    "empty file",
			csv:     "",
			wantErr: "failed to read header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDestinations(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
