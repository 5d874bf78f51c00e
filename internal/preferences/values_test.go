package preferences

import (
	"encoding/json"
	"testing"

	"tripplanner-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	zoo := models.NewPointLocation("Philadelphia Zoo", 39.9714, -75.1955)
	zooJSON, err := json.Marshal(zoo)
	require.NoError(t, err)

	tests := []struct {
		name    string
		pref    Name
		raw     string
		want    any
		wantErr bool
	}{
		{name: "float", pref: MaxWalk, raw: `2`, want: 2.0},
		{name: "int", pref: ExploreTime, raw: `30`, want: 30},
		{name: "bool", pref: ArriveBy, raw: `true`, want: true},
		{name: "string", pref: Mode, raw: `"BICYCLE,TRANSIT"`, want: "BICYCLE,TRANSIT"},
		{name: "location", pref: Destination, raw: string(zooJSON), want: zoo},
		{name: "null", pref: MaxWalk, raw: `null`, want: nil},
		{name: "string for float", pref: MaxWalk, raw: `"2"`, wantErr: true},
		{name: "fraction for int", pref: ExploreTime, raw: `20.5`, wantErr: true},
		{name: "number for string", pref: Mode, raw: `5`, wantErr: true},
		{name: "object for list", pref: Waypoints, raw: `{}`, wantErr: true},
		{name: "unknown name", pref: Name("colour"), raw: `"red"`, wantErr: true},
		{name: "malformed", pref: Mode, raw: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.pref, json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			// Decode returns a pointer to the typed value
			switch v := got.(type) {
			case *float64:
				assert.Equal(t, tt.want, *v)
			case *int:
				assert.Equal(t, tt.want, *v)
			case *bool:
				assert.Equal(t, tt.want, *v)
			case *string:
				assert.Equal(t, tt.want, *v)
			case *models.Location:
				assert.Equal(t, tt.want, *v)
			default:
				t.Fatalf("unexpected type %T", got)
			}
		})
	}
}

func TestDecode_CoversEveryName(t *testing.T) {
	for _, n := range Names() {
		_, ok := newValue(n)
		assert.True(t, ok, n)
	}
}
