package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind enumerates the UI events the planner reacts to or reports.
type Kind int

const (
	ItineraryClicked Kind = iota + 1
	ItineraryHover
	DirectionHovered
	DirectionsBack
	DestinationPopupClick
	CurrentLocationClick
	OriginMoved
	DestinationMoved
	TypeaheadSelected
	TypeaheadCleared
	TripPlanned
	TripPlanFailed
	IsochroneFetched
	PlaceSelected
)

var kindNames = map[Kind]string{
	ItineraryClicked:      "itinerary.clicked",
	ItineraryHover:        "itinerary.hover",
	DirectionHovered:      "direction.hovered",
	DirectionsBack:        "directions.back",
	DestinationPopupClick: "destination.popup_click",
	CurrentLocationClick:  "map.current_location",
	OriginMoved:           "origin.moved",
	DestinationMoved:      "destination.moved",
	TypeaheadSelected:     "typeahead.selected",
	TypeaheadCleared:      "typeahead.cleared",
	TripPlanned:           "trip.planned",
	TripPlanFailed:        "trip.plan_failed",
	IsochroneFetched:      "isochrone.fetched",
	PlaceSelected:         "place.selected",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// ParseKind returns the Kind with the given dotted name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, ok := ParseKind(name)
	if !ok {
		return fmt.Errorf("events: unknown kind %q", name)
	}
	*k = parsed
	return nil
}

// Event is one occurrence of a Kind within a session.
type Event struct {
	ID      string         `json:"id"`
	Kind    Kind           `json:"kind"`
	Session string         `json:"session"`
	At      time.Time      `json:"at"`
	Data    map[string]any `json:"data,omitempty"`
}

// New stamps a new event.
func New(kind Kind, session string, data map[string]any) Event {
	return Event{
		ID:      uuid.NewString(),
		Kind:    kind,
		Session: session,
		At:      time.Now().UTC(),
		Data:    data,
	}
}

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
