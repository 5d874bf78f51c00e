package itinerary

import "strings"

const (
	// DefaultErrorMessage is shown when the backend gives no reason.
	DefaultErrorMessage = "Could not plan trip."

	// OutOfBoundsMessage replaces the backend's message for trips outside the graph.
	OutOfBoundsMessage = "Sorry, that trip could not be planned. Both the origin and destination must be within the Philadelphia region."

	// NoAddressMessage is shown when a dragged marker cannot be reverse geocoded.
	NoAddressMessage = "Could not find street address for location."

	outOfBoundsPhrase = "outside the map data boundary"
)

// ErrorMessage turns a routing backend message into the text shown in place of the
// itinerary list.
func ErrorMessage(backendMsg string) string {
	switch {
	case strings.TrimSpace(backendMsg) == "":
		return DefaultErrorMessage
	case strings.Contains(backendMsg, outOfBoundsPhrase):
		return OutOfBoundsMessage
	default:
		return backendMsg
	}
}
