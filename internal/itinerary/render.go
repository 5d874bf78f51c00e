package itinerary

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"tripplanner-api/internal/models"
)

var modeIcons = map[string]string{
	"WALK":    "icon-walk",
	"BICYCLE": "icon-bike",
	"BUS":     "icon-bus",
	"SUBWAY":  "icon-subway",
	"RAIL":    "icon-train",
	"TRAM":    "icon-trolley",
	"CAR":     "icon-car",
}

var listTemplate = template.Must(template.New("itineraries").Funcs(template.FuncMap{
	"modeIcon": modeIcon,
}).Parse(`{{range .}}<div class="block block-itinerary" data-itinerary="{{.ID}}">` +
	`<div class="trip-numbers">` +
	`<div class="trip-duration"> {{.FormattedDuration}}</div>` +
	`<div class="trip-distance"> {{.DistanceMiles}} mi</div>` +
	`</div>` +
	`<div class="trip-details">` +
	`{{range .Modes}}<div class="direction-icon"> {{modeIcon .}}</div>{{end}}` +
	`<span class="short-description"> via {{.Via}}</span>` +
	`<a class="itinerary" data-itinerary="{{.ID}}"> View Directions</a>` +
	`</div>` +
	`</div>{{end}}`))

var errorTemplate = template.Must(template.New("error").Parse(
	`<div class="block block-itinerary"><span class="short-description"><b>{{.}}</b></span></div>`))

// RenderList renders the itinerary list as an HTML fragment.
func RenderList(list []models.Itinerary) (string, error) {
	var buf bytes.Buffer
	if err := listTemplate.Execute(&buf, Summaries(list)); err != nil {
		return "", fmt.Errorf("itinerary: failed to render list: %w", err)
	}
	return buf.String(), nil
}

// RenderError renders msg in place of the itinerary list.
func RenderError(msg string) (string, error) {
	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("itinerary: failed to render error: %w", err)
	}
	return buf.String(), nil
}

func modeIcon(mode string) template.HTML {
	class, ok := modeIcons[strings.ToUpper(mode)]
	if !ok {
		class = "icon-" + template.HTMLEscapeString(strings.ToLower(mode))
	}
	return template.HTML(`<i class="` + class + `"></i>`)
}
