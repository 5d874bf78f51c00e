package models

import "time"

// Destination is a curated place that can be matched inside a travelshed and used as a
// trip destination.
type Destination struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Zip         string  `json:"zip"`
	WebsiteURL  string  `json:"website_url"`
	ImageURL    string  `json:"image_url"`
	Published   bool    `json:"published"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Location converts the destination into the shape stored as the destination
// preference.
func (d Destination) Location() Location {
	loc := NewPointLocation(d.Address, d.Latitude, d.Longitude)
	if loc.Name == "" {
		loc.Name = d.Name
	}
	loc.Feature.Attributes = Attributes{
		City:   d.City,
		Postal: d.Zip,
		Region: d.State,
		StAddr: d.Address,
	}
	return loc
}

// Article content types.
const (
	ArticleProfile = "prof"
	ArticleTips    = "tips"
)

// Article is a community profile or a tips-and-tricks page.
type Article struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	ContentType string    `json:"content_type"`
	WideImage   string    `json:"wide_image"`
	NarrowImage string    `json:"narrow_image"`
	PublishDate time.Time `json:"publish_date"`
	URL         string    `json:"url,omitempty"`
}
