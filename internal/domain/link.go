package domain

import "context"

// Link is a reference URL attached to a trip.
// swagger:model Link
type Link struct {
	ID     string `json:"id"`
	TripID string `json:"trip_id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// LinkRepository defines the interface for link storage.
type LinkRepository interface {
	Create(ctx context.Context, l *Link) error
	ListByTripID(ctx context.Context, tripID string) ([]*Link, error)
}

// LinkService defines link-facing operations.
type LinkService interface {
	CreateLink(ctx context.Context, tripID, title, url string) (string, error)
	ListTripLinks(ctx context.Context, tripID string) ([]*Link, error)
}
