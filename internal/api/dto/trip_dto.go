package dto

import (
	"time"

	"github.com/spec-kit/trip-booking-service/internal/domain"
)

// TripRequest payload for creating or updating a trip.
type TripRequest struct {
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// TripResponse is the wire view of a trip listing.
type TripResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	Duration    string    `json:"duration"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTripResponse maps a trip to its wire view.
func NewTripResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		ID:          trip.ID,
		Title:       trip.Title,
		Destination: trip.Destination,
		Duration:    trip.Duration,
		Price:       trip.Price,
		Description: trip.Description,
		Image:       trip.Image,
		CreatedAt:   trip.CreatedAt,
	}
}

// NewTripResponses maps a slice of trips.
func NewTripResponses(trips []domain.Trip) []TripResponse {
	items := make([]TripResponse, 0, len(trips))
	for i := range trips {
		items = append(items, NewTripResponse(&trips[i]))
	}
	return items
}
