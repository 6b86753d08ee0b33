package dto

import (
	"time"

	"github.com/spec-kit/trip-booking-service/internal/domain"
)

// BookingRequest payload for booking a trip.
type BookingRequest struct {
	TripID     string `json:"trip_id"`
	TravelDate string `json:"travel_date"`
	Travelers  int    `json:"travelers"`
}

// BookingStatusRequest payload for admin status updates.
type BookingStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse is the wire view of a booking.
type BookingResponse struct {
	ID         string               `json:"id"`
	UserID     string               `json:"user_id"`
	UserEmail  string               `json:"user_email"`
	TripID     string               `json:"trip_id"`
	TripTitle  string               `json:"trip_title"`
	TravelDate string               `json:"travel_date"`
	Travelers  int                  `json:"travelers"`
	Status     domain.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

// NewBookingResponse maps a booking to its wire view.
func NewBookingResponse(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         booking.ID,
		UserID:     booking.UserID,
		UserEmail:  booking.UserEmail,
		TripID:     booking.TripID,
		TripTitle:  booking.TripTitle,
		TravelDate: booking.TravelDate,
		Travelers:  booking.Travelers,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
}

// NewBookingResponses maps a slice of bookings.
func NewBookingResponses(bookings []domain.Booking) []BookingResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, NewBookingResponse(&bookings[i]))
	}
	return items
}
