package domain

import "time"

// BookingStatus tracks the moderation state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking records a user's reservation for a trip. Trip title and user email
// are denormalized at creation time so listings need no joins.
type Booking struct {
	ID         string        `bson:"id"`
	UserID     string        `bson:"user_id"`
	UserEmail  string        `bson:"user_email"`
	TripID     string        `bson:"trip_id"`
	TripTitle  string        `bson:"trip_title"`
	TravelDate string        `bson:"travel_date"`
	Travelers  int           `bson:"travelers"`
	Status     BookingStatus `bson:"status"`
	CreatedAt  time.Time     `bson:"created_at"`
}
