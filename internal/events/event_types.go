package events

import (
	"time"

	"github.com/spec-kit/trip-booking-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventBookingCreated       EventType = "booking_created"
	EventBookingStatusChanged EventType = "booking_status_changed"
	EventContactSubmitted     EventType = "contact_submitted"
	EventContactReplied       EventType = "contact_replied"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID string `json:"booking_id"`
	TripID    string `json:"trip_id"`
	TripTitle string `json:"trip_title"`
	UserEmail string `json:"user_email"`
	Travelers int    `json:"travelers"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	BookingID string               `json:"booking_id"`
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}

// ContactSubmittedPayload payload.
type ContactSubmittedPayload struct {
	ContactID string `json:"contact_id"`
	Email     string `json:"email"`
}

// ContactRepliedPayload payload.
type ContactRepliedPayload struct {
	ContactID string `json:"contact_id"`
}
