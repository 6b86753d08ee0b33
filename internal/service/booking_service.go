package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/trip-booking-service/internal/domain"
	"github.com/spec-kit/trip-booking-service/internal/events"
	"github.com/spec-kit/trip-booking-service/internal/repository"
	apperrors "github.com/spec-kit/trip-booking-service/pkg/util"
)

// BookingInput carries the fields a user supplies when booking a trip.
type BookingInput struct {
	TripID     string
	TravelDate string
	Travelers  int
}

// BookingService manages bookings made by users and moderated by admins.
type BookingService struct {
	bookings   repository.BookingRepository
	trips      repository.TripRepository
	dispatcher events.Dispatcher
}

// NewBookingService builds the service.
func NewBookingService(bookings repository.BookingRepository, trips repository.TripRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{bookings: bookings, trips: trips, dispatcher: dispatcher}
}

// Create books a trip for the given user. The trip title and user email are
// copied onto the booking so later listings need no lookups.
func (s *BookingService) Create(ctx context.Context, user *domain.User, input BookingInput) (*domain.Booking, error) {
	if strings.TrimSpace(input.TravelDate) == "" {
		return nil, apperrors.NewValidationError("travel_date required", nil)
	}
	if input.Travelers < 1 {
		return nil, apperrors.NewValidationError("travelers must be at least 1", nil)
	}

	trip, err := s.trips.FindByID(ctx, input.TripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("trip", nil)
		}
		return nil, err
	}

	booking := &domain.Booking{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		UserEmail:  user.Email,
		TripID:     trip.ID,
		TripTitle:  trip.Title,
		TravelDate: input.TravelDate,
		Travelers:  input.Travelers,
		Status:     domain.BookingStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventBookingCreated, events.BookingCreatedPayload{
		BookingID: booking.ID,
		TripID:    booking.TripID,
		TripTitle: booking.TripTitle,
		UserEmail: booking.UserEmail,
		Travelers: booking.Travelers,
	})
	return booking, nil
}

// ListForUser returns the bookings owned by a user.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.FindByUserID(ctx, userID)
}

// ListAll returns every booking.
func (s *BookingService) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.FindAll(ctx)
}

// UpdateStatus moves a booking to a new moderation status.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid booking status", map[string]any{"status": string(status)})
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("booking", nil)
		}
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("booking", nil)
		}
		return nil, err
	}

	oldStatus := booking.Status
	booking.Status = status

	s.publish(ctx, events.EventBookingStatusChanged, events.BookingStatusChangedPayload{
		BookingID: booking.ID,
		OldStatus: oldStatus,
		NewStatus: status,
	})
	return booking, nil
}

func (s *BookingService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
