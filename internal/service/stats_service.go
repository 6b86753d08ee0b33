package service

import (
	"context"

	"github.com/spec-kit/trip-booking-service/internal/domain"
	"github.com/spec-kit/trip-booking-service/internal/repository"
)

// StatsService computes admin dashboard counters. Counters are live counts
// against the store, never cached.
type StatsService struct {
	trips    repository.TripRepository
	bookings repository.BookingRepository
	contacts repository.ContactRepository
}

// NewStatsService builds the service.
func NewStatsService(trips repository.TripRepository, bookings repository.BookingRepository, contacts repository.ContactRepository) *StatsService {
	return &StatsService{trips: trips, bookings: bookings, contacts: contacts}
}

// Dashboard returns the aggregate counters.
func (s *StatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	totalTrips, err := s.trips.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingBookings, err := s.bookings.CountByStatus(ctx, domain.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	totalContacts, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalTrips:      totalTrips,
		TotalBookings:   totalBookings,
		PendingBookings: pendingBookings,
		TotalContacts:   totalContacts,
	}, nil
}
