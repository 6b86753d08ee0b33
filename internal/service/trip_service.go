package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/trip-booking-service/internal/domain"
	"github.com/spec-kit/trip-booking-service/internal/repository"
	apperrors "github.com/spec-kit/trip-booking-service/pkg/util"
)

// TripInput carries the mutable fields of a trip listing.
type TripInput struct {
	Title       string
	Destination string
	Duration    string
	Price       float64
	Description string
	Image       string
}

// TripService manages trip listings.
type TripService struct {
	trips repository.TripRepository
}

// NewTripService builds the service.
func NewTripService(trips repository.TripRepository) *TripService {
	return &TripService{trips: trips}
}

// Create inserts a new trip listing.
func (s *TripService) Create(ctx context.Context, input TripInput) (*domain.Trip, error) {
	if err := validateTripInput(input); err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Destination: input.Destination,
		Duration:    input.Duration,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.trips.Insert(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// List returns all trip listings.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	return s.trips.FindAll(ctx)
}

// Get returns a single trip by id.
func (s *TripService) Get(ctx context.Context, id string) (*domain.Trip, error) {
	trip, err := s.trips.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("trip", nil)
		}
		return nil, err
	}
	return trip, nil
}

// Update replaces the mutable fields of an existing trip.
func (s *TripService) Update(ctx context.Context, id string, input TripInput) (*domain.Trip, error) {
	if err := validateTripInput(input); err != nil {
		return nil, err
	}

	trip, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	trip.Title = input.Title
	trip.Destination = input.Destination
	trip.Duration = input.Duration
	trip.Price = input.Price
	trip.Description = input.Description
	trip.Image = input.Image

	if err := s.trips.Update(ctx, trip); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("trip", nil)
		}
		return nil, err
	}
	return trip, nil
}

// Delete removes a trip listing.
func (s *TripService) Delete(ctx context.Context, id string) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("trip", nil)
		}
		return err
	}
	return nil
}

func validateTripInput(input TripInput) error {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Destination) == "" {
		return apperrors.NewValidationError("title and destination required", nil)
	}
	if input.Price < 0 {
		return apperrors.NewValidationError("price must not be negative", nil)
	}
	return nil
}
