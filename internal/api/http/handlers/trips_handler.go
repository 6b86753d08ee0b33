package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/trip-booking-service/internal/api/dto"
	"github.com/spec-kit/trip-booking-service/internal/service"
	apperrors "github.com/spec-kit/trip-booking-service/pkg/util"
)

// TripsHandler manages trip listing endpoints.
type TripsHandler struct {
	service *service.TripService
}

// NewTripsHandler constructs handler.
func NewTripsHandler(tripService *service.TripService) *TripsHandler {
	return &TripsHandler{service: tripService}
}

// CreateTrip POST /api/trips (admin).
func (h *TripsHandler) CreateTrip(c *fiber.Ctx) error {
	var req dto.TripRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	trip, err := h.service.Create(c.UserContext(), tripInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTripResponse(trip)})
}

// ListTrips GET /api/trips (public).
func (h *TripsHandler) ListTrips(c *fiber.Ctx) error {
	trips, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTripResponses(trips)})
}

// GetTrip GET /api/trips/:id (public).
func (h *TripsHandler) GetTrip(c *fiber.Ctx) error {
	trip, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTripResponse(trip)})
}

// UpdateTrip PUT /api/trips/:id (admin).
func (h *TripsHandler) UpdateTrip(c *fiber.Ctx) error {
	var req dto.TripRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	trip, err := h.service.Update(c.UserContext(), c.Params("id"), tripInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTripResponse(trip)})
}

// DeleteTrip DELETE /api/trips/:id (admin).
func (h *TripsHandler) DeleteTrip(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "trip deleted"}})
}

func tripInput(req dto.TripRequest) service.TripInput {
	return service.TripInput{
		Title:       req.Title,
		Destination: req.Destination,
		Duration:    req.Duration,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	}
}
