package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/trip-booking-service/internal/api/dto"
	"github.com/spec-kit/trip-booking-service/internal/auth"
	"github.com/spec-kit/trip-booking-service/internal/domain"
	"github.com/spec-kit/trip-booking-service/internal/service"
	apperrors "github.com/spec-kit/trip-booking-service/pkg/util"
)

// BookingsHandler manages booking endpoints.
type BookingsHandler struct {
	service *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{service: bookingService}
}

// CreateBooking POST /api/bookings (authenticated user).
func (h *BookingsHandler) CreateBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TripID == "" {
		return apperrors.NewValidationError("trip_id required", nil)
	}

	booking, err := h.service.Create(c.UserContext(), principal, service.BookingInput{
		TripID:     req.TripID,
		TravelDate: req.TravelDate,
		Travelers:  req.Travelers,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// ListMyBookings GET /api/bookings/my (authenticated user).
func (h *BookingsHandler) ListMyBookings(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	bookings, err := h.service.ListForUser(c.UserContext(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponses(bookings)})
}

// ListAllBookings GET /api/bookings (admin).
func (h *BookingsHandler) ListAllBookings(c *fiber.Ctx) error {
	bookings, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponses(bookings)})
}

// UpdateBookingStatus PATCH /api/bookings/:id/status (admin).
func (h *BookingsHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	var req dto.BookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}
