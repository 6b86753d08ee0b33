package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/trip-booking-service/internal/api/dto"
	"github.com/spec-kit/trip-booking-service/internal/service"
	apperrors "github.com/spec-kit/trip-booking-service/pkg/util"
)

// ContactsHandler manages contact-message endpoints.
type ContactsHandler struct {
	service *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contactService *service.ContactService) *ContactsHandler {
	return &ContactsHandler{service: contactService}
}

// SubmitContact POST /api/contact (public).
func (h *ContactsHandler) SubmitContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	contact, err := h.service.Submit(c.UserContext(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewContactResponse(contact)})
}

// ListContacts GET /api/contact (admin).
func (h *ContactsHandler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewContactResponses(contacts)})
}

// ReplyToContact PATCH /api/contact/:id/reply (admin).
func (h *ContactsHandler) ReplyToContact(c *fiber.Ctx) error {
	var req dto.ContactReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	contact, err := h.service.Reply(c.UserContext(), c.Params("id"), req.Reply)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewContactResponse(contact)})
}
