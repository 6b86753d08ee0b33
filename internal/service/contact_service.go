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

// ContactInput carries a public contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactService manages contact messages and admin replies.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher}
}

// Submit stores a contact message in pending state.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*domain.Contact, error) {
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.NewValidationError("name and message required", nil)
	}

	contact := &domain.Contact{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		Status:    domain.ContactStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contacts.Insert(ctx, contact); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventContactSubmitted, events.ContactSubmittedPayload{
		ContactID: contact.ID,
		Email:     contact.Email,
	})
	return contact, nil
}

// List returns all contact messages.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.FindAll(ctx)
}

// Reply records an admin reply and marks the message replied.
func (s *ContactService) Reply(ctx context.Context, id, reply string) (*domain.Contact, error) {
	if strings.TrimSpace(reply) == "" {
		return nil, apperrors.NewValidationError("reply required", nil)
	}

	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("contact message", nil)
		}
		return nil, err
	}

	if err := s.contacts.SetReply(ctx, id, reply); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("contact message", nil)
		}
		return nil, err
	}

	contact.Reply = &reply
	contact.Status = domain.ContactStatusReplied

	s.publish(ctx, events.EventContactReplied, events.ContactRepliedPayload{ContactID: contact.ID})
	return contact, nil
}

func (s *ContactService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
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
