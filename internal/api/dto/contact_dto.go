package dto

import (
	"time"

	"github.com/spec-kit/trip-booking-service/internal/domain"
)

// ContactRequest payload for the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactReplyRequest payload for admin replies.
type ContactReplyRequest struct {
	Reply string `json:"reply"`
}

// ContactResponse is the wire view of a contact message.
type ContactResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Message   string               `json:"message"`
	Reply     *string              `json:"reply,omitempty"`
	Status    domain.ContactStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

// NewContactResponse maps a contact message to its wire view.
func NewContactResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		Reply:     contact.Reply,
		Status:    contact.Status,
		CreatedAt: contact.CreatedAt,
	}
}

// NewContactResponses maps a slice of contact messages.
func NewContactResponses(contacts []domain.Contact) []ContactResponse {
	items := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, NewContactResponse(&contacts[i]))
	}
	return items
}
