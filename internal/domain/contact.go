package domain

import "time"

// ContactStatus tracks whether an admin has replied to a message.
type ContactStatus string

const (
	ContactStatusPending ContactStatus = "pending"
	ContactStatusReplied ContactStatus = "replied"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        string        `bson:"id"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Message   string        `bson:"message"`
	Reply     *string       `bson:"reply,omitempty"`
	Status    ContactStatus `bson:"status"`
	CreatedAt time.Time     `bson:"created_at"`
}
