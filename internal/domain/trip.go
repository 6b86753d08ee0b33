package domain

import "time"

// Trip is a bookable trip listing managed by administrators.
type Trip struct {
	ID          string    `bson:"id"`
	Title       string    `bson:"title"`
	Destination string    `bson:"destination"`
	Duration    string    `bson:"duration"`
	Price       float64   `bson:"price"`
	Description string    `bson:"description"`
	Image       string    `bson:"image"`
	CreatedAt   time.Time `bson:"created_at"`
}
