package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/trip-booking-service/internal/domain"
)

// BookingRepository defines persistence access for bookings.
type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Booking, error)
	FindAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
}

type bookingRepository struct {
	coll *mongo.Collection
}

// NewBookingRepository returns a Mongo-backed implementation.
func NewBookingRepository(coll *mongo.Collection) BookingRepository {
	return &bookingRepository{coll: coll}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	_, err := r.coll.InsertOne(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *bookingRepository) find(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	bookings := make([]domain.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": status})
}
