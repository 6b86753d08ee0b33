package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/trip-booking-service/internal/domain"
)

// TripRepository defines persistence access for trip listings.
type TripRepository interface {
	Insert(ctx context.Context, trip *domain.Trip) error
	FindByID(ctx context.Context, id string) (*domain.Trip, error)
	FindAll(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type tripRepository struct {
	coll *mongo.Collection
}

// NewTripRepository returns a Mongo-backed implementation.
func NewTripRepository(coll *mongo.Collection) TripRepository {
	return &tripRepository{coll: coll}
}

func (r *tripRepository) Insert(ctx context.Context, trip *domain.Trip) error {
	_, err := r.coll.InsertOne(ctx, trip)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *tripRepository) FindByID(ctx context.Context, id string) (*domain.Trip, error) {
	var trip domain.Trip
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trip); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindAll(ctx context.Context) ([]domain.Trip, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	trips := make([]domain.Trip, 0)
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	update := bson.M{"$set": bson.M{
		"title":       trip.Title,
		"destination": trip.Destination,
		"duration":    trip.Duration,
		"price":       trip.Price,
		"description": trip.Description,
		"image":       trip.Image,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": trip.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tripRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
