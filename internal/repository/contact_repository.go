package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/trip-booking-service/internal/domain"
)

// ContactRepository defines persistence access for contact messages.
type ContactRepository interface {
	Insert(ctx context.Context, contact *domain.Contact) error
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	FindAll(ctx context.Context) ([]domain.Contact, error)
	SetReply(ctx context.Context, id, reply string) error
	Count(ctx context.Context) (int64, error)
}

type contactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository returns a Mongo-backed implementation.
func NewContactRepository(coll *mongo.Collection) ContactRepository {
	return &contactRepository{coll: coll}
}

func (r *contactRepository) Insert(ctx context.Context, contact *domain.Contact) error {
	_, err := r.coll.InsertOne(ctx, contact)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *contactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	var contact domain.Contact
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&contact); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) FindAll(ctx context.Context) ([]domain.Contact, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	contacts := make([]domain.Contact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) SetReply(ctx context.Context, id, reply string) error {
	update := bson.M{"$set": bson.M{
		"reply":  reply,
		"status": domain.ContactStatusReplied,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
