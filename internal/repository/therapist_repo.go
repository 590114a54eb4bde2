package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mentara/internal/model"
)

// TherapistFilter narrows roster listings. Zero value means no filtering.
type TherapistFilter struct {
	Specialty string
	Language  string
	Modality  string
	PriceBand string
}

type TherapistRepository interface {
	Create(ctx context.Context, therapist *model.TherapistProfile) error
	GetByID(ctx context.Context, id string) (*model.TherapistProfile, error)
	List(ctx context.Context, filter TherapistFilter) ([]*model.TherapistProfile, error)
	Update(ctx context.Context, therapist *model.TherapistProfile) error
	Delete(ctx context.Context, id string) error
}

type therapistRepository struct {
	collection *mongo.Collection
}

func NewTherapistRepository(db *mongo.Database) TherapistRepository {
	return &therapistRepository{
		collection: db.Collection("therapists"),
	}
}

func (r *therapistRepository) Create(ctx context.Context, therapist *model.TherapistProfile) error {
	if therapist.CreatedAt.IsZero() {
		therapist.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, therapist)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		therapist.ID = oid.Hex()
	}

	return nil
}

func (r *therapistRepository) GetByID(ctx context.Context, id string) (*model.TherapistProfile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var therapist model.TherapistProfile
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&therapist)
	if err != nil {
		return nil, err
	}

	return &therapist, nil
}

func (r *therapistRepository) List(ctx context.Context, filter TherapistFilter) ([]*model.TherapistProfile, error) {
	query := bson.M{}
	if filter.Specialty != "" {
		query["specialties"] = filter.Specialty
	}
	if filter.Language != "" {
		query["languages"] = filter.Language
	}
	if filter.Modality != "" {
		query["modalities"] = filter.Modality
	}
	if filter.PriceBand != "" {
		query["priceBand"] = filter.PriceBand
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var therapists []*model.TherapistProfile
	if err = cursor.All(ctx, &therapists); err != nil {
		return nil, err
	}

	return therapists, nil
}

func (r *therapistRepository) Update(ctx context.Context, therapist *model.TherapistProfile) error {
	oid, err := primitive.ObjectIDFromHex(therapist.ID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": therapist}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *therapistRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
