package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentara/internal/model"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	GetLatestByClientID(ctx context.Context, clientID string) (*model.Assessment, error)
	GetByClientID(ctx context.Context, clientID string) ([]*model.Assessment, error)
	Delete(ctx context.Context, id string) error
}

type assessmentRepository struct {
	collection *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) AssessmentRepository {
	return &assessmentRepository{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) error {
	if assessment.SubmittedAt.IsZero() {
		assessment.SubmittedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, assessment)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		assessment.ID = oid.Hex()
	}

	return nil
}

func (r *assessmentRepository) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var assessment model.Assessment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&assessment)
	if err != nil {
		return nil, err
	}

	return &assessment, nil
}

func (r *assessmentRepository) GetLatestByClientID(ctx context.Context, clientID string) (*model.Assessment, error) {
	opts := options.FindOne().SetSort(bson.M{"submittedAt": -1})

	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"clientId": clientID}, opts).Decode(&assessment)
	if err != nil {
		return nil, err
	}

	return &assessment, nil
}

func (r *assessmentRepository) GetByClientID(ctx context.Context, clientID string) ([]*model.Assessment, error) {
	opts := options.Find().SetSort(bson.M{"submittedAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}

	return assessments, nil
}

func (r *assessmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
