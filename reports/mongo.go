package reports

import (
	"context"
	"time"

	"safereport-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists reports in a MongoDB collection. Ids are ObjectID
// hex strings, so listing by ascending _id yields insertion order.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

func (s *MongoStore) Create(ctx context.Context, draft Draft) (models.Report, error) {
	report, err := validateDraft(draft)
	if err != nil {
		return models.Report{}, err
	}

	report.ID = primitive.NewObjectID().Hex()
	report.CreatedDate = time.Now().UTC()

	if _, err := s.collection.InsertOne(ctx, report); err != nil {
		return models.Report{}, err
	}
	return report, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (models.Report, error) {
	var report models.Report
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return models.Report{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return models.Report{}, err
	}
	return report, nil
}

func (s *MongoStore) Update(ctx context.Context, id string, patch Update) (models.Report, error) {
	if err := validateUpdate(patch); err != nil {
		return models.Report{}, err
	}

	set := bson.M{}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.InspectorNotes != nil {
		set["inspectorNotes"] = *patch.InspectorNotes
	}
	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var report models.Report
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return models.Report{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return models.Report{}, err
	}
	return report, nil
}

func (s *MongoStore) All(ctx context.Context) ([]models.Report, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Report
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
