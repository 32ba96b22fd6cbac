package providerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookwell/database"
	"bookwell/models"
)

// MongoProviderRepo implements ProviderRepository backed by MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo returns a repository over the "providers" collection.
func NewMongoProviderRepo() *MongoProviderRepo {
	repo := &MongoProviderRepo{coll: database.Collection("providers")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		panic(fmt.Sprintf("failed to ensure provider indexes: %v", err))
	}
	return repo
}

func (r *MongoProviderRepo) Create(ctx context.Context, p *models.Provider) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email already registered")
		}
		return fmt.Errorf("error creating provider: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}
	return &p, nil
}

func (r *MongoProviderRepo) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&p); err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}
	return &p, nil
}

func (r *MongoProviderRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("error updating provider %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("provider %s not found", id)
	}
	return nil
}

func (r *MongoProviderRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting provider %s: %w", id, err)
	}
	return nil
}

func (r *MongoProviderRepo) GetSchedule(ctx context.Context, id string) ([]models.ScheduleDay, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.WeeklySchedule, nil
}

func (r *MongoProviderRepo) SetSchedule(ctx context.Context, id string, rows []models.ScheduleDay) error {
	return r.Update(ctx, id, map[string]interface{}{"weeklySchedule": rows})
}

func (r *MongoProviderRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.Update(ctx, id, map[string]interface{}{"tokenHash": tokenHash})
}
