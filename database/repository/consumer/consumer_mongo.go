package consumerRepo

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

// MongoConsumerRepo implements ConsumerRepository backed by MongoDB.
type MongoConsumerRepo struct {
	coll *mongo.Collection
}

// NewMongoConsumerRepo returns a repository over the "consumers" collection.
func NewMongoConsumerRepo() *MongoConsumerRepo {
	repo := &MongoConsumerRepo{coll: database.Collection("consumers")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		panic(fmt.Sprintf("failed to ensure consumer indexes: %v", err))
	}
	return repo
}

func (r *MongoConsumerRepo) Create(ctx context.Context, c *models.Consumer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email already registered")
		}
		return fmt.Errorf("error creating consumer: %w", err)
	}
	return nil
}

func (r *MongoConsumerRepo) GetByID(ctx context.Context, id string) (*models.Consumer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Consumer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		return nil, fmt.Errorf("consumer not found: %w", err)
	}
	return &c, nil
}

func (r *MongoConsumerRepo) GetByEmail(ctx context.Context, email string) (*models.Consumer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Consumer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&c); err != nil {
		return nil, fmt.Errorf("consumer not found: %w", err)
	}
	return &c, nil
}

func (r *MongoConsumerRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("error updating consumer %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("consumer %s not found", id)
	}
	return nil
}

func (r *MongoConsumerRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting consumer %s: %w", id, err)
	}
	return nil
}

func (r *MongoConsumerRepo) GetAvailability(ctx context.Context, id string) ([]models.ConsumerSlot, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.AvailabilitySlots, nil
}

func (r *MongoConsumerRepo) SetAvailability(ctx context.Context, id string, slots []models.ConsumerSlot) error {
	return r.Update(ctx, id, map[string]interface{}{"availabilitySlots": slots})
}

func (r *MongoConsumerRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.Update(ctx, id, map[string]interface{}{"tokenHash": tokenHash})
}
