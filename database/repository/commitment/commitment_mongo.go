package commitmentRepo

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

// MongoCommitmentRepo implements CommitmentRepository backed by MongoDB.
type MongoCommitmentRepo struct {
	coll *mongo.Collection
}

// NewMongoCommitmentRepo returns a repository over the "commitments" collection.
func NewMongoCommitmentRepo() *MongoCommitmentRepo {
	repo := &MongoCommitmentRepo{coll: database.Collection("commitments")}
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		panic(fmt.Sprintf("failed to ensure commitment indexes: %v", err))
	}
	return repo
}

// ErrDuplicateSlot reports whether an insert failed on the unique active-slot
// index, meaning another commitment won the same provider/date/start.
func ErrDuplicateSlot(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func (r *MongoCommitmentRepo) Insert(ctx context.Context, c *models.Commitment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if ErrDuplicateSlot(err) {
			return err
		}
		return fmt.Errorf("error creating commitment: %w", err)
	}
	return nil
}

func (r *MongoCommitmentRepo) GetByID(ctx context.Context, id string) (*models.Commitment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Commitment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		return nil, fmt.Errorf("commitment not found: %w", err)
	}
	return &c, nil
}

func (r *MongoCommitmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating commitment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("commitment %s not found", id)
	}
	return nil
}

func (r *MongoCommitmentRepo) FindActiveByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Commitment, error) {
	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     bson.M{"$in": models.ActiveCommitmentStatuses},
	}
	return r.find(ctx, filter)
}

func (r *MongoCommitmentRepo) FindActiveForConsumerOrService(ctx context.Context, consumerID, serviceID string) ([]models.Commitment, error) {
	filter := bson.M{
		"status": bson.M{"$in": models.ActiveCommitmentStatuses},
		"$or": bson.A{
			bson.M{"consumerId": consumerID},
			bson.M{"serviceId": serviceID},
		},
	}
	return r.find(ctx, filter)
}

func (r *MongoCommitmentRepo) ListByConsumer(ctx context.Context, consumerID string) ([]models.Commitment, error) {
	return r.find(ctx, bson.M{"consumerId": consumerID})
}

func (r *MongoCommitmentRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Commitment, error) {
	return r.find(ctx, bson.M{"providerId": providerID})
}

func (r *MongoCommitmentRepo) FindActiveEndedBefore(ctx context.Context, dateCutoff string, minuteCutoff int) ([]models.Commitment, error) {
	filter := bson.M{
		"status": bson.M{"$in": models.ActiveCommitmentStatuses},
		"$or": bson.A{
			bson.M{"date": bson.M{"$lt": dateCutoff}},
			bson.M{"date": dateCutoff, "end": bson.M{"$lte": minuteCutoff}},
		},
	}
	return r.find(ctx, filter)
}

func (r *MongoCommitmentRepo) find(ctx context.Context, filter bson.M) ([]models.Commitment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying commitments: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Commitment
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding commitments: %w", err)
	}
	return out, nil
}

func (r *MongoCommitmentRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating status counts: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding status counts: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *MongoCommitmentRepo) TopServices(ctx context.Context, limit int) ([]ServiceCount, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$serviceId"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating top services: %w", err)
	}
	defer cur.Close(ctx)

	var rows []ServiceCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding top services: %w", err)
	}
	return rows, nil
}
