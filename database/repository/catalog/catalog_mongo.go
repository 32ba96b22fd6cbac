package catalogRepo

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

// MongoCatalogRepo implements CatalogRepository backed by MongoDB.
type MongoCatalogRepo struct {
	categoryColl *mongo.Collection
	serviceColl  *mongo.Collection
}

// NewMongoCatalogRepo returns a repository over the "categories" and
// "services" collections.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	repo := &MongoCatalogRepo{
		categoryColl: database.Collection("categories"),
		serviceColl:  database.Collection("services"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.serviceColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
		{Keys: bson.D{{Key: "categoryId", Value: 1}}},
	})
	if err != nil {
		panic(fmt.Sprintf("failed to ensure service indexes: %v", err))
	}
	return repo
}

func (r *MongoCatalogRepo) CreateCategory(ctx context.Context, cat *models.Category) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.categoryColl.InsertOne(ctx, cat); err != nil {
		return fmt.Errorf("error creating category: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cat models.Category
	if err := r.categoryColl.FindOne(ctx, bson.M{"id": id}).Decode(&cat); err != nil {
		return nil, fmt.Errorf("category not found: %w", err)
	}
	return &cat, nil
}

func (r *MongoCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.categoryColl.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer cur.Close(ctx)

	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("error decoding categories: %w", err)
	}
	return cats, nil
}

func (r *MongoCatalogRepo) DeleteCategory(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.categoryColl.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting category %s: %w", id, err)
	}
	return nil
}

func (r *MongoCatalogRepo) CreateService(ctx context.Context, svc *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.serviceColl.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	if err := r.serviceColl.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	return &svc, nil
}

func (r *MongoCatalogRepo) ListServicesByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	return r.findServices(ctx, bson.M{"providerId": providerID})
}

func (r *MongoCatalogRepo) ListServicesByCategory(ctx context.Context, categoryID string) ([]models.Service, error) {
	return r.findServices(ctx, bson.M{"categoryId": categoryID, "active": true})
}

func (r *MongoCatalogRepo) findServices(ctx context.Context, filter bson.M) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.serviceColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cur.Close(ctx)

	var svcs []models.Service
	if err := cur.All(ctx, &svcs); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return svcs, nil
}

func (r *MongoCatalogRepo) UpdateService(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.serviceColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("error updating service %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %s not found", id)
	}
	return nil
}

func (r *MongoCatalogRepo) DeactivateService(ctx context.Context, id string) error {
	return r.UpdateService(ctx, id, map[string]interface{}{"active": false})
}
