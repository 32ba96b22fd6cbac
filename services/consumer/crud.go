package consumer

import (
	"context"
	"fmt"
	"time"

	"bookwell/models"
)

// Fields a consumer may change through profile updates. Everything else
// is managed by dedicated operations.
var updatableFields = map[string]bool{
	"name":         true,
	"phone":        true,
	"profileImage": true,
}

func (s *DefaultConsumerService) GetProfile(ctx context.Context, id string) (*models.Consumer, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultConsumerService) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) (*models.Consumer, error) {
	filtered := map[string]interface{}{}
	for k, v := range fields {
		if updatableFields[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	filtered["updatedAt"] = time.Now()

	if err := s.Repo.Update(ctx, id, filtered); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultConsumerService) DeleteAccount(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
