package services

import (
	"context"
	"errors"
	"time"

	"github.com/RaoulHolzer/cat-food-tracker/internal/models"
	"github.com/RaoulHolzer/cat-food-tracker/internal/myerrors"
	"github.com/RaoulHolzer/cat-food-tracker/internal/repositories"
)

type FeedingService interface {
	Add(ctx context.Context, newFeeding models.NewFeeding) (models.Feeding, error)
	DeleteById(ctx context.Context, id int64) (int64, error)
}

type DefaultFeedingService struct {
	feedingRepo repositories.FeedingRepository
	now         func() time.Time
}

func NewDefaultFeedingService(feedingRepo repositories.FeedingRepository) *DefaultFeedingService {
	return &DefaultFeedingService{
		feedingRepo: feedingRepo,
		now:         time.Now,
	}
}

func (d *DefaultFeedingService) Add(ctx context.Context, newFeeding models.NewFeeding) (models.Feeding, error) {
	if newFeeding.CatId == 0 || newFeeding.Amount == "" {
		return models.Feeding{}, myerrors.Validation("cat_id und amount sind erforderlich")
	}

	timestamp := d.now()
	if newFeeding.Timestamp != nil {
		timestamp = *newFeeding.Timestamp
	}

	feeding, err := d.feedingRepo.Add(ctx, models.Feeding{
		CatId:     newFeeding.CatId,
		Amount:    newFeeding.Amount,
		Timestamp: timestamp,
	})
	if err != nil {
		// no application-level existence check: the foreign key decides
		if errors.Is(err, repositories.ErrCatMissing) {
			return models.Feeding{}, myerrors.Validation("Katze nicht gefunden")
		}
		return models.Feeding{}, err
	}
	return feeding, nil
}

func (d *DefaultFeedingService) DeleteById(ctx context.Context, id int64) (int64, error) {
	return d.feedingRepo.DeleteById(ctx, id)
}
