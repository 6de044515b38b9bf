package services

import (
	"context"
	"strings"

	"github.com/RaoulHolzer/cat-food-tracker/internal/models"
	"github.com/RaoulHolzer/cat-food-tracker/internal/myerrors"
	"github.com/RaoulHolzer/cat-food-tracker/internal/repositories"
	"golang.org/x/sync/errgroup"
)

type CatService interface {
	Add(ctx context.Context, newCat models.NewCat) (models.Cat, error)
	GetAll(ctx context.Context) ([]models.Cat, error)
	DeleteById(ctx context.Context, id int64) (int64, error)
}

type DefaultCatService struct {
	catRepo     repositories.CatRepository
	feedingRepo repositories.FeedingRepository
}

func NewDefaultCatService(catRepo repositories.CatRepository, feedingRepo repositories.FeedingRepository) *DefaultCatService {
	return &DefaultCatService{
		catRepo:     catRepo,
		feedingRepo: feedingRepo,
	}
}

func (d *DefaultCatService) Add(ctx context.Context, newCat models.NewCat) (models.Cat, error) {
	if strings.TrimSpace(newCat.Name) == "" {
		return models.Cat{}, myerrors.Validation("Name ist erforderlich")
	}

	exists, err := d.catRepo.NameExists(ctx, newCat.Name)
	if err != nil {
		return models.Cat{}, err
	}
	if exists {
		return models.Cat{}, myerrors.Conflict("Eine Katze mit diesem Namen existiert bereits")
	}

	cat, err := d.catRepo.Add(ctx, newCat.Name)
	if err != nil {
		return models.Cat{}, err
	}
	cat.Feedings = []models.Feeding{}
	return cat, nil
}

// GetAll returns every cat ordered by name with its feedings newest
// first. The per-cat feeding reads run concurrently; a single failure
// aborts the whole response.
func (d *DefaultCatService) GetAll(ctx context.Context) ([]models.Cat, error) {
	cats, err := d.catRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range cats {
		g.Go(func() error {
			feedings, err := d.feedingRepo.GetByCatId(gctx, cats[i].Id)
			if err != nil {
				return err
			}
			if feedings == nil {
				feedings = []models.Feeding{}
			}
			cats[i].Feedings = feedings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cats == nil {
		cats = []models.Cat{}
	}
	return cats, nil
}

func (d *DefaultCatService) DeleteById(ctx context.Context, id int64) (int64, error) {
	return d.catRepo.DeleteById(ctx, id)
}
