package services

import (
	"context"
	"time"

	"github.com/RaoulHolzer/cat-food-tracker/internal/models"
	"github.com/RaoulHolzer/cat-food-tracker/internal/myerrors"
	"github.com/RaoulHolzer/cat-food-tracker/internal/repositories"
)

type CanPurchaseService interface {
	Add(ctx context.Context, newPurchase models.NewCanPurchase) (models.CanPurchase, error)
	GetAll(ctx context.Context) ([]models.CanPurchase, error)
	DeleteById(ctx context.Context, id int64) (int64, error)
}

type DefaultCanPurchaseService struct {
	purchaseRepo repositories.CanPurchaseRepository
	now          func() time.Time
}

func NewDefaultCanPurchaseService(purchaseRepo repositories.CanPurchaseRepository) *DefaultCanPurchaseService {
	return &DefaultCanPurchaseService{
		purchaseRepo: purchaseRepo,
		now:          time.Now,
	}
}

func (d *DefaultCanPurchaseService) Add(ctx context.Context, newPurchase models.NewCanPurchase) (models.CanPurchase, error) {
	if newPurchase.Quantity <= 0 {
		return models.CanPurchase{}, myerrors.Validation("Menge ist erforderlich und muss größer als 0 sein")
	}

	purchaseDate := d.now()
	if newPurchase.PurchaseDate != nil {
		purchaseDate = *newPurchase.PurchaseDate
	}

	return d.purchaseRepo.Add(ctx, models.CanPurchase{
		Quantity:     newPurchase.Quantity,
		Notes:        newPurchase.Notes,
		PurchaseDate: purchaseDate,
	})
}

func (d *DefaultCanPurchaseService) GetAll(ctx context.Context) ([]models.CanPurchase, error) {
	purchases, err := d.purchaseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if purchases == nil {
		purchases = []models.CanPurchase{}
	}
	return purchases, nil
}

func (d *DefaultCanPurchaseService) DeleteById(ctx context.Context, id int64) (int64, error) {
	return d.purchaseRepo.DeleteById(ctx, id)
}
