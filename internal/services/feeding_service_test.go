package services

import (
	"context"
	"testing"
	"time"

	"github.com/RaoulHolzer/cat-food-tracker/internal/models"
	"github.com/RaoulHolzer/cat-food-tracker/internal/myerrors"
	"github.com/RaoulHolzer/cat-food-tracker/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedingServiceAdd(t *testing.T) {
	t.Run("missing cat_id or amount is a validation error", func(t *testing.T) {
		service := NewDefaultFeedingService(&StubFeedingRepository{})

		for _, payload := range []models.NewFeeding{
			{Amount: "50g"},
			{CatId: 1},
			{},
		} {
			_, err := service.Add(context.Background(), payload)
			var reqErr *myerrors.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, myerrors.KindValidation, reqErr.Kind)
			assert.Equal(t, "cat_id und amount sind erforderlich", reqErr.Message)
		}
	})

	t.Run("timestamp defaults to the submission time", func(t *testing.T) {
		var stored models.Feeding
		repo := &StubFeedingRepository{addFunc: func(ctx context.Context, feeding models.Feeding) (models.Feeding, error) {
			stored = feeding
			feeding.Id = 1
			return feeding, nil
		}}
		service := NewDefaultFeedingService(repo)
		fixed := time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)
		service.now = func() time.Time { return fixed }

		feeding, err := service.Add(context.Background(), models.NewFeeding{CatId: 1, Amount: "50g"})
		require.NoError(t, err)
		assert.Equal(t, fixed, stored.Timestamp)
		assert.Equal(t, fixed, feeding.Timestamp)
	})

	t.Run("a caller-supplied timestamp wins", func(t *testing.T) {
		var stored models.Feeding
		repo := &StubFeedingRepository{addFunc: func(ctx context.Context, feeding models.Feeding) (models.Feeding, error) {
			stored = feeding
			return feeding, nil
		}}
		service := NewDefaultFeedingService(repo)
		supplied := time.Date(2025, 2, 28, 19, 0, 0, 0, time.UTC)

		_, err := service.Add(context.Background(), models.NewFeeding{CatId: 1, Amount: "1 Tasse", Timestamp: &supplied})
		require.NoError(t, err)
		assert.Equal(t, supplied, stored.Timestamp)
	})

	t.Run("a rejected foreign key surfaces as validation error", func(t *testing.T) {
		repo := &StubFeedingRepository{addFunc: func(ctx context.Context, feeding models.Feeding) (models.Feeding, error) {
			return models.Feeding{}, repositories.ErrCatMissing
		}}
		service := NewDefaultFeedingService(repo)

		_, err := service.Add(context.Background(), models.NewFeeding{CatId: 9999, Amount: "50g"})
		var reqErr *myerrors.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, myerrors.KindValidation, reqErr.Kind)
	})
}

func TestFeedingServiceDeleteById(t *testing.T) {
	repo := &StubFeedingRepository{deleteFunc: func(ctx context.Context, id int64) (int64, error) {
		return 0, nil
	}}
	service := NewDefaultFeedingService(repo)

	changes, err := service.DeleteById(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)
}
