package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
)

type FavouriteRepository interface {
	Insert(ctx context.Context, favourite *db_models.Favourite) error
	FindByPair(ctx context.Context, userEmail string, biodataID int) (*db_models.Favourite, error)
	ListByUser(ctx context.Context, userEmail string) ([]db_models.Favourite, error)
	DeleteByID(ctx context.Context, id string) error
}

type favouriteRepository struct {
	db *gorm.DB
}

func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

func (f *favouriteRepository) Insert(ctx context.Context, favourite *db_models.Favourite) error {
	return f.db.WithContext(ctx).Create(favourite).Error
}

func (f *favouriteRepository) FindByPair(ctx context.Context, userEmail string, biodataID int) (*db_models.Favourite, error) {
	var favourite db_models.Favourite
	err := f.db.WithContext(ctx).
		First(&favourite, "user_email = ? AND biodata_id = ?", userEmail, biodataID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favourite, nil
}

func (f *favouriteRepository) ListByUser(ctx context.Context, userEmail string) ([]db_models.Favourite, error) {
	var favourites []db_models.Favourite
	err := f.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Find(&favourites).Error
	if err != nil {
		return nil, err
	}
	return favourites, nil
}

// DeleteByID is unguarded: removing an id that does not exist still
// succeeds, matching the platform's wire contract.
func (f *favouriteRepository) DeleteByID(ctx context.Context, id string) error {
	return f.db.WithContext(ctx).Delete(&db_models.Favourite{}, "id = ?", id).Error
}
