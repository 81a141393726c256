package services

import (
	"context"

	"soulmate/internal/models/db_models"
	"soulmate/internal/models/request_models"
	"soulmate/internal/repositories"
	"soulmate/pkg/utils"
)

type FavouriteServiceInterface interface {
	Add(ctx context.Context, request request_models.AddFavouriteRequest) error
	ListByUser(ctx context.Context, email string) ([]db_models.Favourite, error)
	Remove(ctx context.Context, id string) error
}

type FavouriteService struct {
	favouriteRepo repositories.FavouriteRepository
}

func NewFavouriteService(favouriteRepo repositories.FavouriteRepository) FavouriteServiceInterface {
	return &FavouriteService{favouriteRepo: favouriteRepo}
}

func (f *FavouriteService) Add(ctx context.Context, request request_models.AddFavouriteRequest) error {
	existing, err := f.favouriteRepo.FindByPair(ctx, request.UserEmail, request.BiodataID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrAlreadyFavourite
	}

	favourite := &db_models.Favourite{
		UserEmail:        request.UserEmail,
		BiodataID:        request.BiodataID,
		Name:             request.Name,
		PermanentAddress: request.PermanentAddress,
		Occupation:       request.Occupation,
	}
	if err := f.favouriteRepo.Insert(ctx, favourite); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavouriteService) ListByUser(ctx context.Context, email string) ([]db_models.Favourite, error) {
	favourites, err := f.favouriteRepo.ListByUser(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return favourites, nil
}

func (f *FavouriteService) Remove(ctx context.Context, id string) error {
	if err := f.favouriteRepo.DeleteByID(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
