package favourite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soulmate/internal/repositories"
	"soulmate/internal/services"
)

var Module = fx.Provide(
	provideFavouriteRepo, provideFavouriteService)

func provideFavouriteRepo(db *gorm.DB) repositories.FavouriteRepository {
	return repositories.NewFavouriteRepository(db)
}

func provideFavouriteService(favouriteRepo repositories.FavouriteRepository) services.FavouriteServiceInterface {
	return services.NewFavouriteService(favouriteRepo)
}
