package biodata_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soulmate/internal/repositories"
	"soulmate/internal/services"
)

var Module = fx.Provide(
	provideBiodataRepo, provideBiodataService)

func provideBiodataRepo(db *gorm.DB) repositories.BiodataRepository {
	return repositories.NewBiodataRepository(db)
}

func provideBiodataService(biodataRepo repositories.BiodataRepository) services.BiodataServiceInterface {
	return services.NewBiodataService(biodataRepo)
}
