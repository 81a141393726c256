package premium_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soulmate/internal/repositories"
	"soulmate/internal/services"
)

var Module = fx.Provide(
	providePremiumRepo, providePremiumService)

func providePremiumRepo(db *gorm.DB) repositories.PremiumRequestRepository {
	return repositories.NewPremiumRequestRepository(db)
}

func providePremiumService(premiumRepo repositories.PremiumRequestRepository) services.PremiumServiceInterface {
	return services.NewPremiumService(premiumRepo)
}
