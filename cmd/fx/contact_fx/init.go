package contact_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soulmate/internal/repositories"
	"soulmate/internal/services"
)

var Module = fx.Provide(
	provideContactRepo, provideContactService)

func provideContactRepo(db *gorm.DB) repositories.ContactRequestRepository {
	return repositories.NewContactRequestRepository(db)
}

func provideContactService(contactRepo repositories.ContactRequestRepository, biodataRepo repositories.BiodataRepository) services.ContactServiceInterface {
	return services.NewContactService(contactRepo, biodataRepo)
}
