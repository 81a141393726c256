package story_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soulmate/internal/repositories"
	"soulmate/internal/services"
)

var Module = fx.Provide(
	provideStoryRepo, provideStoryService)

func provideStoryRepo(db *gorm.DB) repositories.SuccessStoryRepository {
	return repositories.NewSuccessStoryRepository(db)
}

func provideStoryService(storyRepo repositories.SuccessStoryRepository) services.StoryServiceInterface {
	return services.NewStoryService(storyRepo)
}
