package repositories

import (
	"context"

	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
)

type SuccessStoryRepository interface {
	Insert(ctx context.Context, story *db_models.SuccessStory) error
	ListAll(ctx context.Context) ([]db_models.SuccessStory, error)
}

type successStoryRepository struct {
	db *gorm.DB
}

func NewSuccessStoryRepository(db *gorm.DB) SuccessStoryRepository {
	return &successStoryRepository{db: db}
}

func (s *successStoryRepository) Insert(ctx context.Context, story *db_models.SuccessStory) error {
	return s.db.WithContext(ctx).Create(story).Error
}

func (s *successStoryRepository) ListAll(ctx context.Context) ([]db_models.SuccessStory, error) {
	var stories []db_models.SuccessStory
	err := s.db.WithContext(ctx).
		Order("marriage_date DESC").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}
