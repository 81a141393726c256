package services

import (
	"context"
	"time"

	"soulmate/internal/models/db_models"
	"soulmate/internal/models/request_models"
	"soulmate/internal/repositories"
	"soulmate/pkg/utils"
)

type StoryServiceInterface interface {
	Create(ctx context.Context, request request_models.CreateSuccessStoryRequest) error
	ListAll(ctx context.Context) ([]db_models.SuccessStory, error)
}

type StoryService struct {
	storyRepo repositories.SuccessStoryRepository
}

func NewStoryService(storyRepo repositories.SuccessStoryRepository) StoryServiceInterface {
	return &StoryService{storyRepo: storyRepo}
}

func (s *StoryService) Create(ctx context.Context, request request_models.CreateSuccessStoryRequest) error {
	marriageDate := time.Now()
	if request.MarriageDate != "" {
		parsed, err := time.Parse("2006-01-02", request.MarriageDate)
		if err == nil {
			marriageDate = parsed
		}
	}

	reviewStar := request.ReviewStar
	if reviewStar == 0 {
		reviewStar = 5
	}

	story := &db_models.SuccessStory{
		SelfBiodataID:    request.SelfBiodataID,
		PartnerBiodataID: request.PartnerBiodataID,
		CoupleImage:      request.CoupleImage,
		SuccessStoryText: request.SuccessStoryText,
		MarriageDate:     marriageDate,
		ReviewStar:       reviewStar,
	}
	if err := s.storyRepo.Insert(ctx, story); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *StoryService) ListAll(ctx context.Context) ([]db_models.SuccessStory, error) {
	stories, err := s.storyRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stories, nil
}
