package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
	"soulmate/internal/models/request_models"
	"soulmate/internal/repositories"
	"soulmate/pkg/utils"
)

type PremiumServiceInterface interface {
	Create(ctx context.Context, request request_models.MakePremiumRequest) error
	ListPending(ctx context.Context) ([]db_models.PremiumRequest, error)
	Approve(ctx context.Context, id string) error
}

type PremiumService struct {
	premiumRepo repositories.PremiumRequestRepository
}

func NewPremiumService(premiumRepo repositories.PremiumRequestRepository) PremiumServiceInterface {
	return &PremiumService{premiumRepo: premiumRepo}
}

// Create rejects a second pending request for the same biodata; a biodata
// whose earlier request was already approved may file again.
func (p *PremiumService) Create(ctx context.Context, request request_models.MakePremiumRequest) error {
	pending, err := p.premiumRepo.FindPendingByBiodataID(ctx, request.BiodataID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if pending != nil {
		return utils.ErrPremiumRequestPending
	}

	newRequest := &db_models.PremiumRequest{
		BiodataID: request.BiodataID,
		UserEmail: request.UserEmail,
		UserName:  request.UserName,
		Status:    db_models.RequestStatusPending,
	}
	if err := p.premiumRepo.Insert(ctx, newRequest); err != nil {
		logrus.WithError(err).Error("failed to create premium request")
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PremiumService) ListPending(ctx context.Context) ([]db_models.PremiumRequest, error) {
	requests, err := p.premiumRepo.ListPending(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return requests, nil
}

func (p *PremiumService) Approve(ctx context.Context, id string) error {
	if err := p.premiumRepo.Approve(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRequestNotFound
		}
		logrus.WithError(err).Error("premium approval transaction failed")
		return utils.ErrDatabaseError
	}
	return nil
}
