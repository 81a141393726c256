package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
)

type PremiumRequestRepository interface {
	Insert(ctx context.Context, request *db_models.PremiumRequest) error
	FindPendingByBiodataID(ctx context.Context, biodataID int) (*db_models.PremiumRequest, error)
	ListPending(ctx context.Context) ([]db_models.PremiumRequest, error)
	Approve(ctx context.Context, id string) error
}

type premiumRequestRepository struct {
	db *gorm.DB
}

func NewPremiumRequestRepository(db *gorm.DB) PremiumRequestRepository {
	return &premiumRequestRepository{db: db}
}

func (p *premiumRequestRepository) Insert(ctx context.Context, request *db_models.PremiumRequest) error {
	return p.db.WithContext(ctx).Create(request).Error
}

func (p *premiumRequestRepository) FindPendingByBiodataID(ctx context.Context, biodataID int) (*db_models.PremiumRequest, error) {
	var request db_models.PremiumRequest
	err := p.db.WithContext(ctx).
		First(&request, "biodata_id = ? AND status = ?", biodataID, db_models.RequestStatusPending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (p *premiumRequestRepository) ListPending(ctx context.Context) ([]db_models.PremiumRequest, error) {
	var requests []db_models.PremiumRequest
	err := p.db.WithContext(ctx).
		Where("status = ?", db_models.RequestStatusPending).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Approve marks the request approved and flips the premium flag on both the
// user and the biodata named by the request. All three writes share one
// transaction: the two flags never diverge on a partial failure.
func (p *premiumRequestRepository) Approve(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request db_models.PremiumRequest
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&request).
			Update("status", db_models.RequestStatusApproved).Error; err != nil {
			return err
		}

		if err := tx.Model(&db_models.User{}).
			Where("email = ?", request.UserEmail).
			Update("is_premium", true).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.Biodata{}).
			Where("biodata_id = ?", request.BiodataID).
			Update("is_premium", true).Error
	})
}
