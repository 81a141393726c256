package repositories

import (
	"context"

	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
)

type DashboardRepository interface {
	CountBiodata(ctx context.Context) (int64, error)
	CountBiodataByType(ctx context.Context, biodataType db_models.BiodataType) (int64, error)
	CountPremiumBiodata(ctx context.Context) (int64, error)
	CountApprovedContactRequests(ctx context.Context) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountBiodata(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Biodata{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountBiodataByType(ctx context.Context, biodataType db_models.BiodataType) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Biodata{}).
		Where("biodata_type = ?", biodataType).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountPremiumBiodata(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Biodata{}).
		Where("is_premium = ?", true).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountApprovedContactRequests(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.ContactRequest{}).
		Where("status = ?", db_models.RequestStatusApproved).
		Count(&n).Error
	return n, err
}
