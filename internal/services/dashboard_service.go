package services

import (
	"context"

	"soulmate/internal/models/db_models"
	"soulmate/internal/models/response_models"
	"soulmate/internal/repositories"
	"soulmate/pkg/utils"
)

type DashboardServiceInterface interface {
	Stats(ctx context.Context) (*response_models.AdminStatsResponse, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// Stats recomputes the dashboard figures on every call; revenue is the
// count of approved contact requests times the flat unit price, not a
// running ledger.
func (d *DashboardService) Stats(ctx context.Context) (*response_models.AdminStatsResponse, error) {
	total, err := d.dashboardRepo.CountBiodata(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	male, err := d.dashboardRepo.CountBiodataByType(ctx, db_models.BiodataTypeMale)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	female, err := d.dashboardRepo.CountBiodataByType(ctx, db_models.BiodataTypeFemale)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	premium, err := d.dashboardRepo.CountPremiumBiodata(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	approved, err := d.dashboardRepo.CountApprovedContactRequests(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdminStatsResponse{
		TotalBiodata:   total,
		MaleBiodata:    male,
		FemaleBiodata:  female,
		PremiumBiodata: premium,
		Revenue:        approved * db_models.ContactUnitPrice,
	}, nil
}
