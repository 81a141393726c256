package services

import (
	"context"
	"testing"

	"soulmate/internal/models/db_models"
	"soulmate/internal/repositories"
	"soulmate/internal/testutil"
)

func TestStatsCountsAndRevenue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewDashboardService(repositories.NewDashboardRepository(db))
	ctx := context.Background()

	biodatas := []db_models.Biodata{
		{BiodataID: 1, UserEmail: "m1@x.com", BiodataType: db_models.BiodataTypeMale, Name: "M1", IsPremium: true},
		{BiodataID: 2, UserEmail: "m2@x.com", BiodataType: db_models.BiodataTypeMale, Name: "M2"},
		{BiodataID: 3, UserEmail: "f1@x.com", BiodataType: db_models.BiodataTypeFemale, Name: "F1"},
	}
	for i := range biodatas {
		if err := db.Create(&biodatas[i]).Error; err != nil {
			t.Fatalf("failed to seed biodata: %v", err)
		}
	}

	contactRequests := []db_models.ContactRequest{
		{BiodataID: 1, RequesterEmail: "a@x.com", TransactionID: "t1", Status: db_models.RequestStatusApproved, Amount: db_models.ContactUnitPrice},
		{BiodataID: 2, RequesterEmail: "a@x.com", TransactionID: "t2", Status: db_models.RequestStatusApproved, Amount: db_models.ContactUnitPrice},
		{BiodataID: 3, RequesterEmail: "b@x.com", TransactionID: "t3", Status: db_models.RequestStatusPending, Amount: db_models.ContactUnitPrice},
	}
	for i := range contactRequests {
		if err := db.Create(&contactRequests[i]).Error; err != nil {
			t.Fatalf("failed to seed contact request: %v", err)
		}
	}

	stats, err := service.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.TotalBiodata != 3 {
		t.Errorf("expected 3 total biodata, got %d", stats.TotalBiodata)
	}
	if stats.MaleBiodata != 2 {
		t.Errorf("expected 2 male biodata, got %d", stats.MaleBiodata)
	}
	if stats.FemaleBiodata != 1 {
		t.Errorf("expected 1 female biodata, got %d", stats.FemaleBiodata)
	}
	if stats.PremiumBiodata != 1 {
		t.Errorf("expected 1 premium biodata, got %d", stats.PremiumBiodata)
	}
	if stats.Revenue != 2*db_models.ContactUnitPrice {
		t.Errorf("expected revenue %d, got %d", 2*db_models.ContactUnitPrice, stats.Revenue)
	}
}

func TestStatsEmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewDashboardService(repositories.NewDashboardRepository(db))

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalBiodata != 0 || stats.Revenue != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
