package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
	"soulmate/internal/testutil"
)

func TestApproveFlipsBothPremiumFlags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	user := db_models.User{Name: "A", Email: "a@x.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	biodata := db_models.Biodata{BiodataID: 1, UserEmail: "a@x.com", BiodataType: db_models.BiodataTypeMale}
	if err := db.Create(&biodata).Error; err != nil {
		t.Fatalf("failed to seed biodata: %v", err)
	}
	request := db_models.PremiumRequest{BiodataID: 1, UserEmail: "a@x.com", UserName: "A", Status: db_models.RequestStatusPending}
	if err := db.Create(&request).Error; err != nil {
		t.Fatalf("failed to seed premium request: %v", err)
	}

	repo := NewPremiumRequestRepository(db)
	if err := repo.Approve(ctx, request.ID.String()); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	var gotRequest db_models.PremiumRequest
	if err := db.First(&gotRequest, "id = ?", request.ID).Error; err != nil {
		t.Fatalf("failed to reload request: %v", err)
	}
	if gotRequest.Status != db_models.RequestStatusApproved {
		t.Errorf("expected status approved, got %q", gotRequest.Status)
	}

	var gotUser db_models.User
	if err := db.First(&gotUser, "email = ?", "a@x.com").Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	var gotBiodata db_models.Biodata
	if err := db.First(&gotBiodata, "biodata_id = ?", 1).Error; err != nil {
		t.Fatalf("failed to reload biodata: %v", err)
	}

	if !gotUser.IsPremium || !gotBiodata.IsPremium {
		t.Errorf("premium flags diverged: user=%v biodata=%v", gotUser.IsPremium, gotBiodata.IsPremium)
	}
}

func TestApproveMissingRequest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewPremiumRequestRepository(db)

	err := repo.Approve(context.Background(), "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestFindPendingByBiodataID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewPremiumRequestRepository(db)
	ctx := context.Background()

	approved := db_models.PremiumRequest{BiodataID: 7, UserEmail: "a@x.com", UserName: "A", Status: db_models.RequestStatusApproved}
	if err := db.Create(&approved).Error; err != nil {
		t.Fatalf("failed to seed approved request: %v", err)
	}

	// An approved request does not block a new one
	got, err := repo.FindPendingByBiodataID(ctx, 7)
	if err != nil {
		t.Fatalf("find pending failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected no pending request, got %+v", got)
	}

	pending := db_models.PremiumRequest{BiodataID: 7, UserEmail: "a@x.com", UserName: "A", Status: db_models.RequestStatusPending}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("failed to seed pending request: %v", err)
	}

	got, err = repo.FindPendingByBiodataID(ctx, 7)
	if err != nil {
		t.Fatalf("find pending failed: %v", err)
	}
	if got == nil || got.ID != pending.ID {
		t.Errorf("expected the pending request, got %+v", got)
	}
}
