package services

import (
	"context"
	"errors"
	"testing"

	"soulmate/internal/models/db_models"
	"soulmate/internal/models/request_models"
	"soulmate/internal/repositories"
	"soulmate/internal/testutil"
	"soulmate/pkg/utils"
)

func TestCreateRejectsDuplicatePending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewPremiumService(repositories.NewPremiumRequestRepository(db))
	ctx := context.Background()

	request := request_models.MakePremiumRequest{BiodataID: 1, UserEmail: "a@x.com", UserName: "A"}
	if err := service.Create(ctx, request); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	err := service.Create(ctx, request)
	if !errors.Is(err, utils.ErrPremiumRequestPending) {
		t.Errorf("expected ErrPremiumRequestPending, got %v", err)
	}

	var count int64
	if err := db.Model(&db_models.PremiumRequest{}).Where("biodata_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one request, got %d", count)
	}
}

func TestCreateAllowedAfterApproval(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repositories.NewPremiumRequestRepository(db)
	service := NewPremiumService(repo)
	ctx := context.Background()

	request := request_models.MakePremiumRequest{BiodataID: 1, UserEmail: "a@x.com", UserName: "A"}
	if err := service.Create(ctx, request); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	pending, err := repo.FindPendingByBiodataID(ctx, 1)
	if err != nil || pending == nil {
		t.Fatalf("expected pending request: %v", err)
	}
	if err := service.Approve(ctx, pending.ID.String()); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if err := service.Create(ctx, request); err != nil {
		t.Errorf("expected create after approval to succeed, got %v", err)
	}
}

func TestApproveMissingRequestMapsToNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewPremiumService(repositories.NewPremiumRequestRepository(db))

	err := service.Approve(context.Background(), "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, utils.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got %v", err)
	}
}
