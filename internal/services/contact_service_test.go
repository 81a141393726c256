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

func TestCreateFromPaymentSnapshotsBiodata(t *testing.T) {
	db := testutil.SetupTestDB(t)
	contactRepo := repositories.NewContactRequestRepository(db)
	service := NewContactService(contactRepo, repositories.NewBiodataRepository(db))
	ctx := context.Background()

	biodata := db_models.Biodata{
		BiodataID:    9,
		UserEmail:    "b@x.com",
		BiodataType:  db_models.BiodataTypeFemale,
		Name:         "B",
		ContactEmail: "b-contact@x.com",
		MobileNumber: "01700000000",
	}
	if err := db.Create(&biodata).Error; err != nil {
		t.Fatalf("failed to seed biodata: %v", err)
	}

	request := request_models.SavePaymentRequest{BiodataID: 9, UserEmail: "a@x.com", TransactionID: "txn_123"}
	if err := service.CreateFromPayment(ctx, request); err != nil {
		t.Fatalf("create from payment failed: %v", err)
	}

	requests, err := contactRepo.ListByRequester(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected one contact request, got %d", len(requests))
	}

	got := requests[0]
	if got.Status != db_models.RequestStatusPending {
		t.Errorf("expected pending status, got %q", got.Status)
	}
	if got.Amount != db_models.ContactUnitPrice {
		t.Errorf("expected amount %d, got %d", db_models.ContactUnitPrice, got.Amount)
	}
	if got.BiodataName != "B" || got.BiodataEmail != "b-contact@x.com" || got.BiodataPhone != "01700000000" {
		t.Errorf("snapshot fields not copied: %+v", got)
	}

	// Snapshot stays frozen when the biodata changes
	if err := db.Model(&db_models.Biodata{}).Where("biodata_id = ?", 9).Update("mobile_number", "01800000000").Error; err != nil {
		t.Fatalf("failed to mutate biodata: %v", err)
	}
	requests, err = contactRepo.ListByRequester(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if requests[0].BiodataPhone != "01700000000" {
		t.Errorf("snapshot was re-synced: %q", requests[0].BiodataPhone)
	}
}

func TestCreateFromPaymentMissingBiodata(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewContactService(repositories.NewContactRequestRepository(db), repositories.NewBiodataRepository(db))

	request := request_models.SavePaymentRequest{BiodataID: 404, UserEmail: "a@x.com", TransactionID: "txn_123"}
	err := service.CreateFromPayment(context.Background(), request)
	if !errors.Is(err, utils.ErrBiodataNotFound) {
		t.Errorf("expected ErrBiodataNotFound, got %v", err)
	}
}

func TestApproveMissingContactRequest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewContactService(repositories.NewContactRequestRepository(db), repositories.NewBiodataRepository(db))

	err := service.Approve(context.Background(), "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, utils.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestDeleteMissingContactRequestSucceeds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewContactService(repositories.NewContactRequestRepository(db), repositories.NewBiodataRepository(db))

	if err := service.Delete(context.Background(), "00000000-0000-0000-0000-000000000000"); err != nil {
		t.Errorf("expected unguarded delete to succeed, got %v", err)
	}
}
