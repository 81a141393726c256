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

type ContactServiceInterface interface {
	CreateFromPayment(ctx context.Context, request request_models.SavePaymentRequest) error
	ListByRequester(ctx context.Context, email string) ([]db_models.ContactRequest, error)
	ListAll(ctx context.Context) ([]db_models.ContactRequest, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ContactService struct {
	contactRepo repositories.ContactRequestRepository
	biodataRepo repositories.BiodataRepository
}

func NewContactService(contactRepo repositories.ContactRequestRepository, biodataRepo repositories.BiodataRepository) ContactServiceInterface {
	return &ContactService{
		contactRepo: contactRepo,
		biodataRepo: biodataRepo,
	}
}

// CreateFromPayment records a pending contact request after the client
// completed the Stripe payment. The target biodata must exist; its name,
// contact email and phone are copied into the request as an immutable
// snapshot. The transaction id is stored opaque and never checked against
// the processor.
func (c *ContactService) CreateFromPayment(ctx context.Context, request request_models.SavePaymentRequest) error {
	biodata, err := c.biodataRepo.FindByBiodataID(ctx, request.BiodataID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if biodata == nil {
		return utils.ErrBiodataNotFound
	}

	newRequest := &db_models.ContactRequest{
		BiodataID:      request.BiodataID,
		RequesterEmail: request.UserEmail,
		TransactionID:  request.TransactionID,
		Status:         db_models.RequestStatusPending,
		Amount:         db_models.ContactUnitPrice,
		BiodataName:    biodata.Name,
		BiodataEmail:   biodata.ContactEmail,
		BiodataPhone:   biodata.MobileNumber,
	}
	if err := c.contactRepo.Insert(ctx, newRequest); err != nil {
		logrus.WithError(err).Error("failed to save contact request")
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *ContactService) ListByRequester(ctx context.Context, email string) ([]db_models.ContactRequest, error) {
	requests, err := c.contactRepo.ListByRequester(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return requests, nil
}

func (c *ContactService) ListAll(ctx context.Context) ([]db_models.ContactRequest, error) {
	requests, err := c.contactRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return requests, nil
}

func (c *ContactService) Approve(ctx context.Context, id string) error {
	if err := c.contactRepo.Approve(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRequestNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *ContactService) Delete(ctx context.Context, id string) error {
	if err := c.contactRepo.DeleteByID(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
