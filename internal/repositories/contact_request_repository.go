package repositories

import (
	"context"

	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
)

type ContactRequestRepository interface {
	Insert(ctx context.Context, request *db_models.ContactRequest) error
	ListByRequester(ctx context.Context, email string) ([]db_models.ContactRequest, error)
	ListAll(ctx context.Context) ([]db_models.ContactRequest, error)
	Approve(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
}

type contactRequestRepository struct {
	db *gorm.DB
}

func NewContactRequestRepository(db *gorm.DB) ContactRequestRepository {
	return &contactRequestRepository{db: db}
}

func (c *contactRequestRepository) Insert(ctx context.Context, request *db_models.ContactRequest) error {
	return c.db.WithContext(ctx).Create(request).Error
}

func (c *contactRequestRepository) ListByRequester(ctx context.Context, email string) ([]db_models.ContactRequest, error) {
	var requests []db_models.ContactRequest
	err := c.db.WithContext(ctx).
		Where("requester_email = ?", email).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *contactRequestRepository) ListAll(ctx context.Context) ([]db_models.ContactRequest, error) {
	var requests []db_models.ContactRequest
	if err := c.db.WithContext(ctx).Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Approval is the unlock condition consumers check; nothing else changes.
func (c *contactRequestRepository) Approve(ctx context.Context, id string) error {
	res := c.db.WithContext(ctx).
		Model(&db_models.ContactRequest{}).
		Where("id = ?", id).
		Update("status", db_models.RequestStatusApproved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByID is unguarded: deleting a missing request still succeeds.
func (c *contactRequestRepository) DeleteByID(ctx context.Context, id string) error {
	return c.db.WithContext(ctx).Delete(&db_models.ContactRequest{}, "id = ?", id).Error
}
