package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"soulmate/internal/models/db_models"
	"soulmate/internal/models/request_models"
	"soulmate/internal/repositories"
	"soulmate/pkg/utils"
)

const similarLimit = 3

type BiodataServiceInterface interface {
	List(ctx context.Context, filter repositories.BiodataFilter, sort string, page, limit int) ([]db_models.Biodata, int64, error)
	GetByID(ctx context.Context, biodataID int) (*db_models.Biodata, error)
	GetByOwner(ctx context.Context, email string) (*db_models.Biodata, error)
	GetSimilar(ctx context.Context, biodataType string) ([]db_models.Biodata, error)
	Upsert(ctx context.Context, request request_models.UpsertBiodataRequest) (*db_models.Biodata, bool, error)
}

type BiodataService struct {
	biodataRepo repositories.BiodataRepository
}

func NewBiodataService(biodataRepo repositories.BiodataRepository) BiodataServiceInterface {
	return &BiodataService{biodataRepo: biodataRepo}
}

func (b *BiodataService) List(ctx context.Context, filter repositories.BiodataFilter, sort string, page, limit int) ([]db_models.Biodata, int64, error) {
	biodatas, total, err := b.biodataRepo.List(ctx, filter, sort, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return biodatas, total, nil
}

func (b *BiodataService) GetByID(ctx context.Context, biodataID int) (*db_models.Biodata, error) {
	biodata, err := b.biodataRepo.FindByBiodataID(ctx, biodataID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if biodata == nil {
		return nil, utils.ErrBiodataNotFound
	}
	return biodata, nil
}

// GetByOwner returns nil without error when the user has no biodata yet; the
// dashboard edit form treats that as an empty state, not a failure.
func (b *BiodataService) GetByOwner(ctx context.Context, email string) (*db_models.Biodata, error) {
	biodata, err := b.biodataRepo.FindByOwner(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return biodata, nil
}

func (b *BiodataService) GetSimilar(ctx context.Context, biodataType string) ([]db_models.Biodata, error) {
	biodatas, err := b.biodataRepo.FindSimilar(ctx, biodataType, similarLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return biodatas, nil
}

// Upsert is keyed on the owner email, not on an id from the caller: an
// existing record is merge-overwritten in place, otherwise a new one is
// created under the next sequential id with the contact email defaulted to
// the owner's. The second return reports whether a record was created.
func (b *BiodataService) Upsert(ctx context.Context, request request_models.UpsertBiodataRequest) (*db_models.Biodata, bool, error) {
	existing, err := b.biodataRepo.FindByOwner(ctx, request.UserEmail)
	if err != nil {
		return nil, false, utils.ErrDatabaseError
	}

	if existing != nil {
		applyBiodataFields(existing, request)
		if err := b.biodataRepo.Update(ctx, existing); err != nil {
			logrus.WithError(err).Error("failed to update biodata")
			return nil, false, utils.ErrDatabaseError
		}
		return existing, false, nil
	}

	newBiodata := &db_models.Biodata{
		UserEmail:    request.UserEmail,
		ContactEmail: request.UserEmail,
	}
	applyBiodataFields(newBiodata, request)
	if err := b.biodataRepo.CreateWithNextID(ctx, newBiodata); err != nil {
		logrus.WithError(err).Error("failed to create biodata")
		return nil, false, utils.ErrDatabaseError
	}
	return newBiodata, true, nil
}

func applyBiodataFields(biodata *db_models.Biodata, request request_models.UpsertBiodataRequest) {
	biodata.BiodataType = db_models.BiodataType(request.BiodataType)
	biodata.Name = request.Name
	biodata.ProfileImage = request.ProfileImage
	biodata.DateOfBirth = request.DateOfBirth
	biodata.Age = request.Age
	biodata.Height = request.Height
	biodata.Weight = request.Weight
	biodata.Occupation = request.Occupation
	biodata.Race = request.Race
	biodata.FathersName = request.FathersName
	biodata.MothersName = request.MothersName
	biodata.PermanentDivision = request.PermanentDivision
	biodata.PresentDivision = request.PresentDivision
	biodata.ExpectedPartnerAge = request.ExpectedPartnerAge
	biodata.ExpectedPartnerHeight = request.ExpectedPartnerHeight
	biodata.ExpectedPartnerWeight = request.ExpectedPartnerWeight
	biodata.MobileNumber = request.MobileNumber
}
