package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
)

// BiodataFilter narrows the public listing; zero values mean "no filter".
type BiodataFilter struct {
	BiodataType string
	Division    string
	AgeMin      int
	AgeMax      int
}

type BiodataRepository interface {
	List(ctx context.Context, filter BiodataFilter, sort string, page, limit int) ([]db_models.Biodata, int64, error)
	FindByBiodataID(ctx context.Context, biodataID int) (*db_models.Biodata, error)
	FindByOwner(ctx context.Context, email string) (*db_models.Biodata, error)
	FindSimilar(ctx context.Context, biodataType string, limit int) ([]db_models.Biodata, error)
	CreateWithNextID(ctx context.Context, biodata *db_models.Biodata) error
	Update(ctx context.Context, biodata *db_models.Biodata) error
}

type biodataRepository struct {
	db *gorm.DB
}

func NewBiodataRepository(db *gorm.DB) BiodataRepository {
	return &biodataRepository{db: db}
}

func (b *biodataRepository) List(ctx context.Context, filter BiodataFilter, sort string, page, limit int) ([]db_models.Biodata, int64, error) {
	tx := b.db.WithContext(ctx).Model(&db_models.Biodata{})

	if filter.BiodataType != "" {
		tx = tx.Where("biodata_type = ?", filter.BiodataType)
	}
	if filter.Division != "" {
		tx = tx.Where("permanent_division = ?", filter.Division)
	}
	if filter.AgeMin > 0 {
		tx = tx.Where("age >= ?", filter.AgeMin)
	}
	if filter.AgeMax > 0 {
		tx = tx.Where("age <= ?", filter.AgeMax)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch sort {
	case "ascending":
		tx = tx.Order("age ASC")
	case "descending":
		tx = tx.Order("age DESC")
	}

	var biodatas []db_models.Biodata
	err := tx.Offset((page - 1) * limit).Limit(limit).Find(&biodatas).Error
	if err != nil {
		return nil, 0, err
	}

	return biodatas, total, nil
}

func (b *biodataRepository) FindByBiodataID(ctx context.Context, biodataID int) (*db_models.Biodata, error) {
	var biodata db_models.Biodata
	err := b.db.WithContext(ctx).First(&biodata, "biodata_id = ?", biodataID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &biodata, nil
}

func (b *biodataRepository) FindByOwner(ctx context.Context, email string) (*db_models.Biodata, error) {
	var biodata db_models.Biodata
	err := b.db.WithContext(ctx).First(&biodata, "user_email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &biodata, nil
}

func (b *biodataRepository) FindSimilar(ctx context.Context, biodataType string, limit int) ([]db_models.Biodata, error) {
	var biodatas []db_models.Biodata
	err := b.db.WithContext(ctx).
		Where("biodata_type = ?", biodataType).
		Limit(limit).
		Find(&biodatas).Error
	if err != nil {
		return nil, err
	}
	return biodatas, nil
}

// CreateWithNextID allocates the next sequential biodata id and inserts the
// record in one transaction. The counter-row update takes a row lock, so two
// concurrent creates cannot read the same value; the unique index on
// biodata_id is the backstop.
func (b *biodataRepository) CreateWithNextID(ctx context.Context, biodata *db_models.Biodata) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.BiodataCounter{}).
			Where("id = ?", 1).
			Update("last_id", gorm.Expr("last_id + 1")).Error; err != nil {
			return err
		}

		var counter db_models.BiodataCounter
		if err := tx.First(&counter, "id = ?", 1).Error; err != nil {
			return err
		}

		biodata.BiodataID = counter.LastID
		return tx.Create(biodata).Error
	})
}

func (b *biodataRepository) Update(ctx context.Context, biodata *db_models.Biodata) error {
	return b.db.WithContext(ctx).Save(biodata).Error
}
