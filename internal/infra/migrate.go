package infra

import (
	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
)

// Migrate creates or updates the schema and seeds the biodata id counter
// from the highest id already present.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Biodata{},
		&db_models.BiodataCounter{},
		&db_models.Favourite{},
		&db_models.PremiumRequest{},
		&db_models.ContactRequest{},
		&db_models.SuccessStory{},
	); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&db_models.BiodataCounter{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		var maxID int
		row := db.Model(&db_models.Biodata{}).Select("COALESCE(MAX(biodata_id), 0)").Row()
		if err := row.Scan(&maxID); err != nil {
			return err
		}
		if err := db.Create(&db_models.BiodataCounter{ID: 1, LastID: maxID}).Error; err != nil {
			return err
		}
	}

	return nil
}
