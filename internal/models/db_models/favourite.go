package db_models

type Favourite struct {
	BaseModel
	UserEmail string `gorm:"index;uniqueIndex:idx_favourites_user_biodata" json:"userEmail"`
	BiodataID int    `gorm:"uniqueIndex:idx_favourites_user_biodata" json:"biodataId"`

	// Snapshot for list view
	Name             string `json:"name"`
	PermanentAddress string `json:"permanentAddress"`
	Occupation       string `json:"occupation"`
}
