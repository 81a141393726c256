package db_models

type BiodataType string

const (
	BiodataTypeMale   BiodataType = "Male"
	BiodataTypeFemale BiodataType = "Female"
)

type Biodata struct {
	BaseModel
	BiodataID   int         `gorm:"uniqueIndex" json:"biodataId"`
	UserEmail   string      `gorm:"uniqueIndex" json:"userEmail"`
	BiodataType BiodataType `gorm:"index" json:"biodataType"`

	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
	DateOfBirth  string `json:"dateOfBirth"`
	Age          int    `gorm:"index" json:"age"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	Occupation   string `json:"occupation"`
	Race         string `json:"race"`
	FathersName  string `json:"fathersName"`
	MothersName  string `json:"mothersName"`

	PermanentDivision string `gorm:"index" json:"permanentDivision"`
	PresentDivision   string `json:"presentDivision"`

	ExpectedPartnerAge    string `json:"expectedPartnerAge"`
	ExpectedPartnerHeight string `json:"expectedPartnerHeight"`
	ExpectedPartnerWeight string `json:"expectedPartnerWeight"`

	ContactEmail string `json:"contactEmail"`
	MobileNumber string `json:"mobileNumber"`

	IsPremium bool   `gorm:"default:false" json:"isPremium"`
	Status    string `gorm:"default:active" json:"status"`
}

// BiodataCounter is a single-row table backing sequential biodata id
// allocation. Incrementing it inside a transaction takes a row lock, so
// concurrent creates cannot observe the same value.
type BiodataCounter struct {
	ID     int `gorm:"primaryKey"`
	LastID int `gorm:"not null"`
}
