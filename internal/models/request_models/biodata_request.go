package request_models

type UpsertBiodataRequest struct {
	UserEmail   string `json:"userEmail" binding:"required,email"`
	Name        string `json:"name" binding:"required"`
	BiodataType string `json:"biodataType" binding:"required,oneof=Male Female"`

	ProfileImage string `json:"profileImage"`
	DateOfBirth  string `json:"dateOfBirth"`
	Age          int    `json:"age" binding:"omitempty,gte=18,lte=120"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	Occupation   string `json:"occupation"`
	Race         string `json:"race"`
	FathersName  string `json:"fathersName"`
	MothersName  string `json:"mothersName"`

	PermanentDivision string `json:"permanentDivision"`
	PresentDivision   string `json:"presentDivision"`

	ExpectedPartnerAge    string `json:"expectedPartnerAge"`
	ExpectedPartnerHeight string `json:"expectedPartnerHeight"`
	ExpectedPartnerWeight string `json:"expectedPartnerWeight"`

	MobileNumber string `json:"mobileNumber"`
}

type MakePremiumRequest struct {
	BiodataID int    `json:"biodataId" binding:"required,gt=0"`
	UserEmail string `json:"userEmail" binding:"required,email"`
	UserName  string `json:"userName" binding:"required"`
}
