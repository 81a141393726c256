package db_models

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
)

type PremiumRequest struct {
	BaseModel
	BiodataID int           `gorm:"index" json:"biodataId"`
	UserEmail string        `json:"userEmail"`
	UserName  string        `json:"userName"`
	Status    RequestStatus `gorm:"default:pending;index" json:"status"`
}
