package db_models

// ContactUnitPrice is the flat USD price of one contact reveal; admin
// revenue is approved requests times this.
const ContactUnitPrice = 5

type ContactRequest struct {
	BaseModel
	BiodataID      int           `gorm:"index" json:"biodataId"`
	RequesterEmail string        `gorm:"index" json:"requesterEmail"`
	Status         RequestStatus `gorm:"default:pending;index" json:"status"`
	TransactionID  string        `json:"transactionId"`
	Amount         int           `gorm:"default:5" json:"amount"`

	// Snapshot data copied from the target biodata at creation time; not
	// re-synced if the biodata changes later.
	BiodataName  string `json:"biodataName"`
	BiodataEmail string `json:"biodataEmail"`
	BiodataPhone string `json:"biodataPhone"`
}
