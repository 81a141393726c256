package request_models

type CreatePaymentIntentRequest struct {
	Price int64 `json:"price" binding:"required,gt=0"`
}

type SavePaymentRequest struct {
	BiodataID     int    `json:"biodataId" binding:"required,gt=0"`
	UserEmail     string `json:"userEmail" binding:"required,email"`
	TransactionID string `json:"transactionId" binding:"required"`
}
