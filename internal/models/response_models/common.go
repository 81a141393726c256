package response_models

// ListMeta is attached to paginated list responses.
type ListMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
