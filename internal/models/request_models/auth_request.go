package request_models

type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	PhotoURL string `json:"photoURL" binding:"omitempty,url"`
}
