package request_models

type AddFavouriteRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
	BiodataID int    `json:"biodataId" binding:"required,gt=0"`

	Name             string `json:"name"`
	PermanentAddress string `json:"permanentAddress"`
	Occupation       string `json:"occupation"`
}
