package request_models

type CreateSuccessStoryRequest struct {
	SelfBiodataID    int    `json:"selfBiodataId" binding:"required,gt=0"`
	PartnerBiodataID int    `json:"partnerBiodataId" binding:"required,gt=0"`
	CoupleImage      string `json:"coupleImage" binding:"required"`
	SuccessStoryText string `json:"successStoryText" binding:"required"`
	MarriageDate     string `json:"marriageDate" binding:"omitempty,datetime=2006-01-02"`
	ReviewStar       int    `json:"reviewStar" binding:"omitempty,gte=1,lte=5"`
}
