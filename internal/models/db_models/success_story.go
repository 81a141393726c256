package db_models

import "time"

type SuccessStory struct {
	BaseModel
	SelfBiodataID    int       `json:"selfBiodataId"`
	PartnerBiodataID int       `json:"partnerBiodataId"`
	CoupleImage      string    `json:"coupleImage"`
	SuccessStoryText string    `json:"successStoryText"`
	MarriageDate     time.Time `gorm:"index" json:"marriageDate"`
	ReviewStar       int       `gorm:"default:5" json:"reviewStar"`
}
