package response_models

// AdminStatsResponse is recomputed per request; counts are consistent only
// as of query time.
type AdminStatsResponse struct {
	TotalBiodata   int64 `json:"totalBiodata"`
	MaleBiodata    int64 `json:"maleBiodata"`
	FemaleBiodata  int64 `json:"femaleBiodata"`
	PremiumBiodata int64 `json:"premiumBiodata"`
	Revenue        int64 `json:"revenue"`
}
