package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soulmate/internal/models/request_models"
	"soulmate/internal/models/response_models"
	"soulmate/internal/repositories"
	"soulmate/internal/services"
	"soulmate/pkg/utils"
)

type BiodataController struct {
	biodataService services.BiodataServiceInterface
	premiumService services.PremiumServiceInterface
}

func NewBiodataController(biodataService services.BiodataServiceInterface, premiumService services.PremiumServiceInterface) *BiodataController {
	return &BiodataController{
		biodataService: biodataService,
		premiumService: premiumService,
	}
}

// List godoc
// @Summary List biodatas with optional filters
// @Description Conjunctive type/division/age filters, optional age sort, paginated
// @Tags Biodatas
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Results per page"
// @Param type query string false "Male or Female"
// @Param division query string false "Permanent division"
// @Param ageMin query int false "Minimum age"
// @Param ageMax query int false "Maximum age"
// @Param sort query string false "ascending or descending (by age)"
// @Success 200 {object} map[string]interface{}
// @Router /biodatas [get]
func (b *BiodataController) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}

	filter := repositories.BiodataFilter{
		BiodataType: c.Query("type"),
		Division:    c.Query("division"),
	}
	if raw := c.Query("ageMin"); raw != "" {
		filter.AgeMin, err = strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid ageMin")
			return
		}
	}
	if raw := c.Query("ageMax"); raw != "" {
		filter.AgeMax, err = strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid ageMax")
			return
		}
	}

	biodatas, total, err := b.biodataService.List(c.Request.Context(), filter, c.Query("sort"), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondList(c, biodatas, response_models.ListMeta{
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetByID godoc
// @Summary Get a single biodata by its sequential id
// @Tags Biodatas
// @Produce json
// @Param id path int true "Biodata id"
// @Success 200 {object} db_models.Biodata
// @Failure 404 {object} map[string]string
// @Router /biodatas/{id} [get]
func (b *BiodataController) GetByID(c *gin.Context) {
	biodataID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid biodata id")
		return
	}

	biodata, err := b.biodataService.GetByID(c.Request.Context(), biodataID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, biodata)
}

// GetSimilar godoc
// @Summary Get up to 3 biodatas of the given type
// @Tags Biodatas
// @Produce json
// @Param type path string true "Male or Female"
// @Success 200 {array} db_models.Biodata
// @Router /biodatas/similar/{type} [get]
func (b *BiodataController) GetSimilar(c *gin.Context) {
	biodatas, err := b.biodataService.GetSimilar(c.Request.Context(), c.Param("type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, biodatas)
}

// GetByEmail godoc
// @Summary Get the biodata owned by an email
// @Tags Biodatas
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {object} db_models.Biodata
// @Security BearerAuth
// @Router /biodatas/email/{email} [get]
func (b *BiodataController) GetByEmail(c *gin.Context) {
	biodata, err := b.biodataService.GetByOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// No biodata yet is an empty state, not an error
	utils.RespondData(c, biodata)
}

// Upsert godoc
// @Summary Create or update the caller's biodata
// @Description Keyed on owner email; the create path allocates the next sequential id
// @Tags Biodatas
// @Accept json
// @Produce json
// @Param request body request_models.UpsertBiodataRequest true "Biodata payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /biodatas [post]
func (b *BiodataController) Upsert(c *gin.Context) {
	var req request_models.UpsertBiodataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	biodata, created, err := b.biodataService.Upsert(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Biodata Updated Successfully"
	if created {
		message = "Biodata Created Successfully"
	}
	utils.RespondMessage(c, message, gin.H{"biodata": biodata})
}

// MakePremium godoc
// @Summary File a premium upgrade request for a biodata
// @Tags Biodatas
// @Accept json
// @Produce json
// @Param request body request_models.MakePremiumRequest true "Premium request payload"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /biodatas/make-premium [post]
func (b *BiodataController) MakePremium(c *gin.Context) {
	var req request_models.MakePremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := b.premiumService.Create(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Premium request sent to admin", nil)
}
