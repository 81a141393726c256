package controllers

import (
	"github.com/gin-gonic/gin"

	"soulmate/internal/services"
	"soulmate/pkg/utils"
)

type AdminController struct {
	accountService   services.AccountServiceInterface
	premiumService   services.PremiumServiceInterface
	contactService   services.ContactServiceInterface
	dashboardService services.DashboardServiceInterface
}

func NewAdminController(
	accountService services.AccountServiceInterface,
	premiumService services.PremiumServiceInterface,
	contactService services.ContactServiceInterface,
	dashboardService services.DashboardServiceInterface,
) *AdminController {
	return &AdminController{
		accountService:   accountService,
		premiumService:   premiumService,
		contactService:   contactService,
		dashboardService: dashboardService,
	}
}

// Stats godoc
// @Summary Dashboard counters and revenue
// @Tags Admin
// @Produce json
// @Success 200 {object} response_models.AdminStatsResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (a *AdminController) Stats(c *gin.Context) {
	stats, err := a.dashboardService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, stats)
}

// ListUsers godoc
// @Summary List all users, optionally matching a name search
// @Tags Admin
// @Produce json
// @Param search query string false "Case-insensitive name match"
// @Success 200 {array} db_models.User
// @Security BearerAuth
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.accountService.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, users)
}

// MakeAdmin godoc
// @Summary Grant the admin role to a user
// @Tags Admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/users/admin/{id} [patch]
func (a *AdminController) MakeAdmin(c *gin.Context) {
	if err := a.accountService.MakeAdmin(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "User made admin", nil)
}

// MakePremium godoc
// @Summary Grant premium directly to a user and their biodata
// @Tags Admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/users/premium/{id} [patch]
func (a *AdminController) MakePremium(c *gin.Context) {
	if err := a.accountService.MakePremium(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "User made premium", nil)
}

// ListPremiumRequests godoc
// @Summary List pending premium requests
// @Tags Admin
// @Produce json
// @Success 200 {array} db_models.PremiumRequest
// @Security BearerAuth
// @Router /admin/premium-requests [get]
func (a *AdminController) ListPremiumRequests(c *gin.Context) {
	requests, err := a.premiumService.ListPending(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, requests)
}

// ApprovePremiumRequest godoc
// @Summary Approve a premium request
// @Description Sets the request approved and flips both premium flags in one transaction
// @Tags Admin
// @Produce json
// @Param id path string true "Premium request id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/premium-request/approve/{id} [patch]
func (a *AdminController) ApprovePremiumRequest(c *gin.Context) {
	if err := a.premiumService.Approve(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Premium Approved", nil)
}

// ListContactRequests godoc
// @Summary List all contact requests
// @Tags Admin
// @Produce json
// @Success 200 {array} db_models.ContactRequest
// @Security BearerAuth
// @Router /admin/contact-requests [get]
func (a *AdminController) ListContactRequests(c *gin.Context) {
	requests, err := a.contactService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, requests)
}

// ApproveContactRequest godoc
// @Summary Approve a contact request
// @Tags Admin
// @Produce json
// @Param id path string true "Contact request id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/contact-request/approve/{id} [patch]
func (a *AdminController) ApproveContactRequest(c *gin.Context) {
	if err := a.contactService.Approve(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Contact Request Approved", nil)
}
