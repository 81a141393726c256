package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soulmate/internal/models/request_models"
	"soulmate/internal/services"
	"soulmate/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// IssueToken godoc
// @Summary Exchange a sign-in payload for a bearer token
// @Description Creates the user record on first sign-in and returns a 1h JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.TokenRequest true "Sign-in payload"
// @Success 200 {object} response_models.TokenResponse
// @Failure 400 {object} map[string]string
// @Router /auth/jwt [post]
func (a *AccountController) IssueToken(c *gin.Context) {
	var req request_models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := a.accountService.IssueToken(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, gin.H{"token": token})
}

// GetUser godoc
// @Summary Get a user's role and premium status
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} db_models.User
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /users/{email} [get]
func (a *AccountController) GetUser(c *gin.Context) {
	user, err := a.accountService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, user)
}
