package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soulmate/internal/models/request_models"
	"soulmate/internal/services"
	"soulmate/pkg/utils"
)

// UserController serves the requester-side surfaces: favourites and the
// caller's own contact requests.
type UserController struct {
	favouriteService services.FavouriteServiceInterface
	contactService   services.ContactServiceInterface
}

func NewUserController(favouriteService services.FavouriteServiceInterface, contactService services.ContactServiceInterface) *UserController {
	return &UserController{
		favouriteService: favouriteService,
		contactService:   contactService,
	}
}

// ListFavourites godoc
// @Summary List a user's favourites
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {array} db_models.Favourite
// @Security BearerAuth
// @Router /users/favourites/{email} [get]
func (u *UserController) ListFavourites(c *gin.Context) {
	favourites, err := u.favouriteService.ListByUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, favourites)
}

// AddFavourite godoc
// @Summary Add a biodata to a user's favourites
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.AddFavouriteRequest true "Favourite payload"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /users/favourites [post]
func (u *UserController) AddFavourite(c *gin.Context) {
	var req request_models.AddFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := u.favouriteService.Add(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Added to favourites", nil)
}

// RemoveFavourite godoc
// @Summary Remove a favourite by id
// @Tags Users
// @Produce json
// @Param id path string true "Favourite id"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /users/favourites/{id} [delete]
func (u *UserController) RemoveFavourite(c *gin.Context) {
	if err := u.favouriteService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Removed from favourites", nil)
}

// ListContactRequests godoc
// @Summary List the caller's contact requests
// @Tags Users
// @Produce json
// @Param email path string true "Requester email"
// @Success 200 {array} db_models.ContactRequest
// @Security BearerAuth
// @Router /users/contact-requests/{email} [get]
func (u *UserController) ListContactRequests(c *gin.Context) {
	requests, err := u.contactService.ListByRequester(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, requests)
}

// DeleteContactRequest godoc
// @Summary Delete a contact request by id
// @Tags Users
// @Produce json
// @Param id path string true "Contact request id"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /users/contact-requests/{id} [delete]
func (u *UserController) DeleteContactRequest(c *gin.Context) {
	if err := u.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Request deleted", nil)
}
