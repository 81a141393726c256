package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soulmate/internal/models/request_models"
	"soulmate/internal/services"
	"soulmate/pkg/utils"
)

type StoryController struct {
	storyService services.StoryServiceInterface
}

func NewStoryController(storyService services.StoryServiceInterface) *StoryController {
	return &StoryController{
		storyService: storyService,
	}
}

// List godoc
// @Summary List success stories, newest marriage first
// @Tags SuccessStories
// @Produce json
// @Success 200 {array} db_models.SuccessStory
// @Router /success-stories [get]
func (s *StoryController) List(c *gin.Context) {
	stories, err := s.storyService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, stories)
}

// Create godoc
// @Summary Submit a success story
// @Tags SuccessStories
// @Accept json
// @Produce json
// @Param request body request_models.CreateSuccessStoryRequest true "Story payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /success-stories [post]
func (s *StoryController) Create(c *gin.Context) {
	var req request_models.CreateSuccessStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := s.storyService.Create(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Success Story Added", nil)
}
