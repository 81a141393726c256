package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RespondData returns a bare entity or collection.
func RespondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondList wraps a paginated collection in the {data, meta} envelope.
func RespondList(c *gin.Context, data interface{}, meta interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": meta})
}

// RespondMessage is used by mutation endpoints; extra holds an optional
// echoed entity under its own key.
func RespondMessage(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// HandleServiceError maps sentinel service errors to HTTP statuses; anything
// unrecognized collapses to a generic 500 with no detail leaked.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrBiodataNotFound),
		errors.Is(err, ErrRequestNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyFavourite),
		errors.Is(err, ErrPremiumRequestPending):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidPage), errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Server Error")
	}
}
