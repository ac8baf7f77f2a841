package handlers

import (
	"net/http"

	apperrors "prayer-roster-backend/internal/errors"
	"prayer-roster-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope of every JSON reply
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope of a failed request
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"error message"`
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: true, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}

// handleError maps a service error onto its status code
func handleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err),
		apperrors.IsAlreadyExists(err),
		apperrors.IsCapacityExceeded(err),
		apperrors.IsAlreadyInitialized(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).
			Error("unexpected error handling request")
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

// bindError reports a malformed request body or query string
func bindError(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, apperrors.NewValidationError("", err.Error()).Error())
}

// parseID reads a UUID path parameter, replying 400 when it is malformed
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid "+entity+" ID")
		return uuid.Nil, false
	}
	return id, true
}
