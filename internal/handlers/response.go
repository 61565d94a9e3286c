package handlers

import (
	"errors"
	"net/http"

	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

// envelope is the JSON shape of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const msgInternalError = "Internal server error"

func respond(c *gin.Context, code int, message string, data any) {
	c.JSON(code, envelope{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, envelope{Success: false, Message: message})
}

func abortError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, envelope{Success: false, Message: message})
}

// respondServiceError maps domain errors onto status codes; anything
// unexpected becomes a logged 500 with a generic message.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrChecklistNotFound):
		respondError(c, http.StatusNotFound, "Checklist not found")
	case errors.Is(err, service.ErrItemNotFound):
		respondError(c, http.StatusNotFound, "Todo item not found")
	case errors.Is(err, service.ErrNotOwner):
		respondError(c, http.StatusForbidden, "You are not authorized to access this resource")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusBadRequest, "Email is already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		respondError(c, http.StatusInternalServerError, msgInternalError)
	}
}
