package handlers

import (
	"net/http"

	"clinic_queue/internal/queue"
	"clinic_queue/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// writeEngineError maps the engine's error taxonomy onto HTTP.
func writeEngineError(c *gin.Context, err error, notFound response.ErrorResponse) {
	switch {
	case errors.Is(err, queue.ErrInternal):
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Queue storage failure",
			Details: err.Error(),
		})
	case errors.Is(err, queue.ErrInvalidState):
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "INVALID_STATE",
			Message: "Transition not permitted",
			Details: err.Error(),
		})
	case errors.Is(err, queue.ErrNotFound):
		notFound.Details = err.Error()
		c.JSON(http.StatusNotFound, notFound)
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Unexpected error",
			Details: err.Error(),
		})
	}
}

var entryNotFound = response.ErrorResponse{
	Code:    "QUEUE_ENTRY_NOT_FOUND",
	Message: "Queue entry not found",
}
