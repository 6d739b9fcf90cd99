package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/shoppulse/internal/domain/dto"
	"github.com/guttosm/shoppulse/internal/logger"
)

// ErrorHandler renders errors attached with c.Error once the handler chain
// returns. A dto.ErrorResponse in the chain is sent as is; anything else
// becomes a generic 500. Nothing happens if a body was already written.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().Err(err).Str("request_id", toString(rid)).Msg("request failed")

	var resp dto.ErrorResponse
	if !errors.As(err, &resp) {
		resp = dto.NewErrorResponse("Internal server error", err)
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// AbortWithError stops the chain and writes status with an ErrorResponse
// built from message and err (err may be nil).
func AbortWithError(c *gin.Context, status int, message string, err error) {
	resp := dto.NewErrorResponse(message, err)
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, resp)
}
