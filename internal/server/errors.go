package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smallbiznis/billd/internal/invoice/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware turns collected handler errors into the JSON
// error payload once the handler chain is done.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, invoicedomain.ErrInvoiceNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, invoicedomain.ErrRenderFailed):
		return http.StatusInternalServerError, "PDF gen error"
	case errors.Is(err, invoicedomain.ErrStoreFailed):
		return http.StatusInternalServerError, "DB error"
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, "Invalid request"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
