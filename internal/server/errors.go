package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	employeedomain "github.com/paydeck/paydeck/internal/employee/domain"
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
	payrundomain "github.com/paydeck/paydeck/internal/payrun/domain"
	reportingdomain "github.com/paydeck/paydeck/internal/reporting/domain"
	"github.com/paydeck/paydeck/internal/taxcode"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string                     `json:"type"`
	Message string                     `json:"message"`
	Errors  []payrolldomain.FieldError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware turns errors attached to the gin context into one
// consistent JSON error envelope. Handlers report errors via AbortWithError
// and never write error bodies themselves.
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

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var vErrs payrolldomain.ValidationErrors
	if errors.As(err, &vErrs) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErrs,
		}
	}

	switch {
	case isBadRequestError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: "invalid request",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isBadRequestError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, employeedomain.ErrInvalidID),
		errors.Is(err, payrundomain.ErrInvalidID),
		errors.Is(err, taxcode.ErrInvalidTaxCode),
		errors.Is(err, reportingdomain.ErrInvalidTaxYear),
		errors.Is(err, reportingdomain.ErrInvalidPeriod):
		return true
	}
	return false
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, employeedomain.ErrNotFound),
		errors.Is(err, payrundomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	}
	return false
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, employeedomain.ErrDuplicateEmail),
		errors.Is(err, payrundomain.ErrDuplicatePeriod),
		errors.Is(err, payrundomain.ErrPeriodOutOfOrder):
		return true
	}
	return false
}
