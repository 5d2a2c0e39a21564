package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
)

// PreviewPayroll runs a standalone calculation without touching stored state.
// Callers supply cumulative figures explicitly; nothing is persisted.
func (s *Server) PreviewPayroll(c *gin.Context) {
	var input payrolldomain.CalculationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.payrollSvc.Calculate(input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.metrics.IncPreview()
	c.JSON(http.StatusOK, result)
}
