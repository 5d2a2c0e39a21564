package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetPeriodSummary(c *gin.Context) {
	taxYear := c.Query("tax_year")
	period, err := strconv.Atoi(c.Query("period_number"))
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	summary, err := s.reportSvc.PeriodSummary(c.Request.Context(), taxYear, period)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
