package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	payrundomain "github.com/paydeck/paydeck/internal/payrun/domain"
)

func (s *Server) CreatePayRun(c *gin.Context) {
	var req payrundomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.EmployeeID = c.Param("id")

	run, err := s.payRunSvc.Create(c.Request.Context(), req)
	if err != nil {
		s.metrics.IncPayRun("rejected")
		AbortWithError(c, err)
		return
	}

	s.metrics.IncPayRun("created")
	c.JSON(http.StatusCreated, run)
}

func (s *Server) ListPayRuns(c *gin.Context) {
	runs, err := s.payRunSvc.ListByEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pay_runs": runs})
}

func (s *Server) GetPayRunByID(c *gin.Context) {
	run, err := s.payRunSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}
