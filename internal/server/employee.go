package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	employeedomain "github.com/paydeck/paydeck/internal/employee/domain"
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
)

func (s *Server) CreateEmployee(c *gin.Context) {
	var req employeedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	employee, err := s.employeeSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), "employee.create", "employee", employee.ID, map[string]any{
		"email": employee.Email,
	})

	c.JSON(http.StatusCreated, employee)
}

func (s *Server) GetEmployeeByID(c *gin.Context) {
	employee, err := s.employeeSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (s *Server) ListEmployees(c *gin.Context) {
	filter := employeedomain.ListRequest{
		Name:         c.Query("name"),
		PayFrequency: payrolldomain.PayFrequency(c.Query("pay_frequency")),
	}

	employees, err := s.employeeSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (s *Server) UpdateEmployee(c *gin.Context) {
	var req employeedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = c.Param("id")

	employee, err := s.employeeSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), "employee.update", "employee", employee.ID, nil)

	c.JSON(http.StatusOK, employee)
}

func (s *Server) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if err := s.employeeSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), "employee.delete", "employee", id, nil)

	c.Status(http.StatusNoContent)
}
