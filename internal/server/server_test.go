package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	auditdomain "github.com/paydeck/paydeck/internal/audit/domain"
	auditservice "github.com/paydeck/paydeck/internal/audit/service"
	"github.com/paydeck/paydeck/internal/config"
	employeedomain "github.com/paydeck/paydeck/internal/employee/domain"
	employeerepository "github.com/paydeck/paydeck/internal/employee/repository"
	employeeservice "github.com/paydeck/paydeck/internal/employee/service"
	payrollservice "github.com/paydeck/paydeck/internal/payroll/service"
	payrundomain "github.com/paydeck/paydeck/internal/payrun/domain"
	payrunrepository "github.com/paydeck/paydeck/internal/payrun/repository"
	payrunservice "github.com/paydeck/paydeck/internal/payrun/service"
	reportingservice "github.com/paydeck/paydeck/internal/reporting/service"
	"github.com/paydeck/paydeck/internal/taxyear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&employeedomain.Employee{},
		&payrundomain.PayRun{},
		&auditdomain.AuditLog{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	log := zap.NewNop()
	tables := taxyear.Current()

	payrollSvc := payrollservice.NewService(payrollservice.Params{Log: log, Tables: tables})
	employeeRepo := employeerepository.NewRepository(db)
	employeeSvc := employeeservice.NewService(employeeservice.Params{
		Log:   log,
		GenID: node,
		Repo:  employeeRepo,
	})
	auditSvc := auditservice.NewService(auditservice.Params{DB: db, Log: log, GenID: node})
	payRunSvc := payrunservice.NewService(payrunservice.Params{
		Log:       log,
		Node:      node,
		Tables:    tables,
		Repo:      payrunrepository.NewRepository(db),
		Employees: employeeRepo,
		Payroll:   payrollSvc,
		Audit:     auditSvc,
	})
	reportSvc := reportingservice.NewService(reportingservice.Params{Log: log, DB: db})

	return NewServer(ServerParams{
		Gin:         NewEngine(nil),
		Log:         log,
		Cfg:         config.Config{AppName: "paydeck", HTTPAddr: ":0"},
		PayrollSvc:  payrollSvc,
		EmployeeSvc: employeeSvc,
		PayRunSvc:   payRunSvc,
		ReportSvc:   reportSvc,
		AuditSvc:    auditSvc,
	})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func createEmployee(t *testing.T, s *Server) employeedomain.Response {
	t.Helper()

	w := doJSON(t, s, http.MethodPost, "/api/employees", map[string]any{
		"name":          "Priya Shah",
		"email":         "priya@example.com",
		"tax_code":      "1257L",
		"pay_frequency": "monthly",
		"base_pay":      300_000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var employee employeedomain.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employee))
	return employee
}

func TestPreviewPayroll(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/payroll/preview", map[string]any{
		"gross_pay":     300_000,
		"tax_code":      "1257L",
		"pay_frequency": "monthly",
		"period_number": 1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		IncomeTax  int64 `json:"income_tax"`
		EmployeeNI int64 `json:"employee_ni"`
		NetPay     int64 `json:"net_pay"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(39_050), result.IncomeTax)
	assert.Equal(t, int64(15_620), result.EmployeeNI)
	assert.Equal(t, int64(245_330), result.NetPay)
}

func TestPreviewPayrollValidationError(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/payroll/preview", map[string]any{
		"gross_pay":     300_000,
		"tax_code":      "XYZ",
		"pay_frequency": "monthly",
		"period_number": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Type   string `json:"type"`
			Errors []struct {
				Field string `json:"field"`
			} `json:"errors"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	require.NotEmpty(t, resp.Error.Errors)
	assert.Equal(t, "tax_code", resp.Error.Errors[0].Field)
}

func TestEmployeeCRUD(t *testing.T) {
	s := newTestServer(t)
	employee := createEmployee(t, s)

	w := doJSON(t, s, http.MethodGet, "/api/employees/"+employee.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPatch, "/api/employees/"+employee.ID, map[string]any{
		"tax_code": "K475",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated employeedomain.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "K475", updated.TaxCode)

	w = doJSON(t, s, http.MethodDelete, "/api/employees/"+employee.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/employees/"+employee.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	createEmployee(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/employees", map[string]any{
		"name":          "Priya Again",
		"email":         "priya@example.com",
		"tax_code":      "1257L",
		"pay_frequency": "monthly",
		"base_pay":      100_000,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPayRunLifecycle(t *testing.T) {
	s := newTestServer(t)
	employee := createEmployee(t, s)
	base := fmt.Sprintf("/api/employees/%s/payruns", employee.ID)

	w := doJSON(t, s, http.MethodPost, base, map[string]any{"period_number": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var run payrundomain.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	assert.Equal(t, int64(245_330), run.NetPay)

	// Replaying the same period conflicts.
	w = doJSON(t, s, http.MethodPost, base, map[string]any{"period_number": 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Skipping ahead conflicts too.
	w = doJSON(t, s, http.MethodPost, base, map[string]any{"period_number": 3})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, s, http.MethodPost, base, map[string]any{"period_number": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		PayRuns []payrundomain.Response `json:"pay_runs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.PayRuns, 2)

	w = doJSON(t, s, http.MethodGet, "/api/payruns/"+run.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPeriodSummaryEndpoint(t *testing.T) {
	s := newTestServer(t)
	employee := createEmployee(t, s)

	w := doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/employees/%s/payruns", employee.ID), map[string]any{"period_number": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/reports/period-summary?tax_year=2025-26&period_number=1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var summary struct {
		RunCount      int64 `json:"run_count"`
		HMRCLiability int64 `json:"hmrc_liability"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, int64(1), summary.RunCount)
	assert.Equal(t, int64(39_050+15_620+38_750), summary.HMRCLiability)
}
