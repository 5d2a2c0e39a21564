package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/paydeck/paydeck/internal/audit/domain"
	employeedomain "github.com/paydeck/paydeck/internal/employee/domain"
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
	payrundomain "github.com/paydeck/paydeck/internal/payrun/domain"
	"github.com/paydeck/paydeck/internal/taxyear"
	"github.com/paydeck/paydeck/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log       *zap.Logger
	node      *snowflake.Node
	tables    *taxyear.Tables
	repo      payrundomain.Repository
	employees employeedomain.Repository
	payroll   payrolldomain.Service
	audit     auditdomain.Service
}

type Params struct {
	fx.In

	Log       *zap.Logger
	Node      *snowflake.Node
	Tables    *taxyear.Tables
	Repo      payrundomain.Repository
	Employees employeedomain.Repository
	Payroll   payrolldomain.Service
	Audit     auditdomain.Service
}

func NewService(p Params) payrundomain.Service {
	return &Service{
		log:       p.Log.Named("payrun.service"),
		node:      p.Node,
		tables:    p.Tables,
		repo:      p.Repo,
		employees: p.Employees,
		payroll:   p.Payroll,
		audit:     p.Audit,
	}
}

func (s *Service) Create(ctx context.Context, req payrundomain.CreateRequest) (*payrundomain.Response, error) {
	employeeID, err := snowflake.ParseString(req.EmployeeID)
	if err != nil {
		return nil, employeedomain.ErrInvalidID
	}

	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, employeedomain.ErrNotFound
	}

	prior, err := s.repo.FindLatest(ctx, employee.ID, s.tables.Year)
	if err != nil {
		return nil, err
	}

	// Periods for a tax year are strictly sequential: the first run must be
	// period 1, every later run must follow its predecessor directly.
	var cumTaxable, cumPaid int64
	switch {
	case prior == nil:
		if req.PeriodNumber != 1 {
			return nil, payrundomain.ErrPeriodOutOfOrder
		}
	case req.PeriodNumber == prior.PeriodNumber+1:
		cumTaxable = prior.CumulativeTaxableIncome
		cumPaid = prior.CumulativeTaxPaid
	case req.PeriodNumber <= prior.PeriodNumber:
		return nil, payrundomain.ErrDuplicatePeriod
	default:
		return nil, payrundomain.ErrPeriodOutOfOrder
	}

	gross := employee.BasePay
	if req.GrossOverride != nil {
		gross = *req.GrossOverride
	}

	input := payrolldomain.CalculationInput{
		GrossPay:                gross,
		TaxCode:                 employee.TaxCode,
		PayFrequency:            employee.PayFrequency,
		PeriodNumber:            req.PeriodNumber,
		NICategory:              employee.NICategory,
		CumulativeTaxableIncome: cumTaxable,
		CumulativeTaxPaid:       cumPaid,
		Bonus:                   req.Bonus,
		Commission:              req.Commission,
		PensionOptIn:            employee.PensionOptIn,
		PensionRateBP:           employee.PensionRateBP,
		ReliefAtSource:          employee.ReliefAtSource,
		StudentLoanPlan:         employee.StudentLoanPlan,
		OtherDeductions:         req.OtherDeductions,
	}

	result, err := s.payroll.Calculate(input)
	if err != nil {
		return nil, err
	}

	run := &payrundomain.PayRun{
		ID:           s.node.Generate(),
		EmployeeID:   employee.ID,
		TaxYear:      s.tables.Year,
		PeriodNumber: req.PeriodNumber,
	}
	payrundomain.FromResult(result, run)

	if err := s.repo.Create(ctx, run); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, payrundomain.ErrDuplicatePeriod
		}
		s.log.Error("failed to create pay run",
			zap.String("employee_id", employee.ID.String()),
			zap.Int("period_number", req.PeriodNumber),
			zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, "pay_run.create", "pay_run", run.ID.String(), map[string]interface{}{
		"employee_id":   employee.ID.String(),
		"tax_year":      run.TaxYear,
		"period_number": run.PeriodNumber,
		"net_pay":       run.NetPay,
	})

	return payrundomain.ToResponse(run), nil
}

func (s *Service) Get(ctx context.Context, id string) (*payrundomain.Response, error) {
	runID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, payrundomain.ErrInvalidID
	}

	run, err := s.repo.FindByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, payrundomain.ErrNotFound
	}
	return payrundomain.ToResponse(run), nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]payrundomain.Response, error) {
	id, err := snowflake.ParseString(employeeID)
	if err != nil {
		return nil, employeedomain.ErrInvalidID
	}

	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, employeedomain.ErrNotFound
	}

	runs, err := s.repo.ListByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]payrundomain.Response, 0, len(runs))
	for i := range runs {
		responses = append(responses, *payrundomain.ToResponse(&runs[i]))
	}
	return responses, nil
}
