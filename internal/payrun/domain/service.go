package domain

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Response, error)
}

// CreateRequest asks for one new pay period. GrossOverride replaces the
// employee's base pay for this period when set; bonus and commission are
// added on top either way.
type CreateRequest struct {
	EmployeeID      string `json:"employee_id"`
	PeriodNumber    int    `json:"period_number"`
	GrossOverride   *int64 `json:"gross_override,omitempty"`
	Bonus           int64  `json:"bonus"`
	Commission      int64  `json:"commission"`
	OtherDeductions int64  `json:"other_deductions"`
}

type Response struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`

	TaxYear      string `json:"tax_year"`
	PeriodNumber int    `json:"period_number"`

	GrossPay         int64 `json:"gross_pay"`
	TaxableIncome    int64 `json:"taxable_income"`
	IncomeTax        int64 `json:"income_tax"`
	EmployeeNI       int64 `json:"employee_ni"`
	EmployerNI       int64 `json:"employer_ni"`
	PensionEmployee  int64 `json:"pension_employee"`
	PensionEmployer  int64 `json:"pension_employer"`
	PensionTaxRelief int64 `json:"pension_tax_relief"`
	StudentLoan      int64 `json:"student_loan"`
	OtherDeductions  int64 `json:"other_deductions"`
	NetPay           int64 `json:"net_pay"`

	CumulativeTaxableIncome int64 `json:"cumulative_taxable_income"`
	CumulativeTaxPaid       int64 `json:"cumulative_tax_paid"`

	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(run *PayRun) *Response {
	return &Response{
		ID:                      run.ID.String(),
		EmployeeID:              run.EmployeeID.String(),
		TaxYear:                 run.TaxYear,
		PeriodNumber:            run.PeriodNumber,
		GrossPay:                run.GrossPay,
		TaxableIncome:           run.TaxableIncome,
		IncomeTax:               run.IncomeTax,
		EmployeeNI:              run.EmployeeNI,
		EmployerNI:              run.EmployerNI,
		PensionEmployee:         run.PensionEmployee,
		PensionEmployer:         run.PensionEmployer,
		PensionTaxRelief:        run.PensionTaxRelief,
		StudentLoan:             run.StudentLoan,
		OtherDeductions:         run.OtherDeductions,
		NetPay:                  run.NetPay,
		CumulativeTaxableIncome: run.CumulativeTaxableIncome,
		CumulativeTaxPaid:       run.CumulativeTaxPaid,
		CreatedAt:               run.CreatedAt,
	}
}
