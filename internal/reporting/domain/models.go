package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidTaxYear = errors.New("invalid_tax_year")
	ErrInvalidPeriod  = errors.New("invalid_period")
)

// PeriodSummary aggregates every stored pay run for one (tax year, period)
// across the whole workforce.
type PeriodSummary struct {
	TaxYear      string `json:"tax_year"`
	PeriodNumber int    `json:"period_number"`
	RunCount     int64  `json:"run_count"`

	GrossPay        int64 `json:"gross_pay"`
	IncomeTax       int64 `json:"income_tax"`
	EmployeeNI      int64 `json:"employee_ni"`
	EmployerNI      int64 `json:"employer_ni"`
	PensionEmployee int64 `json:"pension_employee"`
	PensionEmployer int64 `json:"pension_employer"`
	StudentLoan     int64 `json:"student_loan"`
	NetPay          int64 `json:"net_pay"`

	// HMRCLiability is what the employer owes HMRC for the period: PAYE tax,
	// both sides of NI, and collected student loan repayments.
	HMRCLiability int64 `json:"hmrc_liability"`

	// PaymentDeadline is the 22nd of the month after the period's month,
	// the electronic payment deadline for PAYE remittance.
	PaymentDeadline time.Time `json:"payment_deadline"`
}

type Service interface {
	PeriodSummary(ctx context.Context, taxYear string, periodNumber int) (*PeriodSummary, error)
}
