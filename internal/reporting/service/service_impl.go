package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	reportingdomain "github.com/paydeck/paydeck/internal/reporting/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	log *zap.Logger
	db  *gorm.DB
}

type Params struct {
	fx.In

	Log *zap.Logger
	DB  *gorm.DB
}

func NewService(p Params) reportingdomain.Service {
	return &Service{
		log: p.Log.Named("reporting.service"),
		db:  p.DB,
	}
}

type periodTotals struct {
	RunCount        int64
	GrossPay        int64
	IncomeTax       int64
	EmployeeNI      int64
	EmployerNI      int64
	PensionEmployee int64
	PensionEmployer int64
	StudentLoan     int64
	NetPay          int64
}

func (s *Service) PeriodSummary(ctx context.Context, taxYear string, periodNumber int) (*reportingdomain.PeriodSummary, error) {
	startYear, err := parseTaxYear(taxYear)
	if err != nil {
		return nil, err
	}
	if periodNumber < 1 || periodNumber > 52 {
		return nil, reportingdomain.ErrInvalidPeriod
	}

	var totals periodTotals
	err = s.db.WithContext(ctx).
		Table("pay_runs").
		Select(`COUNT(*) AS run_count,
			COALESCE(SUM(gross_pay), 0) AS gross_pay,
			COALESCE(SUM(income_tax), 0) AS income_tax,
			COALESCE(SUM(employee_ni), 0) AS employee_ni,
			COALESCE(SUM(employer_ni), 0) AS employer_ni,
			COALESCE(SUM(pension_employee), 0) AS pension_employee,
			COALESCE(SUM(pension_employer), 0) AS pension_employer,
			COALESCE(SUM(student_loan), 0) AS student_loan,
			COALESCE(SUM(net_pay), 0) AS net_pay`).
		Where("tax_year = ? AND period_number = ?", taxYear, periodNumber).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return &reportingdomain.PeriodSummary{
		TaxYear:         taxYear,
		PeriodNumber:    periodNumber,
		RunCount:        totals.RunCount,
		GrossPay:        totals.GrossPay,
		IncomeTax:       totals.IncomeTax,
		EmployeeNI:      totals.EmployeeNI,
		EmployerNI:      totals.EmployerNI,
		PensionEmployee: totals.PensionEmployee,
		PensionEmployer: totals.PensionEmployer,
		StudentLoan:     totals.StudentLoan,
		NetPay:          totals.NetPay,
		HMRCLiability:   totals.IncomeTax + totals.EmployeeNI + totals.EmployerNI + totals.StudentLoan,
		PaymentDeadline: paymentDeadline(startYear, periodNumber),
	}, nil
}

// parseTaxYear accepts "2025-26" style years and returns the starting year.
func parseTaxYear(taxYear string) (int, error) {
	parts := strings.SplitN(taxYear, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, reportingdomain.ErrInvalidTaxYear
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, reportingdomain.ErrInvalidTaxYear
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil || (start+1)%100 != end {
		return 0, reportingdomain.ErrInvalidTaxYear
	}
	return start, nil
}

// paymentDeadline maps a monthly period to the 22nd of the following month.
// The tax year starts in April, so period 1 covers April and its remittance
// is due 22 May. Weekly periods are bucketed into the month they fall in.
func paymentDeadline(startYear, periodNumber int) time.Time {
	monthIndex := periodNumber
	if periodNumber > 12 {
		// Weekly period: 4-ish weeks to a month, clamped to the final month.
		monthIndex = (periodNumber-1)/4 + 1
		if monthIndex > 12 {
			monthIndex = 12
		}
	}
	// April is month 4 of startYear; the deadline is one month later again.
	due := time.Date(startYear, time.April, 22, 0, 0, 0, 0, time.UTC)
	return due.AddDate(0, monthIndex, 0)
}
