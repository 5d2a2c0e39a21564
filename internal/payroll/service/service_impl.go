package service

import (
	"errors"

	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
	"github.com/paydeck/paydeck/internal/taxcode"
	"github.com/paydeck/paydeck/internal/taxyear"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	tables *taxyear.Tables
}

type Params struct {
	fx.In

	Log    *zap.Logger
	Tables *taxyear.Tables
}

func NewService(p Params) payrolldomain.Service {
	return &Service{
		log:    p.Log.Named("payroll.service"),
		tables: p.Tables,
	}
}

// Calculate runs one full pay period: PAYE, NI, pension and student loan,
// reconciled into net pay. It either returns a fully populated result or a
// ValidationErrors value; there is no partial failure state.
func (s *Service) Calculate(in payrolldomain.CalculationInput) (*payrolldomain.CalculationResult, error) {
	if errs := s.Validate(in); len(errs) > 0 {
		return nil, errs
	}

	gross := in.GrossPay + in.Bonus + in.Commission

	code, err := taxcode.Parse(in.TaxCode)
	if err != nil {
		// Validate already checked the code; keep the guard for direct callers.
		return nil, payrolldomain.ValidationErrors{{Field: "tax_code", Code: "invalid_tax_code", Message: "invalid tax code"}}
	}

	category := in.NICategory
	if category == "" {
		category = payrolldomain.NICategoryStandard
	}

	tax := s.calculatePAYE(gross, code, in.PayFrequency, in.CumulativeTaxableIncome, in.CumulativeTaxPaid)
	employeeNI := s.calculateEmployeeNI(gross, in.PayFrequency, category)
	employerNI := s.calculateEmployerNI(gross, in.PayFrequency, category)
	pension := s.calculatePension(gross, in.PensionOptIn, in.PensionRateBP, in.ReliefAtSource)
	studentLoan := s.calculateStudentLoan(gross, in.PayFrequency, in.StudentLoanPlan)

	netPay := gross - tax.tax - employeeNI - pension.employee - studentLoan - in.OtherDeductions

	return &payrolldomain.CalculationResult{
		GrossPay:          gross,
		TaxableIncome:     tax.taxable,
		PersonalAllowance: tax.allowance,
		IncomeTax:         tax.tax,

		EmployeeNI: employeeNI,
		EmployerNI: employerNI,

		PensionEmployee:  pension.employee,
		PensionEmployer:  pension.employer,
		PensionTaxRelief: pension.relief,

		StudentLoan:     studentLoan,
		OtherDeductions: in.OtherDeductions,

		NetPay:       netPay,
		EmployerCost: gross + employerNI + pension.employer,

		NewCumulativeTaxableIncome: in.CumulativeTaxableIncome + tax.taxable,
		NewCumulativeTaxPaid:       in.CumulativeTaxPaid + tax.tax,

		Bands: tax.bands,
	}, nil
}

// Validate checks the input before any calculation runs and returns
// field-keyed errors.
func (s *Service) Validate(in payrolldomain.CalculationInput) payrolldomain.ValidationErrors {
	var errs payrolldomain.ValidationErrors

	if in.TaxCode == "" {
		errs = append(errs, payrolldomain.FieldError{Field: "tax_code", Code: "missing_tax_code", Message: "tax code is required"})
	} else if _, err := taxcode.Parse(in.TaxCode); errors.Is(err, taxcode.ErrInvalidTaxCode) {
		errs = append(errs, payrolldomain.FieldError{Field: "tax_code", Code: "invalid_tax_code", Message: "invalid tax code"})
	}

	if !in.PayFrequency.Valid() {
		errs = append(errs, payrolldomain.FieldError{Field: "pay_frequency", Code: "invalid_pay_frequency", Message: "unknown pay frequency"})
	}

	if in.NICategory != "" && !in.NICategory.Valid() {
		errs = append(errs, payrolldomain.FieldError{Field: "ni_category", Code: "invalid_ni_category", Message: "unknown NI category"})
	}

	if !in.StudentLoanPlan.Valid() {
		errs = append(errs, payrolldomain.FieldError{Field: "student_loan_plan", Code: "invalid_student_loan_plan", Message: "unknown student loan plan"})
	}

	if in.GrossPay < 0 {
		errs = append(errs, payrolldomain.FieldError{Field: "gross_pay", Code: "negative_gross_pay", Message: "gross pay must not be negative"})
	}
	if in.Bonus < 0 {
		errs = append(errs, payrolldomain.FieldError{Field: "bonus", Code: "negative_bonus", Message: "bonus must not be negative"})
	}
	if in.Commission < 0 {
		errs = append(errs, payrolldomain.FieldError{Field: "commission", Code: "negative_commission", Message: "commission must not be negative"})
	}
	if in.OtherDeductions < 0 {
		errs = append(errs, payrolldomain.FieldError{Field: "other_deductions", Code: "negative_other_deductions", Message: "other deductions must not be negative"})
	}

	if in.PeriodNumber < 1 {
		errs = append(errs, payrolldomain.FieldError{Field: "period_number", Code: "invalid_period_number", Message: "period number must be at least 1"})
	}

	if in.PensionOptIn && (in.PensionRateBP < 0 || in.PensionRateBP > 10_000) {
		errs = append(errs, payrolldomain.FieldError{Field: "pension_rate_bp", Code: "invalid_pension_rate", Message: "pension rate must be between 0 and 10000 basis points"})
	}

	return errs
}
