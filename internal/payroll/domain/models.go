// Package domain contains the payroll calculation data model. Everything here
// is transient: inputs are assembled by the caller, results are consumed within
// one calculation, and cumulative tax state is owned by the pay-run store.
package domain

import "math"

// PayFrequency enumerates the supported pay schedules.
type PayFrequency string

const (
	FrequencyWeekly   PayFrequency = "weekly"
	FrequencyBiweekly PayFrequency = "biweekly"
	FrequencyMonthly  PayFrequency = "monthly"
)

// PeriodsPerYear returns the number of pay periods, or 0 for an unknown value.
func (f PayFrequency) PeriodsPerYear() int64 {
	switch f {
	case FrequencyWeekly:
		return 52
	case FrequencyBiweekly:
		return 26
	case FrequencyMonthly:
		return 12
	}
	return 0
}

func (f PayFrequency) Valid() bool { return f.PeriodsPerYear() > 0 }

// NICategory selects the National Insurance threshold policy.
type NICategory string

const (
	NICategoryStandard        NICategory = "A"
	NICategoryStatePensionAge NICategory = "C"
	NICategoryUnder21         NICategory = "M"
)

func (c NICategory) Valid() bool {
	switch c {
	case NICategoryStandard, NICategoryStatePensionAge, NICategoryUnder21:
		return true
	}
	return false
}

// StudentLoanPlan selects the repayment plan; empty means no loan.
type StudentLoanPlan string

const (
	StudentLoanNone     StudentLoanPlan = ""
	StudentLoanPlan1    StudentLoanPlan = "plan1"
	StudentLoanPlan2    StudentLoanPlan = "plan2"
	StudentLoanPostgrad StudentLoanPlan = "postgrad"
)

func (p StudentLoanPlan) Valid() bool {
	switch p {
	case StudentLoanNone, StudentLoanPlan1, StudentLoanPlan2, StudentLoanPostgrad:
		return true
	}
	return false
}

// CalculationInput carries everything one period's calculation needs. Amounts
// are pence; PensionRateBP is basis points of gross pay.
type CalculationInput struct {
	GrossPay     int64        `json:"gross_pay"`
	TaxCode      string       `json:"tax_code"`
	PayFrequency PayFrequency `json:"pay_frequency"`
	PeriodNumber int          `json:"period_number"`
	NICategory   NICategory   `json:"ni_category"`

	CumulativeTaxableIncome int64 `json:"cumulative_taxable_income"`
	CumulativeTaxPaid       int64 `json:"cumulative_tax_paid"`

	Bonus      int64 `json:"bonus"`
	Commission int64 `json:"commission"`

	PensionOptIn   bool  `json:"pension_opt_in"`
	PensionRateBP  int64 `json:"pension_rate_bp"`
	ReliefAtSource bool  `json:"relief_at_source"`

	StudentLoanPlan StudentLoanPlan `json:"student_loan_plan"`

	OtherDeductions int64 `json:"other_deductions"`
}

// BandAmount is one income-tax band's share of the computed tax.
type BandAmount struct {
	Name    string  `json:"name"`
	Rate    float64 `json:"rate"`
	Taxable int64   `json:"taxable"`
	Tax     int64   `json:"tax"`
}

// CalculationResult is the reconciled output for one pay period.
type CalculationResult struct {
	GrossPay          int64 `json:"gross_pay"`
	TaxableIncome     int64 `json:"taxable_income"`
	PersonalAllowance int64 `json:"personal_allowance"`
	IncomeTax         int64 `json:"income_tax"`

	EmployeeNI int64 `json:"employee_ni"`
	EmployerNI int64 `json:"employer_ni"`

	PensionEmployee  int64 `json:"pension_employee"`
	PensionEmployer  int64 `json:"pension_employer"`
	PensionTaxRelief int64 `json:"pension_tax_relief"`

	StudentLoan     int64 `json:"student_loan"`
	OtherDeductions int64 `json:"other_deductions"`

	NetPay       int64 `json:"net_pay"`
	EmployerCost int64 `json:"employer_cost"`

	NewCumulativeTaxableIncome int64 `json:"new_cumulative_taxable_income"`
	NewCumulativeTaxPaid       int64 `json:"new_cumulative_tax_paid"`

	Bands []BandAmount `json:"bands,omitempty"`
}

// RoundHalfUp rounds to the nearest whole penny, halves away from zero.
func RoundHalfUp(raw float64) int64 {
	return int64(math.Floor(raw + 0.5))
}

// Annualize converts a period amount to its annual equivalent.
func Annualize(amount int64, f PayFrequency) int64 {
	return amount * f.PeriodsPerYear()
}

// Periodize converts an annual amount to the period basis, rounded half-up.
// Negative amounts (K-code allowances) round symmetrically.
func Periodize(annual int64, f PayFrequency) int64 {
	periods := f.PeriodsPerYear()
	if periods == 0 {
		return 0
	}
	if annual < 0 {
		return -RoundHalfUp(float64(-annual) / float64(periods))
	}
	return RoundHalfUp(float64(annual) / float64(periods))
}
