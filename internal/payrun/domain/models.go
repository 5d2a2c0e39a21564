package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
)

// PayRun is one employee's persisted pay period. The cumulative_* columns
// store the post-period totals and seed the next period's calculation; callers
// never supply cumulative state directly.
type PayRun struct {
	ID         snowflake.ID `gorm:"primaryKey"`
	EmployeeID snowflake.ID `gorm:"not null;index;uniqueIndex:idx_pay_runs_period,priority:1"`

	TaxYear      string `gorm:"type:text;not null;uniqueIndex:idx_pay_runs_period,priority:2"`
	PeriodNumber int    `gorm:"not null;uniqueIndex:idx_pay_runs_period,priority:3"`

	GrossPay         int64 `gorm:"not null"`
	TaxableIncome    int64 `gorm:"not null"`
	IncomeTax        int64 `gorm:"not null"`
	EmployeeNI       int64 `gorm:"column:employee_ni;not null"`
	EmployerNI       int64 `gorm:"column:employer_ni;not null"`
	PensionEmployee  int64 `gorm:"not null"`
	PensionEmployer  int64 `gorm:"not null"`
	PensionTaxRelief int64 `gorm:"not null"`
	StudentLoan      int64 `gorm:"not null"`
	OtherDeductions  int64 `gorm:"not null"`
	NetPay           int64 `gorm:"not null"`

	CumulativeTaxableIncome int64 `gorm:"not null"`
	CumulativeTaxPaid       int64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (PayRun) TableName() string { return "pay_runs" }

// FromResult copies a calculation result into a persistable run.
func FromResult(result *payrolldomain.CalculationResult, run *PayRun) {
	run.GrossPay = result.GrossPay
	run.TaxableIncome = result.TaxableIncome
	run.IncomeTax = result.IncomeTax
	run.EmployeeNI = result.EmployeeNI
	run.EmployerNI = result.EmployerNI
	run.PensionEmployee = result.PensionEmployee
	run.PensionEmployer = result.PensionEmployer
	run.PensionTaxRelief = result.PensionTaxRelief
	run.StudentLoan = result.StudentLoan
	run.OtherDeductions = result.OtherDeductions
	run.NetPay = result.NetPay
	run.CumulativeTaxableIncome = result.NewCumulativeTaxableIncome
	run.CumulativeTaxPaid = result.NewCumulativeTaxPaid
}
