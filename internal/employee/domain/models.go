package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
	"github.com/paydeck/paydeck/internal/taxcode"
)

// Employee holds the payroll parameters for one person on the books.
// BasePay is pence per pay period.
type Employee struct {
	ID    snowflake.ID `gorm:"primaryKey"`
	Name  string       `gorm:"type:text;not null"`
	Email string       `gorm:"type:text;not null;uniqueIndex"`

	TaxCode      string                     `gorm:"type:text;not null"`
	NICategory   payrolldomain.NICategory   `gorm:"column:ni_category;type:text;not null;default:'A'"`
	PayFrequency payrolldomain.PayFrequency `gorm:"type:text;not null"`
	BasePay      int64                      `gorm:"not null"`

	PensionOptIn   bool  `gorm:"not null;default:false"`
	PensionRateBP  int64 `gorm:"column:pension_rate_bp;not null;default:0"`
	ReliefAtSource bool  `gorm:"not null;default:false"`

	StudentLoanPlan payrolldomain.StudentLoanPlan `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) Validate() payrolldomain.ValidationErrors {
	var errs payrolldomain.ValidationErrors

	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, payrolldomain.FieldError{Field: "name", Code: "invalid_name", Message: "name is required"})
	}
	if strings.TrimSpace(e.Email) == "" || !strings.Contains(e.Email, "@") {
		errs = append(errs, payrolldomain.FieldError{Field: "email", Code: "invalid_email", Message: "a valid email is required"})
	}
	if _, err := taxcode.Parse(e.TaxCode); err != nil {
		errs = append(errs, payrolldomain.FieldError{Field: "tax_code", Code: "invalid_tax_code", Message: "invalid tax code"})
	}
	if e.NICategory != "" && !e.NICategory.Valid() {
		errs = append(errs, payrolldomain.FieldError{Field: "ni_category", Code: "invalid_ni_category", Message: "unknown NI category"})
	}
	if !e.PayFrequency.Valid() {
		errs = append(errs, payrolldomain.FieldError{Field: "pay_frequency", Code: "invalid_pay_frequency", Message: "unknown pay frequency"})
	}
	if e.BasePay < 0 {
		errs = append(errs, payrolldomain.FieldError{Field: "base_pay", Code: "negative_base_pay", Message: "base pay must not be negative"})
	}
	if !e.StudentLoanPlan.Valid() {
		errs = append(errs, payrolldomain.FieldError{Field: "student_loan_plan", Code: "invalid_student_loan_plan", Message: "unknown student loan plan"})
	}
	if e.PensionOptIn && (e.PensionRateBP < 0 || e.PensionRateBP > 10_000) {
		errs = append(errs, payrolldomain.FieldError{Field: "pension_rate_bp", Code: "invalid_pension_rate", Message: "pension rate must be between 0 and 10000 basis points"})
	}

	return errs
}
