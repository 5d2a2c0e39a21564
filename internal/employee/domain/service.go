package domain

import (
	"context"
	"time"

	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name            string                        `json:"name"`
	Email           string                        `json:"email"`
	TaxCode         string                        `json:"tax_code"`
	NICategory      payrolldomain.NICategory      `json:"ni_category"`
	PayFrequency    payrolldomain.PayFrequency    `json:"pay_frequency"`
	BasePay         int64                         `json:"base_pay"`
	PensionOptIn    bool                          `json:"pension_opt_in"`
	PensionRateBP   int64                         `json:"pension_rate_bp"`
	ReliefAtSource  bool                          `json:"relief_at_source"`
	StudentLoanPlan payrolldomain.StudentLoanPlan `json:"student_loan_plan"`
}

type UpdateRequest struct {
	ID              string                         `json:"id"`
	Name            *string                        `json:"name,omitempty"`
	TaxCode         *string                        `json:"tax_code,omitempty"`
	NICategory      *payrolldomain.NICategory      `json:"ni_category,omitempty"`
	PayFrequency    *payrolldomain.PayFrequency    `json:"pay_frequency,omitempty"`
	BasePay         *int64                         `json:"base_pay,omitempty"`
	PensionOptIn    *bool                          `json:"pension_opt_in,omitempty"`
	PensionRateBP   *int64                         `json:"pension_rate_bp,omitempty"`
	ReliefAtSource  *bool                          `json:"relief_at_source,omitempty"`
	StudentLoanPlan *payrolldomain.StudentLoanPlan `json:"student_loan_plan,omitempty"`
}

type ListRequest struct {
	Name         string
	PayFrequency payrolldomain.PayFrequency
}

type Response struct {
	ID              string                        `json:"id"`
	Name            string                        `json:"name"`
	Email           string                        `json:"email"`
	TaxCode         string                        `json:"tax_code"`
	NICategory      payrolldomain.NICategory      `json:"ni_category"`
	PayFrequency    payrolldomain.PayFrequency    `json:"pay_frequency"`
	BasePay         int64                         `json:"base_pay"`
	PensionOptIn    bool                          `json:"pension_opt_in"`
	PensionRateBP   int64                         `json:"pension_rate_bp"`
	ReliefAtSource  bool                          `json:"relief_at_source"`
	StudentLoanPlan payrolldomain.StudentLoanPlan `json:"student_loan_plan"`
	CreatedAt       time.Time                     `json:"created_at"`
	UpdatedAt       time.Time                     `json:"updated_at"`
}

func ToResponse(e *Employee) *Response {
	return &Response{
		ID:              e.ID.String(),
		Name:            e.Name,
		Email:           e.Email,
		TaxCode:         e.TaxCode,
		NICategory:      e.NICategory,
		PayFrequency:    e.PayFrequency,
		BasePay:         e.BasePay,
		PensionOptIn:    e.PensionOptIn,
		PensionRateBP:   e.PensionRateBP,
		ReliefAtSource:  e.ReliefAtSource,
		StudentLoanPlan: e.StudentLoanPlan,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
