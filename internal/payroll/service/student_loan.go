package service

import (
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
)

func (s *Service) calculateStudentLoan(gross int64, freq payrolldomain.PayFrequency, plan payrolldomain.StudentLoanPlan) int64 {
	if plan == payrolldomain.StudentLoanNone {
		return 0
	}

	loan, ok := s.tables.StudentLoans[string(plan)]
	if !ok {
		return 0
	}

	threshold := payrolldomain.Periodize(loan.AnnualThreshold, freq)
	if gross <= threshold {
		return 0
	}

	return payrolldomain.RoundHalfUp(float64(gross-threshold) * loan.Rate)
}
