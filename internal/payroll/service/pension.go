package service

import (
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
)

// employerPensionRateBP is the fixed employer contribution (3%).
const employerPensionRateBP = 300

type pensionResult struct {
	employee int64
	employer int64
	relief   int64
}

func (s *Service) calculatePension(gross int64, optIn bool, rateBP int64, reliefAtSource bool) pensionResult {
	if !optIn {
		return pensionResult{}
	}

	employee := payrolldomain.RoundHalfUp(float64(gross) * float64(rateBP) / 10_000)
	employer := payrolldomain.RoundHalfUp(float64(gross) * float64(employerPensionRateBP) / 10_000)

	var relief int64
	if reliefAtSource {
		// Basic-rate relief grossing: 20% of the grossed-up contribution,
		// i.e. 25% of the net employee contribution.
		relief = payrolldomain.RoundHalfUp(float64(employee) * 0.25)
	}

	return pensionResult{employee: employee, employer: employer, relief: relief}
}
