package service

import (
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
)

// calculateEmployeeNI applies the primary contribution bands: nothing below
// the Primary Threshold, the main rate up to the Upper Earnings Limit and the
// reduced rate on the excess. Category C (state pension age) pays nothing.
func (s *Service) calculateEmployeeNI(gross int64, freq payrolldomain.PayFrequency, category payrolldomain.NICategory) int64 {
	if category == payrolldomain.NICategoryStatePensionAge {
		return 0
	}

	pt := payrolldomain.Periodize(s.tables.NI.PrimaryThreshold, freq)
	uel := payrolldomain.Periodize(s.tables.NI.UpperEarningsLimit, freq)

	if gross <= pt {
		return 0
	}

	mainBand := gross
	if mainBand > uel {
		mainBand = uel
	}
	contribution := payrolldomain.RoundHalfUp(float64(mainBand-pt) * s.tables.NI.EmployeeMainRate)

	if gross > uel {
		contribution += payrolldomain.RoundHalfUp(float64(gross-uel) * s.tables.NI.EmployeeUpperRate)
	}

	return contribution
}

// calculateEmployerNI charges the secondary rate above the Secondary
// Threshold. Category M (under 21) is exempt between the Secondary Threshold
// and the Upper Earnings Limit and pays only on earnings above the UEL.
func (s *Service) calculateEmployerNI(gross int64, freq payrolldomain.PayFrequency, category payrolldomain.NICategory) int64 {
	st := payrolldomain.Periodize(s.tables.NI.SecondaryThreshold, freq)
	uel := payrolldomain.Periodize(s.tables.NI.UpperEarningsLimit, freq)

	if category == payrolldomain.NICategoryUnder21 {
		if gross <= uel {
			return 0
		}
		return payrolldomain.RoundHalfUp(float64(gross-uel) * s.tables.NI.EmployerRate)
	}

	if gross <= st {
		return 0
	}
	return payrolldomain.RoundHalfUp(float64(gross-st) * s.tables.NI.EmployerRate)
}
