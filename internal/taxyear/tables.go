// Package taxyear holds the versioned HMRC constant tables for the supported
// tax year. The tables are built once and passed by reference into the payroll
// calculators; supporting another year means substituting this table, not
// adding a runtime parameter.
package taxyear

import (
	"math"

	"go.uber.org/fx"
)

// NoUpperBound marks the open-ended top band.
const NoUpperBound = int64(math.MaxInt64)

// Band is one slice of taxable income, bounds in pence, ascending and
// contiguous within a table.
type Band struct {
	Name  string
	Lower int64
	Upper int64
	Rate  float64
}

// NIRates holds the annual National Insurance thresholds (pence) and rates.
type NIRates struct {
	PrimaryThreshold   int64
	UpperEarningsLimit int64
	SecondaryThreshold int64
	EmployeeMainRate   float64
	EmployeeUpperRate  float64
	EmployerRate       float64
}

// StudentLoanPlan holds one plan's annual threshold (pence) and deduction rate.
type StudentLoanPlan struct {
	AnnualThreshold int64
	Rate            float64
}

// Tables is the full constant set for one tax year.
type Tables struct {
	Year string

	BandsRestOfUK []Band
	BandsScotland []Band

	NI NIRates

	StudentLoans map[string]StudentLoanPlan
}

// Current returns the 2025/26 tables. All amounts are pence; band bounds are
// over taxable income, i.e. after the personal allowance has been deducted.
func Current() *Tables {
	return &Tables{
		Year: "2025-26",

		BandsRestOfUK: []Band{
			{Name: "basic", Lower: 0, Upper: 3_770_000, Rate: 0.20},
			{Name: "higher", Lower: 3_770_000, Upper: 11_257_000, Rate: 0.40},
			{Name: "additional", Lower: 11_257_000, Upper: NoUpperBound, Rate: 0.45},
		},

		BandsScotland: []Band{
			{Name: "starter", Lower: 0, Upper: 282_700, Rate: 0.19},
			{Name: "basic", Lower: 282_700, Upper: 1_492_100, Rate: 0.20},
			{Name: "intermediate", Lower: 1_492_100, Upper: 3_109_200, Rate: 0.21},
			{Name: "higher", Lower: 3_109_200, Upper: 6_243_000, Rate: 0.42},
			{Name: "advanced", Lower: 6_243_000, Upper: 11_257_000, Rate: 0.45},
			{Name: "top", Lower: 11_257_000, Upper: NoUpperBound, Rate: 0.48},
		},

		NI: NIRates{
			PrimaryThreshold:   1_257_000,
			UpperEarningsLimit: 5_027_000,
			SecondaryThreshold: 500_000,
			EmployeeMainRate:   0.08,
			EmployeeUpperRate:  0.02,
			EmployerRate:       0.15,
		},

		StudentLoans: map[string]StudentLoanPlan{
			"plan1":    {AnnualThreshold: 2_606_500, Rate: 0.09},
			"plan2":    {AnnualThreshold: 2_847_000, Rate: 0.09},
			"postgrad": {AnnualThreshold: 2_100_000, Rate: 0.06},
		},
	}
}

var Module = fx.Module("taxyear",
	fx.Provide(Current),
)
