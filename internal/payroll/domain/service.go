package domain

// Service is the payroll calculation core. Calculate is a pure function of its
// input: no I/O, no state between calls. Calls for different employees may run
// concurrently; successive periods for the same employee must be fed the
// cumulative totals returned by the prior period.
type Service interface {
	Calculate(input CalculationInput) (*CalculationResult, error)
	Validate(input CalculationInput) ValidationErrors
}
