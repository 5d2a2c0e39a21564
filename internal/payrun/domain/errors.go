package domain

import "errors"

var (
	ErrNotFound         = errors.New("pay_run_not_found")
	ErrInvalidID        = errors.New("invalid_pay_run_id")
	ErrPeriodOutOfOrder = errors.New("period_out_of_order")
	ErrDuplicatePeriod  = errors.New("duplicate_period")
)
