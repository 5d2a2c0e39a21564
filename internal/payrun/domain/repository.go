package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, run *PayRun) error
	FindByID(ctx context.Context, id snowflake.ID) (*PayRun, error)
	// FindLatest returns the highest-period run for the employee in the tax
	// year, or nil when none exists.
	FindLatest(ctx context.Context, employeeID snowflake.ID, taxYear string) (*PayRun, error)
	ListByEmployee(ctx context.Context, employeeID snowflake.ID) ([]PayRun, error)
}
