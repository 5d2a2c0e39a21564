package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, employee *Employee) error
	FindByID(ctx context.Context, id snowflake.ID) (*Employee, error)
	List(ctx context.Context, filter ListRequest) ([]Employee, error)
	Update(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id snowflake.ID) error
}
