package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	payrundomain "github.com/paydeck/paydeck/internal/payrun/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) payrundomain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, run *payrundomain.PayRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*payrundomain.PayRun, error) {
	var run payrundomain.PayRun
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *repository) FindLatest(ctx context.Context, employeeID snowflake.ID, taxYear string) (*payrundomain.PayRun, error) {
	var run payrundomain.PayRun
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND tax_year = ?", employeeID, taxYear).
		Order("period_number DESC").
		First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID snowflake.ID) ([]payrundomain.PayRun, error) {
	var runs []payrundomain.PayRun
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("tax_year ASC, period_number ASC").
		Find(&runs).Error
	return runs, err
}
