package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	employeedomain "github.com/paydeck/paydeck/internal/employee/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) employeedomain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, employee *employeedomain.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*employeedomain.Employee, error) {
	var employee employeedomain.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *repository) List(ctx context.Context, filter employeedomain.ListRequest) ([]employeedomain.Employee, error) {
	stmt := r.db.WithContext(ctx).Model(&employeedomain.Employee{})

	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.PayFrequency != "" {
		stmt = stmt.Where("pay_frequency = ?", filter.PayFrequency)
	}

	var employees []employeedomain.Employee
	err := stmt.Order("created_at ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) Update(ctx context.Context, employee *employeedomain.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *repository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&employeedomain.Employee{}).Error
}
