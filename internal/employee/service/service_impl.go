package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	employeedomain "github.com/paydeck/paydeck/internal/employee/domain"
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
	"github.com/paydeck/paydeck/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  employeedomain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  employeedomain.Repository
}

func NewService(p Params) employeedomain.Service {
	return &Service{
		log:   p.Log.Named("employee.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req employeedomain.CreateRequest) (*employeedomain.Response, error) {
	now := time.Now().UTC()
	employee := &employeedomain.Employee{
		ID:              s.genID.Generate(),
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		TaxCode:         strings.ToUpper(strings.TrimSpace(req.TaxCode)),
		NICategory:      req.NICategory,
		PayFrequency:    req.PayFrequency,
		BasePay:         req.BasePay,
		PensionOptIn:    req.PensionOptIn,
		PensionRateBP:   req.PensionRateBP,
		ReliefAtSource:  req.ReliefAtSource,
		StudentLoanPlan: req.StudentLoanPlan,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if employee.NICategory == "" {
		employee.NICategory = payrolldomain.NICategoryStandard
	}

	if errs := employee.Validate(); len(errs) > 0 {
		return nil, errs
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, employeedomain.ErrDuplicateEmail
		}
		return nil, err
	}

	s.log.Info("employee created",
		zap.String("employee_id", employee.ID.String()),
		zap.String("pay_frequency", string(employee.PayFrequency)),
	)
	return employeedomain.ToResponse(employee), nil
}

func (s *Service) Get(ctx context.Context, id string) (*employeedomain.Response, error) {
	employee, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return employeedomain.ToResponse(employee), nil
}

func (s *Service) List(ctx context.Context, req employeedomain.ListRequest) ([]employeedomain.Response, error) {
	employees, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	responses := make([]employeedomain.Response, 0, len(employees))
	for i := range employees {
		responses = append(responses, *employeedomain.ToResponse(&employees[i]))
	}
	return responses, nil
}

func (s *Service) Update(ctx context.Context, req employeedomain.UpdateRequest) (*employeedomain.Response, error) {
	employee, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = strings.TrimSpace(*req.Name)
	}
	if req.TaxCode != nil {
		employee.TaxCode = strings.ToUpper(strings.TrimSpace(*req.TaxCode))
	}
	if req.NICategory != nil {
		employee.NICategory = *req.NICategory
	}
	if req.PayFrequency != nil {
		employee.PayFrequency = *req.PayFrequency
	}
	if req.BasePay != nil {
		employee.BasePay = *req.BasePay
	}
	if req.PensionOptIn != nil {
		employee.PensionOptIn = *req.PensionOptIn
	}
	if req.PensionRateBP != nil {
		employee.PensionRateBP = *req.PensionRateBP
	}
	if req.ReliefAtSource != nil {
		employee.ReliefAtSource = *req.ReliefAtSource
	}
	if req.StudentLoanPlan != nil {
		employee.StudentLoanPlan = *req.StudentLoanPlan
	}
	employee.UpdatedAt = time.Now().UTC()

	if errs := employee.Validate(); len(errs) > 0 {
		return nil, errs
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employeedomain.ToResponse(employee), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	employee, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, employee.ID)
}

func (s *Service) find(ctx context.Context, id string) (*employeedomain.Employee, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, employeedomain.ErrInvalidID
	}

	employee, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, employeedomain.ErrNotFound
	}
	return employee, nil
}
