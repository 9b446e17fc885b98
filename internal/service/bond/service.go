package bond

import (
	"context"

	"github.com/google/uuid"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/bond"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/catalog"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/validator"
)

type BondService interface {
	Create(ctx context.Context, req bond.CreateBondRequest) (*bond.Bond, error)
	GetByID(ctx context.Context, id string) (*bond.Bond, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]bond.Bond, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

type bondServiceImpl struct {
	repo         bond.BondRepository
	bondTypeRepo catalog.BondTypeRepository
}

func NewBondService(repo bond.BondRepository, bondTypeRepo catalog.BondTypeRepository) BondService {
	return &bondServiceImpl{repo: repo, bondTypeRepo: bondTypeRepo}
}

func (s *bondServiceImpl) Create(ctx context.Context, req bond.CreateBondRequest) (*bond.Bond, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(req.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "invalid employee id"})
	}
	if !validator.IsValidUUID(req.BondTypeID) {
		errs = append(errs, validator.ValidationError{Field: "bond_type_id", Message: "invalid bond type id"})
	}
	dateLimit, ok := validator.IsValidDate(req.DateLimit)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date_limit", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	// The bond type must exist; a dangling reference would silently drop the
	// bond out of every typed analytics count.
	if _, err := s.bondTypeRepo.GetByID(ctx, req.BondTypeID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, bond.Bond{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		BondTypeID: req.BondTypeID,
		DateLimit:  dateLimit,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *bondServiceImpl) GetByID(ctx context.Context, id string) (*bond.Bond, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bondServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]bond.Bond, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}

func (s *bondServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *bondServiceImpl) Restore(ctx context.Context, id string) error {
	return s.repo.Restore(ctx, id)
}
