package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/employee"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/database"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/validator"
	"github.com/rrhh-labs/workforce-backend-go/internal/repository/postgresql"
)

type employeeServiceImpl struct {
	db   *database.DB
	repo employee.EmployeeRepository
	now  func() time.Time
}

func NewEmployeeService(db *database.DB, repo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{db: db, repo: repo, now: time.Now}
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(req.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if validator.IsEmpty(req.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last name is required"})
	}
	if !validator.IsValidEmail(req.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if validator.IsEmpty(req.DocumentNumber) {
		errs = append(errs, validator.ValidationError{Field: "document_number", Message: "document number is required"})
	}

	dateRegister := s.now()
	if req.DateRegister != "" {
		parsed, ok := validator.IsValidDate(req.DateRegister)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date_register", Message: "must be YYYY-MM-DD"})
		} else {
			dateRegister = parsed
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	// Uniqueness checks and the insert run in one transaction so two
	// concurrent registrations cannot both pass the checks.
	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if exists, err := s.repo.ExistsByEmail(txCtx, req.Email, ""); err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		} else if exists {
			return employee.ErrEmailExists
		}
		if exists, err := s.repo.ExistsByDocumentNumber(txCtx, req.DocumentNumber, ""); err != nil {
			return fmt.Errorf("failed to check document number: %w", err)
		} else if exists {
			return employee.ErrDocumentNumberExists
		}

		var err error
		created, err = s.repo.Create(txCtx, employee.Employee{
			ID:             uuid.New().String(),
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			DocumentNumber: req.DocumentNumber,
			Status:         employee.StatusActive,
			DateRegister:   dateRegister,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := employee.ToResponse(created)
	return &resp, nil
}

func (s *employeeServiceImpl) GetByID(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := employee.ToResponse(*e)
	return &resp, nil
}

func (s *employeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, total, nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if !validator.IsValidEmail(*req.Email) {
			return nil, validator.ValidationErrors{{Field: "email", Message: "invalid email format"}}
		}
		if exists, err := s.repo.ExistsByEmail(ctx, *req.Email, id); err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		} else if exists {
			return nil, employee.ErrEmailExists
		}
		e.Email = *req.Email
	}
	if req.DocumentNumber != nil {
		if exists, err := s.repo.ExistsByDocumentNumber(ctx, *req.DocumentNumber, id); err != nil {
			return nil, fmt.Errorf("failed to check document number: %w", err)
		} else if exists {
			return nil, employee.ErrDocumentNumberExists
		}
		e.DocumentNumber = *req.DocumentNumber
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}

	updated, err := s.repo.Update(ctx, *e)
	if err != nil {
		return nil, err
	}
	resp := employee.ToResponse(updated)
	return &resp, nil
}

func (s *employeeServiceImpl) Dismiss(ctx context.Context, id string, req employee.DismissEmployeeRequest) (*employee.EmployeeResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status == employee.StatusDismissal {
		return nil, employee.ErrEmployeeAlreadyDismissed
	}

	dateEnd := s.now()
	if req.DateEnd != "" {
		parsed, ok := validator.IsValidDate(req.DateEnd)
		if !ok {
			return nil, validator.ValidationErrors{{Field: "date_end", Message: "must be YYYY-MM-DD"}}
		}
		dateEnd = parsed
	}
	if dateEnd.Before(e.DateRegister) {
		return nil, employee.ErrDismissalBeforeRegister
	}

	if err := s.repo.Dismiss(ctx, id, dateEnd); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *employeeServiceImpl) Reinstate(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status != employee.StatusDismissal {
		return nil, employee.ErrEmployeeNotDismissed
	}

	if err := s.repo.Reinstate(ctx, id); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *employeeServiceImpl) Restore(ctx context.Context, id string) error {
	return s.repo.Restore(ctx, id)
}

func (s *employeeServiceImpl) AddAssignment(ctx context.Context, employeeID string, req employee.CreateAssignmentRequest) (*employee.Assignment, error) {
	if validator.IsEmpty(req.PositionID) {
		return nil, validator.ValidationErrors{{Field: "position_id", Message: "position is required"}}
	}
	if _, err := s.repo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateAssignment(ctx, employee.Assignment{
		ID:           uuid.New().String(),
		EmployeeID:   employeeID,
		PositionID:   req.PositionID,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *employeeServiceImpl) AddPlacement(ctx context.Context, employeeID string, req employee.CreatePlacementRequest) (*employee.Placement, error) {
	if req.HeadquarterID == nil && req.ProjectID == nil {
		return nil, validator.ValidationErrors{{Field: "placement", Message: "a headquarter or project is required"}}
	}

	// The assignment must belong to this employee before a placement can
	// hang off it.
	assignments, err := s.repo.ListAssignments(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	owned := false
	for _, a := range assignments {
		if a.ID == req.AssignmentID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, employee.ErrAssignmentNotFound
	}

	created, err := s.repo.CreatePlacement(ctx, employee.Placement{
		ID:            uuid.New().String(),
		AssignmentID:  req.AssignmentID,
		HeadquarterID: req.HeadquarterID,
		ProjectID:     req.ProjectID,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
