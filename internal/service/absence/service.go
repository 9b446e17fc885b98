package absence

import (
	"context"

	"github.com/google/uuid"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/absence"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/validator"
)

// AbsenceService manages vacation and permission requests. Requests enter
// PENDING and move exactly once to APPROVED or REJECTED.
type AbsenceService interface {
	Create(ctx context.Context, kind absence.Kind, req absence.CreateRequestRequest) (*absence.Request, error)
	GetByID(ctx context.Context, kind absence.Kind, id string) (*absence.Request, error)
	ListByEmployee(ctx context.Context, kind absence.Kind, employeeID string) ([]absence.Request, error)
	Approve(ctx context.Context, kind absence.Kind, id string) (*absence.Request, error)
	Reject(ctx context.Context, kind absence.Kind, id string) (*absence.Request, error)
	Delete(ctx context.Context, kind absence.Kind, id string) error
}

type absenceServiceImpl struct {
	repo absence.AbsenceRepository
}

func NewAbsenceService(repo absence.AbsenceRepository) AbsenceService {
	return &absenceServiceImpl{repo: repo}
}

func (s *absenceServiceImpl) Create(ctx context.Context, kind absence.Kind, req absence.CreateRequestRequest) (*absence.Request, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(req.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "invalid employee id"})
	}
	dateStart, okStart := validator.IsValidDate(req.DateStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "date_start", Message: "must be YYYY-MM-DD"})
	}
	dateEnd, okEnd := validator.IsValidDate(req.DateEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "date_end", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if dateEnd.Before(dateStart) {
		return nil, absence.ErrInvalidRequestSpan
	}

	created, err := s.repo.Create(ctx, absence.Request{
		ID:         uuid.New().String(),
		Kind:       kind,
		EmployeeID: req.EmployeeID,
		DateStart:  dateStart,
		DateEnd:    dateEnd,
		State:      absence.StatePending,
		Reason:     req.Reason,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *absenceServiceImpl) GetByID(ctx context.Context, kind absence.Kind, id string) (*absence.Request, error) {
	return s.repo.GetByID(ctx, kind, id)
}

func (s *absenceServiceImpl) ListByEmployee(ctx context.Context, kind absence.Kind, employeeID string) ([]absence.Request, error) {
	return s.repo.ListByEmployee(ctx, kind, employeeID)
}

func (s *absenceServiceImpl) Approve(ctx context.Context, kind absence.Kind, id string) (*absence.Request, error) {
	return s.setState(ctx, kind, id, absence.StateApproved)
}

func (s *absenceServiceImpl) Reject(ctx context.Context, kind absence.Kind, id string) (*absence.Request, error) {
	return s.setState(ctx, kind, id, absence.StateRejected)
}

func (s *absenceServiceImpl) setState(ctx context.Context, kind absence.Kind, id string, state absence.State) (*absence.Request, error) {
	if err := s.repo.SetState(ctx, kind, id, state); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, kind, id)
}

func (s *absenceServiceImpl) Delete(ctx context.Context, kind absence.Kind, id string) error {
	return s.repo.SoftDelete(ctx, kind, id)
}
