package absence

import "context"

type AbsenceRepository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, kind Kind, id string) (*Request, error)
	ListByEmployee(ctx context.Context, kind Kind, employeeID string) ([]Request, error)
	// SetState moves a PENDING request to APPROVED or REJECTED.
	SetState(ctx context.Context, kind Kind, id string, state State) error
	SoftDelete(ctx context.Context, kind Kind, id string) error
}
