package bond

import "context"

type BondRepository interface {
	Create(ctx context.Context, b Bond) (Bond, error)
	GetByID(ctx context.Context, id string) (*Bond, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Bond, error)
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}
