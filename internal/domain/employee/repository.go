package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines data access for employment records and their
// assignments/placements.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	// Dismiss closes the employment span: sets date_end and status DISMISSAL.
	Dismiss(ctx context.Context, id string, dateEnd time.Time) error
	// Reinstate reopens the span: clears date_end and restores status ACTIVE.
	Reinstate(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error

	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
	ExistsByDocumentNumber(ctx context.Context, documentNumber string, excludeID string) (bool, error)

	CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	ListAssignments(ctx context.Context, employeeID string) ([]Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error

	CreatePlacement(ctx context.Context, p Placement) (Placement, error)
	ListPlacements(ctx context.Context, assignmentID string) ([]Placement, error)
	DeletePlacement(ctx context.Context, id string) error
}
