package employee

import "context"

// EmployeeService defines the employee CRUD operations.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, int64, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (*EmployeeResponse, error)
	Dismiss(ctx context.Context, id string, req DismissEmployeeRequest) (*EmployeeResponse, error)
	Reinstate(ctx context.Context, id string) (*EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error

	AddAssignment(ctx context.Context, employeeID string, req CreateAssignmentRequest) (*Assignment, error)
	AddPlacement(ctx context.Context, employeeID string, req CreatePlacementRequest) (*Placement, error)
}
