package employee

import "time"

type Employee struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	DocumentNumber string
	Status         Status
	DateRegister   time.Time
	DateEnd        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

type Status string

const (
	// StatusActive is an open-ended employment span: no end date.
	StatusActive Status = "ACTIVE"
	// StatusDismissal is a closed span: date_end is set.
	StatusDismissal Status = "DISMISSAL"
)

// Assignment links an employee to a position, optionally within a department.
// It is the join key for position/department analytics.
type Assignment struct {
	ID           string
	EmployeeID   string
	PositionID   string
	DepartmentID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Placement puts an assignment at a physical location: a headquarter, a
// project, or both. One employee may hold several placements at once, which
// is why placement-scoped analytics count placements rather than employees.
type Placement struct {
	ID            string
	AssignmentID  string
	HeadquarterID *string
	ProjectID     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}
