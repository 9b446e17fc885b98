package employee

import "time"

// CreateEmployeeRequest registers a new employee. New records always start
// active with an open-ended employment span.
type CreateEmployeeRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	DocumentNumber string `json:"document_number"`
	DateRegister   string `json:"date_register"` // YYYY-MM-DD, defaults to today
}

type UpdateEmployeeRequest struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Email          *string `json:"email,omitempty"`
	DocumentNumber *string `json:"document_number,omitempty"`
}

// DismissEmployeeRequest closes the employment span.
type DismissEmployeeRequest struct {
	DateEnd string `json:"date_end"` // YYYY-MM-DD, defaults to today
}

type EmployeeFilter struct {
	Search *string
	Status *string
	Page   int
	Limit  int
}

type EmployeeResponse struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	DocumentNumber string     `json:"document_number"`
	Status         Status     `json:"status"`
	DateRegister   time.Time  `json:"date_register"`
	DateEnd        *time.Time `json:"date_end,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		DocumentNumber: e.DocumentNumber,
		Status:         e.Status,
		DateRegister:   e.DateRegister,
		DateEnd:        e.DateEnd,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// CreateAssignmentRequest links an employee to a position, optionally within
// a department.
type CreateAssignmentRequest struct {
	PositionID   string  `json:"position_id"`
	DepartmentID *string `json:"department_id,omitempty"`
}

// CreatePlacementRequest puts an assignment at a headquarter and/or project.
type CreatePlacementRequest struct {
	AssignmentID  string  `json:"assignment_id"`
	HeadquarterID *string `json:"headquarter_id,omitempty"`
	ProjectID     *string `json:"project_id,omitempty"`
}
