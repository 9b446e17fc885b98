package absence

import "time"

// Kind distinguishes the two absence request flavors. They share one table
// shape per kind but identical state semantics.
type Kind string

const (
	KindVacation   Kind = "vacation"
	KindPermission Kind = "permission"
)

type State string

const (
	StatePending  State = "PENDING"
	StateApproved State = "APPROVED"
	StateRejected State = "REJECTED"
)

// Request is an employee's vacation or permission request over a date span.
// Only PENDING or APPROVED requests are ever counted by analytics, and never
// both in the same count.
type Request struct {
	ID         string     `json:"id"`
	Kind       Kind       `json:"kind"`
	EmployeeID string     `json:"employee_id"`
	DateStart  time.Time  `json:"date_start"`
	DateEnd    time.Time  `json:"date_end"`
	State      State      `json:"state"`
	Reason     *string    `json:"reason,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"-"`
}

type CreateRequestRequest struct {
	EmployeeID string  `json:"employee_id"`
	DateStart  string  `json:"date_start"` // YYYY-MM-DD
	DateEnd    string  `json:"date_end"`   // YYYY-MM-DD
	Reason     *string `json:"reason,omitempty"`
}
