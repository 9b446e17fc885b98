package bond

import "time"

// Bond ties an employee to a contractual commitment with a limit date. A bond
// is active while its limit date has not passed the reference date and
// expired afterwards; the analytics engine fixes the reference date per
// query.
type Bond struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	BondTypeID string     `json:"bond_type_id"`
	DateLimit  time.Time  `json:"date_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"-"`
}

type CreateBondRequest struct {
	EmployeeID string `json:"employee_id"`
	BondTypeID string `json:"bond_type_id"`
	DateLimit  string `json:"date_limit"` // YYYY-MM-DD
}
