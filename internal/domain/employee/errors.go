package employee

import "errors"

var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrDocumentNumberExists     = errors.New("document number already registered")
	ErrEmailExists              = errors.New("email already registered")
	ErrEmployeeAlreadyDismissed = errors.New("employee is already dismissed")
	ErrEmployeeNotDismissed     = errors.New("employee is not dismissed")
	ErrDismissalBeforeRegister  = errors.New("dismissal date cannot precede registration date")
	ErrAssignmentNotFound       = errors.New("position assignment not found")
	ErrPlacementNotFound        = errors.New("staff placement not found")
)
