package response

import (
	"errors"
	"net/http"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/absence"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/bond"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/catalog"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/employee"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Analytics input errors
	case errors.Is(err, analytics.ErrInvalidDateRange):
		BadRequest(w, "Date range end precedes start", nil)
	case errors.Is(err, analytics.ErrMissingChartWindow):
		BadRequest(w, "Chart data requires both date_start and date_end", nil)
	case errors.Is(err, analytics.ErrInvalidGranularity):
		BadRequest(w, "Unknown group_by value", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrDocumentNumberExists):
		Conflict(w, "Document number already registered")
	case errors.Is(err, employee.ErrEmployeeAlreadyDismissed):
		Conflict(w, "Employee is already dismissed")
	case errors.Is(err, employee.ErrEmployeeNotDismissed):
		Conflict(w, "Employee is not dismissed")
	case errors.Is(err, employee.ErrDismissalBeforeRegister):
		BadRequest(w, "Dismissal date cannot precede registration date", nil)
	case errors.Is(err, employee.ErrAssignmentNotFound):
		NotFound(w, "Position assignment not found")
	case errors.Is(err, employee.ErrPlacementNotFound):
		NotFound(w, "Staff placement not found")

	// Catalog domain errors
	case errors.Is(err, catalog.ErrHeadquarterNotFound):
		NotFound(w, "Headquarter not found")
	case errors.Is(err, catalog.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, catalog.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, catalog.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, catalog.ErrBondTypeNotFound):
		NotFound(w, "Bond type not found")
	case errors.Is(err, catalog.ErrNameExists):
		Conflict(w, "Name already exists")

	// Bond domain errors
	case errors.Is(err, bond.ErrBondNotFound):
		NotFound(w, "Bond not found")

	// Absence domain errors
	case errors.Is(err, absence.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, absence.ErrRequestAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, absence.ErrInvalidRequestSpan):
		BadRequest(w, "Request end date cannot precede start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
