package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/employee"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/validator"
)

// fakeEmployeeRepo implements just enough of the repository for the
// service-level rules under test.
type fakeEmployeeRepo struct {
	employee.EmployeeRepository

	byID        map[string]employee.Employee
	dismissed   map[string]time.Time
	reinstated  map[string]bool
	assignments []employee.Assignment
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		byID:       make(map[string]employee.Employee),
		dismissed:  make(map[string]time.Time),
		reinstated: make(map[string]bool),
	}
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return &e, nil
}

func (f *fakeEmployeeRepo) Dismiss(_ context.Context, id string, dateEnd time.Time) error {
	e := f.byID[id]
	e.Status = employee.StatusDismissal
	e.DateEnd = &dateEnd
	f.byID[id] = e
	f.dismissed[id] = dateEnd
	return nil
}

func (f *fakeEmployeeRepo) Reinstate(_ context.Context, id string) error {
	e := f.byID[id]
	e.Status = employee.StatusActive
	e.DateEnd = nil
	f.byID[id] = e
	f.reinstated[id] = true
	return nil
}

func (f *fakeEmployeeRepo) ListAssignments(_ context.Context, employeeID string) ([]employee.Assignment, error) {
	var out []employee.Assignment
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) CreatePlacement(_ context.Context, p employee.Placement) (employee.Placement, error) {
	return p, nil
}

func activeEmployee(id string, registered time.Time) employee.Employee {
	return employee.Employee{
		ID:           id,
		FirstName:    "Ana",
		LastName:     "Reyes",
		Email:        "ana@example.com",
		Status:       employee.StatusActive,
		DateRegister: registered,
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(nil, newFakeEmployeeRepo())

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Email:        "not-an-email",
		DateRegister: "01/02/2025",
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "first_name")
	assert.Contains(t, details, "last_name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "document_number")
	assert.Contains(t, details, "date_register")
}

func TestDismissClosesSpan(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	repo.byID["e1"] = activeEmployee("e1", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	svc := NewEmployeeService(nil, repo)

	result, err := svc.Dismiss(context.Background(), "e1", employee.DismissEmployeeRequest{DateEnd: "2025-03-01"})
	require.NoError(t, err)

	assert.Equal(t, employee.StatusDismissal, result.Status)
	require.NotNil(t, result.DateEnd)
	assert.Equal(t, "2025-03-01", result.DateEnd.Format("2006-01-02"))
}

func TestDismissRejectsDateBeforeRegistration(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	repo.byID["e1"] = activeEmployee("e1", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	svc := NewEmployeeService(nil, repo)

	_, err := svc.Dismiss(context.Background(), "e1", employee.DismissEmployeeRequest{DateEnd: "2024-12-31"})
	assert.ErrorIs(t, err, employee.ErrDismissalBeforeRegister)
	assert.Empty(t, repo.dismissed)
}

func TestDismissRejectsAlreadyDismissed(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	e := activeEmployee("e1", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	e.Status = employee.StatusDismissal
	e.DateEnd = &end
	repo.byID["e1"] = e
	svc := NewEmployeeService(nil, repo)

	_, err := svc.Dismiss(context.Background(), "e1", employee.DismissEmployeeRequest{})
	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyDismissed)
}

func TestReinstateRequiresDismissal(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	repo.byID["e1"] = activeEmployee("e1", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	svc := NewEmployeeService(nil, repo)

	_, err := svc.Reinstate(context.Background(), "e1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotDismissed)
}

func TestAddPlacementChecksAssignmentOwnership(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	repo.assignments = []employee.Assignment{{ID: "a1", EmployeeID: "e1", PositionID: "p1"}}
	svc := NewEmployeeService(nil, repo)

	hq := "hq1"

	_, err := svc.AddPlacement(context.Background(), "e2", employee.CreatePlacementRequest{
		AssignmentID:  "a1",
		HeadquarterID: &hq,
	})
	assert.ErrorIs(t, err, employee.ErrAssignmentNotFound)

	result, err := svc.AddPlacement(context.Background(), "e1", employee.CreatePlacementRequest{
		AssignmentID:  "a1",
		HeadquarterID: &hq,
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", result.AssignmentID)
	assert.NotEmpty(t, result.ID)
}

func TestAddPlacementRequiresLocation(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(nil, newFakeEmployeeRepo())

	_, err := svc.AddPlacement(context.Background(), "e1", employee.CreatePlacementRequest{AssignmentID: "a1"})

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}
