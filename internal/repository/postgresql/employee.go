package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/employee"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.first_name, e.last_name, e.email, e.document_number, e.status,
	e.date_register, e.date_end, e.created_at, e.updated_at, e.deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.DocumentNumber, &e.Status,
		&e.DateRegister, &e.DateEnd, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (id, first_name, last_name, email, document_number, status, date_register, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s
	`, employeeColumns)

	created, err := scanEmployee(q.QueryRow(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email, e.DocumentNumber, e.Status, e.DateRegister,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("SELECT %s FROM employees e WHERE e.id = $1 AND e.deleted_at IS NULL", employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"e.deleted_at IS NULL"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.document_number ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees e WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s FROM employees e
		WHERE %s
		ORDER BY e.date_register DESC
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE employees e SET
			first_name = $2, last_name = $3, email = $4, document_number = $5, updated_at = NOW()
		WHERE e.id = $1 AND e.deleted_at IS NULL
		RETURNING %s
	`, employeeColumns)

	updated, err := scanEmployee(q.QueryRow(ctx, query, e.ID, e.FirstName, e.LastName, e.Email, e.DocumentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated, nil
}

func (r *employeeRepositoryImpl) Dismiss(ctx context.Context, id string, dateEnd time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET status = 'DISMISSAL', date_end = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id, dateEnd)
	if err != nil {
		return fmt.Errorf("failed to dismiss employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Reinstate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET status = 'ACTIVE', date_end = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to reinstate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Restore(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to restore employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1 AND id != $2 AND deleted_at IS NULL)
	`, email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (r *employeeRepositoryImpl) ExistsByDocumentNumber(ctx context.Context, documentNumber string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM employees WHERE document_number = $1 AND id != $2 AND deleted_at IS NULL)
	`, documentNumber, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check document number: %w", err)
	}
	return exists, nil
}

func (r *employeeRepositoryImpl) CreateAssignment(ctx context.Context, a employee.Assignment) (employee.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO assignments (id, employee_id, position_id, department_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`, a.ID, a.EmployeeID, a.PositionID, a.DepartmentID).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return employee.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}
	return a, nil
}

func (r *employeeRepositoryImpl) ListAssignments(ctx context.Context, employeeID string) ([]employee.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, position_id, department_id, created_at, updated_at, deleted_at
		FROM assignments
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []employee.Assignment
	for rows.Next() {
		var a employee.Assignment
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.PositionID, &a.DepartmentID, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *employeeRepositoryImpl) DeleteAssignment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE assignments SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrAssignmentNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) CreatePlacement(ctx context.Context, p employee.Placement) (employee.Placement, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO placements (id, assignment_id, headquarter_id, project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.AssignmentID, p.HeadquarterID, p.ProjectID).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return employee.Placement{}, fmt.Errorf("failed to create placement: %w", err)
	}
	return p, nil
}

func (r *employeeRepositoryImpl) ListPlacements(ctx context.Context, assignmentID string) ([]employee.Placement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, assignment_id, headquarter_id, project_id, created_at, updated_at, deleted_at
		FROM placements
		WHERE assignment_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list placements: %w", err)
	}
	defer rows.Close()

	var placements []employee.Placement
	for rows.Next() {
		var p employee.Placement
		if err := rows.Scan(&p.ID, &p.AssignmentID, &p.HeadquarterID, &p.ProjectID, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan placement: %w", err)
		}
		placements = append(placements, p)
	}
	return placements, rows.Err()
}

func (r *employeeRepositoryImpl) DeletePlacement(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE placements SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete placement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrPlacementNotFound
	}
	return nil
}
