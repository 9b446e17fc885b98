package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/absence"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

// absenceTable maps a request kind to its backing table. Vacations and
// permissions keep separate tables with the same columns.
func absenceTable(kind absence.Kind) string {
	if kind == absence.KindPermission {
		return "permissions"
	}
	return "vacations"
}

func (r *absenceRepositoryImpl) Create(ctx context.Context, req absence.Request) (absence.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, date_start, date_end, state, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`, absenceTable(req.Kind))

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.DateStart, req.DateEnd, req.State, req.Reason,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return absence.Request{}, fmt.Errorf("failed to create %s request: %w", req.Kind, err)
	}
	return req, nil
}

func (r *absenceRepositoryImpl) GetByID(ctx context.Context, kind absence.Kind, id string) (*absence.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, employee_id, date_start, date_end, state, reason, created_at, updated_at
		FROM %s WHERE id = $1 AND deleted_at IS NULL
	`, absenceTable(kind))

	req := absence.Request{Kind: kind}
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.DateStart, &req.DateEnd, &req.State, &req.Reason,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, absence.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get %s request: %w", kind, err)
	}
	return &req, nil
}

func (r *absenceRepositoryImpl) ListByEmployee(ctx context.Context, kind absence.Kind, employeeID string) ([]absence.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, employee_id, date_start, date_end, state, reason, created_at, updated_at
		FROM %s WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY date_start DESC
	`, absenceTable(kind))

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s requests: %w", kind, err)
	}
	defer rows.Close()

	var requests []absence.Request
	for rows.Next() {
		req := absence.Request{Kind: kind}
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.DateStart, &req.DateEnd, &req.State, &req.Reason,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan %s request: %w", kind, err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *absenceRepositoryImpl) SetState(ctx context.Context, kind absence.Kind, id string, state absence.State) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s SET state = $1, updated_at = NOW()
		WHERE id = $2 AND state = $3 AND deleted_at IS NULL
	`, absenceTable(kind))

	tag, err := q.Exec(ctx, query, state, id, absence.StatePending)
	if err != nil {
		return fmt.Errorf("failed to update %s request state: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the row is gone or it already left PENDING. Distinguish so
		// callers can answer with the right status.
		if _, err := r.GetByID(ctx, kind, id); err != nil {
			return err
		}
		return absence.ErrRequestAlreadyProcessed
	}
	return nil
}

func (r *absenceRepositoryImpl) SoftDelete(ctx context.Context, kind absence.Kind, id string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, absenceTable(kind))

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s request: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrRequestNotFound
	}
	return nil
}
