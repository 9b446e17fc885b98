package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/bond"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/database"
)

type bondRepositoryImpl struct {
	db *database.DB
}

func NewBondRepository(db *database.DB) bond.BondRepository {
	return &bondRepositoryImpl{db: db}
}

func (r *bondRepositoryImpl) Create(ctx context.Context, b bond.Bond) (bond.Bond, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO bonds (id, employee_id, bond_type_id, date_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`, b.ID, b.EmployeeID, b.BondTypeID, b.DateLimit).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return bond.Bond{}, fmt.Errorf("failed to create bond: %w", err)
	}
	return b, nil
}

func (r *bondRepositoryImpl) GetByID(ctx context.Context, id string) (*bond.Bond, error) {
	q := GetQuerier(ctx, r.db)

	var b bond.Bond
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, bond_type_id, date_limit, created_at, updated_at
		FROM bonds WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&b.ID, &b.EmployeeID, &b.BondTypeID, &b.DateLimit, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bond.ErrBondNotFound
		}
		return nil, fmt.Errorf("failed to get bond: %w", err)
	}
	return &b, nil
}

func (r *bondRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]bond.Bond, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, bond_type_id, date_limit, created_at, updated_at
		FROM bonds WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY date_limit
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonds: %w", err)
	}
	defer rows.Close()

	var bonds []bond.Bond
	for rows.Next() {
		var b bond.Bond
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.BondTypeID, &b.DateLimit, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bond: %w", err)
		}
		bonds = append(bonds, b)
	}
	return bonds, rows.Err()
}

func (r *bondRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE bonds SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bond: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bond.ErrBondNotFound
	}
	return nil
}

func (r *bondRepositoryImpl) Restore(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE bonds SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to restore bond: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bond.ErrBondNotFound
	}
	return nil
}
