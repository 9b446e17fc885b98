package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/catalog"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/database"
)

// The five reference tables share one shape; each still gets its own
// repository so call sites stay typed.

type headquarterRepositoryImpl struct{ db *database.DB }
type departmentRepositoryImpl struct{ db *database.DB }
type positionRepositoryImpl struct{ db *database.DB }
type projectRepositoryImpl struct{ db *database.DB }
type bondTypeRepositoryImpl struct{ db *database.DB }

func NewHeadquarterRepository(db *database.DB) catalog.HeadquarterRepository {
	return &headquarterRepositoryImpl{db: db}
}

func NewDepartmentRepository(db *database.DB) catalog.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func NewPositionRepository(db *database.DB) catalog.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

func NewProjectRepository(db *database.DB) catalog.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func NewBondTypeRepository(db *database.DB) catalog.BondTypeRepository {
	return &bondTypeRepositoryImpl{db: db}
}

func (r *headquarterRepositoryImpl) Create(ctx context.Context, h catalog.Headquarter) (catalog.Headquarter, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO headquarters (id, name, city, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`, h.ID, h.Name, h.City).Scan(&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return catalog.Headquarter{}, fmt.Errorf("failed to create headquarter: %w", err)
	}
	return h, nil
}

func (r *headquarterRepositoryImpl) GetByID(ctx context.Context, id string) (*catalog.Headquarter, error) {
	q := GetQuerier(ctx, r.db)
	var h catalog.Headquarter
	err := q.QueryRow(ctx, `
		SELECT id, name, city, created_at, updated_at FROM headquarters
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&h.ID, &h.Name, &h.City, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrHeadquarterNotFound
		}
		return nil, fmt.Errorf("failed to get headquarter: %w", err)
	}
	return &h, nil
}

func (r *headquarterRepositoryImpl) List(ctx context.Context) ([]catalog.Headquarter, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, name, city, created_at, updated_at FROM headquarters
		WHERE deleted_at IS NULL ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list headquarters: %w", err)
	}
	defer rows.Close()

	var items []catalog.Headquarter
	for rows.Next() {
		var h catalog.Headquarter
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan headquarter: %w", err)
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

func (r *headquarterRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	return softDeleteNamed(ctx, r.db, "headquarters", id, catalog.ErrHeadquarterNotFound)
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, d catalog.Department) (catalog.Department, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO departments (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING created_at, updated_at
	`, d.ID, d.Name).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return catalog.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return d, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (*catalog.Department, error) {
	q := GetQuerier(ctx, r.db)
	var d catalog.Department
	err := q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM departments
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &d, nil
}

func (r *departmentRepositoryImpl) List(ctx context.Context) ([]catalog.Department, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, name, created_at, updated_at FROM departments
		WHERE deleted_at IS NULL ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var items []catalog.Department
	for rows.Next() {
		var d catalog.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *departmentRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	return softDeleteNamed(ctx, r.db, "departments", id, catalog.ErrDepartmentNotFound)
}

func (r *positionRepositoryImpl) Create(ctx context.Context, p catalog.Position) (catalog.Position, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO positions (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.Name).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return catalog.Position{}, fmt.Errorf("failed to create position: %w", err)
	}
	return p, nil
}

func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (*catalog.Position, error) {
	q := GetQuerier(ctx, r.db)
	var p catalog.Position
	err := q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM positions
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return &p, nil
}

func (r *positionRepositoryImpl) List(ctx context.Context) ([]catalog.Position, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, name, created_at, updated_at FROM positions
		WHERE deleted_at IS NULL ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var items []catalog.Position
	for rows.Next() {
		var p catalog.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *positionRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	return softDeleteNamed(ctx, r.db, "positions", id, catalog.ErrPositionNotFound)
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p catalog.Project) (catalog.Project, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO projects (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.Name).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return catalog.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (*catalog.Project, error) {
	q := GetQuerier(ctx, r.db)
	var p catalog.Project
	err := q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM projects
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

func (r *projectRepositoryImpl) List(ctx context.Context) ([]catalog.Project, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, name, created_at, updated_at FROM projects
		WHERE deleted_at IS NULL ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var items []catalog.Project
	for rows.Next() {
		var p catalog.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *projectRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	return softDeleteNamed(ctx, r.db, "projects", id, catalog.ErrProjectNotFound)
}

func (r *bondTypeRepositoryImpl) Create(ctx context.Context, b catalog.BondType) (catalog.BondType, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO bond_types (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING created_at, updated_at
	`, b.ID, b.Name).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return catalog.BondType{}, fmt.Errorf("failed to create bond type: %w", err)
	}
	return b, nil
}

func (r *bondTypeRepositoryImpl) GetByID(ctx context.Context, id string) (*catalog.BondType, error) {
	q := GetQuerier(ctx, r.db)
	var b catalog.BondType
	err := q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM bond_types
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrBondTypeNotFound
		}
		return nil, fmt.Errorf("failed to get bond type: %w", err)
	}
	return &b, nil
}

func (r *bondTypeRepositoryImpl) List(ctx context.Context) ([]catalog.BondType, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, name, created_at, updated_at FROM bond_types
		WHERE deleted_at IS NULL ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bond types: %w", err)
	}
	defer rows.Close()

	var items []catalog.BondType
	for rows.Next() {
		var b catalog.BondType
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bond type: %w", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *bondTypeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	return softDeleteNamed(ctx, r.db, "bond_types", id, catalog.ErrBondTypeNotFound)
}

func softDeleteNamed(ctx context.Context, db *database.DB, table, id string, notFound error) error {
	q := GetQuerier(ctx, db)
	tag, err := q.Exec(ctx, fmt.Sprintf(`
		UPDATE %s SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
