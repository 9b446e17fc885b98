package catalog

import "context"

type HeadquarterRepository interface {
	Create(ctx context.Context, h Headquarter) (Headquarter, error)
	GetByID(ctx context.Context, id string) (*Headquarter, error)
	List(ctx context.Context) ([]Headquarter, error)
	SoftDelete(ctx context.Context, id string) error
}

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (*Department, error)
	List(ctx context.Context) ([]Department, error)
	SoftDelete(ctx context.Context, id string) error
}

type PositionRepository interface {
	Create(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id string) (*Position, error)
	List(ctx context.Context) ([]Position, error)
	SoftDelete(ctx context.Context, id string) error
}

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	SoftDelete(ctx context.Context, id string) error
}

type BondTypeRepository interface {
	Create(ctx context.Context, b BondType) (BondType, error)
	GetByID(ctx context.Context, id string) (*BondType, error)
	List(ctx context.Context) ([]BondType, error)
	SoftDelete(ctx context.Context, id string) error
}
