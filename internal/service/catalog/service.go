package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/catalog"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/validator"
)

// CatalogService manages the reference tables the analytics filters point
// at: headquarters, departments, positions, projects and bond types.
type CatalogService interface {
	CreateHeadquarter(ctx context.Context, req catalog.CreateNamedEntityRequest) (*catalog.Headquarter, error)
	ListHeadquarters(ctx context.Context) ([]catalog.Headquarter, error)
	DeleteHeadquarter(ctx context.Context, id string) error

	CreateDepartment(ctx context.Context, req catalog.CreateNamedEntityRequest) (*catalog.Department, error)
	ListDepartments(ctx context.Context) ([]catalog.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreatePosition(ctx context.Context, req catalog.CreateNamedEntityRequest) (*catalog.Position, error)
	ListPositions(ctx context.Context) ([]catalog.Position, error)
	DeletePosition(ctx context.Context, id string) error

	CreateProject(ctx context.Context, req catalog.CreateNamedEntityRequest) (*catalog.Project, error)
	ListProjects(ctx context.Context) ([]catalog.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateBondType(ctx context.Context, req catalog.CreateNamedEntityRequest) (*catalog.BondType, error)
	ListBondTypes(ctx context.Context) ([]catalog.BondType, error)
	DeleteBondType(ctx context.Context, id string) error
}

type catalogServiceImpl struct {
	headquarterRepo catalog.HeadquarterRepository
	departmentRepo  catalog.DepartmentRepository
	positionRepo    catalog.PositionRepository
	projectRepo     catalog.ProjectRepository
	bondTypeRepo    catalog.BondTypeRepository
}

func NewCatalogService(
	headquarterRepo catalog.HeadquarterRepository,
	departmentRepo catalog.DepartmentRepository,
	positionRepo catalog.PositionRepository,
	projectRepo catalog.ProjectRepository,
	bondTypeRepo catalog.BondTypeRepository,
) CatalogService {
	return &catalogServiceImpl{
		headquarterRepo: headquarterRepo,
		departmentRepo:  departmentRepo,
		positionRepo:    positionRepo,
		projectRepo:     projectRepo,
		bondTypeRepo:    bondTypeRepo,
	}
}

func validateName(req catalog.CreateNamedEntityRequest) error {
	if validator.IsEmpty(req.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	return nil
}

// mapCreateErr turns a unique constraint violation into the domain conflict
// error; everything else is wrapped.
func mapCreateErr(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return catalog.ErrNameExists
	}
	return fmt.Errorf("failed to create %s: %w", what, err)
}

func (s *catalogServiceImpl) CreateHeadquarter(ctx context.Context, req catalog.CreateNamedEntityRequest) (*catalog.Headquarter, error) {
	if err := validateName(req); err != nil {
		return nil, err
	}
	created, err := s.headquarterRepo.Create(ctx, catalog.Headquarter{
		ID:   uuid.New().String(),
		Name: req.Name,
		City: req.City,
	})
	if err != nil {
		return nil, mapCreateErr(err, "headquarter")
	}
	return &created, nil
}

func (s *catalogServiceImpl) ListHeadquarters(ctx context.Context) ([]catalog.Headquarter, error) {
	return s.headquarterRepo.List(ctx)
}

func (s *catalogServiceImpl) DeleteHeadquarter(ctx context.Context, id string) error {
	return s.headquarterRepo.SoftDelete(ctx, id)
}

func (s *catalogServiceImpl) CreateDepartment(ctx context.Context, req catalog.CreateNamedEntityRequest) (*catalog.Department, error) {
	if err := validateName(req); err != nil {
		return nil, err
	}
	created, err := s.departmentRepo.Create(ctx, catalog.Department{
		ID:   uuid.New().String(),
		Name: req.Name,
	})
	if err != nil {
		return nil, mapCreateErr(err, "department")
	}
	return &created, nil
}

func (s *catalogServiceImpl) ListDepartments(ctx context.Context) ([]catalog.Department, error) {
	return s.departmentRepo.List(ctx)
}

func (s *catalogServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.SoftDelete(ctx, id)
}

func (s *catalogServiceImpl) CreatePosition(ctx context.Context, req catalog.CreateNamedEntityRequest) (*catalog.Position, error) {
	if err := validateName(req); err != nil {
		return nil, err
	}
	created, err := s.positionRepo.Create(ctx, catalog.Position{
		ID:   uuid.New().String(),
		Name: req.Name,
	})
	if err != nil {
		return nil, mapCreateErr(err, "position")
	}
	return &created, nil
}

func (s *catalogServiceImpl) ListPositions(ctx context.Context) ([]catalog.Position, error) {
	return s.positionRepo.List(ctx)
}

func (s *catalogServiceImpl) DeletePosition(ctx context.Context, id string) error {
	return s.positionRepo.SoftDelete(ctx, id)
}

func (s *catalogServiceImpl) CreateProject(ctx context.Context, req catalog.CreateNamedEntityRequest) (*catalog.Project, error) {
	if err := validateName(req); err != nil {
		return nil, err
	}
	created, err := s.projectRepo.Create(ctx, catalog.Project{
		ID:   uuid.New().String(),
		Name: req.Name,
	})
	if err != nil {
		return nil, mapCreateErr(err, "project")
	}
	return &created, nil
}

func (s *catalogServiceImpl) ListProjects(ctx context.Context) ([]catalog.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *catalogServiceImpl) DeleteProject(ctx context.Context, id string) error {
	return s.projectRepo.SoftDelete(ctx, id)
}

func (s *catalogServiceImpl) CreateBondType(ctx context.Context, req catalog.CreateNamedEntityRequest) (*catalog.BondType, error) {
	if err := validateName(req); err != nil {
		return nil, err
	}
	created, err := s.bondTypeRepo.Create(ctx, catalog.BondType{
		ID:   uuid.New().String(),
		Name: req.Name,
	})
	if err != nil {
		return nil, mapCreateErr(err, "bond type")
	}
	return &created, nil
}

func (s *catalogServiceImpl) ListBondTypes(ctx context.Context) ([]catalog.BondType, error) {
	return s.bondTypeRepo.List(ctx)
}

func (s *catalogServiceImpl) DeleteBondType(ctx context.Context, id string) error {
	return s.bondTypeRepo.SoftDelete(ctx, id)
}
