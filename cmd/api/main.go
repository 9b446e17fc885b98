package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/rrhh-labs/workforce-backend-go/internal/config"
	appHTTP "github.com/rrhh-labs/workforce-backend-go/internal/handler/http"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/database"
	"github.com/rrhh-labs/workforce-backend-go/internal/repository/postgresql"
	absenceService "github.com/rrhh-labs/workforce-backend-go/internal/service/absence"
	analyticsService "github.com/rrhh-labs/workforce-backend-go/internal/service/analytics"
	bondService "github.com/rrhh-labs/workforce-backend-go/internal/service/bond"
	catalogService "github.com/rrhh-labs/workforce-backend-go/internal/service/catalog"
	employeeService "github.com/rrhh-labs/workforce-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()

	if err := runMigrations(cfg.App.MigrationsDir, dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	populationRepo := postgresql.NewPopulationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	headquarterRepo := postgresql.NewHeadquarterRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	bondTypeRepo := postgresql.NewBondTypeRepository(db)
	bondRepo := postgresql.NewBondRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	analyticsSvc := analyticsService.NewAnalyticsService(populationRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	catalogSvc := catalogService.NewCatalogService(headquarterRepo, departmentRepo, positionRepo, projectRepo, bondTypeRepo)
	bondSvc := bondService.NewBondService(bondRepo, bondTypeRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo)

	router := appHTTP.NewRouter(
		appHTTP.NewAnalyticsHandler(analyticsSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewCatalogHandler(catalogSvc),
		appHTTP.NewBondHandler(bondSvc),
		appHTTP.NewAbsenceHandler(absenceSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed: ", err)
	}
}

func runMigrations(dir, dsn string) error {
	mig, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
