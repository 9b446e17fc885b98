package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/time/rate"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/absence"
	"github.com/rrhh-labs/workforce-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	analyticsHandler AnalyticsHandler,
	employeeHandler EmployeeHandler,
	catalogHandler CatalogHandler,
	bondHandler BondHandler,
	absenceHandler AbsenceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", os.Getenv("APP_ENV")),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/analytics", func(r chi.Router) {
			// Each dashboard call fans out into several counts; keep one
			// client from monopolizing the pool.
			r.Use(middleware.RateLimit(rate.Limit(5), 10))
			r.Get("/dashboard", analyticsHandler.GetDashboard)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/", employeeHandler.ListEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
				r.Post("/dismiss", employeeHandler.DismissEmployee)
				r.Post("/reinstate", employeeHandler.ReinstateEmployee)
				r.Post("/restore", employeeHandler.RestoreEmployee)
				r.Post("/assignments", employeeHandler.AddAssignment)
				r.Post("/placements", employeeHandler.AddPlacement)
				r.Get("/bonds", bondHandler.ListEmployeeBonds)
				r.Get("/vacations", absenceHandler.ListEmployeeRequests(absence.KindVacation))
				r.Get("/permissions", absenceHandler.ListEmployeeRequests(absence.KindPermission))
			})
		})

		r.Route("/headquarters", func(r chi.Router) {
			r.Post("/", catalogHandler.CreateHeadquarter)
			r.Get("/", catalogHandler.ListHeadquarters)
			r.Delete("/{id}", catalogHandler.DeleteHeadquarter)
		})
		r.Route("/departments", func(r chi.Router) {
			r.Post("/", catalogHandler.CreateDepartment)
			r.Get("/", catalogHandler.ListDepartments)
			r.Delete("/{id}", catalogHandler.DeleteDepartment)
		})
		r.Route("/positions", func(r chi.Router) {
			r.Post("/", catalogHandler.CreatePosition)
			r.Get("/", catalogHandler.ListPositions)
			r.Delete("/{id}", catalogHandler.DeletePosition)
		})
		r.Route("/projects", func(r chi.Router) {
			r.Post("/", catalogHandler.CreateProject)
			r.Get("/", catalogHandler.ListProjects)
			r.Delete("/{id}", catalogHandler.DeleteProject)
		})
		r.Route("/bond-types", func(r chi.Router) {
			r.Post("/", catalogHandler.CreateBondType)
			r.Get("/", catalogHandler.ListBondTypes)
			r.Delete("/{id}", catalogHandler.DeleteBondType)
		})

		r.Route("/bonds", func(r chi.Router) {
			r.Post("/", bondHandler.CreateBond)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", bondHandler.GetBond)
				r.Delete("/", bondHandler.DeleteBond)
				r.Post("/restore", bondHandler.RestoreBond)
			})
		})

		mountAbsence := func(path string, kind absence.Kind) {
			r.Route(path, func(r chi.Router) {
				r.Post("/", absenceHandler.CreateRequest(kind))
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", absenceHandler.GetRequest(kind))
					r.Delete("/", absenceHandler.DeleteRequest(kind))
					r.Post("/approve", absenceHandler.ApproveRequest(kind))
					r.Post("/reject", absenceHandler.RejectRequest(kind))
				})
			})
		}
		mountAbsence("/vacations", absence.KindVacation)
		mountAbsence("/permissions", absence.KindPermission)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"NOT_FOUND","message":"Route not found"}}`))
	})

	return r
}
