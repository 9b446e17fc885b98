package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/catalog"
	"github.com/rrhh-labs/workforce-backend-go/internal/handler/http/response"
	catalogservice "github.com/rrhh-labs/workforce-backend-go/internal/service/catalog"
)

type CatalogHandler interface {
	CreateHeadquarter(w http.ResponseWriter, r *http.Request)
	ListHeadquarters(w http.ResponseWriter, r *http.Request)
	DeleteHeadquarter(w http.ResponseWriter, r *http.Request)

	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreatePosition(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)

	CreateProject(w http.ResponseWriter, r *http.Request)
	ListProjects(w http.ResponseWriter, r *http.Request)
	DeleteProject(w http.ResponseWriter, r *http.Request)

	CreateBondType(w http.ResponseWriter, r *http.Request)
	ListBondTypes(w http.ResponseWriter, r *http.Request)
	DeleteBondType(w http.ResponseWriter, r *http.Request)
}

type catalogHandlerImpl struct {
	catalogService catalogservice.CatalogService
}

func NewCatalogHandler(catalogService catalogservice.CatalogService) CatalogHandler {
	return &catalogHandlerImpl{catalogService: catalogService}
}

func decodeNamedEntity(w http.ResponseWriter, r *http.Request) (catalog.CreateNamedEntityRequest, bool) {
	var req catalog.CreateNamedEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return req, false
	}
	return req, true
}

// CreateHeadquarter handles POST /headquarters
func (h *catalogHandlerImpl) CreateHeadquarter(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNamedEntity(w, r)
	if !ok {
		return
	}
	result, err := h.catalogService.CreateHeadquarter(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Headquarter created", result)
}

// ListHeadquarters handles GET /headquarters
func (h *catalogHandlerImpl) ListHeadquarters(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListHeadquarters(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// DeleteHeadquarter handles DELETE /headquarters/{id}
func (h *catalogHandlerImpl) DeleteHeadquarter(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteHeadquarter(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Headquarter deleted", nil)
}

// CreateDepartment handles POST /departments
func (h *catalogHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNamedEntity(w, r)
	if !ok {
		return
	}
	result, err := h.catalogService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created", result)
}

// ListDepartments handles GET /departments
func (h *catalogHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// DeleteDepartment handles DELETE /departments/{id}
func (h *catalogHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted", nil)
}

// CreatePosition handles POST /positions
func (h *catalogHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNamedEntity(w, r)
	if !ok {
		return
	}
	result, err := h.catalogService.CreatePosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Position created", result)
}

// ListPositions handles GET /positions
func (h *catalogHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// DeletePosition handles DELETE /positions/{id}
func (h *catalogHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeletePosition(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position deleted", nil)
}

// CreateProject handles POST /projects
func (h *catalogHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNamedEntity(w, r)
	if !ok {
		return
	}
	result, err := h.catalogService.CreateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Project created", result)
}

// ListProjects handles GET /projects
func (h *catalogHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListProjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// DeleteProject handles DELETE /projects/{id}
func (h *catalogHandlerImpl) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project deleted", nil)
}

// CreateBondType handles POST /bond-types
func (h *catalogHandlerImpl) CreateBondType(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNamedEntity(w, r)
	if !ok {
		return
	}
	result, err := h.catalogService.CreateBondType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Bond type created", result)
}

// ListBondTypes handles GET /bond-types
func (h *catalogHandlerImpl) ListBondTypes(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListBondTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// DeleteBondType handles DELETE /bond-types/{id}
func (h *catalogHandlerImpl) DeleteBondType(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteBondType(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Bond type deleted", nil)
}
