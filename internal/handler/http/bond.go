package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/bond"
	"github.com/rrhh-labs/workforce-backend-go/internal/handler/http/response"
	bondservice "github.com/rrhh-labs/workforce-backend-go/internal/service/bond"
)

type BondHandler interface {
	CreateBond(w http.ResponseWriter, r *http.Request)
	GetBond(w http.ResponseWriter, r *http.Request)
	ListEmployeeBonds(w http.ResponseWriter, r *http.Request)
	DeleteBond(w http.ResponseWriter, r *http.Request)
	RestoreBond(w http.ResponseWriter, r *http.Request)
}

type bondHandlerImpl struct {
	bondService bondservice.BondService
}

func NewBondHandler(bondService bondservice.BondService) BondHandler {
	return &bondHandlerImpl{bondService: bondService}
}

// CreateBond handles POST /bonds
func (h *bondHandlerImpl) CreateBond(w http.ResponseWriter, r *http.Request) {
	var req bond.CreateBondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.bondService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bond created", result)
}

// GetBond handles GET /bonds/{id}
func (h *bondHandlerImpl) GetBond(w http.ResponseWriter, r *http.Request) {
	result, err := h.bondService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployeeBonds handles GET /employees/{id}/bonds
func (h *bondHandlerImpl) ListEmployeeBonds(w http.ResponseWriter, r *http.Request) {
	results, err := h.bondService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteBond handles DELETE /bonds/{id}
func (h *bondHandlerImpl) DeleteBond(w http.ResponseWriter, r *http.Request) {
	if err := h.bondService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bond deleted", nil)
}

// RestoreBond handles POST /bonds/{id}/restore
func (h *bondHandlerImpl) RestoreBond(w http.ResponseWriter, r *http.Request) {
	if err := h.bondService.Restore(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bond restored", nil)
}
