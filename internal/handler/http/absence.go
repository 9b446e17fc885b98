package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rrhh-labs/workforce-backend-go/internal/domain/absence"
	"github.com/rrhh-labs/workforce-backend-go/internal/handler/http/response"
	absenceservice "github.com/rrhh-labs/workforce-backend-go/internal/service/absence"
)

// AbsenceHandler serves both vacation and permission requests; the kind is
// fixed per route when the handler is mounted.
type AbsenceHandler interface {
	CreateRequest(kind absence.Kind) http.HandlerFunc
	GetRequest(kind absence.Kind) http.HandlerFunc
	ListEmployeeRequests(kind absence.Kind) http.HandlerFunc
	ApproveRequest(kind absence.Kind) http.HandlerFunc
	RejectRequest(kind absence.Kind) http.HandlerFunc
	DeleteRequest(kind absence.Kind) http.HandlerFunc
}

type absenceHandlerImpl struct {
	absenceService absenceservice.AbsenceService
}

func NewAbsenceHandler(absenceService absenceservice.AbsenceService) AbsenceHandler {
	return &absenceHandlerImpl{absenceService: absenceService}
}

// CreateRequest handles POST /vacations and POST /permissions
func (h *absenceHandlerImpl) CreateRequest(kind absence.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req absence.CreateRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}

		result, err := h.absenceService.Create(r.Context(), kind, req)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.Created(w, "Request submitted", result)
	}
}

// GetRequest handles GET /{kind}/{id}
func (h *absenceHandlerImpl) GetRequest(kind absence.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.absenceService.GetByID(r.Context(), kind, chi.URLParam(r, "id"))
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.Success(w, result)
	}
}

// ListEmployeeRequests handles GET /employees/{id}/{kind}
func (h *absenceHandlerImpl) ListEmployeeRequests(kind absence.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := h.absenceService.ListByEmployee(r.Context(), kind, chi.URLParam(r, "id"))
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.Success(w, results)
	}
}

// ApproveRequest handles POST /{kind}/{id}/approve
func (h *absenceHandlerImpl) ApproveRequest(kind absence.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.absenceService.Approve(r.Context(), kind, chi.URLParam(r, "id"))
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.SuccessWithMessage(w, "Request approved", result)
	}
}

// RejectRequest handles POST /{kind}/{id}/reject
func (h *absenceHandlerImpl) RejectRequest(kind absence.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.absenceService.Reject(r.Context(), kind, chi.URLParam(r, "id"))
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.SuccessWithMessage(w, "Request rejected", result)
	}
}

// DeleteRequest handles DELETE /{kind}/{id}
func (h *absenceHandlerImpl) DeleteRequest(kind absence.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.absenceService.Delete(r.Context(), kind, chi.URLParam(r, "id")); err != nil {
			response.HandleError(w, err)
			return
		}

		response.SuccessWithMessage(w, "Request deleted", nil)
	}
}
