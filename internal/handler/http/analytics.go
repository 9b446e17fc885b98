package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
	"github.com/rrhh-labs/workforce-backend-go/internal/handler/http/response"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/validator"
)

type AnalyticsHandler interface {
	// GetDashboard returns headcount summary rows plus optional chart data
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

// GetDashboard handles GET /analytics/dashboard
func (h *analyticsHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	req, err := parseDashboardRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.analyticsService.GetDashboardData(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parseDashboardRequest maps query params onto the analytics criteria. Every
// filter is optional; malformed values are collected into one validation
// response instead of failing on the first.
func parseDashboardRequest(r *http.Request) (analytics.DashboardRequest, error) {
	q := r.URL.Query()

	var req analytics.DashboardRequest
	var errs validator.ValidationErrors

	parseDate := func(param string) *time.Time {
		raw := q.Get(param)
		if raw == "" {
			return nil
		}
		t, ok := validator.IsValidDate(raw)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: param, Message: "must be YYYY-MM-DD"})
			return nil
		}
		return &t
	}
	parseBool := func(param string) bool {
		raw := q.Get(param)
		if raw == "" {
			return false
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: param, Message: "must be a boolean"})
			return false
		}
		return v
	}
	parseID := func(param string) *string {
		raw := q.Get(param)
		if raw == "" {
			return nil
		}
		if !validator.IsValidUUID(raw) {
			errs = append(errs, validator.ValidationError{Field: param, Message: "must be a UUID"})
			return nil
		}
		return &raw
	}

	req.Criteria.DateStart = parseDate("date_start")
	req.Criteria.DateEnd = parseDate("date_end")

	if raw := q.Get("dismissed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "dismissed", Message: "must be a boolean"})
		} else {
			req.Criteria.Dismissed = &v
		}
	}

	req.Criteria.HeadquarterID = parseID("headquarter_id")
	req.Criteria.ProjectID = parseID("project_id")
	req.Criteria.PositionID = parseID("position_id")
	req.Criteria.DepartmentID = parseID("department_id")

	req.Criteria.HasAnyBond = parseBool("has_any_bond")
	req.Criteria.HasActiveBond = parseBool("has_active_bond")
	req.Criteria.HasExpiredBond = parseBool("has_expired_bond")
	req.Criteria.BondTypeID = parseID("bond_type_id")

	req.Criteria.PendingVacationsOnly = parseBool("pending_vacations")
	req.Criteria.PendingPermissionsOnly = parseBool("pending_permissions")

	if raw := q.Get("group_by"); raw != "" {
		g, err := analytics.ParseGranularity(raw)
		if err != nil {
			return analytics.DashboardRequest{}, err
		}
		req.Criteria.GroupBy = &g
	}

	req.IncludeChartData = parseBool("include_chart_data")

	if len(errs) > 0 {
		return analytics.DashboardRequest{}, errs
	}
	return req, nil
}
