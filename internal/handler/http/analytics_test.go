package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
)

type fakeAnalyticsService struct {
	lastReq analytics.DashboardRequest
	resp    *analytics.DashboardResponse
	err     error
}

func (f *fakeAnalyticsService) GetDashboardData(_ context.Context, req analytics.DashboardRequest) (*analytics.DashboardResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestGetDashboardParsesCriteria(t *testing.T) {
	t.Parallel()

	svc := &fakeAnalyticsService{resp: &analytics.DashboardResponse{
		Summary: []analytics.SummaryRow{{Name: "Total", Count: 12}},
	}}
	handler := NewAnalyticsHandler(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/analytics/dashboard?date_start=2025-01-01&date_end=2025-03-31"+
			"&dismissed=false&has_active_bond=true&group_by=MONTH&include_chart_data=true", nil)
	rec := httptest.NewRecorder()

	handler.GetDashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	c := svc.lastReq.Criteria
	require.NotNil(t, c.DateStart)
	require.NotNil(t, c.DateEnd)
	assert.Equal(t, "2025-01-01", c.DateStart.Format("2006-01-02"))
	assert.Equal(t, "2025-03-31", c.DateEnd.Format("2006-01-02"))
	require.NotNil(t, c.Dismissed)
	assert.False(t, *c.Dismissed)
	assert.True(t, c.HasActiveBond)
	require.NotNil(t, c.GroupBy)
	assert.Equal(t, analytics.GranularityMonth, *c.GroupBy)
	assert.True(t, svc.lastReq.IncludeChartData)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Summary []analytics.SummaryRow `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Summary, 1)
	assert.Equal(t, int64(12), body.Data.Summary[0].Count)
}

func TestGetDashboardRejectsMalformedParams(t *testing.T) {
	t.Parallel()

	svc := &fakeAnalyticsService{}
	handler := NewAnalyticsHandler(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/analytics/dashboard?date_start=01-01-2025&headquarter_id=nope&dismissed=maybe", nil)
	rec := httptest.NewRecorder()

	handler.GetDashboard(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "date_start")
	assert.Contains(t, body.Error.Details, "headquarter_id")
	assert.Contains(t, body.Error.Details, "dismissed")
}

func TestGetDashboardRejectsUnknownGranularity(t *testing.T) {
	t.Parallel()

	handler := NewAnalyticsHandler(&fakeAnalyticsService{})

	req := httptest.NewRequest(http.MethodGet, "/analytics/dashboard?group_by=QUARTER", nil)
	rec := httptest.NewRecorder()

	handler.GetDashboard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDashboardMapsDomainErrors(t *testing.T) {
	t.Parallel()

	svc := &fakeAnalyticsService{err: analytics.ErrMissingChartWindow}
	handler := NewAnalyticsHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/analytics/dashboard?include_chart_data=true", nil)
	rec := httptest.NewRecorder()

	handler.GetDashboard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
