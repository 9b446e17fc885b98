package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePopulationRepo evaluates predicates with a caller-supplied function,
// standing in for the postgres adapter.
type fakePopulationRepo struct {
	fn func(p analytics.Predicate) (int64, error)
}

func (f *fakePopulationRepo) Count(_ context.Context, p analytics.Predicate) (int64, error) {
	return f.fn(p)
}

// populationOf simulates a store over a fixed set of registration dates: an
// active/unspecified count admits every record registered on or before the
// predicate's upper bound, a dismissed count admits none.
func populationOf(registered ...time.Time) func(p analytics.Predicate) (int64, error) {
	return func(p analytics.Predicate) (int64, error) {
		if p.Status == analytics.StatusDismissed {
			return 0, nil
		}
		if p.Vacation.Required || p.Permission.Required || p.Bond.Required {
			return 0, nil
		}
		var n int64
		for _, r := range registered {
			if p.RegisteredOnOrBefore == nil || !r.After(*p.RegisteredOnOrBefore) {
				n++
			}
		}
		return n, nil
	}
}

func rowNames(rows []analytics.SummaryRow) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	return names
}

func TestGetDashboardData_SummaryRowOrder(t *testing.T) {
	t.Parallel()

	svc := NewAnalyticsService(&fakePopulationRepo{fn: populationOf(date(2025, 1, 10))})

	tests := []struct {
		name     string
		criteria analytics.Criteria
		want     []string
	}{
		{
			"status unset yields both rows",
			analytics.Criteria{},
			[]string{"Total", "Active", "Dismissed", "With Vacations", "With Permissions"},
		},
		{
			"dismissed only",
			analytics.Criteria{Dismissed: boolPtr(true)},
			[]string{"Total", "Dismissed", "With Vacations", "With Permissions"},
		},
		{
			"active only",
			analytics.Criteria{Dismissed: boolPtr(false)},
			[]string{"Total", "Active", "With Vacations", "With Permissions"},
		},
		{
			"bond scope adds the bonds row",
			analytics.Criteria{HasActiveBond: true},
			[]string{"Total", "Active", "Dismissed", "With Bonds", "With Vacations", "With Permissions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := svc.GetDashboardData(context.Background(), analytics.DashboardRequest{Criteria: tt.criteria})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rowNames(resp.Summary))
			assert.Nil(t, resp.ChartData)
		})
	}
}

func TestGetDashboardData_SummaryIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := NewAnalyticsService(&fakePopulationRepo{fn: populationOf(date(2025, 1, 10), date(2025, 2, 3))})
	req := analytics.DashboardRequest{Criteria: analytics.Criteria{}}

	first, err := svc.GetDashboardData(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.GetDashboardData(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.Summary, second.Summary)
}

// One employee with two qualifying placements counts twice under a
// headquarter filter and once without organizational scope.
func TestGetDashboardData_UnitOfCountSwitch(t *testing.T) {
	t.Parallel()

	repo := &fakePopulationRepo{fn: func(p analytics.Predicate) (int64, error) {
		if p.Vacation.Required || p.Permission.Required {
			return 0, nil
		}
		if p.Unit == analytics.UnitPlacement {
			return 2, nil
		}
		return 1, nil
	}}
	counter := NewCounter(repo)

	scoped, err := counter.Count(context.Background(), analytics.Criteria{HeadquarterID: strPtr("hq-1")})
	require.NoError(t, err)
	assert.Equal(t, int64(2), scoped)

	unscoped, err := counter.Count(context.Background(), analytics.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), unscoped)
}

func TestGetDashboardData_MonthlyChartAccumulates(t *testing.T) {
	t.Parallel()

	// Ten registrations in January, five in February, none in March; all
	// records stay open, so the headcount accumulates across buckets.
	var registered []time.Time
	for i := 0; i < 10; i++ {
		registered = append(registered, date(2025, 1, 10))
	}
	for i := 0; i < 5; i++ {
		registered = append(registered, date(2025, 2, 20))
	}
	svc := NewAnalyticsService(&fakePopulationRepo{fn: populationOf(registered...)})

	groupBy := analytics.GranularityMonth
	start, end := date(2025, 1, 1), date(2025, 3, 31)
	resp, err := svc.GetDashboardData(context.Background(), analytics.DashboardRequest{
		Criteria:         analytics.Criteria{DateStart: &start, DateEnd: &end, GroupBy: &groupBy},
		IncludeChartData: true,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ChartData)
	assert.Equal(t, []string{"ene 2025", "feb 2025", "mar 2025"}, resp.ChartData.Categories)

	require.NotEmpty(t, resp.ChartData.Series)
	total := resp.ChartData.Series[0]
	assert.Equal(t, "Total", total.Name)
	assert.Equal(t, []int64{10, 15, 15}, total.Data)

	// Summary and chart share the same metric plan.
	assert.Equal(t, rowNames(resp.Summary), seriesNames(resp.ChartData.Series))
	assert.Equal(t, int64(15), resp.Summary[0].Count)
}

func TestGetDashboardData_ChartNeedsCompleteWindow(t *testing.T) {
	t.Parallel()

	svc := NewAnalyticsService(&fakePopulationRepo{fn: populationOf()})

	start := date(2025, 1, 1)
	_, err := svc.GetDashboardData(context.Background(), analytics.DashboardRequest{
		Criteria:         analytics.Criteria{DateStart: &start},
		IncludeChartData: true,
	})
	assert.ErrorIs(t, err, analytics.ErrMissingChartWindow)
}

func TestGetDashboardData_ReversedRangeRejected(t *testing.T) {
	t.Parallel()

	svc := NewAnalyticsService(&fakePopulationRepo{fn: populationOf()})

	start, end := date(2025, 3, 1), date(2025, 1, 1)
	_, err := svc.GetDashboardData(context.Background(), analytics.DashboardRequest{
		Criteria: analytics.Criteria{DateStart: &start, DateEnd: &end},
	})
	assert.ErrorIs(t, err, analytics.ErrInvalidDateRange)
}

// A single failed count fails the whole response; the error names the metric
// and bucket so the failure can be diagnosed.
func TestGetDashboardData_PartialFailureFailsWhole(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("query timeout")
	repo := &fakePopulationRepo{fn: func(p analytics.Predicate) (int64, error) {
		if p.Status == analytics.StatusDismissed && p.DismissedTo != nil &&
			p.DismissedTo.Month() == time.February {
			return 0, storeErr
		}
		return 1, nil
	}}
	svc := NewAnalyticsService(repo)

	groupBy := analytics.GranularityMonth
	start, end := date(2025, 1, 1), date(2025, 3, 31)
	_, err := svc.GetDashboardData(context.Background(), analytics.DashboardRequest{
		Criteria:         analytics.Criteria{DateStart: &start, DateEnd: &end, GroupBy: &groupBy},
		IncludeChartData: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "Dismissed")
	assert.Contains(t, err.Error(), "feb 2025")
}

// Derived per-bucket criteria must not leak into the caller's criteria.
func TestGetDashboardData_CallerCriteriaUntouched(t *testing.T) {
	t.Parallel()

	svc := NewAnalyticsService(&fakePopulationRepo{fn: populationOf()})

	groupBy := analytics.GranularityMonth
	start, end := date(2025, 1, 1), date(2025, 3, 31)
	criteria := analytics.Criteria{DateStart: &start, DateEnd: &end, GroupBy: &groupBy}

	_, err := svc.GetDashboardData(context.Background(), analytics.DashboardRequest{
		Criteria:         criteria,
		IncludeChartData: true,
	})
	require.NoError(t, err)

	assert.Equal(t, date(2025, 1, 1), *criteria.DateStart)
	assert.Equal(t, date(2025, 3, 31), *criteria.DateEnd)
	assert.False(t, criteria.HasVacation)
	assert.False(t, criteria.HasPermission)
}

func seriesNames(series []analytics.Series) []string {
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
	}
	return names
}
