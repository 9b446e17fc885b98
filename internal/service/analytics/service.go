package analytics

import (
	"context"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentCounts bounds the fan-out of store queries per request.
const maxConcurrentCounts = 8

type analyticsServiceImpl struct {
	counter *Counter
}

func NewAnalyticsService(repo analytics.PopulationRepository) analytics.AnalyticsService {
	return &analyticsServiceImpl{counter: NewCounter(repo)}
}

// GetDashboardData always produces the summary; when chart data is requested
// it additionally buckets the window and computes every series concurrently
// with the summary. A chart request without a complete window is an input
// error, not a guessed default.
func (s *analyticsServiceImpl) GetDashboardData(ctx context.Context, req analytics.DashboardRequest) (*analytics.DashboardResponse, error) {
	criteria := req.Criteria
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	var categories []analytics.Category
	if req.IncludeChartData {
		if !criteria.HasWindow() {
			return nil, analytics.ErrMissingChartWindow
		}
		granularity := DefaultGranularity(*criteria.DateStart, *criteria.DateEnd)
		if criteria.GroupBy != nil {
			granularity = *criteria.GroupBy
		}
		categories = GenerateCategories(*criteria.DateStart, *criteria.DateEnd, granularity)
	}

	resp := &analytics.DashboardResponse{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.summarize(gCtx, criteria)
		if err != nil {
			return err
		}
		resp.Summary = rows
		return nil
	})
	if req.IncludeChartData {
		g.Go(func() error {
			series, err := s.buildSeries(gCtx, criteria, categories)
			if err != nil {
				return err
			}
			labels := make([]string, len(categories))
			for i, c := range categories {
				labels[i] = c.Label
			}
			resp.ChartData = &analytics.ChartData{Categories: labels, Series: series}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
