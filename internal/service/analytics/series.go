package analytics

import (
	"context"
	"fmt"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
	"golang.org/x/sync/errgroup"
)

// buildSeries computes one series per metric, one count per category. Every
// cell derives a fresh criteria with only the window overridden, so parallel
// bucket computations never share state. All cells are dispatched on one
// group and written to pre-indexed slots: ordering is positional, not
// completion-ordered, and a single failed count fails the whole chart.
func (s *analyticsServiceImpl) buildSeries(ctx context.Context, criteria analytics.Criteria, categories []analytics.Category) ([]analytics.Series, error) {
	metrics := planMetrics(criteria)

	series := make([]analytics.Series, len(metrics))
	for i, m := range metrics {
		series[i] = analytics.Series{Name: m.name, Data: make([]int64, len(categories))}
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCounts)
	for i, m := range metrics {
		for j, category := range categories {
			g.Go(func() error {
				n, err := s.counter.Count(gCtx, m.criteria.WithWindow(category.Start, category.End))
				if err != nil {
					return fmt.Errorf("series %q bucket %q: %w", m.name, category.Label, err)
				}
				series[i].Data[j] = n
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}
