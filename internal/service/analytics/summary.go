package analytics

import (
	"context"
	"fmt"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
	"golang.org/x/sync/errgroup"
)

// metric is one named count: a summary row, and when chart data is requested,
// one series. Summary and chart are built from the same plan so they stay
// consistent for identical filters.
type metric struct {
	name     string
	criteria analytics.Criteria
}

// planMetrics decides which named counts a criteria produces, in fixed order.
// Each derived criteria overrides only the dimension the metric represents.
func planMetrics(criteria analytics.Criteria) []metric {
	metrics := []metric{{name: "Total", criteria: criteria}}

	switch {
	case criteria.Dismissed == nil:
		metrics = append(metrics,
			metric{name: "Active", criteria: criteria.WithDismissed(false)},
			metric{name: "Dismissed", criteria: criteria.WithDismissed(true)},
		)
	case *criteria.Dismissed:
		metrics = append(metrics, metric{name: "Dismissed", criteria: criteria.WithDismissed(true)})
	default:
		metrics = append(metrics, metric{name: "Active", criteria: criteria.WithDismissed(false)})
	}

	if criteria.HasBondScope() {
		metrics = append(metrics, metric{name: "With Bonds", criteria: criteria.WithAnyBond()})
	}

	metrics = append(metrics,
		metric{name: "With Vacations", criteria: criteria.WithVacation()},
		metric{name: "With Permissions", criteria: criteria.WithPermission()},
	)
	return metrics
}

// summarize produces the summary rows, one independent count per row. Rows
// are counted concurrently and reassembled in plan order.
func (s *analyticsServiceImpl) summarize(ctx context.Context, criteria analytics.Criteria) ([]analytics.SummaryRow, error) {
	metrics := planMetrics(criteria)
	rows := make([]analytics.SummaryRow, len(metrics))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCounts)
	for i, m := range metrics {
		g.Go(func() error {
			n, err := s.counter.Count(gCtx, m.criteria)
			if err != nil {
				return fmt.Errorf("summary row %q: %w", m.name, err)
			}
			rows[i] = analytics.SummaryRow{Name: m.name, Count: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
