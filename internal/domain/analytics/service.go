package analytics

import "context"

// AnalyticsService is the dashboard orchestrator entry point.
type AnalyticsService interface {
	// GetDashboardData always returns the summary rows; when chart data is
	// requested it additionally returns categories and one series per metric.
	GetDashboardData(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}
