package analytics

// ========== DASHBOARD REQUEST ==========

// DashboardRequest is the single analytics operation: a criteria plus the
// orchestration flag deciding whether chart data is computed.
type DashboardRequest struct {
	Criteria         Criteria
	IncludeChartData bool
}

// ========== DASHBOARD RESPONSE ==========

// SummaryRow is one named point-in-time count. Rows are pure output values,
// recreated on every request.
type SummaryRow struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Series is one named metric aligned to the chart categories: Data[i] is the
// count for the i-th category.
type Series struct {
	Name string  `json:"name"`
	Data []int64 `json:"data"`
}

// ChartData carries the bucket labels and one series per summary metric.
type ChartData struct {
	Categories []string `json:"categories"`
	Series     []Series `json:"series"`
}

// DashboardResponse always carries the summary; chart data only when requested.
type DashboardResponse struct {
	Summary   []SummaryRow `json:"summary"`
	ChartData *ChartData   `json:"chart_data,omitempty"`
}
