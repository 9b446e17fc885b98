package analytics

import "errors"

var (
	ErrInvalidDateRange   = errors.New("date end must not be before date start")
	ErrMissingChartWindow = errors.New("chart data requires both date start and date end")
	ErrInvalidGranularity = errors.New("group by must be one of DAY, WEEK, MONTH, YEAR")
)
