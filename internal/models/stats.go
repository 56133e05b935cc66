package models

// Stats is the aggregate dashboard record computed over the full
// contact snapshot.
type Stats struct {
	Total              int                   `json:"total"`
	Active             int                   `json:"active"`
	Completed          int                   `json:"completed"`
	Paid               int                   `json:"paid"`
	Revenue            float64               `json:"revenue"`
	ConversionRate     float64               `json:"conversion_rate"`
	StatusDistribution map[ContactStatus]int `json:"status_distribution"`
	DayDistribution    []DayCount            `json:"day_distribution"`
	DailySignups       []SignupPoint         `json:"daily_signups"`
}

// DayCount is one bucket of the current_day distribution.
// Kept as an ordered slice because JSON objects do not preserve key order.
type DayCount struct {
	Day   int `json:"day"`
	Count int `json:"count"`
}

// SignupPoint is one calendar-date bucket of signups. Date is the UTC
// date of created_at formatted as YYYY-MM-DD.
type SignupPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatusSeriesPoint is one (date, status) bucket of the status-over-time
// series for a bounded window.
type StatusSeriesPoint struct {
	Date   string        `json:"date"`
	Status ContactStatus `json:"status"`
	Count  int           `json:"count"`
}

// RangeSummary aggregates a date-bounded window of contacts.
type RangeSummary struct {
	Signups        int     `json:"signups"`
	AvgCurrentDay  float64 `json:"avg_current_day"`
	CompletionRate float64 `json:"completion_rate"`
	PaidRate       float64 `json:"paid_rate"`
}
