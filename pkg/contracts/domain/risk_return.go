package domain

// RiskReturnSummary is one point of the risk/return map: per-ticker mean
// daily return and standard deviation of daily returns over the requested
// date range. Recomputed on every request, never persisted.
type RiskReturnSummary struct {
	Ticker       string  `json:"ticker"`
	CompanyName  string  `json:"company_name"`
	MeanReturn   float64 `json:"mean_return"`
	StdDevReturn float64 `json:"stddev_return"`
	Observations int     `json:"observations"`
}
