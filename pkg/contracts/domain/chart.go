package domain

import (
	"time"
)

// SeriesPoint is a single dated value in a chart series.
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// CorrelationPoint is a dated rolling-correlation value. Value is nil for
// the warm-up positions where the trailing window is not yet full, and for
// windows where the correlation is undefined (zero variance).
type CorrelationPoint struct {
	Date  time.Time `json:"date"`
	Value *float64  `json:"value"`
}

// IndexedComparison is the payload for the action-vs-macro chart: two
// base-100 series over their common dates. Both series have the same length
// and both start at exactly 100.
type IndexedComparison struct {
	Ticker      string        `json:"ticker"`
	CompanyName string        `json:"company_name"`
	MacroTicker string        `json:"macro_ticker"`
	MacroName   string        `json:"macro_name"`
	Action      []SeriesPoint `json:"action"`
	Macro       []SeriesPoint `json:"macro"`
}

// RollingCorrelationChart is the payload for the rolling-correlation chart.
type RollingCorrelationChart struct {
	Ticker      string             `json:"ticker"`
	CompanyName string             `json:"company_name"`
	MacroTicker string             `json:"macro_ticker"`
	MacroName   string             `json:"macro_name"`
	Window      int                `json:"window"`
	Points      []CorrelationPoint `json:"points"`
}

// VolatilitySeries is one ticker's trailing-30-day volatility history.
type VolatilitySeries struct {
	Ticker      string        `json:"ticker"`
	CompanyName string        `json:"company_name"`
	Points      []SeriesPoint `json:"points"`
}

// XYPoint is an unlabelled scatter or line point.
type XYPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegressionFit describes a single-variable OLS fit of equity returns on
// macro-factor returns, plus a rendered regression line spanning the
// observed x-range.
type RegressionFit struct {
	Alpha        float64   `json:"alpha"`
	Beta         float64   `json:"beta"`
	Correlation  float64   `json:"correlation"`
	RSquared     float64   `json:"r_squared"`
	Observations int       `json:"observations"`
	Line         []XYPoint `json:"line"`
}

// FactorSensitivityChart is the payload for the scatter-plus-regression
// chart: daily return pairs and the fitted line.
type FactorSensitivityChart struct {
	Ticker      string        `json:"ticker"`
	CompanyName string        `json:"company_name"`
	MacroTicker string        `json:"macro_ticker"`
	MacroName   string        `json:"macro_name"`
	Points      []XYPoint     `json:"points"`
	Fit         RegressionFit `json:"fit"`
}
