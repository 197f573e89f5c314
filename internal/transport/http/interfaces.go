package http

import (
	"context"
	"time"

	"macrolens/pkg/contracts/domain"
)

// ChartServiceInterface defines the chart operations the handlers depend
// on. Tests substitute a mock implementation.
type ChartServiceInterface interface {
	ActionVsMacro(ctx context.Context, ticker string) (*domain.IndexedComparison, error)
	RollingCorrelation(ctx context.Context, ticker string, window int) (*domain.RollingCorrelationChart, error)
	VolatilityHistory(ctx context.Context, tickers []string, from, to time.Time) ([]domain.VolatilitySeries, error)
	RiskReturnMap(ctx context.Context, from, to time.Time) ([]domain.RiskReturnSummary, error)
	FactorSensitivity(ctx context.Context, ticker string) (*domain.FactorSensitivityChart, error)
}

// TextMiningServiceInterface defines the word-cloud operation.
type TextMiningServiceInterface interface {
	WordCloud(ctx context.Context, url string, maxWords int) (*domain.WordCloud, error)
}
