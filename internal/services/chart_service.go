package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"macrolens/internal/analytics"
	"macrolens/internal/dataset"
	"macrolens/internal/refdata"
	"macrolens/pkg/contracts/domain"
)

// ChartService turns selector inputs (ticker, window, date range) into
// chart-ready payloads by combining the reference tables, the read-only
// dataset store and the analytics functions. It holds no mutable state: a
// failed request leaves nothing behind and the next request starts clean.
type ChartService struct {
	store  *dataset.Store
	logger *slog.Logger
}

// NewChartService creates a chart service over the loaded dataset.
func NewChartService(store *dataset.Store, logger *slog.Logger) *ChartService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartService{
		store:  store,
		logger: logger.With(slog.String("component", "chart_service")),
	}
}

// ActionVsMacro builds the base-100 comparison of an equity and its
// assigned macro factor over their common dates (graph 1).
func (s *ChartService) ActionVsMacro(ctx context.Context, ticker string) (*domain.IndexedComparison, error) {
	macroTicker, err := refdata.FactorFor(ticker)
	if err != nil {
		return nil, err
	}

	aligned, err := analytics.AlignByDate(
		s.store.EquityCloseSeries(ticker),
		s.store.MacroCloseSeries(macroTicker),
	)
	if err != nil {
		return nil, fmt.Errorf("join %s with %s: %w", ticker, macroTicker, err)
	}

	action, macro, err := analytics.NormalizeBase100(aligned)
	if err != nil {
		return nil, fmt.Errorf("normalize %s vs %s: %w", ticker, macroTicker, err)
	}

	s.logger.InfoContext(ctx, "built action-vs-macro chart",
		slog.String("ticker", ticker),
		slog.String("macro_ticker", macroTicker),
		slog.Int("points", aligned.Len()))

	out := &domain.IndexedComparison{
		Ticker:      ticker,
		CompanyName: refdata.CompanyLabel(ticker),
		MacroTicker: macroTicker,
		MacroName:   refdata.FactorLabel(macroTicker),
		Action:      make([]domain.SeriesPoint, aligned.Len()),
		Macro:       make([]domain.SeriesPoint, aligned.Len()),
	}
	for i, date := range aligned.Dates {
		out.Action[i] = domain.SeriesPoint{Date: date, Value: action[i]}
		out.Macro[i] = domain.SeriesPoint{Date: date, Value: macro[i]}
	}
	return out, nil
}

// RollingCorrelation builds the trailing-window Pearson correlation between
// the equity's daily returns and the macro factor's daily returns (graph 2).
// Macro returns are derived from close prices since the macro table carries
// prices only.
func (s *ChartService) RollingCorrelation(ctx context.Context, ticker string, window int) (*domain.RollingCorrelationChart, error) {
	macroTicker, err := refdata.FactorFor(ticker)
	if err != nil {
		return nil, err
	}

	macroReturns := analytics.PercentChange(s.store.MacroCloseSeries(macroTicker))
	aligned, err := analytics.AlignByDate(s.store.EquityReturnSeries(ticker), macroReturns)
	if err != nil {
		return nil, fmt.Errorf("join %s returns with %s returns: %w", ticker, macroTicker, err)
	}

	values, err := analytics.RollingCorrelation(aligned, window)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "built rolling-correlation chart",
		slog.String("ticker", ticker),
		slog.String("macro_ticker", macroTicker),
		slog.Int("window", window),
		slog.Int("points", aligned.Len()))

	points := make([]domain.CorrelationPoint, aligned.Len())
	for i, date := range aligned.Dates {
		points[i] = domain.CorrelationPoint{Date: date, Value: values[i]}
	}
	return &domain.RollingCorrelationChart{
		Ticker:      ticker,
		CompanyName: refdata.CompanyLabel(ticker),
		MacroTicker: macroTicker,
		MacroName:   refdata.FactorLabel(macroTicker),
		Window:      window,
		Points:      points,
	}, nil
}

// VolatilityHistory returns the trailing-30-day volatility series of one or
// more equities restricted to an optional inclusive date range (graph 3).
// An unknown ticker or an empty range yields ErrEmptyResult rather than an
// empty, misleadingly valid chart.
func (s *ChartService) VolatilityHistory(ctx context.Context, tickers []string, from, to time.Time) ([]domain.VolatilitySeries, error) {
	if len(tickers) == 0 {
		return nil, fmt.Errorf("%w: no tickers selected", ErrInvalidInput)
	}

	out := make([]domain.VolatilitySeries, 0, len(tickers))
	total := 0
	for _, ticker := range tickers {
		points := s.store.VolatilitySeries(ticker, from, to)
		if len(points) == 0 {
			continue
		}
		total += len(points)
		out = append(out, domain.VolatilitySeries{
			Ticker:      ticker,
			CompanyName: refdata.CompanyLabel(ticker),
			Points:      points,
		})
	}
	if total == 0 {
		return nil, fmt.Errorf("volatility for %v: %w", tickers, analytics.ErrEmptyResult)
	}

	s.logger.InfoContext(ctx, "built volatility chart",
		slog.Int("tickers", len(tickers)),
		slog.Int("points", total))

	return out, nil
}

// RiskReturnMap aggregates per-ticker mean return and return volatility
// over an optional date range (graph 4). Output is sorted by ticker.
func (s *ChartService) RiskReturnMap(ctx context.Context, from, to time.Time) ([]domain.RiskReturnSummary, error) {
	rows := s.store.EquityRows(from, to)
	summaries := analytics.RiskReturn(rows)
	if len(summaries) == 0 {
		return nil, fmt.Errorf("risk/return map: %w", analytics.ErrEmptyResult)
	}
	for i := range summaries {
		summaries[i].CompanyName = refdata.CompanyLabel(summaries[i].Ticker)
	}

	s.logger.InfoContext(ctx, "built risk-return map",
		slog.Int("rows", len(rows)),
		slog.Int("tickers", len(summaries)))

	return summaries, nil
}

// FactorSensitivity regresses the equity's daily returns on its macro
// factor's daily returns and reports alpha, beta and R-squared along with
// the scatter points and fitted line (graph 5).
func (s *ChartService) FactorSensitivity(ctx context.Context, ticker string) (*domain.FactorSensitivityChart, error) {
	macroTicker, err := refdata.FactorFor(ticker)
	if err != nil {
		return nil, err
	}

	macroReturns := analytics.PercentChange(s.store.MacroCloseSeries(macroTicker))
	aligned, err := analytics.AlignByDate(s.store.EquityReturnSeries(ticker), macroReturns)
	if err != nil {
		return nil, fmt.Errorf("join %s returns with %s returns: %w", ticker, macroTicker, err)
	}

	fit, err := analytics.FitRegression(aligned)
	if err != nil {
		return nil, fmt.Errorf("fit %s on %s: %w", ticker, macroTicker, err)
	}

	s.logger.InfoContext(ctx, "built factor-sensitivity chart",
		slog.String("ticker", ticker),
		slog.String("macro_ticker", macroTicker),
		slog.Int("observations", fit.Observations),
		slog.Float64("beta", fit.Beta),
		slog.Float64("r_squared", fit.RSquared))

	points := make([]domain.XYPoint, aligned.Len())
	for i := range aligned.Dates {
		points[i] = domain.XYPoint{X: aligned.B[i], Y: aligned.A[i]}
	}
	return &domain.FactorSensitivityChart{
		Ticker:      ticker,
		CompanyName: refdata.CompanyLabel(ticker),
		MacroTicker: macroTicker,
		MacroName:   refdata.FactorLabel(macroTicker),
		Points:      points,
		Fit:         fit,
	}, nil
}
