package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macrolens/internal/analytics"
	"macrolens/internal/dataset"
	"macrolens/internal/refdata"
	"macrolens/pkg/contracts/domain"
)

func day(d int) time.Time {
	return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
}

func ptr(v float64) *float64 { return &v }

// fixtureStore builds a small dataset in the shape of the prepared tables:
// TotalEnergies with returns and volatility, plus its Brent macro factor.
// Engie is present in the equities table but its factor (natural gas) is
// missing from the macro table, which exercises the empty-join paths.
func fixtureStore() *dataset.Store {
	equities := []domain.PriceObservation{
		{Date: day(1), Ticker: "TTE.PA", Close: 100},
		{Date: day(2), Ticker: "TTE.PA", Close: 102, DailyReturnPct: ptr(2.0)},
		{Date: day(3), Ticker: "TTE.PA", Close: 101, DailyReturnPct: ptr(-0.9804), Volatility30d: ptr(1.4)},
		{Date: day(4), Ticker: "TTE.PA", Close: 105, DailyReturnPct: ptr(3.9604), Volatility30d: ptr(1.6)},
		{Date: day(5), Ticker: "TTE.PA", Close: 107, DailyReturnPct: ptr(1.9048), Volatility30d: ptr(1.5)},
		{Date: day(6), Ticker: "TTE.PA", Close: 106, DailyReturnPct: ptr(-0.9346), Volatility30d: ptr(1.5)},

		{Date: day(1), Ticker: "ENGI.PA", Close: 14.0},
		{Date: day(2), Ticker: "ENGI.PA", Close: 14.2, DailyReturnPct: ptr(1.4286)},
	}
	macros := []domain.MacroObservation{
		{Date: day(1), Ticker: "BZ=F", Close: 60},
		{Date: day(2), Ticker: "BZ=F", Close: 61},
		{Date: day(3), Ticker: "BZ=F", Close: 62},
		{Date: day(4), Ticker: "BZ=F", Close: 61},
		{Date: day(5), Ticker: "BZ=F", Close: 63},
		{Date: day(6), Ticker: "BZ=F", Close: 64},
	}
	return dataset.New(equities, macros)
}

func newTestChartService() *ChartService {
	return NewChartService(fixtureStore(), nil)
}

func TestActionVsMacro(t *testing.T) {
	svc := newTestChartService()

	chart, err := svc.ActionVsMacro(context.Background(), "TTE.PA")
	require.NoError(t, err)

	assert.Equal(t, "TTE.PA", chart.Ticker)
	assert.Equal(t, "TotalEnergies", chart.CompanyName)
	assert.Equal(t, "BZ=F", chart.MacroTicker)
	assert.Equal(t, "Brent crude oil price", chart.MacroName)

	require.Len(t, chart.Action, 6)
	require.Len(t, chart.Macro, 6)

	// Both series are rebased to 100 on the first common date.
	assert.Equal(t, 100.0, chart.Action[0].Value)
	assert.Equal(t, 100.0, chart.Macro[0].Value)
	assert.Equal(t, chart.Action[0].Date, chart.Macro[0].Date)

	assert.InDelta(t, 106.0, chart.Action[5].Value, 1e-9)
	assert.InDelta(t, 64.0/60.0*100, chart.Macro[5].Value, 1e-9)
}

func TestActionVsMacroUnknownTicker(t *testing.T) {
	svc := newTestChartService()

	_, err := svc.ActionVsMacro(context.Background(), "AAPL")
	assert.ErrorIs(t, err, refdata.ErrUnknownTicker)
}

func TestActionVsMacroEmptyJoin(t *testing.T) {
	svc := newTestChartService()

	// Engie maps to natural gas, which is absent from the macro table.
	_, err := svc.ActionVsMacro(context.Background(), "ENGI.PA")
	assert.ErrorIs(t, err, analytics.ErrEmptyIntersection)
}

func TestRollingCorrelation(t *testing.T) {
	svc := newTestChartService()

	chart, err := svc.RollingCorrelation(context.Background(), "TTE.PA", 3)
	require.NoError(t, err)

	assert.Equal(t, 3, chart.Window)
	// Equity returns start on day 2, macro returns likewise: five pairs.
	require.Len(t, chart.Points, 5)

	assert.Nil(t, chart.Points[0].Value)
	assert.Nil(t, chart.Points[1].Value)
	for _, p := range chart.Points[2:] {
		require.NotNil(t, p.Value)
		assert.GreaterOrEqual(t, *p.Value, -1.0)
		assert.LessOrEqual(t, *p.Value, 1.0)
	}
}

func TestRollingCorrelationWindowTooSmall(t *testing.T) {
	svc := newTestChartService()

	_, err := svc.RollingCorrelation(context.Background(), "TTE.PA", 1)
	assert.ErrorIs(t, err, analytics.ErrWindowTooSmall)
}

func TestVolatilityHistory(t *testing.T) {
	svc := newTestChartService()

	charts, err := svc.VolatilityHistory(context.Background(), []string{"TTE.PA"}, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, charts, 1)

	assert.Equal(t, "TotalEnergies", charts[0].CompanyName)
	require.Len(t, charts[0].Points, 4)
	assert.Equal(t, day(3), charts[0].Points[0].Date)
}

func TestVolatilityHistoryDateRange(t *testing.T) {
	svc := newTestChartService()

	charts, err := svc.VolatilityHistory(context.Background(), []string{"TTE.PA"}, day(4), day(5))
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Len(t, charts[0].Points, 2)
}

func TestVolatilityHistorySkipsEmptyTickers(t *testing.T) {
	svc := newTestChartService()

	// Engie has no volatility values; it is dropped, not charted empty.
	charts, err := svc.VolatilityHistory(context.Background(), []string{"TTE.PA", "ENGI.PA"}, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "TTE.PA", charts[0].Ticker)
}

func TestVolatilityHistoryEmptyResult(t *testing.T) {
	svc := newTestChartService()

	_, err := svc.VolatilityHistory(context.Background(), []string{"ENGI.PA"}, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, analytics.ErrEmptyResult)
}

func TestVolatilityHistoryNoTickers(t *testing.T) {
	svc := newTestChartService()

	_, err := svc.VolatilityHistory(context.Background(), nil, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRiskReturnMap(t *testing.T) {
	svc := newTestChartService()

	summaries, err := svc.RiskReturnMap(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Sorted by ticker, labelled from the reference table.
	assert.Equal(t, "ENGI.PA", summaries[0].Ticker)
	assert.Equal(t, "Engie", summaries[0].CompanyName)
	assert.Equal(t, "TotalEnergies", summaries[1].CompanyName)
	assert.Equal(t, 5, summaries[1].Observations)

	// A single observation yields zero dispersion, not NaN.
	assert.Equal(t, 1, summaries[0].Observations)
	assert.Equal(t, 0.0, summaries[0].StdDevReturn)
}

func TestRiskReturnMapEmptyRange(t *testing.T) {
	svc := newTestChartService()

	_, err := svc.RiskReturnMap(context.Background(), day(20), day(25))
	assert.ErrorIs(t, err, analytics.ErrEmptyResult)
}

func TestFactorSensitivity(t *testing.T) {
	svc := newTestChartService()

	chart, err := svc.FactorSensitivity(context.Background(), "TTE.PA")
	require.NoError(t, err)

	assert.Equal(t, "BZ=F", chart.MacroTicker)
	require.Len(t, chart.Points, 5)
	assert.Equal(t, 5, chart.Fit.Observations)
	assert.Len(t, chart.Fit.Line, 100)
	assert.InDelta(t, chart.Fit.Correlation*chart.Fit.Correlation, chart.Fit.RSquared, 1e-12)
}

func TestFactorSensitivityUnknownTicker(t *testing.T) {
	svc := newTestChartService()

	_, err := svc.FactorSensitivity(context.Background(), "AAPL")
	assert.ErrorIs(t, err, refdata.ErrUnknownTicker)
}
