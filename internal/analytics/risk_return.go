package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"macrolens/pkg/contracts/domain"
)

// RiskReturn aggregates a date-filtered equity table into one summary per
// ticker: mean daily return and sample standard deviation of daily returns.
// Rows with a missing return are dropped before aggregating so gaps never
// bias the statistics. A ticker with a single observation gets a standard
// deviation of zero by convention. Output is sorted by ticker for
// reproducible chart rendering.
func RiskReturn(rows []domain.PriceObservation) []domain.RiskReturnSummary {
	returnsByTicker := make(map[string][]float64)
	for _, row := range rows {
		if row.DailyReturnPct == nil {
			continue
		}
		returnsByTicker[row.Ticker] = append(returnsByTicker[row.Ticker], *row.DailyReturnPct)
	}

	summaries := make([]domain.RiskReturnSummary, 0, len(returnsByTicker))
	for ticker, returns := range returnsByTicker {
		mean, stddev := stat.MeanStdDev(returns, nil)
		if len(returns) < 2 {
			stddev = 0
		}
		summaries = append(summaries, domain.RiskReturnSummary{
			Ticker:       ticker,
			MeanReturn:   mean,
			StdDevReturn: stddev,
			Observations: len(returns),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Ticker < summaries[j].Ticker
	})
	return summaries
}
