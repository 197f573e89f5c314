// Package dataset loads the two prepared CSV tables (CAC40 equities, macro
// factors) into an immutable in-memory store. The store is built once at
// startup and is read-only for the lifetime of the process, which makes it
// safe to share across any number of concurrent chart requests without
// locking.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"macrolens/pkg/contracts/domain"
)

// Store holds both source tables grouped by ticker, each ticker's rows
// sorted by date.
type Store struct {
	equities map[string][]domain.PriceObservation
	macros   map[string][]domain.MacroObservation
}

// Load reads both CSV files concurrently and builds the store. Either file
// failing to load fails the whole startup: the dashboard is useless without
// its two source tables.
func Load(ctx context.Context, logger *slog.Logger, equitiesPath, macrosPath string) (*Store, error) {
	logger.InfoContext(ctx, "loading source tables",
		slog.String("equities", equitiesPath),
		slog.String("macros", macrosPath))

	var (
		equityRows []domain.PriceObservation
		macroRows  []domain.MacroObservation
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		equityRows, err = ReadEquities(equitiesPath)
		return err
	})
	g.Go(func() error {
		var err error
		macroRows, err = ReadMacros(macrosPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	store := New(equityRows, macroRows)

	logger.InfoContext(ctx, "source tables loaded",
		slog.Int("equity_rows", len(equityRows)),
		slog.Int("macro_rows", len(macroRows)),
		slog.Int("equity_tickers", len(store.equities)),
		slog.Int("macro_tickers", len(store.macros)))

	return store, nil
}

// New builds a store from already-parsed rows. Rows are grouped by ticker
// and sorted by date; the inputs are not retained.
func New(equityRows []domain.PriceObservation, macroRows []domain.MacroObservation) *Store {
	s := &Store{
		equities: make(map[string][]domain.PriceObservation),
		macros:   make(map[string][]domain.MacroObservation),
	}
	for _, row := range equityRows {
		s.equities[row.Ticker] = append(s.equities[row.Ticker], row)
	}
	for _, row := range macroRows {
		s.macros[row.Ticker] = append(s.macros[row.Ticker], row)
	}
	for ticker := range s.equities {
		rows := s.equities[ticker]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	}
	for ticker := range s.macros {
		rows := s.macros[ticker]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	}
	return s
}

// EquityRowCount returns the total number of equity rows across all
// tickers.
func (s *Store) EquityRowCount() int {
	n := 0
	for _, rows := range s.equities {
		n += len(rows)
	}
	return n
}

// MacroRowCount returns the total number of macro rows across all tickers.
func (s *Store) MacroRowCount() int {
	n := 0
	for _, rows := range s.macros {
		n += len(rows)
	}
	return n
}

// EquityTickers returns the sorted list of tickers present in the equities
// table.
func (s *Store) EquityTickers() []string {
	tickers := make([]string, 0, len(s.equities))
	for t := range s.equities {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// EquityCloseSeries returns the close-price series of an equity in
// chronological order, or nil when the ticker is absent.
func (s *Store) EquityCloseSeries(ticker string) []domain.SeriesPoint {
	rows := s.equities[ticker]
	series := make([]domain.SeriesPoint, 0, len(rows))
	for _, row := range rows {
		series = append(series, domain.SeriesPoint{Date: row.Date, Value: row.Close})
	}
	return series
}

// EquityReturnSeries returns the daily-return series of an equity, skipping
// rows where the upstream pipeline produced no return value.
func (s *Store) EquityReturnSeries(ticker string) []domain.SeriesPoint {
	rows := s.equities[ticker]
	series := make([]domain.SeriesPoint, 0, len(rows))
	for _, row := range rows {
		if row.DailyReturnPct == nil {
			continue
		}
		series = append(series, domain.SeriesPoint{Date: row.Date, Value: *row.DailyReturnPct})
	}
	return series
}

// MacroCloseSeries returns the close-price series of a macro factor in
// chronological order, or nil when the ticker is absent.
func (s *Store) MacroCloseSeries(ticker string) []domain.SeriesPoint {
	rows := s.macros[ticker]
	series := make([]domain.SeriesPoint, 0, len(rows))
	for _, row := range rows {
		series = append(series, domain.SeriesPoint{Date: row.Date, Value: row.Close})
	}
	return series
}

// VolatilitySeries returns the trailing-30-day volatility series of an
// equity restricted to the inclusive [from, to] range. Zero-valued bounds
// are open. Rows without a volatility value are skipped.
func (s *Store) VolatilitySeries(ticker string, from, to time.Time) []domain.SeriesPoint {
	rows := s.equities[ticker]
	series := make([]domain.SeriesPoint, 0, len(rows))
	for _, row := range rows {
		if !inRange(row.Date, from, to) || row.Volatility30d == nil {
			continue
		}
		series = append(series, domain.SeriesPoint{Date: row.Date, Value: *row.Volatility30d})
	}
	return series
}

// EquityRows returns every equity row within the inclusive [from, to]
// range, across all tickers. Zero-valued bounds are open.
func (s *Store) EquityRows(from, to time.Time) []domain.PriceObservation {
	var rows []domain.PriceObservation
	for _, tickerRows := range s.equities {
		for _, row := range tickerRows {
			if inRange(row.Date, from, to) {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func inRange(date, from, to time.Time) bool {
	if !from.IsZero() && date.Before(from) {
		return false
	}
	if !to.IsZero() && date.After(to) {
		return false
	}
	return true
}
