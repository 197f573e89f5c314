// Command riskreport computes the risk/return summary of the prepared
// equities table and writes it to stdout or a file, without starting the
// web service. Useful for quick offline checks of the dataset.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"macrolens/internal/analytics"
	"macrolens/internal/dataset"
	"macrolens/internal/exporter"
	"macrolens/internal/refdata"
)

func main() {
	var (
		equitiesPath = flag.String("equities", "data/cac40_final.csv", "path to the prepared equities CSV")
		fromStr      = flag.String("from", "", "inclusive start date (YYYY-MM-DD), open when empty")
		toStr        = flag.String("to", "", "inclusive end date (YYYY-MM-DD), open when empty")
		outPath      = flag.String("out", "", "output file (.csv or .xlsx); stdout CSV when empty")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger, *equitiesPath, *fromStr, *toStr, *outPath); err != nil {
		logger.Error("risk report failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, equitiesPath, fromStr, toStr, outPath string) error {
	from, to, err := parseBounds(fromStr, toStr)
	if err != nil {
		return err
	}

	rows, err := dataset.ReadEquities(equitiesPath)
	if err != nil {
		return err
	}
	store := dataset.New(rows, nil)

	summaries := analytics.RiskReturn(store.EquityRows(from, to))
	if len(summaries) == 0 {
		return fmt.Errorf("risk report: %w", analytics.ErrEmptyResult)
	}
	for i := range summaries {
		summaries[i].CompanyName = refdata.CompanyLabel(summaries[i].Ticker)
	}

	logger.Info("computed risk/return summary",
		slog.Int("rows", len(rows)),
		slog.Int("tickers", len(summaries)))

	if outPath == "" {
		return exporter.WriteRiskReturnCSV(os.Stdout, summaries)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(outPath), ".xlsx") {
		return exporter.WriteRiskReturnXLSX(f, summaries)
	}
	return exporter.WriteRiskReturnCSV(f, summaries)
}

func parseBounds(fromStr, toStr string) (from, to time.Time, err error) {
	const layout = "2006-01-02"
	if fromStr != "" {
		if from, err = time.Parse(layout, fromStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse -from: %w", err)
		}
	}
	if toStr != "" {
		if to, err = time.Parse(layout, toStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse -to: %w", err)
		}
	}
	return from, to, nil
}
