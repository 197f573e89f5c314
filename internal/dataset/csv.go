package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"macrolens/pkg/contracts/domain"
)

// dateLayout is the calendar-date format of the prepared CSV files.
const dateLayout = "2006-01-02"

// columnIndex maps a CSV header row to column positions, case-insensitively.
// The prepared files carry more columns than we consume (Open, High, Low,
// Volume...); unknown columns are simply ignored.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func field(record []string, idx map[string]int, name string) (string, bool) {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[i]), true
}

// parseOptionalFloat parses a cell that may legitimately be empty (the
// first rows of a return series have no value). Empty and "NaN" cells map
// to nil rather than zero so downstream aggregation can drop them.
func parseOptionalFloat(s string) (*float64, error) {
	if s == "" || strings.EqualFold(s, "nan") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ReadEquities parses the prepared CAC40 equities table. Required columns:
// Date, Ticker, Close. Optional: Rentabilite (daily return, percent) and
// Volatilite_30j (trailing 30-day return standard deviation).
func ReadEquities(path string) ([]domain.PriceObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open equities file: %w", err)
	}
	defer f.Close()
	return parseEquities(f, path)
}

func parseEquities(r io.Reader, path string) ([]domain.PriceObservation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	idx := columnIndex(header)
	for _, required := range []string{"date", "ticker", "close"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("equities file %s is missing column %q", path, required)
		}
	}

	var rows []domain.PriceObservation
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", path, line+1, err)
		}
		line++

		dateStr, _ := field(record, idx, "date")
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse date %q in %s line %d: %w", dateStr, path, line, err)
		}

		ticker, _ := field(record, idx, "ticker")
		if ticker == "" {
			continue // skip rows without a ticker key
		}

		closeStr, _ := field(record, idx, "close")
		closePrice, err := strconv.ParseFloat(closeStr, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q in %s line %d: %w", closeStr, path, line, err)
		}

		obs := domain.PriceObservation{Date: date, Ticker: ticker, Close: closePrice}

		if s, ok := field(record, idx, "rentabilite"); ok {
			if obs.DailyReturnPct, err = parseOptionalFloat(s); err != nil {
				return nil, fmt.Errorf("parse return %q in %s line %d: %w", s, path, line, err)
			}
		}
		if s, ok := field(record, idx, "volatilite_30j"); ok {
			if obs.Volatility30d, err = parseOptionalFloat(s); err != nil {
				return nil, fmt.Errorf("parse volatility %q in %s line %d: %w", s, path, line, err)
			}
		}

		rows = append(rows, obs)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("equities file %s contains no data rows", path)
	}
	return rows, nil
}

// ReadMacros parses the macro-factor table. Required columns: Date, Ticker,
// Close.
func ReadMacros(path string) ([]domain.MacroObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open macros file: %w", err)
	}
	defer f.Close()
	return parseMacros(f, path)
}

func parseMacros(r io.Reader, path string) ([]domain.MacroObservation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	idx := columnIndex(header)
	for _, required := range []string{"date", "ticker", "close"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("macros file %s is missing column %q", path, required)
		}
	}

	var rows []domain.MacroObservation
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", path, line+1, err)
		}
		line++

		dateStr, _ := field(record, idx, "date")
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse date %q in %s line %d: %w", dateStr, path, line, err)
		}

		ticker, _ := field(record, idx, "ticker")
		if ticker == "" {
			continue
		}

		closeStr, _ := field(record, idx, "close")
		closePrice, err := strconv.ParseFloat(closeStr, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q in %s line %d: %w", closeStr, path, line, err)
		}

		rows = append(rows, domain.MacroObservation{Date: date, Ticker: ticker, Close: closePrice})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("macros file %s contains no data rows", path)
	}
	return rows, nil
}
