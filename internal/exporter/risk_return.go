// Package exporter writes derived tables to downloadable formats. Only the
// risk/return summary is exported; chart series stay JSON-only since they
// are consumed by the rendering layer directly.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"macrolens/pkg/contracts/domain"
)

// riskReturnHeader is the column layout shared by both export formats.
var riskReturnHeader = []string{"Ticker", "CompanyName", "MeanReturn", "StdDevReturn", "Observations"}

// WriteRiskReturnCSV streams the risk/return summary as CSV.
func WriteRiskReturnCSV(w io.Writer, summaries []domain.RiskReturnSummary) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(riskReturnHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			s.Ticker,
			s.CompanyName,
			strconv.FormatFloat(s.MeanReturn, 'f', 6, 64),
			strconv.FormatFloat(s.StdDevReturn, 'f', 6, 64),
			strconv.Itoa(s.Observations),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write CSV row for %s: %w", s.Ticker, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteRiskReturnXLSX streams the risk/return summary as an Excel workbook
// with a single sheet.
func WriteRiskReturnXLSX(w io.Writer, summaries []domain.RiskReturnSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "RiskReturn"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, name := range riskReturnHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header cell %s: %w", cell, err)
		}
	}

	for i, s := range summaries {
		values := []interface{}{s.Ticker, s.CompanyName, s.MeanReturn, s.StdDevReturn, s.Observations}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
