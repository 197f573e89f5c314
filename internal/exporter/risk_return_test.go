package exporter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"macrolens/pkg/contracts/domain"
)

func sampleSummaries() []domain.RiskReturnSummary {
	return []domain.RiskReturnSummary{
		{Ticker: "MC.PA", CompanyName: "LVMH", MeanReturn: 0.081234, StdDevReturn: 1.654321, Observations: 250},
		{Ticker: "TTE.PA", CompanyName: "TotalEnergies", MeanReturn: -0.0125, StdDevReturn: 1.9, Observations: 248},
	}
}

func TestWriteRiskReturnCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRiskReturnCSV(&buf, sampleSummaries()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Ticker", "CompanyName", "MeanReturn", "StdDevReturn", "Observations"}, records[0])
	assert.Equal(t, []string{"MC.PA", "LVMH", "0.081234", "1.654321", "250"}, records[1])
	assert.Equal(t, "TTE.PA", records[2][0])
	assert.Equal(t, "-0.012500", records[2][2])
}

func TestWriteRiskReturnCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRiskReturnCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}

func TestWriteRiskReturnXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRiskReturnXLSX(&buf, sampleSummaries()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("RiskReturn")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Ticker", "CompanyName", "MeanReturn", "StdDevReturn", "Observations"}, rows[0])
	assert.Equal(t, "MC.PA", rows[1][0])
	assert.Equal(t, "LVMH", rows[1][1])
	assert.Equal(t, "250", rows[1][4])
}
