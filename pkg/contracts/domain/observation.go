package domain

import (
	"time"
)

// PriceObservation represents a single daily quote for a CAC40 equity as
// produced by the upstream preparation pipeline. DailyReturnPct and
// Volatility30d are nil when the source row has no value (first rows of a
// series, suspended quotation days).
type PriceObservation struct {
	Date           time.Time `json:"date" csv:"Date"`
	Ticker         string    `json:"ticker" csv:"Ticker"`
	Close          float64   `json:"close" csv:"Close"`
	DailyReturnPct *float64  `json:"daily_return_pct,omitempty" csv:"Rentabilite"`
	Volatility30d  *float64  `json:"volatility_30d,omitempty" csv:"Volatilite_30j"`
}

// MacroObservation represents a single daily quote for a macroeconomic
// factor series (commodity, FX rate, interest rate or index).
type MacroObservation struct {
	Date   time.Time `json:"date" csv:"Date"`
	Ticker string    `json:"ticker" csv:"Ticker"`
	Close  float64   `json:"close" csv:"Close"`
}

// Company pairs an equity ticker with its display name and assigned macro
// factor, for populating selection widgets.
type Company struct {
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	MacroTicker string `json:"macro_ticker"`
	MacroName   string `json:"macro_name"`
}
