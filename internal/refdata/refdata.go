// Package refdata holds the static reference tables of the dashboard: the
// assignment of each CAC40 equity to its most relevant macroeconomic factor,
// and the human-readable labels used in chart titles and legends. The tables
// are fixed at compile time and never mutated, so they are safe to read from
// any number of concurrent requests.
package refdata

import (
	"errors"
	"fmt"
	"sort"

	"macrolens/pkg/contracts/domain"
)

// ErrUnknownTicker is returned when an equity ticker has no macro-factor
// assignment. Every ticker offered by the selector must have one.
var ErrUnknownTicker = errors.New("no macro factor assigned to ticker")

// macroAssignments maps each CAC40 equity to the macro factor it is most
// exposed to: energy names follow commodities, exporters follow EUR/USD,
// banks follow long rates, tech follows the Nasdaq.
var macroAssignments = map[string]string{
	// Energy / commodities
	"TTE.PA":  "BZ=F",     // TotalEnergies -> Brent crude
	"ENGI.PA": "NG=F",     // Engie -> natural gas
	"SGO.PA":  "HG=F",     // Saint-Gobain -> copper
	"MT.AS":   "HG=F",     // ArcelorMittal -> copper as metals proxy
	"AIR.PA":  "BZ=F",     // Airbus -> jet fuel exposure
	"SAF.PA":  "BZ=F",     // Safran -> aerospace / oil

	// EUR/USD sensitive exporters and consumer names
	"MC.PA":  "EURUSD=X", // LVMH
	"KER.PA": "EURUSD=X", // Kering
	"RMS.PA": "EURUSD=X", // Hermes
	"OR.PA":  "EURUSD=X", // L'Oreal
	"BN.PA":  "EURUSD=X", // Danone
	"CA.PA":  "EURUSD=X", // Carrefour
	"AI.PA":  "EURUSD=X", // Air Liquide
	"ML.PA":  "EURUSD=X", // Michelin
	"RNO.PA": "EURUSD=X", // Renault
	"VIE.PA": "EURUSD=X", // Veolia
	"LR.PA":  "EURUSD=X", // Legrand
	"SU.PA":  "EURUSD=X", // Schneider Electric
	"TEP.PA": "EURUSD=X", // Teleperformance
	"EN.PA":  "EURUSD=X", // Bouygues
	"DG.PA":  "EURUSD=X", // Vinci
	"ORA.PA": "EURUSD=X", // Orange
	"SAN.PA": "EURUSD=X", // Sanofi
	"PUB.PA": "EURUSD=X", // Publicis
	"VIV.PA": "EURUSD=X", // Vivendi

	// Banks and real estate -> US 10y yield
	"BNP.PA": "^TNX", // BNP Paribas
	"GLE.PA": "^TNX", // Societe Generale
	"ACA.PA": "^TNX", // Credit Agricole
	"CS.PA":  "^TNX", // AXA
	"URW.PA": "^TNX", // Unibail-Rodamco-Westfield

	// Tech / growth -> Nasdaq 100
	"STMPA.PA": "^NDX", // STMicroelectronics
	"CAP.PA":   "^NDX", // Capgemini
	"DSY.PA":   "^NDX", // Dassault Systemes
	"WLN.PA":   "^NDX", // Worldline
	"HO.PA":    "^NDX", // Thales
}

// companyLabels maps equity tickers to display names for legends and titles.
var companyLabels = map[string]string{
	"MC.PA":    "LVMH",
	"TTE.PA":   "TotalEnergies",
	"OR.PA":    "L'Oreal",
	"RMS.PA":   "Hermes",
	"SAN.PA":   "Sanofi",
	"AIR.PA":   "Airbus",
	"SU.PA":    "Schneider Electric",
	"BNP.PA":   "BNP Paribas",
	"GLE.PA":   "Societe Generale",
	"ACA.PA":   "Credit Agricole",
	"CS.PA":    "AXA",
	"DG.PA":    "Vinci",
	"VIE.PA":   "Veolia",
	"ENGI.PA":  "Engie",
	"ORA.PA":   "Orange",
	"CAP.PA":   "Capgemini",
	"STMPA.PA": "STMicroelectronics",
	"SAF.PA":   "Safran",
	"HO.PA":    "Thales",
	"MT.AS":    "ArcelorMittal",
	"RNO.PA":   "Renault",
	"ML.PA":    "Michelin",
	"PUB.PA":   "Publicis",
	"BN.PA":    "Danone",
	"CA.PA":    "Carrefour",
	"KER.PA":   "Kering",
	"LR.PA":    "Legrand",
	"SGO.PA":   "Saint-Gobain",
	"AI.PA":    "Air Liquide",
	"EN.PA":    "Bouygues",
	"URW.PA":   "Unibail-Rodamco-Westfield",
	"WLN.PA":   "Worldline",
	"VIV.PA":   "Vivendi",
	"TEP.PA":   "Teleperformance",
	"DSY.PA":   "Dassault Systemes",
}

// macroLabels maps macro-factor tickers to display names.
var macroLabels = map[string]string{
	"BZ=F":     "Brent crude oil price",
	"NG=F":     "Natural gas price",
	"HG=F":     "Copper price",
	"EURUSD=X": "EUR/USD exchange rate",
	"^TNX":     "US 10-year treasury yield",
	"^NDX":     "Nasdaq 100 index",
	"^VIX":     "Volatility index (VIX)",
	"BTC-USD":  "Bitcoin (BTC/USD)",
}

// FactorFor returns the macro-factor ticker assigned to the given equity
// ticker, or ErrUnknownTicker when no assignment exists.
func FactorFor(ticker string) (string, error) {
	macro, ok := macroAssignments[ticker]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTicker, ticker)
	}
	return macro, nil
}

// CompanyLabel returns the display name for an equity ticker. Unknown
// tickers fall back to the raw ticker string, never an error.
func CompanyLabel(ticker string) string {
	if name, ok := companyLabels[ticker]; ok {
		return name
	}
	return ticker
}

// FactorLabel returns the display name for a macro-factor ticker, falling
// back to the raw ticker string.
func FactorLabel(ticker string) string {
	if name, ok := macroLabels[ticker]; ok {
		return name
	}
	return ticker
}

// Companies returns every equity with a macro-factor assignment, sorted by
// ticker for stable selector population.
func Companies() []domain.Company {
	companies := make([]domain.Company, 0, len(macroAssignments))
	for ticker, macro := range macroAssignments {
		companies = append(companies, domain.Company{
			Ticker:      ticker,
			Name:        CompanyLabel(ticker),
			MacroTicker: macro,
			MacroName:   FactorLabel(macro),
		})
	}
	sort.Slice(companies, func(i, j int) bool {
		return companies[i].Ticker < companies[j].Ticker
	})
	return companies
}
