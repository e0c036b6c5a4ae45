// Package models defines shared data types for Bazaar
package models

import "strings"

// Market partitions the symbol universe for resolution tie-breaking.
type Market string

const (
	MarketDomestic Market = "domestic" // NSE / BSE listings
	MarketGlobal   Market = "global"
)

// Exchange suffixes for the two domestic exchanges.
const (
	SuffixNSE = "NS"
	SuffixBSE = "BO"
)

// SymbolEntry is one row of the symbol catalog: a canonical
// exchange-qualified ticker plus the human names that should resolve to it.
type SymbolEntry struct {
	Symbol string   `json:"symbol"` // exchange-qualified, e.g. "RELIANCE.NS" or "AAPL"
	Suffix string   `json:"suffix"` // "NS", "BO", or "" for global listings
	Names  []string `json:"names"`  // company names, abbreviations, aliases
	Market Market   `json:"market"`
	Sector string   `json:"sector,omitempty"`
}

// BareSymbol returns the ticker without its exchange suffix.
func (e *SymbolEntry) BareSymbol() string {
	if i := strings.IndexByte(e.Symbol, '.'); i >= 0 {
		return e.Symbol[:i]
	}
	return e.Symbol
}

// DisplayName returns the primary name for the entry.
func (e *SymbolEntry) DisplayName() string {
	if len(e.Names) > 0 {
		return e.Names[0]
	}
	return e.Symbol
}

// ResolutionCandidate is one scored match produced during a resolution scan.
type ResolutionCandidate struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	MatchedAlias string  `json:"matched_alias"`
	Score        float64 `json:"score"`
	Market       Market  `json:"market"`
}

// ResolutionResult is the outcome of resolving one free-text query.
// An unresolved query is a valid outcome, not an error: Candidates still
// carries "did you mean" suggestions when anything cleared the threshold.
type ResolutionResult struct {
	Query      string                `json:"query"`
	Resolved   bool                  `json:"resolved"`
	Symbol     string                `json:"symbol,omitempty"`
	Confidence float64               `json:"confidence"`
	Candidates []ResolutionCandidate `json:"candidates,omitempty"`
}
