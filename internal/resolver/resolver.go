// Package resolver turns free-text stock references into exchange-qualified
// ticker symbols. Resolution runs in tiers: catalog lookup, ticker-shaped
// pass-through, exact alias, then fuzzy scan.
package resolver

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bazaarhq/bazaar/internal/catalog"
	"github.com/bazaarhq/bazaar/internal/common"
	"github.com/bazaarhq/bazaar/internal/models"
)

var (
	// Suffixed tickers are accepted in any case: the suffix makes the
	// intent unambiguous.
	suffixedTicker = regexp.MustCompile(`(?i)^[a-z][a-z0-9&\-]*\.(ns|bo)$`)

	// Bare tickers must arrive fully upper-cased. Mixed case ("Aple")
	// reads as a company name and falls through to fuzzy matching.
	bareTicker = regexp.MustCompile(`^[A-Z]{1,5}$`)
)

// Options are the resolution thresholds, normally sourced from config.
type Options struct {
	AcceptThreshold float64
	HighConfidence  float64
	TieEpsilon      float64
	MaxCandidates   int
	PreferDomestic  bool
}

// OptionsFromConfig maps the resolver config section onto Options.
func OptionsFromConfig(rc common.ResolverConfig) Options {
	return Options{
		AcceptThreshold: rc.AcceptThreshold,
		HighConfidence:  rc.HighConfidence,
		TieEpsilon:      rc.TieEpsilon,
		MaxCandidates:   rc.MaxCandidates,
		PreferDomestic:  rc.PreferDomestic,
	}
}

// Resolver matches queries against a loaded catalog. Safe for concurrent
// use; all state is read-only after New.
type Resolver struct {
	catalog *catalog.Catalog
	opts    Options

	aliasIndex map[string]int // normalized alias -> catalog entry index
	aliases    []scanAlias    // flattened alias list in catalog order
}

type scanAlias struct {
	entryIdx int
	alias    string // normalized
}

// New builds a resolver over the catalog, pre-normalizing every alias.
func New(cat *catalog.Catalog, opts Options) *Resolver {
	r := &Resolver{
		catalog:    cat,
		opts:       opts,
		aliasIndex: make(map[string]int),
	}
	for i, entry := range cat.Entries() {
		for _, raw := range entry.Names {
			alias := normalize(raw)
			if alias == "" {
				continue
			}
			if _, ok := r.aliasIndex[alias]; !ok {
				r.aliasIndex[alias] = i
			}
			r.aliases = append(r.aliases, scanAlias{entryIdx: i, alias: alias})
		}
	}
	return r
}

// Resolve maps one free-text query to a symbol. An unresolved query is not
// an error; Candidates carries any suggestions that cleared the threshold.
func (r *Resolver) Resolve(query string) models.ResolutionResult {
	result := models.ResolutionResult{Query: query}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return result
	}

	// Tier 1: the catalog knows this symbol, bare or suffixed, any case.
	if entry, ok := r.catalog.LookupExact(trimmed); ok {
		return r.resolved(result, candidateFromEntry(entry, entry.Symbol, 1.0))
	}

	// Tier 2: ticker-shaped input passes through untouched. The catalog is
	// static, so a well-formed symbol it has never heard of is still trusted.
	if suffixedTicker.MatchString(trimmed) {
		sym := strings.ToUpper(trimmed)
		return r.resolved(result, models.ResolutionCandidate{
			Symbol: sym,
			Name:   sym,
			Score:  1.0,
			Market: models.MarketDomestic,
		})
	}
	if bareTicker.MatchString(trimmed) {
		return r.resolved(result, models.ResolutionCandidate{
			Symbol: trimmed,
			Name:   trimmed,
			Score:  1.0,
			Market: models.MarketGlobal,
		})
	}

	norm := normalize(trimmed)
	if norm == "" {
		return result
	}

	// Tier 3: the query is an alias verbatim.
	if idx, ok := r.aliasIndex[norm]; ok {
		entry := &r.catalog.Entries()[idx]
		cand := candidateFromEntry(entry, norm, 1.0)
		return r.resolved(result, cand)
	}

	// Tier 4: fuzzy scan.
	result.Candidates = r.scan(norm)
	if len(result.Candidates) > 0 {
		top := result.Candidates[0]
		result.Confidence = top.Score
		if top.Score >= r.opts.HighConfidence {
			result.Resolved = true
			result.Symbol = top.Symbol
		}
	}
	return result
}

// ResolveSymbol resolves a query or fails with a suggestion-bearing error.
func (r *Resolver) ResolveSymbol(query string) (string, error) {
	res := r.Resolve(query)
	if res.Resolved {
		return res.Symbol, nil
	}
	if len(res.Candidates) > 0 {
		var names []string
		for _, c := range res.Candidates {
			names = append(names, fmt.Sprintf("%s (%s)", c.Symbol, c.Name))
		}
		return "", fmt.Errorf("could not resolve %q, did you mean: %s", query, strings.Join(names, ", "))
	}
	return "", fmt.Errorf("could not resolve %q to a known symbol", query)
}

// ResolveList resolves a comma-separated list of queries in order.
func (r *Resolver) ResolveList(queries string) []models.ResolutionResult {
	var out []models.ResolutionResult
	for _, part := range strings.Split(queries, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, r.Resolve(part))
	}
	return out
}

func (r *Resolver) resolved(result models.ResolutionResult, cand models.ResolutionCandidate) models.ResolutionResult {
	result.Resolved = true
	result.Symbol = cand.Symbol
	result.Confidence = cand.Score
	result.Candidates = []models.ResolutionCandidate{cand}
	return result
}

func (r *Resolver) scan(norm string) []models.ResolutionCandidate {
	entries := r.catalog.Entries()

	best := make(map[int]models.ResolutionCandidate)
	for _, sa := range r.aliases {
		score := aliasScore(norm, sa.alias)
		if score < r.opts.AcceptThreshold {
			continue
		}
		if prev, ok := best[sa.entryIdx]; !ok || score > prev.Score {
			entry := &entries[sa.entryIdx]
			best[sa.entryIdx] = candidateFromEntry(entry, sa.alias, score)
		}
	}

	// Collect in catalog order so equal scores sort deterministically.
	cands := make([]models.ResolutionCandidate, 0, len(best))
	for i := range entries {
		if c, ok := best[i]; ok {
			cands = append(cands, c)
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})

	if r.opts.PreferDomestic {
		promoteDomestic(cands, r.opts.TieEpsilon)
	}
	if len(cands) > r.opts.MaxCandidates {
		cands = cands[:r.opts.MaxCandidates]
	}
	return cands
}

// promoteDomestic moves NSE/BSE listings ahead of global listings whose
// score lead is inside the tie window. Relative order is otherwise kept.
func promoteDomestic(cands []models.ResolutionCandidate, eps float64) {
	for i := 1; i < len(cands); i++ {
		j := i
		for j > 0 &&
			cands[j].Market == models.MarketDomestic &&
			cands[j-1].Market == models.MarketGlobal &&
			cands[j-1].Score-cands[j].Score < eps {
			cands[j-1], cands[j] = cands[j], cands[j-1]
			j--
		}
	}
}

func aliasScore(query, alias string) float64 {
	score := wordMatchScore(query, alias)
	if s := prefixScore(query, alias); s > score {
		score = s
	}
	if s := similarityRatio(query, alias); s > score {
		score = s
	}
	return score
}

func candidateFromEntry(entry *models.SymbolEntry, matched string, score float64) models.ResolutionCandidate {
	return models.ResolutionCandidate{
		Symbol:       entry.Symbol,
		Name:         entry.DisplayName(),
		MatchedAlias: matched,
		Score:        score,
		Market:       entry.Market,
	}
}
