// Package catalog holds the static symbol table the resolver matches against.
// Domestic listings come from an embedded CSV; well-known global tickers are
// compiled in below.
package catalog

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bazaarhq/bazaar/internal/models"
)

//go:embed data/tickers.csv
var tickersCSV string

// Catalog is an immutable, insertion-ordered symbol table with an
// exact-lookup index. Safe for concurrent reads once loaded.
type Catalog struct {
	entries []models.SymbolEntry
	exact   map[string]int // upper-cased symbol or bare symbol -> entries index
}

// Load parses the embedded domestic listings, expands their aliases and
// appends the global table.
func Load() (*Catalog, error) {
	c := &Catalog{exact: make(map[string]int)}

	r := csv.NewReader(strings.NewReader(tickersCSV))
	r.FieldsPerRecord = 4
	header := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse ticker table: %w", err)
		}
		if header {
			header = false
			continue
		}
		entry, err := domesticEntry(rec[0], rec[1], rec[2], rec[3])
		if err != nil {
			return nil, err
		}
		c.add(entry)
	}

	for _, g := range globalSymbols() {
		c.add(g)
	}
	return c, nil
}

func domesticEntry(symbol, exchange, name, sector string) (models.SymbolEntry, error) {
	var suffix string
	switch exchange {
	case "NSE":
		suffix = models.SuffixNSE
	case "BSE":
		suffix = models.SuffixBSE
	default:
		return models.SymbolEntry{}, fmt.Errorf("ticker table: unknown exchange %q for %s", exchange, symbol)
	}
	return models.SymbolEntry{
		Symbol: symbol + "." + suffix,
		Suffix: suffix,
		Names:  ExpandAliases(name),
		Market: models.MarketDomestic,
		Sector: sector,
	}, nil
}

func (c *Catalog) add(entry models.SymbolEntry) {
	idx := len(c.entries)
	c.entries = append(c.entries, entry)

	key := strings.ToUpper(entry.Symbol)
	if _, ok := c.exact[key]; !ok {
		c.exact[key] = idx
	}
	// Bare symbols map too, so "TCS" finds TCS.NS. First listing wins,
	// which keeps NSE ahead of a BSE duplicate.
	bare := strings.ToUpper((&entry).BareSymbol())
	if _, ok := c.exact[bare]; !ok {
		c.exact[bare] = idx
	}
}

// LookupExact finds an entry by its full or bare symbol, case-insensitively.
func (c *Catalog) LookupExact(symbol string) (*models.SymbolEntry, bool) {
	idx, ok := c.exact[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return nil, false
	}
	return &c.entries[idx], true
}

// Entries returns the full table in insertion order. Callers must not
// modify the returned slice.
func (c *Catalog) Entries() []models.SymbolEntry {
	return c.entries
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Domestic returns the domestic entries in insertion order.
func (c *Catalog) Domestic() []models.SymbolEntry {
	var out []models.SymbolEntry
	for _, e := range c.entries {
		if e.Market == models.MarketDomestic {
			out = append(out, e)
		}
	}
	return out
}

var corporateSuffixes = []string{
	"limited", "ltd", "pvt", "private", "corporation", "corp",
	"company", "co", "inc", "incorporated", "plc", "enterprises",
}

var honorificPrefixes = []string{"the", "dr", "shri"}

// ExpandAliases derives the lookup aliases for a company name: the name
// itself, the name with corporate suffixes and honorific prefixes removed,
// leading two- and three-word partials, and an acronym of the stripped
// words. The first alias keeps the original casing for display; derived
// aliases are lower-cased.
func ExpandAliases(name string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(alias string) {
		alias = strings.TrimSpace(alias)
		key := strings.ToLower(alias)
		if alias == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, alias)
	}

	add(name)

	stripped := stripAffixes(name)
	add(stripped)

	words := strings.Fields(stripped)
	if len(words) >= 3 {
		add(strings.Join(words[:3], " "))
	}
	if len(words) >= 2 {
		add(strings.Join(words[:2], " "))
		add(words[0])
		add(acronym(words))
	}
	return out
}

func stripAffixes(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for len(words) > 1 && isOneOf(trimPunct(words[0]), honorificPrefixes) {
		words = words[1:]
	}
	for len(words) > 1 && isOneOf(trimPunct(words[len(words)-1]), corporateSuffixes) {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func trimPunct(w string) string {
	return strings.Trim(w, ".,()")
}

func isOneOf(w string, set []string) bool {
	for _, s := range set {
		if w == s {
			return true
		}
	}
	return false
}

func acronym(words []string) string {
	var b strings.Builder
	for _, w := range words {
		w = trimPunct(w)
		if w == "" || w == "and" || w == "of" {
			continue
		}
		b.WriteByte(w[0])
	}
	if b.Len() < 2 {
		return ""
	}
	return b.String()
}
