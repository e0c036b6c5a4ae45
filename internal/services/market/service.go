// Package market provides market-wide views: index snapshots, movers over
// the watchlist universe, side-by-side comparison and screening.
package market

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bazaarhq/bazaar/internal/common"
	"github.com/bazaarhq/bazaar/internal/interfaces"
	"github.com/bazaarhq/bazaar/internal/models"
)

// watchlist is the NIFTY 50 core universe scanned for movers and screens.
var watchlist = []string{
	"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS",
	"HDFC.NS", "ITC.NS", "KOTAKBANK.NS", "HINDUNILVR.NS", "LT.NS",
	"SBIN.NS", "BAJFINANCE.NS", "BHARTIARTL.NS", "ASIANPAINT.NS", "MARUTI.NS",
	"AXISBANK.NS", "HCLTECH.NS", "M&M.NS", "NTPC.NS", "NESTLEIND.NS",
	"WIPRO.NS", "ULTRACEMCO.NS", "SUNPHARMA.NS", "POWERGRID.NS", "TATASTEEL.NS",
	"TITAN.NS", "BAJAJFINSV.NS", "TECHM.NS", "ONGC.NS", "INDUSINDBK.NS",
}

// indexEntry pins display order for the index board.
type indexEntry struct {
	Name   string
	Symbol string
}

var indices = []indexEntry{
	{"NIFTY 50", "^NSEI"},
	{"SENSEX", "^BSESN"},
	{"NIFTY BANK", "^NSEBANK"},
	{"NIFTY IT", "^CNXIT"},
	{"NIFTY AUTO", "^CNXAUTO"},
	{"S&P 500", "^GSPC"},
	{"NASDAQ", "^IXIC"},
	{"DOW JONES", "^DJI"},
}

// ScreenTypes are the accepted screen_stocks selectors.
var ScreenTypes = []string{
	"most_active", "gainers", "losers", "trending",
	"small_cap", "mid_cap", "large_cap",
}

// Cap buckets in rupees. Indian convention: large cap above 20,000 Cr.
const (
	largeCapFloor = 20000 * 1e7
	midCapFloor   = 5000 * 1e7
)

// Service implements interfaces.MarketService.
type Service struct {
	client   interfaces.QuoteClient
	resolver interfaces.SymbolResolver
	logger   *common.Logger
}

// NewService creates a market service.
func NewService(client interfaces.QuoteClient, res interfaces.SymbolResolver, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		client:   client,
		resolver: res,
		logger:   logger,
	}
}

// Watchlist returns the scan universe.
func (s *Service) Watchlist() []string {
	out := make([]string, len(watchlist))
	copy(out, watchlist)
	return out
}

// Indices fetches the index board in display order. Indices the upstream
// fails to return are skipped rather than failing the board.
func (s *Service) Indices(ctx context.Context) ([]models.IndexQuote, error) {
	symbols := make([]string, len(indices))
	for i, ix := range indices {
		symbols[i] = ix.Symbol
	}

	quotes, err := s.client.GetQuotes(ctx, symbols)
	if err != nil {
		return nil, err
	}
	bySymbol := make(map[string]models.Quote, len(quotes))
	for _, q := range quotes {
		bySymbol[q.Symbol] = q
	}

	var out []models.IndexQuote
	for _, ix := range indices {
		q, ok := bySymbol[ix.Symbol]
		if !ok {
			s.logger.Warn().Str("index", ix.Name).Msg("index quote missing from response")
			continue
		}
		out = append(out, models.IndexQuote{
			Name:          ix.Name,
			Symbol:        ix.Symbol,
			Value:         q.Price,
			Change:        q.Change,
			ChangePercent: q.ChangePercent,
		})
	}
	return out, nil
}

// fetchUniverse quotes the whole watchlist in one call.
func (s *Service) fetchUniverse(ctx context.Context) ([]models.Quote, error) {
	quotes, err := s.client.GetQuotes(ctx, watchlist)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("no quotes returned for watchlist")
	}
	return quotes, nil
}

// Movers returns the top gainers and losers across the watchlist.
func (s *Service) Movers(ctx context.Context, count int) ([]models.Quote, []models.Quote, error) {
	if count <= 0 {
		count = 10
	}
	quotes, err := s.fetchUniverse(ctx)
	if err != nil {
		return nil, nil, err
	}

	sorted := make([]models.Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ChangePercent > sorted[j].ChangePercent
	})

	gainers := make([]models.Quote, 0, count)
	for _, q := range sorted {
		if q.ChangePercent <= 0 || len(gainers) >= count {
			break
		}
		gainers = append(gainers, q)
	}

	losers := make([]models.Quote, 0, count)
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].ChangePercent >= 0 || len(losers) >= count {
			break
		}
		losers = append(losers, sorted[i])
	}
	return gainers, losers, nil
}

// Compare builds side-by-side comparison rows for the queries. Symbols
// that fail to fetch are skipped; the row order follows the input.
func (s *Service) Compare(ctx context.Context, queries []string) ([]models.ComparisonRow, error) {
	if len(queries) < 2 {
		return nil, fmt.Errorf("comparison needs at least two symbols")
	}

	var rows []models.ComparisonRow
	for _, query := range queries {
		symbol, err := s.resolver.ResolveSymbol(strings.TrimSpace(query))
		if err != nil {
			s.logger.Warn().Str("query", query).Err(err).Msg("skipping unresolvable comparison symbol")
			continue
		}
		row, err := s.compareRow(ctx, symbol)
		if err != nil {
			s.logger.Warn().Str("symbol", symbol).Err(err).Msg("skipping failed comparison symbol")
			continue
		}
		rows = append(rows, *row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no comparison data for any requested symbol")
	}
	return rows, nil
}

func (s *Service) compareRow(ctx context.Context, symbol string) (*models.ComparisonRow, error) {
	info, err := s.client.GetInfo(ctx, symbol)
	if err != nil {
		return nil, err
	}

	row := &models.ComparisonRow{
		Symbol:        symbol,
		Name:          info.Name,
		MarketCap:     info.MarketCap,
		PERatio:       info.PERatio,
		PriceToBook:   info.PriceToBook,
		DividendYield: info.DividendYield,
		Beta:          info.Beta,
		FiftyTwoHigh:  info.FiftyTwoHigh,
		FiftyTwoLow:   info.FiftyTwoLow,
		Sector:        info.Sector,
		Industry:      info.Industry,
	}

	history, err := s.client.GetHistory(ctx, symbol, "ytd", "1d")
	if err != nil || len(history.Bars) < 2 {
		return row, nil
	}
	closes := make([]float64, len(history.Bars))
	for i, b := range history.Bars {
		closes[i] = b.Close
	}
	row.CurrentPrice = closes[len(closes)-1]
	if closes[0] != 0 {
		row.YTDReturn = (closes[len(closes)-1]/closes[0] - 1) * 100
	}
	row.Volatility = annualizedVolatility(closes)
	return row, nil
}

// annualizedVolatility is the stdev of daily log returns scaled by sqrt(252).
func annualizedVolatility(closes []float64) float64 {
	if len(closes) < 3 {
		return 0
	}
	var returns []float64
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			continue
		}
		returns = append(returns, math.Log(closes[i]/closes[i-1]))
	}
	if len(returns) < 2 {
		return 0
	}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns) - 1)
	return math.Sqrt(variance) * math.Sqrt(252) * 100
}

// Screen filters and ranks the watchlist by the named screen type.
func (s *Service) Screen(ctx context.Context, screenType string, count int) ([]models.Quote, error) {
	if count <= 0 {
		count = 10
	}
	screenType = strings.ToLower(strings.TrimSpace(screenType))

	quotes, err := s.fetchUniverse(ctx)
	if err != nil {
		return nil, err
	}

	switch screenType {
	case "most_active":
		sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].Volume > quotes[j].Volume })
	case "gainers":
		sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].ChangePercent > quotes[j].ChangePercent })
		quotes = filterQuotes(quotes, func(q models.Quote) bool { return q.ChangePercent > 0 })
	case "losers":
		sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].ChangePercent < quotes[j].ChangePercent })
		quotes = filterQuotes(quotes, func(q models.Quote) bool { return q.ChangePercent < 0 })
	case "trending":
		// Trending favors volume-weighted absolute movement.
		sort.SliceStable(quotes, func(i, j int) bool {
			return math.Abs(quotes[i].ChangePercent)*float64(quotes[i].Volume) >
				math.Abs(quotes[j].ChangePercent)*float64(quotes[j].Volume)
		})
	case "large_cap":
		quotes = filterQuotes(quotes, func(q models.Quote) bool { return q.MarketCap >= largeCapFloor })
		sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].MarketCap > quotes[j].MarketCap })
	case "mid_cap":
		quotes = filterQuotes(quotes, func(q models.Quote) bool {
			return q.MarketCap >= midCapFloor && q.MarketCap < largeCapFloor
		})
		sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].MarketCap > quotes[j].MarketCap })
	case "small_cap":
		quotes = filterQuotes(quotes, func(q models.Quote) bool {
			return q.MarketCap > 0 && q.MarketCap < midCapFloor
		})
		sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].MarketCap > quotes[j].MarketCap })
	default:
		return nil, fmt.Errorf("unknown screen type %q, valid: %s", screenType, strings.Join(ScreenTypes, ", "))
	}

	if len(quotes) > count {
		quotes = quotes[:count]
	}
	return quotes, nil
}

func filterQuotes(quotes []models.Quote, keep func(models.Quote) bool) []models.Quote {
	out := quotes[:0:0]
	for _, q := range quotes {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
