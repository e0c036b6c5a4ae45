// Package stock resolves free-text stock references and fetches per-symbol
// data through the quote client.
package stock

import (
	"context"
	"fmt"

	"github.com/bazaarhq/bazaar/internal/common"
	"github.com/bazaarhq/bazaar/internal/interfaces"
	"github.com/bazaarhq/bazaar/internal/models"
)

// Service implements interfaces.StockService.
type Service struct {
	client   interfaces.QuoteClient
	resolver interfaces.SymbolResolver
	logger   *common.Logger
}

// NewService creates a stock service.
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

func (s *Service) resolve(query string) (string, error) {
	symbol, err := s.resolver.ResolveSymbol(query)
	if err != nil {
		s.logger.Debug().Str("query", query).Msg("symbol resolution failed")
		return "", err
	}
	if symbol != query {
		s.logger.Debug().Str("query", query).Str("symbol", symbol).Msg("resolved symbol")
	}
	return symbol, nil
}

// Quote fetches the full current quote for a resolved query.
func (s *Service) Quote(ctx context.Context, query string) (*models.Quote, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetQuote(ctx, symbol)
}

// Quotes fetches quotes for several queries. Failures are reported
// per-position so one bad symbol does not sink the batch.
func (s *Service) Quotes(ctx context.Context, queries []string) ([]models.Quote, []error) {
	quotes := make([]models.Quote, len(queries))
	errs := make([]error, len(queries))

	symbols := make([]string, len(queries))
	for i, q := range queries {
		symbols[i], errs[i] = s.resolve(q)
	}

	var fetch []string
	for i, sym := range symbols {
		if errs[i] == nil && sym != "" {
			fetch = append(fetch, sym)
		}
	}
	if len(fetch) == 0 {
		return quotes, errs
	}

	fetched, err := s.client.GetQuotes(ctx, fetch)
	if err != nil {
		for i := range errs {
			if errs[i] == nil {
				errs[i] = err
			}
		}
		return quotes, errs
	}

	bySymbol := make(map[string]models.Quote, len(fetched))
	for _, q := range fetched {
		bySymbol[q.Symbol] = q
	}
	for i, sym := range symbols {
		if errs[i] != nil {
			continue
		}
		q, ok := bySymbol[sym]
		if !ok {
			errs[i] = fmt.Errorf("no quote data for %s", sym)
			continue
		}
		quotes[i] = q
	}
	return quotes, errs
}

// FastInfo is the lightweight quote: same upstream call, trimmed rendering
// is up to the caller.
func (s *Service) FastInfo(ctx context.Context, query string) (*models.Quote, error) {
	return s.Quote(ctx, query)
}

// Info fetches the company profile and key statistics.
func (s *Service) Info(ctx context.Context, query string) (*models.StockInfo, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetInfo(ctx, symbol)
}

// History fetches an OHLCV series.
func (s *Service) History(ctx context.Context, query, period, interval string) (*models.History, error) {
	if period == "" {
		period = "1mo"
	}
	if !models.ValidPeriods[period] {
		return nil, fmt.Errorf("invalid period %q, valid: 1d 5d 1mo 3mo 6mo 1y 2y 5y 10y ytd max", period)
	}
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetHistory(ctx, symbol, period, interval)
}

// News fetches recent news for a symbol.
func (s *Service) News(ctx context.Context, query string, limit int) ([]models.NewsItem, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetNews(ctx, symbol, limit)
}

// Dividends fetches the dividend history.
func (s *Service) Dividends(ctx context.Context, query string) ([]models.Dividend, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetDividends(ctx, symbol)
}

// Splits fetches the split history.
func (s *Service) Splits(ctx context.Context, query string) ([]models.Split, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetSplits(ctx, symbol)
}

// Search passes free text to the upstream symbol search, no resolution.
func (s *Service) Search(ctx context.Context, text string, limit int) ([]models.SearchResult, error) {
	return s.client.Search(ctx, text, limit)
}

// IncomeStatements fetches annual or quarterly income statements.
func (s *Service) IncomeStatements(ctx context.Context, query string, quarterly bool) ([]models.IncomeStatement, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetIncomeStatements(ctx, symbol, quarterly)
}

// BalanceSheets fetches annual or quarterly balance sheets.
func (s *Service) BalanceSheets(ctx context.Context, query string, quarterly bool) ([]models.BalanceSheet, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetBalanceSheets(ctx, symbol, quarterly)
}

// CashflowStatements fetches annual or quarterly cash flow statements.
func (s *Service) CashflowStatements(ctx context.Context, query string, quarterly bool) ([]models.CashflowStatement, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetCashflowStatements(ctx, symbol, quarterly)
}

// Earnings fetches the quarterly estimate-vs-actual history.
func (s *Service) Earnings(ctx context.Context, query string) ([]models.EarningsPeriod, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetEarnings(ctx, symbol)
}

// EarningsDates fetches upcoming earnings announcement dates.
func (s *Service) EarningsDates(ctx context.Context, query string) ([]models.EarningsDate, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetEarningsDates(ctx, symbol)
}

// Recommendations fetches recent analyst rating actions.
func (s *Service) Recommendations(ctx context.Context, query string) ([]models.Recommendation, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetRecommendations(ctx, symbol)
}

// PriceTargets fetches the analyst price-target consensus.
func (s *Service) PriceTargets(ctx context.Context, query string) (*models.PriceTargets, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetPriceTargets(ctx, symbol)
}

// HoldersBreakdown fetches the ownership split.
func (s *Service) HoldersBreakdown(ctx context.Context, query string) (*models.HoldersBreakdown, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetHoldersBreakdown(ctx, symbol)
}

// InstitutionalHolders fetches the largest institutional positions.
func (s *Service) InstitutionalHolders(ctx context.Context, query string) ([]models.InstitutionalHolder, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetInstitutionalHolders(ctx, symbol)
}

// EarningsEstimates fetches forward EPS estimates.
func (s *Service) EarningsEstimates(ctx context.Context, query string) ([]models.EstimateRow, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetEarningsEstimates(ctx, symbol)
}

// RevenueEstimates fetches forward revenue estimates.
func (s *Service) RevenueEstimates(ctx context.Context, query string) ([]models.EstimateRow, error) {
	symbol, err := s.resolve(query)
	if err != nil {
		return nil, err
	}
	return s.client.GetRevenueEstimates(ctx, symbol)
}
