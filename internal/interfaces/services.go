package interfaces

import (
	"context"

	"github.com/bazaarhq/bazaar/internal/models"
)

// SymbolResolver maps free-text stock references to ticker symbols.
type SymbolResolver interface {
	Resolve(query string) models.ResolutionResult
	ResolveSymbol(query string) (string, error)
	ResolveList(queries string) []models.ResolutionResult
}

// StockService provides per-symbol data with resolution applied.
type StockService interface {
	Quote(ctx context.Context, query string) (*models.Quote, error)
	Quotes(ctx context.Context, queries []string) ([]models.Quote, []error)
	FastInfo(ctx context.Context, query string) (*models.Quote, error)
	Info(ctx context.Context, query string) (*models.StockInfo, error)
	History(ctx context.Context, query, period, interval string) (*models.History, error)
	News(ctx context.Context, query string, limit int) ([]models.NewsItem, error)
	Dividends(ctx context.Context, query string) ([]models.Dividend, error)
	Splits(ctx context.Context, query string) ([]models.Split, error)
	Search(ctx context.Context, text string, limit int) ([]models.SearchResult, error)

	IncomeStatements(ctx context.Context, query string, quarterly bool) ([]models.IncomeStatement, error)
	BalanceSheets(ctx context.Context, query string, quarterly bool) ([]models.BalanceSheet, error)
	CashflowStatements(ctx context.Context, query string, quarterly bool) ([]models.CashflowStatement, error)
	Earnings(ctx context.Context, query string) ([]models.EarningsPeriod, error)
	EarningsDates(ctx context.Context, query string) ([]models.EarningsDate, error)
	Recommendations(ctx context.Context, query string) ([]models.Recommendation, error)
	PriceTargets(ctx context.Context, query string) (*models.PriceTargets, error)
	HoldersBreakdown(ctx context.Context, query string) (*models.HoldersBreakdown, error)
	InstitutionalHolders(ctx context.Context, query string) ([]models.InstitutionalHolder, error)
	EarningsEstimates(ctx context.Context, query string) ([]models.EstimateRow, error)
	RevenueEstimates(ctx context.Context, query string) ([]models.EstimateRow, error)
}

// MarketService provides market-wide views over the watchlist universe.
type MarketService interface {
	Indices(ctx context.Context) ([]models.IndexQuote, error)
	Movers(ctx context.Context, count int) (gainers, losers []models.Quote, err error)
	Compare(ctx context.Context, queries []string) ([]models.ComparisonRow, error)
	Screen(ctx context.Context, screenType string, count int) ([]models.Quote, error)
	Watchlist() []string
}

// ChartRenderer renders PNG charts, returning the stored image filename
// alongside the raw PNG bytes.
type ChartRenderer interface {
	PriceChart(ctx context.Context, query, period string) (string, []byte, error)
	ComparisonChart(ctx context.Context, queries []string, period string) (string, []byte, error)
	CandlestickChart(ctx context.Context, query, period string) (string, []byte, error)
	VolumeChart(ctx context.Context, query, period string) (string, []byte, error)
}
