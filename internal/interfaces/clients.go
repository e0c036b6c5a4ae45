// Package interfaces defines the contracts between the client, service and
// tool layers. Handlers depend on these, never on concrete types, which
// keeps them mockable in tests.
package interfaces

import (
	"context"

	"github.com/bazaarhq/bazaar/internal/models"
)

// QuoteClient is the upstream market data API surface.
type QuoteClient interface {
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
	GetQuotes(ctx context.Context, symbols []string) ([]models.Quote, error)
	GetHistory(ctx context.Context, symbol, period, interval string) (*models.History, error)
	GetDividends(ctx context.Context, symbol string) ([]models.Dividend, error)
	GetSplits(ctx context.Context, symbol string) ([]models.Split, error)
	GetInfo(ctx context.Context, symbol string) (*models.StockInfo, error)
	GetNews(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error)
	Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error)

	GetIncomeStatements(ctx context.Context, symbol string, quarterly bool) ([]models.IncomeStatement, error)
	GetBalanceSheets(ctx context.Context, symbol string, quarterly bool) ([]models.BalanceSheet, error)
	GetCashflowStatements(ctx context.Context, symbol string, quarterly bool) ([]models.CashflowStatement, error)
	GetEarnings(ctx context.Context, symbol string) ([]models.EarningsPeriod, error)
	GetEarningsDates(ctx context.Context, symbol string) ([]models.EarningsDate, error)
	GetRecommendations(ctx context.Context, symbol string) ([]models.Recommendation, error)
	GetPriceTargets(ctx context.Context, symbol string) (*models.PriceTargets, error)
	GetHoldersBreakdown(ctx context.Context, symbol string) (*models.HoldersBreakdown, error)
	GetInstitutionalHolders(ctx context.Context, symbol string) ([]models.InstitutionalHolder, error)
	GetEarningsEstimates(ctx context.Context, symbol string) ([]models.EstimateRow, error)
	GetRevenueEstimates(ctx context.Context, symbol string) ([]models.EstimateRow, error)
}
