package app

import (
	"context"
	"fmt"

	"github.com/bazaarhq/bazaar/internal/models"
)

// mockStockService implements interfaces.StockService with per-method
// overrides. Unset methods return a canned quote for the resolved symbol.
type mockStockService struct {
	quoteFn    func(ctx context.Context, query string) (*models.Quote, error)
	quotesFn   func(ctx context.Context, queries []string) ([]models.Quote, []error)
	infoFn     func(ctx context.Context, query string) (*models.StockInfo, error)
	historyFn  func(ctx context.Context, query, period, interval string) (*models.History, error)
	searchFn   func(ctx context.Context, text string, limit int) ([]models.SearchResult, error)
	lastPeriod string
}

func cannedQuote(symbol string) *models.Quote {
	return &models.Quote{
		Symbol:        symbol,
		Name:          "Test Company",
		Price:         1234.56,
		Change:        12.34,
		ChangePercent: 1.01,
		Volume:        1_000_000,
		Currency:      "INR",
		Exchange:      "NSI",
	}
}

func (m *mockStockService) Quote(ctx context.Context, query string) (*models.Quote, error) {
	if m.quoteFn != nil {
		return m.quoteFn(ctx, query)
	}
	return cannedQuote(query), nil
}

func (m *mockStockService) Quotes(ctx context.Context, queries []string) ([]models.Quote, []error) {
	if m.quotesFn != nil {
		return m.quotesFn(ctx, queries)
	}
	quotes := make([]models.Quote, len(queries))
	errs := make([]error, len(queries))
	for i, q := range queries {
		quotes[i] = *cannedQuote(q)
	}
	return quotes, errs
}

func (m *mockStockService) FastInfo(ctx context.Context, query string) (*models.Quote, error) {
	return m.Quote(ctx, query)
}

func (m *mockStockService) Info(ctx context.Context, query string) (*models.StockInfo, error) {
	if m.infoFn != nil {
		return m.infoFn(ctx, query)
	}
	return &models.StockInfo{Symbol: query, Name: "Test Company", Sector: "Technology", Currency: "INR"}, nil
}

func (m *mockStockService) History(ctx context.Context, query, period, interval string) (*models.History, error) {
	m.lastPeriod = period
	if m.historyFn != nil {
		return m.historyFn(ctx, query, period, interval)
	}
	return &models.History{Symbol: query, Period: period}, nil
}

func (m *mockStockService) News(ctx context.Context, query string, limit int) ([]models.NewsItem, error) {
	return nil, nil
}

func (m *mockStockService) Dividends(ctx context.Context, query string) ([]models.Dividend, error) {
	return nil, nil
}

func (m *mockStockService) Splits(ctx context.Context, query string) ([]models.Split, error) {
	return nil, nil
}

func (m *mockStockService) Search(ctx context.Context, text string, limit int) ([]models.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, text, limit)
	}
	return nil, nil
}

func (m *mockStockService) IncomeStatements(ctx context.Context, query string, quarterly bool) ([]models.IncomeStatement, error) {
	return nil, nil
}

func (m *mockStockService) BalanceSheets(ctx context.Context, query string, quarterly bool) ([]models.BalanceSheet, error) {
	return nil, nil
}

func (m *mockStockService) CashflowStatements(ctx context.Context, query string, quarterly bool) ([]models.CashflowStatement, error) {
	return nil, nil
}

func (m *mockStockService) Earnings(ctx context.Context, query string) ([]models.EarningsPeriod, error) {
	return nil, nil
}

func (m *mockStockService) EarningsDates(ctx context.Context, query string) ([]models.EarningsDate, error) {
	return nil, nil
}

func (m *mockStockService) Recommendations(ctx context.Context, query string) ([]models.Recommendation, error) {
	return nil, nil
}

func (m *mockStockService) PriceTargets(ctx context.Context, query string) (*models.PriceTargets, error) {
	return &models.PriceTargets{CurrentPrice: 100, Mean: 120, NumAnalysts: 5}, nil
}

func (m *mockStockService) HoldersBreakdown(ctx context.Context, query string) (*models.HoldersBreakdown, error) {
	return &models.HoldersBreakdown{InsidersPct: 10, InstitutionsPct: 40}, nil
}

func (m *mockStockService) InstitutionalHolders(ctx context.Context, query string) ([]models.InstitutionalHolder, error) {
	return nil, nil
}

func (m *mockStockService) EarningsEstimates(ctx context.Context, query string) ([]models.EstimateRow, error) {
	return nil, nil
}

func (m *mockStockService) RevenueEstimates(ctx context.Context, query string) ([]models.EstimateRow, error) {
	return nil, nil
}

// mockMarketService implements interfaces.MarketService.
type mockMarketService struct {
	indicesFn func(ctx context.Context) ([]models.IndexQuote, error)
	moversFn  func(ctx context.Context, count int) ([]models.Quote, []models.Quote, error)
	compareFn func(ctx context.Context, queries []string) ([]models.ComparisonRow, error)
	screenFn  func(ctx context.Context, screenType string, count int) ([]models.Quote, error)
}

func (m *mockMarketService) Indices(ctx context.Context) ([]models.IndexQuote, error) {
	if m.indicesFn != nil {
		return m.indicesFn(ctx)
	}
	return []models.IndexQuote{{Name: "NIFTY 50", Symbol: "^NSEI", Value: 24000, ChangePercent: 0.5}}, nil
}

func (m *mockMarketService) Movers(ctx context.Context, count int) ([]models.Quote, []models.Quote, error) {
	if m.moversFn != nil {
		return m.moversFn(ctx, count)
	}
	return []models.Quote{*cannedQuote("TCS.NS")}, []models.Quote{*cannedQuote("INFY.NS")}, nil
}

func (m *mockMarketService) Compare(ctx context.Context, queries []string) ([]models.ComparisonRow, error) {
	if m.compareFn != nil {
		return m.compareFn(ctx, queries)
	}
	rows := make([]models.ComparisonRow, len(queries))
	for i, q := range queries {
		rows[i] = models.ComparisonRow{Symbol: q}
	}
	return rows, nil
}

func (m *mockMarketService) Screen(ctx context.Context, screenType string, count int) ([]models.Quote, error) {
	if m.screenFn != nil {
		return m.screenFn(ctx, screenType, count)
	}
	return []models.Quote{*cannedQuote("RELIANCE.NS")}, nil
}

func (m *mockMarketService) Watchlist() []string {
	return []string{"RELIANCE.NS", "TCS.NS"}
}

// fixturePNG is a stand-in for rendered chart bytes.
var fixturePNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// mockChartRenderer implements interfaces.ChartRenderer, recording the
// last request and returning a fixed filename with fixture bytes.
type mockChartRenderer struct {
	lastQuery  string
	lastPeriod string
	err        error
}

func (m *mockChartRenderer) render(query, period string) (string, []byte, error) {
	m.lastQuery = query
	m.lastPeriod = period
	if m.err != nil {
		return "", nil, m.err
	}
	return "chart-fixture.png", fixturePNG, nil
}

func (m *mockChartRenderer) PriceChart(ctx context.Context, query, period string) (string, []byte, error) {
	return m.render(query, period)
}

func (m *mockChartRenderer) ComparisonChart(ctx context.Context, queries []string, period string) (string, []byte, error) {
	return m.render(fmt.Sprintf("%v", queries), period)
}

func (m *mockChartRenderer) CandlestickChart(ctx context.Context, query, period string) (string, []byte, error) {
	return m.render(query, period)
}

func (m *mockChartRenderer) VolumeChart(ctx context.Context, query, period string) (string, []byte, error) {
	return m.render(query, period)
}
