package market

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazaarhq/bazaar/internal/interfaces"
	"github.com/bazaarhq/bazaar/internal/models"
)

type fakeClient struct {
	interfaces.QuoteClient
	quotes    map[string]models.Quote
	infos     map[string]*models.StockInfo
	histories map[string]*models.History
}

func (f *fakeClient) GetQuotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	var out []models.Quote
	for _, s := range symbols {
		if q, ok := f.quotes[s]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeClient) GetInfo(ctx context.Context, symbol string) (*models.StockInfo, error) {
	info, ok := f.infos[symbol]
	if !ok {
		return nil, assert.AnError
	}
	return info, nil
}

func (f *fakeClient) GetHistory(ctx context.Context, symbol, period, interval string) (*models.History, error) {
	h, ok := f.histories[symbol]
	if !ok {
		return nil, assert.AnError
	}
	return h, nil
}

type passthroughResolver struct{}

func (passthroughResolver) Resolve(query string) models.ResolutionResult {
	return models.ResolutionResult{Query: query, Resolved: true, Symbol: query, Confidence: 1.0}
}

func (passthroughResolver) ResolveSymbol(query string) (string, error) { return query, nil }

func (passthroughResolver) ResolveList(queries string) []models.ResolutionResult { return nil }

func watchlistQuotes() map[string]models.Quote {
	quotes := make(map[string]models.Quote)
	for i, sym := range watchlist {
		pct := float64(i - len(watchlist)/2)
		quotes[sym] = models.Quote{
			Symbol:        sym,
			Price:         100 + float64(i),
			ChangePercent: pct,
			Volume:        int64(1_000_000 * (i + 1)),
			MarketCap:     float64(i+1) * 3000 * 1e7,
		}
	}
	return quotes
}

func newTestService(client *fakeClient) *Service {
	return NewService(client, passthroughResolver{}, nil)
}

func TestWatchlistIsCopied(t *testing.T) {
	svc := newTestService(&fakeClient{})
	w := svc.Watchlist()
	require.NotEmpty(t, w)
	w[0] = "MUTATED"
	assert.NotEqual(t, "MUTATED", svc.Watchlist()[0])
}

func TestIndices(t *testing.T) {
	client := &fakeClient{quotes: map[string]models.Quote{
		"^NSEI":  {Symbol: "^NSEI", Price: 24500.5, Change: 120.3, ChangePercent: 0.49},
		"^BSESN": {Symbol: "^BSESN", Price: 80600.1, Change: -210.0, ChangePercent: -0.26},
	}}
	svc := newTestService(client)

	out, err := svc.Indices(context.Background())
	require.NoError(t, err)
	// Missing indices are skipped, display order preserved.
	require.Len(t, out, 2)
	assert.Equal(t, "NIFTY 50", out[0].Name)
	assert.Equal(t, 24500.5, out[0].Value)
	assert.Equal(t, "SENSEX", out[1].Name)
}

func TestMovers(t *testing.T) {
	svc := newTestService(&fakeClient{quotes: watchlistQuotes()})

	gainers, losers, err := svc.Movers(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, gainers, 5)
	require.Len(t, losers, 5)

	// Gainers descend, losers ascend by change percent.
	for i := 1; i < len(gainers); i++ {
		assert.GreaterOrEqual(t, gainers[i-1].ChangePercent, gainers[i].ChangePercent)
	}
	assert.Positive(t, gainers[0].ChangePercent)
	assert.Negative(t, losers[0].ChangePercent)
	for i := 1; i < len(losers); i++ {
		assert.LessOrEqual(t, losers[i-1].ChangePercent, losers[i].ChangePercent)
	}
}

func TestScreenMostActive(t *testing.T) {
	svc := newTestService(&fakeClient{quotes: watchlistQuotes()})

	out, err := svc.Screen(context.Background(), "most_active", 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.GreaterOrEqual(t, out[0].Volume, out[1].Volume)
	assert.GreaterOrEqual(t, out[1].Volume, out[2].Volume)
}

func TestScreenCapBuckets(t *testing.T) {
	svc := newTestService(&fakeClient{quotes: watchlistQuotes()})

	large, err := svc.Screen(context.Background(), "large_cap", 50)
	require.NoError(t, err)
	for _, q := range large {
		assert.GreaterOrEqual(t, q.MarketCap, float64(largeCapFloor))
	}

	small, err := svc.Screen(context.Background(), "small_cap", 50)
	require.NoError(t, err)
	for _, q := range small {
		assert.Less(t, q.MarketCap, float64(midCapFloor))
	}
}

func TestScreenUnknownType(t *testing.T) {
	svc := newTestService(&fakeClient{quotes: watchlistQuotes()})

	_, err := svc.Screen(context.Background(), "volatile", 5)
	assert.ErrorContains(t, err, "unknown screen type")
}

func TestCompare(t *testing.T) {
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	history := func(closes ...float64) *models.History {
		h := &models.History{Period: "ytd"}
		for i, c := range closes {
			h.Bars = append(h.Bars, models.Bar{Date: start.AddDate(0, 0, i), Close: c})
		}
		return h
	}

	client := &fakeClient{
		infos: map[string]*models.StockInfo{
			"TCS.NS":  {Name: "Tata Consultancy Services", PERatio: 29.4, Sector: "IT"},
			"INFY.NS": {Name: "Infosys", PERatio: 24.1, Sector: "IT"},
		},
		histories: map[string]*models.History{
			"TCS.NS":  history(4000, 4100, 4400),
			"INFY.NS": history(1500, 1450, 1425),
		},
	}
	svc := newTestService(client)

	rows, err := svc.Compare(context.Background(), []string{"TCS.NS", "INFY.NS", "BROKEN.NS"})
	require.NoError(t, err)
	// The symbol with no data is skipped.
	require.Len(t, rows, 2)

	assert.Equal(t, "TCS.NS", rows[0].Symbol)
	assert.InDelta(t, 10.0, rows[0].YTDReturn, 0.001)
	assert.InDelta(t, -5.0, rows[1].YTDReturn, 0.001)
	assert.Positive(t, rows[0].Volatility)
}

func TestCompareNeedsTwo(t *testing.T) {
	svc := newTestService(&fakeClient{})

	_, err := svc.Compare(context.Background(), []string{"TCS.NS"})
	assert.ErrorContains(t, err, "at least two")
}

func TestAnnualizedVolatility(t *testing.T) {
	assert.Zero(t, annualizedVolatility([]float64{100, 101}))

	flat := annualizedVolatility([]float64{100, 100, 100, 100})
	assert.Zero(t, flat)

	moving := annualizedVolatility([]float64{100, 105, 95, 103, 99})
	assert.Positive(t, moving)
}
