package stock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazaarhq/bazaar/internal/interfaces"
	"github.com/bazaarhq/bazaar/internal/models"
)

type fakeClient struct {
	interfaces.QuoteClient
	quotes map[string]models.Quote

	lastHistoryPeriod string
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

func (f *fakeClient) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	q, ok := f.quotes[symbol]
	if !ok {
		return nil, errors.New("no quote")
	}
	return &q, nil
}

func (f *fakeClient) GetHistory(ctx context.Context, symbol, period, interval string) (*models.History, error) {
	f.lastHistoryPeriod = period
	return &models.History{Symbol: symbol, Period: period}, nil
}

// mapResolver resolves only what it knows; everything else errors.
type mapResolver map[string]string

func (m mapResolver) Resolve(query string) models.ResolutionResult {
	if sym, ok := m[query]; ok {
		return models.ResolutionResult{Query: query, Resolved: true, Symbol: sym, Confidence: 1.0}
	}
	return models.ResolutionResult{Query: query}
}

func (m mapResolver) ResolveSymbol(query string) (string, error) {
	if sym, ok := m[query]; ok {
		return sym, nil
	}
	return "", errors.New("could not resolve " + query)
}

func (m mapResolver) ResolveList(queries string) []models.ResolutionResult { return nil }

func TestQuoteResolvesQuery(t *testing.T) {
	client := &fakeClient{quotes: map[string]models.Quote{
		"TCS.NS": {Symbol: "TCS.NS", Price: 4100},
	}}
	svc := NewService(client, mapResolver{"tata consultancy": "TCS.NS"}, nil)

	q, err := svc.Quote(context.Background(), "tata consultancy")
	require.NoError(t, err)
	assert.Equal(t, "TCS.NS", q.Symbol)
	assert.Equal(t, 4100.0, q.Price)
}

func TestQuoteUnresolvable(t *testing.T) {
	svc := NewService(&fakeClient{}, mapResolver{}, nil)

	_, err := svc.Quote(context.Background(), "nonsense")
	assert.ErrorContains(t, err, "could not resolve")
}

func TestQuotesPartialFailure(t *testing.T) {
	client := &fakeClient{quotes: map[string]models.Quote{
		"TCS.NS":      {Symbol: "TCS.NS", Price: 4100},
		"RELIANCE.NS": {Symbol: "RELIANCE.NS", Price: 2890},
	}}
	svc := NewService(client, mapResolver{
		"tcs":      "TCS.NS",
		"reliance": "RELIANCE.NS",
		"ghost":    "GHOST.NS",
	}, nil)

	quotes, errs := svc.Quotes(context.Background(), []string{"tcs", "unknown", "ghost", "reliance"})
	require.Len(t, quotes, 4)
	require.Len(t, errs, 4)

	assert.NoError(t, errs[0])
	assert.Equal(t, "TCS.NS", quotes[0].Symbol)
	assert.ErrorContains(t, errs[1], "could not resolve")
	assert.ErrorContains(t, errs[2], "no quote data")
	assert.NoError(t, errs[3])
	assert.Equal(t, "RELIANCE.NS", quotes[3].Symbol)
}

func TestHistoryDefaultsPeriod(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, mapResolver{"tcs": "TCS.NS"}, nil)

	h, err := svc.History(context.Background(), "tcs", "", "")
	require.NoError(t, err)
	assert.Equal(t, "1mo", h.Period)
	assert.Equal(t, "1mo", client.lastHistoryPeriod)
}

func TestHistoryInvalidPeriod(t *testing.T) {
	svc := NewService(&fakeClient{}, mapResolver{"tcs": "TCS.NS"}, nil)

	_, err := svc.History(context.Background(), "tcs", "4mo", "")
	assert.ErrorContains(t, err, "invalid period")
}
