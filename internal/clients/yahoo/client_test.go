package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient(
		WithBaseURL(srv.URL),
		WithRateLimit(1000),
	)
	return client, srv
}

func TestGetQuotes(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v7/finance/quote", r.URL.Path)
		assert.Equal(t, "RELIANCE.NS,TCS.NS", r.URL.Query().Get("symbols"))
		w.Write([]byte(`{"quoteResponse":{"result":[
			{"symbol":"RELIANCE.NS","longName":"Reliance Industries Limited","regularMarketPrice":2890.5,"regularMarketChange":12.3,"regularMarketChangePercent":0.43,"regularMarketVolume":4500000,"currency":"INR"},
			{"symbol":"TCS.NS","shortName":"TCS","regularMarketPrice":4102.0,"currency":"INR"}
		],"error":null}}`))
	})
	defer srv.Close()

	quotes, err := client.GetQuotes(context.Background(), []string{"RELIANCE.NS", "TCS.NS"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "RELIANCE.NS", quotes[0].Symbol)
	assert.Equal(t, "Reliance Industries Limited", quotes[0].Name)
	assert.Equal(t, 2890.5, quotes[0].Price)
	assert.Equal(t, int64(4500000), quotes[0].Volume)
	assert.Equal(t, "TCS", quotes[1].Name)
}

func TestGetQuoteNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteResponse":{"result":[],"error":null}}`))
	})
	defer srv.Close()

	_, err := client.GetQuote(context.Background(), "NOPE")
	assert.Error(t, err)
}

func TestGetHistory(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/TCS.NS", r.URL.Path)
		assert.Equal(t, "1mo", r.URL.Query().Get("range"))
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		w.Write([]byte(`{"chart":{"result":[{
			"meta":{"currency":"INR","symbol":"TCS.NS"},
			"timestamp":[1700000000,1700086400,1700172800],
			"indicators":{"quote":[{
				"open":[4000.0,4010.0,null],
				"high":[4050.0,4060.0,null],
				"low":[3990.0,4000.0,null],
				"close":[4040.0,4055.0,null],
				"volume":[2000000,2100000,null]
			}]}
		}],"error":null}}`))
	})
	defer srv.Close()

	history, err := client.GetHistory(context.Background(), "TCS.NS", "1mo", "")
	require.NoError(t, err)
	// The trailing null bar is dropped.
	require.Len(t, history.Bars, 2)
	assert.Equal(t, 4040.0, history.Bars[0].Close)
	assert.Equal(t, int64(2100000), history.Bars[1].Volume)
}

func TestGetHistoryInvalidPeriod(t *testing.T) {
	client := NewClient()
	_, err := client.GetHistory(context.Background(), "TCS.NS", "7mo", "")
	assert.ErrorContains(t, err, "invalid period")
}

func TestGetDividends(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "div,splits", r.URL.Query().Get("events"))
		w.Write([]byte(`{"chart":{"result":[{
			"timestamp":[],
			"indicators":{"quote":[{}]},
			"events":{"dividends":{
				"1680000000":{"amount":22.5,"date":1680000000},
				"1640000000":{"amount":21.0,"date":1640000000}
			}}
		}],"error":null}}`))
	})
	defer srv.Close()

	divs, err := client.GetDividends(context.Background(), "TCS.NS")
	require.NoError(t, err)
	require.Len(t, divs, 2)
	// Oldest first.
	assert.Equal(t, 21.0, divs[0].Amount)
	assert.Equal(t, 22.5, divs[1].Amount)
}

func TestGetInfo(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("modules"), "assetProfile")
		w.Write([]byte(`{"quoteSummary":{"result":[{
			"assetProfile":{"sector":"Information Technology","industry":"IT Services","country":"India"},
			"price":{"longName":"Tata Consultancy Services Limited","currency":"INR","marketCap":{"raw":15000000000000}},
			"summaryDetail":{"trailingPE":{"raw":29.4},"fiftyTwoWeekHigh":{"raw":4592.25}},
			"defaultKeyStatistics":{"trailingEps":{"raw":131.2},"priceToBook":{"raw":15.8}}
		}],"error":null}}`))
	})
	defer srv.Close()

	info, err := client.GetInfo(context.Background(), "TCS.NS")
	require.NoError(t, err)
	assert.Equal(t, "Tata Consultancy Services Limited", info.Name)
	assert.Equal(t, "Information Technology", info.Sector)
	assert.Equal(t, 29.4, info.PERatio)
	assert.Equal(t, 131.2, info.EPS)
	assert.Equal(t, 15.8, info.PriceToBook)
	assert.Equal(t, 1.5e13, info.MarketCap)
}

func TestAPIError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.GetQuotes(context.Background(), []string{"NOPE"})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.True(t, IsNotFound(err))
}

func TestSearch(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/finance/search", r.URL.Path)
		w.Write([]byte(`{"quotes":[
			{"symbol":"TATAMOTORS.NS","longname":"Tata Motors Limited","exchange":"NSI","quoteType":"EQUITY"},
			{"symbol":"","longname":"ignored"}
		]}`))
	})
	defer srv.Close()

	results, err := client.Search(context.Background(), "tata", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "TATAMOTORS.NS", results[0].Symbol)
}

func TestFlexFloat64(t *testing.T) {
	var f flexFloat64

	require.NoError(t, f.UnmarshalJSON([]byte(`42.5`)))
	assert.Equal(t, flexFloat64(42.5), f)

	require.NoError(t, f.UnmarshalJSON([]byte(`"17.25"`)))
	assert.Equal(t, flexFloat64(17.25), f)

	require.NoError(t, f.UnmarshalJSON([]byte(`"N/A"`)))
	assert.Equal(t, flexFloat64(0), f)

	require.NoError(t, f.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, flexFloat64(0), f)
}
