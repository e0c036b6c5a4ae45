package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bazaarhq/bazaar/internal/models"
)

type quoteItem struct {
	Symbol                     string      `json:"symbol"`
	ShortName                  string      `json:"shortName"`
	LongName                   string      `json:"longName"`
	Currency                   string      `json:"currency"`
	FullExchangeName           string      `json:"fullExchangeName"`
	RegularMarketPrice         flexFloat64 `json:"regularMarketPrice"`
	RegularMarketChange        flexFloat64 `json:"regularMarketChange"`
	RegularMarketChangePercent flexFloat64 `json:"regularMarketChangePercent"`
	RegularMarketVolume        flexFloat64 `json:"regularMarketVolume"`
	RegularMarketPreviousClose flexFloat64 `json:"regularMarketPreviousClose"`
	RegularMarketDayHigh       flexFloat64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow        flexFloat64 `json:"regularMarketDayLow"`
	FiftyTwoWeekHigh           flexFloat64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow            flexFloat64 `json:"fiftyTwoWeekLow"`
	MarketCap                  flexFloat64 `json:"marketCap"`
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []quoteItem `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

func (q *quoteItem) toQuote() models.Quote {
	name := q.LongName
	if name == "" {
		name = q.ShortName
	}
	return models.Quote{
		Symbol:        q.Symbol,
		Name:          name,
		Price:         float64(q.RegularMarketPrice),
		Change:        float64(q.RegularMarketChange),
		ChangePercent: float64(q.RegularMarketChangePercent),
		Volume:        int64(q.RegularMarketVolume),
		MarketCap:     float64(q.MarketCap),
		Currency:      q.Currency,
		Exchange:      q.FullExchangeName,
		PreviousClose: float64(q.RegularMarketPreviousClose),
		DayHigh:       float64(q.RegularMarketDayHigh),
		DayLow:        float64(q.RegularMarketDayLow),
		FiftyTwoHigh:  float64(q.FiftyTwoWeekHigh),
		FiftyTwoLow:   float64(q.FiftyTwoWeekLow),
	}
}

// GetQuote retrieves the current quote for one symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	quotes, err := c.GetQuotes(ctx, []string{symbol})
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("no quote data for %s", symbol)
	}
	return &quotes[0], nil
}

// GetQuotes retrieves quotes for several symbols in one request. Symbols
// the upstream does not know are silently absent from the result.
func (c *Client) GetQuotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("symbols", strings.Join(symbols, ","))

	var resp quoteResponse
	if err := c.get(ctx, "/v7/finance/quote", params, &resp); err != nil {
		return nil, err
	}
	if resp.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("quote request failed: %s", resp.QuoteResponse.Error.Description)
	}

	quotes := make([]models.Quote, 0, len(resp.QuoteResponse.Result))
	for i := range resp.QuoteResponse.Result {
		quotes = append(quotes, resp.QuoteResponse.Result[i].toQuote())
	}
	return quotes, nil
}
