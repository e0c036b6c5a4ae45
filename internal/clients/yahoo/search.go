package yahoo

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/bazaarhq/bazaar/internal/models"
)

type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
	News []struct {
		Title               string `json:"title"`
		Publisher           string `json:"publisher"`
		Link                string `json:"link"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
	} `json:"news"`
}

func (c *Client) search(ctx context.Context, query string, quotes, news int) (*searchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("quotesCount", strconv.Itoa(quotes))
	params.Set("newsCount", strconv.Itoa(news))

	var resp searchResponse
	if err := c.get(ctx, "/v1/finance/search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search finds symbols matching free text. Only equity-like quote types
// are returned.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}
	resp, err := c.search(ctx, query, limit, 0)
	if err != nil {
		return nil, err
	}

	var out []models.SearchResult
	for _, q := range resp.Quotes {
		if q.Symbol == "" {
			continue
		}
		name := q.LongName
		if name == "" {
			name = q.ShortName
		}
		out = append(out, models.SearchResult{
			Symbol:    q.Symbol,
			Name:      name,
			Exchange:  q.Exchange,
			QuoteType: q.QuoteType,
		})
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// GetNews retrieves recent news articles for a symbol.
func (c *Client) GetNews(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error) {
	if limit <= 0 {
		limit = 5
	}
	resp, err := c.search(ctx, symbol, 0, limit)
	if err != nil {
		return nil, err
	}

	var out []models.NewsItem
	for _, n := range resp.News {
		out = append(out, models.NewsItem{
			Title:     n.Title,
			Publisher: n.Publisher,
			Link:      n.Link,
			Published: time.Unix(n.ProviderPublishTime, 0).UTC(),
		})
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}
