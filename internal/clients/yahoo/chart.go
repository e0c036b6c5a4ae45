package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/bazaarhq/bazaar/internal/models"
)

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency string `json:"currency"`
				Symbol   string `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
			Events struct {
				Dividends map[string]struct {
					Amount flexFloat64 `json:"amount"`
					Date   int64       `json:"date"`
				} `json:"dividends"`
				Splits map[string]struct {
					Numerator   flexFloat64 `json:"numerator"`
					Denominator flexFloat64 `json:"denominator"`
					Date        int64       `json:"date"`
				} `json:"splits"`
			} `json:"events"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// defaultInterval maps a period to a bar interval that keeps the series
// at a reasonable density.
func defaultInterval(period string) string {
	switch period {
	case "1d":
		return "5m"
	case "5d":
		return "30m"
	case "1mo", "3mo", "6mo", "1y", "ytd":
		return "1d"
	case "2y", "5y":
		return "1wk"
	default:
		return "1mo"
	}
}

func (c *Client) fetchChart(ctx context.Context, symbol, period, interval string, events bool) (*chartResponse, error) {
	if !models.ValidPeriods[period] {
		return nil, fmt.Errorf("invalid period %q", period)
	}
	if interval == "" {
		interval = defaultInterval(period)
	}

	params := url.Values{}
	params.Set("range", period)
	params.Set("interval", interval)
	if events {
		params.Set("events", "div,splits")
	}

	var resp chartResponse
	if err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), params, &resp); err != nil {
		return nil, err
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart request for %s failed: %s", symbol, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for %s", symbol)
	}
	return &resp, nil
}

// GetHistory retrieves an OHLCV series for the period. An empty interval
// picks a density-appropriate default.
func (c *Client) GetHistory(ctx context.Context, symbol, period, interval string) (*models.History, error) {
	resp, err := c.fetchChart(ctx, symbol, period, interval, false)
	if err != nil {
		return nil, err
	}

	result := resp.Chart.Result[0]
	history := &models.History{Symbol: symbol, Period: period}
	if len(result.Indicators.Quote) == 0 {
		return history, nil
	}
	q := result.Indicators.Quote[0]

	for i, ts := range result.Timestamp {
		// Yahoo pads live sessions with null bars.
		if i >= len(q.Close) || q.Close[i] == nil {
			continue
		}
		bar := models.Bar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *q.Close[i],
		}
		if i < len(q.Open) && q.Open[i] != nil {
			bar.Open = *q.Open[i]
		}
		if i < len(q.High) && q.High[i] != nil {
			bar.High = *q.High[i]
		}
		if i < len(q.Low) && q.Low[i] != nil {
			bar.Low = *q.Low[i]
		}
		if i < len(q.Volume) && q.Volume[i] != nil {
			bar.Volume = *q.Volume[i]
		}
		history.Bars = append(history.Bars, bar)
	}
	return history, nil
}

// GetDividends retrieves the dividend history, oldest first.
func (c *Client) GetDividends(ctx context.Context, symbol string) ([]models.Dividend, error) {
	resp, err := c.fetchChart(ctx, symbol, "max", "1mo", true)
	if err != nil {
		return nil, err
	}

	var out []models.Dividend
	for _, d := range resp.Chart.Result[0].Events.Dividends {
		out = append(out, models.Dividend{
			Date:   time.Unix(d.Date, 0).UTC(),
			Amount: float64(d.Amount),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// GetSplits retrieves the split history, oldest first.
func (c *Client) GetSplits(ctx context.Context, symbol string) ([]models.Split, error) {
	resp, err := c.fetchChart(ctx, symbol, "max", "1mo", true)
	if err != nil {
		return nil, err
	}

	var out []models.Split
	for _, s := range resp.Chart.Result[0].Events.Splits {
		out = append(out, models.Split{
			Date:        time.Unix(s.Date, 0).UTC(),
			Numerator:   int(s.Numerator),
			Denominator: int(s.Denominator),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
