// Package chart renders PNG price charts and caches them for HTTP serving.
package chart

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bazaarhq/bazaar/internal/common"
	"github.com/bazaarhq/bazaar/internal/interfaces"
	"github.com/bazaarhq/bazaar/internal/models"
)

const (
	chartWidth  = 1000
	chartHeight = 480
)

// comparisonPalette colors up to eight series.
var comparisonPalette = []string{
	"2563eb", "dc2626", "16a34a", "d97706",
	"9333ea", "0891b2", "db2777", "65a30d",
}

// Service implements interfaces.ChartRenderer.
type Service struct {
	client   interfaces.QuoteClient
	resolver interfaces.SymbolResolver
	store    *Store
	logger   *common.Logger
}

// NewService creates a chart service.
func NewService(client interfaces.QuoteClient, res interfaces.SymbolResolver, store *Store, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		client:   client,
		resolver: res,
		store:    store,
		logger:   logger,
	}
}

func (s *Service) history(ctx context.Context, query, period string, minBars int) (string, *models.History, error) {
	if period == "" {
		period = "3mo"
	}
	if !models.ValidPeriods[period] {
		return "", nil, fmt.Errorf("invalid period %q, valid: 1d 5d 1mo 3mo 6mo 1y 2y 5y 10y ytd max", period)
	}
	symbol, err := s.resolver.ResolveSymbol(query)
	if err != nil {
		return "", nil, err
	}
	history, err := s.client.GetHistory(ctx, symbol, period, "")
	if err != nil {
		return "", nil, err
	}
	if len(history.Bars) < minBars {
		return "", nil, fmt.Errorf("not enough history for %s over %s: got %d bars", symbol, period, len(history.Bars))
	}
	return symbol, history, nil
}

func (s *Service) render(graph *gochart.Chart) (string, []byte, error) {
	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return "", nil, fmt.Errorf("chart render failed: %w", err)
	}
	png := buf.Bytes()
	name, err := s.store.Save(png)
	if err != nil {
		return "", nil, err
	}
	s.logger.Debug().Str("image", name).Int("bytes", len(png)).Msg("chart rendered")
	return name, png, nil
}

func timeAxis() gochart.XAxis {
	return gochart.XAxis{
		TickPosition: gochart.TickPositionBetweenTicks,
		ValueFormatter: func(v interface{}) string {
			if t, ok := v.(float64); ok {
				return gochart.TimeFromFloat64(t).Format("02 Jan 06")
			}
			return ""
		},
	}
}

func priceAxis() gochart.YAxis {
	return gochart.YAxis{
		ValueFormatter: func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%.0f", f)
			}
			return ""
		},
	}
}

// PriceChart renders a close-price line with 20 and 50 bar moving averages.
func (s *Service) PriceChart(ctx context.Context, query, period string) (string, []byte, error) {
	symbol, history, err := s.history(ctx, query, period, 2)
	if err != nil {
		return "", nil, err
	}
	dates, closes, _ := splitBars(history.Bars)

	series := []gochart.Series{
		gochart.TimeSeries{
			Name: symbol,
			Style: gochart.Style{
				StrokeColor: drawing.ColorFromHex("2563eb"),
				StrokeWidth: 2.5,
			},
			XValues: dates,
			YValues: closes,
		},
	}
	if maX, maY := movingAverage(dates, closes, 20); maY != nil {
		series = append(series, gochart.TimeSeries{
			Name: "MA20",
			Style: gochart.Style{
				StrokeColor: drawing.ColorFromHex("d97706"),
				StrokeWidth: 1.5,
			},
			XValues: maX,
			YValues: maY,
		})
	}
	if maX, maY := movingAverage(dates, closes, 50); maY != nil {
		series = append(series, gochart.TimeSeries{
			Name: "MA50",
			Style: gochart.Style{
				StrokeColor:     drawing.ColorFromHex("9333ea"),
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5.0, 3.0},
			},
			XValues: maX,
			YValues: maY,
		})
	}

	graph := gochart.Chart{
		Title:  fmt.Sprintf("%s Price (%s)", symbol, history.Period),
		Width:  chartWidth,
		Height: chartHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis:  timeAxis(),
		YAxis:  priceAxis(),
		Series: series,
	}
	graph.Elements = []gochart.Renderable{
		gochart.LegendLeft(&graph),
	}
	return s.render(&graph)
}

// ComparisonChart renders the queries as normalized percent change from
// the start of the period.
func (s *Service) ComparisonChart(ctx context.Context, queries []string, period string) (string, []byte, error) {
	if len(queries) < 2 {
		return "", nil, fmt.Errorf("comparison chart needs at least two symbols")
	}
	if len(queries) > len(comparisonPalette) {
		return "", nil, fmt.Errorf("comparison chart supports at most %d symbols", len(comparisonPalette))
	}

	var series []gochart.Series
	var names []string
	for i, query := range queries {
		symbol, history, err := s.history(ctx, strings.TrimSpace(query), period, 2)
		if err != nil {
			s.logger.Warn().Str("query", query).Err(err).Msg("skipping comparison series")
			continue
		}
		dates, closes, _ := splitBars(history.Bars)

		base := closes[0]
		normalized := make([]float64, len(closes))
		for j, c := range closes {
			if base != 0 {
				normalized[j] = (c/base - 1) * 100
			}
		}

		series = append(series, gochart.TimeSeries{
			Name: symbol,
			Style: gochart.Style{
				StrokeColor: drawing.ColorFromHex(comparisonPalette[i%len(comparisonPalette)]),
				StrokeWidth: 2.0,
			},
			XValues: dates,
			YValues: normalized,
		})
		names = append(names, symbol)
	}
	if len(series) < 2 {
		return "", nil, fmt.Errorf("not enough comparable series, need at least two symbols with history")
	}

	graph := gochart.Chart{
		Title:  fmt.Sprintf("Comparison: %s", strings.Join(names, " vs ")),
		Width:  chartWidth,
		Height: chartHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: timeAxis(),
		YAxis: gochart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%+.0f%%", f)
				}
				return ""
			},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{
		gochart.LegendLeft(&graph),
	}
	return s.render(&graph)
}

// VolumeChart renders volume bars with a 20 bar volume average, plus the
// close and VWAP lines on the secondary axis.
func (s *Service) VolumeChart(ctx context.Context, query, period string) (string, []byte, error) {
	symbol, history, err := s.history(ctx, query, period, 2)
	if err != nil {
		return "", nil, err
	}
	dates, closes, volumes := splitBars(history.Bars)

	volumeSeries := gochart.TimeSeries{
		Name: "Volume",
		Style: gochart.Style{
			StrokeColor: drawing.ColorFromHex("94a3b8"),
			StrokeWidth: 1.0,
			FillColor:   drawing.ColorFromHex("94a3b8").WithAlpha(90),
		},
		XValues: dates,
		YValues: volumes,
	}

	series := []gochart.Series{volumeSeries}
	if maX, maY := movingAverage(dates, volumes, 20); maY != nil {
		series = append(series, gochart.TimeSeries{
			Name: "Volume MA20",
			Style: gochart.Style{
				StrokeColor: drawing.ColorFromHex("dc2626"),
				StrokeWidth: 1.5,
			},
			XValues: maX,
			YValues: maY,
		})
	}
	series = append(series,
		gochart.TimeSeries{
			Name: "Close",
			Style: gochart.Style{
				StrokeColor: drawing.ColorFromHex("2563eb"),
				StrokeWidth: 2.0,
			},
			YAxis:   gochart.YAxisSecondary,
			XValues: dates,
			YValues: closes,
		},
		gochart.TimeSeries{
			Name: "VWAP",
			Style: gochart.Style{
				StrokeColor:     drawing.ColorFromHex("16a34a"),
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{4.0, 3.0},
			},
			YAxis:   gochart.YAxisSecondary,
			XValues: dates,
			YValues: vwapSeries(history.Bars),
		},
	)

	graph := gochart.Chart{
		Title:  fmt.Sprintf("%s Volume Analysis (%s)", symbol, history.Period),
		Width:  chartWidth,
		Height: chartHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: timeAxis(),
		YAxis: gochart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return common.FormatShares(int64(f))
				}
				return ""
			},
		},
		YAxisSecondary: priceAxis(),
		Series:         series,
	}
	graph.Elements = []gochart.Renderable{
		gochart.LegendLeft(&graph),
	}
	return s.render(&graph)
}
