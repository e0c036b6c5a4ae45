package chart

import (
	"context"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bazaarhq/bazaar/internal/models"
)

var (
	candleUp   = drawing.ColorFromHex("16a34a")
	candleDown = drawing.ColorFromHex("dc2626")
)

// CandlestickChart renders OHLC candles. The library has no native candle
// series, so candles are drawn by a custom renderable over fixed axis
// ranges; a transparent close series keeps the axes and ticks alive.
func (s *Service) CandlestickChart(ctx context.Context, query, period string) (string, []byte, error) {
	symbol, history, err := s.history(ctx, query, period, 2)
	if err != nil {
		return "", nil, err
	}
	bars := history.Bars
	if len(bars) > 120 {
		// More candles than this render as noise at chart width.
		bars = bars[len(bars)-120:]
	}

	dates, closes, _ := splitBars(bars)

	minX := gochart.TimeToFloat64(dates[0])
	maxX := gochart.TimeToFloat64(dates[len(dates)-1])
	minY, maxY := bars[0].Low, bars[0].High
	for _, b := range bars {
		if b.Low < minY {
			minY = b.Low
		}
		if b.High > maxY {
			maxY = b.High
		}
	}
	pad := (maxY - minY) * 0.05
	if pad == 0 {
		pad = 1
	}
	minY -= pad
	maxY += pad

	graph := gochart.Chart{
		Title:  fmt.Sprintf("%s Candlestick (%s)", symbol, history.Period),
		Width:  chartWidth,
		Height: chartHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: func() gochart.XAxis {
			ax := timeAxis()
			ax.Range = &gochart.ContinuousRange{Min: minX, Max: maxX}
			return ax
		}(),
		YAxis: func() gochart.YAxis {
			ax := priceAxis()
			ax.Range = &gochart.ContinuousRange{Min: minY, Max: maxY}
			return ax
		}(),
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name: symbol,
				Style: gochart.Style{
					StrokeColor: drawing.ColorTransparent,
					StrokeWidth: 0,
				},
				XValues: dates,
				YValues: closes,
			},
		},
	}
	graph.Elements = []gochart.Renderable{
		drawCandles(bars, minX, maxX, minY, maxY),
	}
	return s.render(&graph)
}

// drawCandles maps each bar into canvas space and paints wick and body.
func drawCandles(bars []models.Bar, minX, maxX, minY, maxY float64) gochart.Renderable {
	return func(r gochart.Renderer, canvasBox gochart.Box, defaults gochart.Style) {
		spanX := maxX - minX
		spanY := maxY - minY
		if spanX <= 0 || spanY <= 0 {
			return
		}

		toX := func(v float64) int {
			return canvasBox.Left + int(float64(canvasBox.Width())*(v-minX)/spanX)
		}
		toY := func(v float64) int {
			return canvasBox.Bottom - int(float64(canvasBox.Height())*(v-minY)/spanY)
		}

		bodyWidth := canvasBox.Width() / (len(bars) * 2)
		if bodyWidth < 1 {
			bodyWidth = 1
		}
		if bodyWidth > 12 {
			bodyWidth = 12
		}

		for _, b := range bars {
			color := candleUp
			if b.Close < b.Open {
				color = candleDown
			}
			x := toX(gochart.TimeToFloat64(b.Date))

			// Wick.
			r.SetStrokeColor(color)
			r.SetStrokeWidth(1)
			r.MoveTo(x, toY(b.High))
			r.LineTo(x, toY(b.Low))
			r.Stroke()

			// Body.
			top := toY(b.Open)
			bottom := toY(b.Close)
			if top > bottom {
				top, bottom = bottom, top
			}
			if bottom == top {
				bottom = top + 1
			}
			r.SetFillColor(color)
			r.MoveTo(x-bodyWidth, top)
			r.LineTo(x+bodyWidth, top)
			r.LineTo(x+bodyWidth, bottom)
			r.LineTo(x-bodyWidth, bottom)
			r.Close()
			r.Fill()
		}
	}
}
