package chart

import (
	"time"

	"github.com/bazaarhq/bazaar/internal/models"
)

// movingAverage computes a simple moving average. The returned x slice is
// offset by window-1 so both slices line up bar for bar.
func movingAverage(dates []time.Time, values []float64, window int) ([]time.Time, []float64) {
	if window <= 1 || len(values) < window {
		return nil, nil
	}
	outX := make([]time.Time, 0, len(values)-window+1)
	outY := make([]float64, 0, len(values)-window+1)

	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			outX = append(outX, dates[i])
			outY = append(outY, sum/float64(window))
		}
	}
	return outX, outY
}

// vwapSeries computes the cumulative volume-weighted average price.
func vwapSeries(bars []models.Bar) []float64 {
	out := make([]float64, len(bars))
	var cumPV, cumV float64
	for i, b := range bars {
		typical := (b.High + b.Low + b.Close) / 3
		cumPV += typical * float64(b.Volume)
		cumV += float64(b.Volume)
		if cumV > 0 {
			out[i] = cumPV / cumV
		} else {
			out[i] = b.Close
		}
	}
	return out
}

func splitBars(bars []models.Bar) (dates []time.Time, closes []float64, volumes []float64) {
	dates = make([]time.Time, len(bars))
	closes = make([]float64, len(bars))
	volumes = make([]float64, len(bars))
	for i, b := range bars {
		dates[i] = b.Date
		closes[i] = b.Close
		volumes[i] = float64(b.Volume)
	}
	return dates, closes, volumes
}
