package chart

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazaarhq/bazaar/internal/interfaces"
	"github.com/bazaarhq/bazaar/internal/models"
)

type fakeClient struct {
	interfaces.QuoteClient
	histories map[string]*models.History
}

func (f *fakeClient) GetHistory(ctx context.Context, symbol, period, interval string) (*models.History, error) {
	return f.histories[symbol], nil
}

type passthroughResolver struct{}

func (passthroughResolver) Resolve(query string) models.ResolutionResult {
	return models.ResolutionResult{Query: query, Resolved: true, Symbol: query, Confidence: 1.0}
}

func (passthroughResolver) ResolveSymbol(query string) (string, error) {
	return query, nil
}

func (passthroughResolver) ResolveList(queries string) []models.ResolutionResult {
	return nil
}

func syntheticHistory(symbol string, bars int) *models.History {
	h := &models.History{Symbol: symbol, Period: "3mo"}
	base := 1000.0
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	for i := 0; i < bars; i++ {
		drift := float64(i%7) * 4
		open := base + drift
		close := open + float64((i%5)-2)*3
		h.Bars = append(h.Bars, models.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   open,
			High:   close + 6,
			Low:    open - 6,
			Close:  close,
			Volume: int64(1_000_000 + i*10_000),
		})
		base = close
	}
	return h
}

func newTestService(t *testing.T, histories map[string]*models.History) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	svc := NewService(&fakeClient{histories: histories}, passthroughResolver{}, store, nil)
	return svc, dir
}

// assertPNG checks the returned bytes are a PNG and match the cached file.
func assertPNG(t *testing.T, dir, name string, png []byte) {
	t.Helper()
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestPriceChart(t *testing.T) {
	svc, dir := newTestService(t, map[string]*models.History{
		"TCS.NS": syntheticHistory("TCS.NS", 90),
	})

	name, png, err := svc.PriceChart(context.Background(), "TCS.NS", "3mo")
	require.NoError(t, err)
	assertPNG(t, dir, name, png)
}

func TestPriceChartShortSeriesSkipsAverages(t *testing.T) {
	svc, dir := newTestService(t, map[string]*models.History{
		"TCS.NS": syntheticHistory("TCS.NS", 10),
	})

	name, png, err := svc.PriceChart(context.Background(), "TCS.NS", "3mo")
	require.NoError(t, err)
	assertPNG(t, dir, name, png)
}

func TestPriceChartInvalidPeriod(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, _, err := svc.PriceChart(context.Background(), "TCS.NS", "7w")
	assert.ErrorContains(t, err, "invalid period")
}

func TestComparisonChart(t *testing.T) {
	svc, dir := newTestService(t, map[string]*models.History{
		"TCS.NS":  syntheticHistory("TCS.NS", 60),
		"INFY.NS": syntheticHistory("INFY.NS", 60),
	})

	name, png, err := svc.ComparisonChart(context.Background(), []string{"TCS.NS", "INFY.NS"}, "3mo")
	require.NoError(t, err)
	assertPNG(t, dir, name, png)
}

func TestComparisonChartNeedsTwo(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, _, err := svc.ComparisonChart(context.Background(), []string{"TCS.NS"}, "3mo")
	assert.ErrorContains(t, err, "at least two")
}

func TestCandlestickChart(t *testing.T) {
	svc, dir := newTestService(t, map[string]*models.History{
		"RELIANCE.NS": syntheticHistory("RELIANCE.NS", 200),
	})

	name, png, err := svc.CandlestickChart(context.Background(), "RELIANCE.NS", "1y")
	require.NoError(t, err)
	assertPNG(t, dir, name, png)
}

func TestVolumeChart(t *testing.T) {
	svc, dir := newTestService(t, map[string]*models.History{
		"TCS.NS": syntheticHistory("TCS.NS", 60),
	})

	name, png, err := svc.VolumeChart(context.Background(), "TCS.NS", "3mo")
	require.NoError(t, err)
	assertPNG(t, dir, name, png)
}

func TestMovingAverage(t *testing.T) {
	dates := make([]time.Time, 5)
	for i := range dates {
		dates[i] = time.Date(2026, 1, i+1, 0, 0, 0, 0, time.UTC)
	}
	maX, maY := movingAverage(dates, []float64{1, 2, 3, 4, 5}, 3)
	require.Len(t, maY, 3)
	assert.Equal(t, []float64{2, 3, 4}, maY)
	assert.Equal(t, dates[2:], maX)

	maX, maY = movingAverage(dates, []float64{1, 2}, 3)
	assert.Nil(t, maX)
	assert.Nil(t, maY)
}

func TestVWAP(t *testing.T) {
	bars := []models.Bar{
		{High: 12, Low: 8, Close: 10, Volume: 100},
		{High: 22, Low: 18, Close: 20, Volume: 100},
	}
	vwap := vwapSeries(bars)
	require.Len(t, vwap, 2)
	assert.Equal(t, 10.0, vwap[0])
	assert.Equal(t, 15.0, vwap[1])
}
