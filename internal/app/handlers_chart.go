package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bazaarhq/bazaar/internal/common"
	"github.com/bazaarhq/bazaar/internal/interfaces"
)

// handleCreateStockChart implements the create_stock_chart tool
func handleCreateStockChart(charts interfaces.ChartRenderer, imageBaseURL string, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}
		period := request.GetString("period", "3mo")

		name, png, err := charts.PriceChart(ctx, symbol, period)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Price chart render failed")
			return errorResult(fmt.Sprintf("Chart error: %v", err)), nil
		}
		url := imageBaseURL + name
		return imageResult(formatChartResult(
			fmt.Sprintf("Price Chart: %s (%s)", symbol, period),
			"Close price with MA20 and MA50 overlays.",
			url), png), nil
	}
}

// handleCreateComparisonChart implements the create_comparison_chart tool
func handleCreateComparisonChart(charts interfaces.ChartRenderer, imageBaseURL string, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("symbols")
		if err != nil || strings.TrimSpace(raw) == "" {
			return errorResult("Error: symbols parameter is required"), nil
		}
		queries := splitSymbols(raw)
		if len(queries) < 2 {
			return errorResult("Error: comparison chart needs at least two symbols"), nil
		}
		period := request.GetString("period", "3mo")

		name, png, renderErr := charts.ComparisonChart(ctx, queries, period)
		if renderErr != nil {
			logger.Error().Err(renderErr).Msg("Comparison chart render failed")
			return errorResult(fmt.Sprintf("Chart error: %v", renderErr)), nil
		}
		url := imageBaseURL + name
		return imageResult(formatChartResult(
			fmt.Sprintf("Comparison Chart (%s)", period),
			fmt.Sprintf("Normalized %% change: %s.", strings.Join(queries, ", ")),
			url), png), nil
	}
}

// handleCreateCandlestickChart implements the create_candlestick_chart tool
func handleCreateCandlestickChart(charts interfaces.ChartRenderer, imageBaseURL string, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}
		period := request.GetString("period", "3mo")

		name, png, err := charts.CandlestickChart(ctx, symbol, period)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Candlestick chart render failed")
			return errorResult(fmt.Sprintf("Chart error: %v", err)), nil
		}
		url := imageBaseURL + name
		return imageResult(formatChartResult(
			fmt.Sprintf("Candlestick Chart: %s (%s)", symbol, period),
			"Green candles close up, red candles close down.",
			url), png), nil
	}
}

// handleCreateVolumeChart implements the create_volume_analysis_chart tool
func handleCreateVolumeChart(charts interfaces.ChartRenderer, imageBaseURL string, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}
		period := request.GetString("period", "3mo")

		name, png, err := charts.VolumeChart(ctx, symbol, period)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Volume chart render failed")
			return errorResult(fmt.Sprintf("Chart error: %v", err)), nil
		}
		url := imageBaseURL + name
		return imageResult(formatChartResult(
			fmt.Sprintf("Volume Analysis: %s (%s)", symbol, period),
			"Volume with MA20, plus close price and VWAP.",
			url), png), nil
	}
}
