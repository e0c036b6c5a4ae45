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

// handleGetMarketIndices implements the get_market_indices tool
func handleGetMarketIndices(markets interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		indices, err := markets.Indices(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Index fetch failed")
			return errorResult(fmt.Sprintf("Index error: %v", err)), nil
		}
		return textResult(formatIndices(indices)), nil
	}
}

// handleGetMarketMovers implements the get_market_movers tool
func handleGetMarketMovers(markets interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		moverType := strings.ToLower(strings.TrimSpace(request.GetString("type", "both")))
		switch moverType {
		case "both", "gainers", "losers":
		default:
			return errorResult(fmt.Sprintf("Error: invalid type %q, valid: gainers, losers, both", moverType)), nil
		}
		count := request.GetInt("count", 10)
		if count > 25 {
			count = 25
		}

		gainers, losers, err := markets.Movers(ctx, count)
		if err != nil {
			logger.Error().Err(err).Msg("Movers fetch failed")
			return errorResult(fmt.Sprintf("Movers error: %v", err)), nil
		}
		return textResult(formatMovers(moverType, gainers, losers)), nil
	}
}

// handleCompareStocks implements the compare_stocks tool
func handleCompareStocks(markets interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("symbols")
		if err != nil || strings.TrimSpace(raw) == "" {
			return errorResult("Error: symbols parameter is required"), nil
		}
		queries := splitSymbols(raw)
		if len(queries) < 2 {
			return errorResult("Error: comparison needs at least two symbols"), nil
		}

		rows, cmpErr := markets.Compare(ctx, queries)
		if cmpErr != nil {
			logger.Error().Err(cmpErr).Msg("Comparison failed")
			return errorResult(fmt.Sprintf("Comparison error: %v", cmpErr)), nil
		}
		return textResult(formatComparison(rows)), nil
	}
}

// handleScreenStocks implements the screen_stocks tool
func handleScreenStocks(markets interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		screenType, err := request.RequireString("screen_type")
		if err != nil || strings.TrimSpace(screenType) == "" {
			return errorResult("Error: screen_type parameter is required"), nil
		}
		count := request.GetInt("count", 10)
		if count > 25 {
			count = 25
		}

		quotes, screenErr := markets.Screen(ctx, screenType, count)
		if screenErr != nil {
			logger.Error().Err(screenErr).Str("screen", screenType).Msg("Screen failed")
			return errorResult(fmt.Sprintf("Screen error: %v", screenErr)), nil
		}
		return textResult(formatScreen(screenType, quotes)), nil
	}
}
