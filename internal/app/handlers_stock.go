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

func requireSymbol(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	symbol, err := request.RequireString("symbol")
	if err != nil || strings.TrimSpace(symbol) == "" {
		return "", errorResult("Error: symbol parameter is required")
	}
	return strings.TrimSpace(symbol), nil
}

func splitSymbols(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// handleGetStockQuote implements the get_stock_quote tool
func handleGetStockQuote(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		quote, err := stocks.Quote(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Quote fetch failed")
			return errorResult(fmt.Sprintf("Quote error: %v", err)), nil
		}
		return textResult(formatQuote(quote)), nil
	}
}

// handleGetMultipleStockQuotes implements the get_multiple_stock_quotes tool
func handleGetMultipleStockQuotes(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("symbols")
		if err != nil || strings.TrimSpace(raw) == "" {
			return errorResult("Error: symbols parameter is required"), nil
		}
		queries := splitSymbols(raw)
		if len(queries) == 0 {
			return errorResult("Error: no symbols provided"), nil
		}

		quotes, errs := stocks.Quotes(ctx, queries)
		failed := 0
		for _, e := range errs {
			if e != nil {
				failed++
			}
		}
		if failed == len(queries) {
			logger.Error().Int("count", failed).Msg("All quote fetches failed")
			return errorResult("Quote error: no data for any requested symbol"), nil
		}
		return textResult(formatQuoteTable("Stock Quotes", quotes, errs, queries)), nil
	}
}

// handleGetStockFastInfo implements the get_stock_fast_info tool
func handleGetStockFastInfo(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		quote, err := stocks.FastInfo(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Fast info fetch failed")
			return errorResult(fmt.Sprintf("Quote error: %v", err)), nil
		}
		return textResult(formatFastInfo(quote)), nil
	}
}

// handleGetStockInfo implements the get_stock_info tool
func handleGetStockInfo(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		info, err := stocks.Info(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Info fetch failed")
			return errorResult(fmt.Sprintf("Info error: %v", err)), nil
		}
		return textResult(formatStockInfo(info)), nil
	}
}

// handleGetStockHistory implements the get_stock_history tool
func handleGetStockHistory(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}
		period := request.GetString("period", "1mo")
		interval := request.GetString("interval", "")

		history, err := stocks.History(ctx, symbol, period, interval)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Str("period", period).Msg("History fetch failed")
			return errorResult(fmt.Sprintf("History error: %v", err)), nil
		}
		return textResult(formatHistory(history)), nil
	}
}

// handleGetStockNews implements the get_stock_news tool
func handleGetStockNews(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}
		limit := request.GetInt("limit", 5)
		if limit > 20 {
			limit = 20
		}

		items, err := stocks.News(ctx, symbol, limit)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("News fetch failed")
			return errorResult(fmt.Sprintf("News error: %v", err)), nil
		}
		return textResult(formatNews(symbol, items)), nil
	}
}

// handleGetStockDividends implements the get_stock_dividends tool
func handleGetStockDividends(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		divs, err := stocks.Dividends(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Dividend fetch failed")
			return errorResult(fmt.Sprintf("Dividend error: %v", err)), nil
		}
		return textResult(formatDividends(symbol, divs)), nil
	}
}

// handleGetStockSplits implements the get_stock_splits tool
func handleGetStockSplits(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		splits, err := stocks.Splits(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Split fetch failed")
			return errorResult(fmt.Sprintf("Split error: %v", err)), nil
		}
		return textResult(formatSplits(symbol, splits)), nil
	}
}

// handleSearchStocks implements the search_stocks tool
func handleSearchStocks(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || strings.TrimSpace(query) == "" {
			return errorResult("Error: query parameter is required"), nil
		}
		limit := request.GetInt("limit", 10)
		if limit > 25 {
			limit = 25
		}

		results, searchErr := stocks.Search(ctx, query, limit)
		if searchErr != nil {
			logger.Error().Err(searchErr).Str("query", query).Msg("Search failed")
			return errorResult(fmt.Sprintf("Search error: %v", searchErr)), nil
		}
		return textResult(formatSearchResults(query, results)), nil
	}
}
