package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bazaarhq/bazaar/internal/catalog"
	"github.com/bazaarhq/bazaar/internal/common"
	"github.com/bazaarhq/bazaar/internal/interfaces"
)

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// imageResult pairs a text block with the inline PNG so clients that
// render images get the chart directly and the rest fall back to the URL.
func imageResult(text string, png []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
			mcp.NewImageContent(base64.StdEncoding.EncodeToString(png), "image/png"),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// handleValidate implements the validate tool. It returns the configured
// owner identifier so clients can pair the server with an account.
func handleValidate(validateID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if validateID == "" {
			return errorResult("Error: validation identifier is not configured on this server"), nil
		}
		return textResult(validateID), nil
	}
}

// handleResolveSymbol implements the resolve_symbol tool
func handleResolveSymbol(res interfaces.SymbolResolver, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || query == "" {
			return errorResult("Error: query parameter is required"), nil
		}

		result := res.Resolve(query)
		logger.Debug().
			Str("query", query).
			Bool("resolved", result.Resolved).
			Float64("confidence", result.Confidence).
			Msg("resolve_symbol")

		return textResult(formatResolution(result)), nil
	}
}

// handleGetSupportedStocks implements the get_supported_stocks tool
func handleGetSupportedStocks(cat *catalog.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		sb.WriteString("## Supported Domestic Stocks\n\n")
		sb.WriteString("| Symbol | Name | Sector |\n|--------|------|--------|\n")
		for _, e := range cat.Domestic() {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", e.Symbol, e.DisplayName(), e.Sector))
		}
		sb.WriteString("\nAny other NSE/BSE ticker (SYMBOL.NS / SYMBOL.BO) and global tickers also work directly.\n")
		return textResult(sb.String()), nil
	}
}
