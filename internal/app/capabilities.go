package app

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bazaarhq/bazaar/internal/common"
)

const capabilitiesText = `# Bazaar Capabilities

## Symbol Resolution
- **resolve_symbol** - map a company name, alias, or ticker to an exchange-qualified symbol
- **search_stocks** - free-text symbol search across the whole market
- **get_supported_stocks** - list the built-in domestic catalog

## Quotes & Prices
- **get_stock_quote** - full quote for one stock
- **get_stock_fast_info** - one-line price snapshot
- **get_multiple_stock_quotes** - batch quotes
- **get_stock_history** - historical OHLCV data

## Company Data
- **get_stock_info** - profile, sector, key statistics
- **get_stock_news** - recent articles
- **get_stock_dividends** - dividend history
- **get_stock_splits** - split history

## Financial Statements
- **get_income_statement** / **get_balance_sheet** / **get_cashflow_statement** - annual or quarterly

## Earnings & Analysts
- **get_earnings_data** - EPS estimate vs. actual
- **get_earnings_dates** - upcoming announcements
- **get_earnings_estimates** / **get_revenue_estimates** - forward estimates
- **get_analyst_recommendations** - rating actions
- **get_analyst_price_targets** - target consensus

## Ownership
- **get_major_holders** - insider/institution split
- **get_institutional_holders** - largest positions

## Market Overview
- **get_market_indices** - NIFTY 50, SENSEX, global indices
- **get_market_movers** - top gainers and losers
- **compare_stocks** - side-by-side comparison
- **screen_stocks** - most_active, gainers, losers, trending, small/mid/large cap

## Charts (PNG image URLs)
- **create_stock_chart** - price with MA20/MA50
- **create_comparison_chart** - normalized multi-stock
- **create_candlestick_chart** - OHLC candles
- **create_volume_analysis_chart** - volume, MA, VWAP

## Utility
- **validate** - return the configured owner identifier
- **get_mcp_help** - usage guidance
`

const helpText = `# Bazaar Usage

## Symbols
Every tool that takes a symbol also accepts a company name or common alias.
Resolution order: exact ticker, then alias, then fuzzy match.

- Indian listings use exchange suffixes: RELIANCE.NS (NSE), TATAPOWER.BO (BSE)
- Bare uppercase tickers pass through as global listings: AAPL, MSFT
- Names and aliases work: "Reliance", "tata consultancy", "apple"
- When a name cannot be resolved, the response lists candidate suggestions;
  use resolve_symbol or search_stocks to disambiguate

## Periods
History and chart tools accept: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max

## Examples
- get_stock_quote {"symbol": "Reliance"}
- get_stock_history {"symbol": "TCS", "period": "6mo"}
- compare_stocks {"symbols": "TCS, Infosys, Wipro"}
- screen_stocks {"screen_type": "gainers", "count": 5}
- create_candlestick_chart {"symbol": "HDFC Bank", "period": "3mo"}

## Notes
- Prices for Indian listings are quoted in rupees (₹)
- Chart tools return an image URL served by this server under /images/
`

// handleGetCapabilities implements the get_mcp_capabilities tool
func handleGetCapabilities() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		header := fmt.Sprintf("Bazaar MCP Server %s\n\n", common.GetVersion())
		return textResult(header + capabilitiesText), nil
	}
}

// handleGetHelp implements the get_mcp_help tool
func handleGetHelp() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(helpText), nil
	}
}
