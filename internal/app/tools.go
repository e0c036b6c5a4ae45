package app

import "github.com/mark3labs/mcp-go/mcp"

const periodDescription = "Period: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max"

// createValidateTool returns the validate tool definition
func createValidateTool() mcp.Tool {
	return mcp.NewTool("validate",
		mcp.WithDescription("Validate the server connection and return the configured owner identifier."),
	)
}

// createResolveSymbolTool returns the resolve_symbol tool definition
func createResolveSymbolTool() mcp.Tool {
	return mcp.NewTool("resolve_symbol",
		mcp.WithDescription("Resolve a free-text stock reference (company name, alias, or ticker) to an exchange-qualified symbol. Returns the match confidence and candidate suggestions."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Company name or ticker (e.g., 'Reliance', 'tata consultancy', 'AAPL')"),
		),
	)
}

// createGetStockQuoteTool returns the get_stock_quote tool definition
func createGetStockQuoteTool() mcp.Tool {
	return mcp.NewTool("get_stock_quote",
		mcp.WithDescription("Get the full current quote for a stock: price, change, ranges, volume, and market cap."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name (e.g., 'RELIANCE.NS', 'Infosys')"),
		),
	)
}

// createGetMultipleStockQuotesTool returns the get_multiple_stock_quotes tool definition
func createGetMultipleStockQuotesTool() mcp.Tool {
	return mcp.NewTool("get_multiple_stock_quotes",
		mcp.WithDescription("Get current quotes for several stocks at once. Per-symbol failures are reported inline."),
		mcp.WithString("symbols",
			mcp.Required(),
			mcp.Description("Comma-separated symbols or names (e.g., 'TCS, Reliance, INFY.NS')"),
		),
	)
}

// createGetStockFastInfoTool returns the get_stock_fast_info tool definition
func createGetStockFastInfoTool() mcp.Tool {
	return mcp.NewTool("get_stock_fast_info",
		mcp.WithDescription("Get a one-line price snapshot for a stock. Faster to read than the full quote."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetStockInfoTool returns the get_stock_info tool definition
func createGetStockInfoTool() mcp.Tool {
	return mcp.NewTool("get_stock_info",
		mcp.WithDescription("Get the company profile: sector, industry, key statistics, and business summary."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetStockHistoryTool returns the get_stock_history tool definition
func createGetStockHistoryTool() mcp.Tool {
	return mcp.NewTool("get_stock_history",
		mcp.WithDescription("Get historical OHLCV price data for a stock over a period."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
		mcp.WithString("period",
			mcp.Description(periodDescription+" (default: 1mo)"),
		),
		mcp.WithString("interval",
			mcp.Description("Bar interval (e.g., '1d', '1wk'); defaults to a period-appropriate value"),
		),
	)
}

// createGetStockNewsTool returns the get_stock_news tool definition
func createGetStockNewsTool() mcp.Tool {
	return mcp.NewTool("get_stock_news",
		mcp.WithDescription("Get recent news articles for a stock."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum articles to return (default: 5)"),
		),
	)
}

// createGetStockDividendsTool returns the get_stock_dividends tool definition
func createGetStockDividendsTool() mcp.Tool {
	return mcp.NewTool("get_stock_dividends",
		mcp.WithDescription("Get the dividend payment history for a stock."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetStockSplitsTool returns the get_stock_splits tool definition
func createGetStockSplitsTool() mcp.Tool {
	return mcp.NewTool("get_stock_splits",
		mcp.WithDescription("Get the stock split history for a stock."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createSearchStocksTool returns the search_stocks tool definition
func createSearchStocksTool() mcp.Tool {
	return mcp.NewTool("search_stocks",
		mcp.WithDescription("Search the market for symbols matching free text. Use when resolution fails or to discover listings."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search text (company name or partial ticker)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results (default: 10)"),
		),
	)
}

// createGetIncomeStatementTool returns the get_income_statement tool definition
func createGetIncomeStatementTool() mcp.Tool {
	return mcp.NewTool("get_income_statement",
		mcp.WithDescription("Get income statements: revenue, gross profit, operating income, net income."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
		mcp.WithBoolean("quarterly",
			mcp.Description("Quarterly statements instead of annual (default: false)"),
		),
	)
}

// createGetBalanceSheetTool returns the get_balance_sheet tool definition
func createGetBalanceSheetTool() mcp.Tool {
	return mcp.NewTool("get_balance_sheet",
		mcp.WithDescription("Get balance sheets: assets, liabilities, equity, cash, long-term debt."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
		mcp.WithBoolean("quarterly",
			mcp.Description("Quarterly statements instead of annual (default: false)"),
		),
	)
}

// createGetCashflowStatementTool returns the get_cashflow_statement tool definition
func createGetCashflowStatementTool() mcp.Tool {
	return mcp.NewTool("get_cashflow_statement",
		mcp.WithDescription("Get cash flow statements: operating, investing, financing flows and capital expenditure."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
		mcp.WithBoolean("quarterly",
			mcp.Description("Quarterly statements instead of annual (default: false)"),
		),
	)
}

// createGetEarningsDataTool returns the get_earnings_data tool definition
func createGetEarningsDataTool() mcp.Tool {
	return mcp.NewTool("get_earnings_data",
		mcp.WithDescription("Get quarterly earnings history: EPS estimate vs. actual with surprise percentage."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetEarningsDatesTool returns the get_earnings_dates tool definition
func createGetEarningsDatesTool() mcp.Tool {
	return mcp.NewTool("get_earnings_dates",
		mcp.WithDescription("Get upcoming earnings announcement dates."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetAnalystRecommendationsTool returns the get_analyst_recommendations tool definition
func createGetAnalystRecommendationsTool() mcp.Tool {
	return mcp.NewTool("get_analyst_recommendations",
		mcp.WithDescription("Get recent analyst rating actions: upgrades, downgrades, and initiations."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetAnalystPriceTargetsTool returns the get_analyst_price_targets tool definition
func createGetAnalystPriceTargetsTool() mcp.Tool {
	return mcp.NewTool("get_analyst_price_targets",
		mcp.WithDescription("Get the analyst price target consensus: mean, median, high, low, and implied upside."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetMajorHoldersTool returns the get_major_holders tool definition
func createGetMajorHoldersTool() mcp.Tool {
	return mcp.NewTool("get_major_holders",
		mcp.WithDescription("Get the ownership breakdown: insider and institutional holding percentages."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetInstitutionalHoldersTool returns the get_institutional_holders tool definition
func createGetInstitutionalHoldersTool() mcp.Tool {
	return mcp.NewTool("get_institutional_holders",
		mcp.WithDescription("Get the largest institutional holder positions."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetEarningsEstimatesTool returns the get_earnings_estimates tool definition
func createGetEarningsEstimatesTool() mcp.Tool {
	return mcp.NewTool("get_earnings_estimates",
		mcp.WithDescription("Get forward EPS estimates for upcoming quarters and years."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetRevenueEstimatesTool returns the get_revenue_estimates tool definition
func createGetRevenueEstimatesTool() mcp.Tool {
	return mcp.NewTool("get_revenue_estimates",
		mcp.WithDescription("Get forward revenue estimates for upcoming quarters and years."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
	)
}

// createGetMarketIndicesTool returns the get_market_indices tool definition
func createGetMarketIndicesTool() mcp.Tool {
	return mcp.NewTool("get_market_indices",
		mcp.WithDescription("Get current values for major Indian and global market indices (NIFTY 50, SENSEX, S&P 500, NASDAQ, and more)."),
	)
}

// createGetMarketMoversTool returns the get_market_movers tool definition
func createGetMarketMoversTool() mcp.Tool {
	return mcp.NewTool("get_market_movers",
		mcp.WithDescription("Get today's top gainers and losers across the NIFTY 50 universe."),
		mcp.WithString("type",
			mcp.Description("Which list to return: 'gainers', 'losers', or 'both' (default: both)"),
		),
		mcp.WithNumber("count",
			mcp.Description("Stocks per list (default: 10)"),
		),
	)
}

// createCompareStocksTool returns the compare_stocks tool definition
func createCompareStocksTool() mcp.Tool {
	return mcp.NewTool("compare_stocks",
		mcp.WithDescription("Compare stocks side by side: valuation, YTD return, volatility, and sector."),
		mcp.WithString("symbols",
			mcp.Required(),
			mcp.Description("Comma-separated symbols or names, at least two (e.g., 'TCS, Infosys, Wipro')"),
		),
	)
}

// createScreenStocksTool returns the screen_stocks tool definition
func createScreenStocksTool() mcp.Tool {
	return mcp.NewTool("screen_stocks",
		mcp.WithDescription("Screen the NIFTY 50 universe. Types: most_active, gainers, losers, trending, small_cap, mid_cap, large_cap."),
		mcp.WithString("screen_type",
			mcp.Required(),
			mcp.Description("Screen type (e.g., 'most_active', 'large_cap')"),
		),
		mcp.WithNumber("count",
			mcp.Description("Maximum results (default: 10)"),
		),
	)
}

// createStockChartTool returns the create_stock_chart tool definition
func createStockChartTool() mcp.Tool {
	return mcp.NewTool("create_stock_chart",
		mcp.WithDescription("Render a PNG price chart with 20 and 50 bar moving averages. Returns an image URL."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
		mcp.WithString("period",
			mcp.Description(periodDescription+" (default: 3mo)"),
		),
	)
}

// createComparisonChartTool returns the create_comparison_chart tool definition
func createComparisonChartTool() mcp.Tool {
	return mcp.NewTool("create_comparison_chart",
		mcp.WithDescription("Render a PNG chart comparing stocks as normalized percent change. Returns an image URL."),
		mcp.WithString("symbols",
			mcp.Required(),
			mcp.Description("Comma-separated symbols or names, two to eight"),
		),
		mcp.WithString("period",
			mcp.Description(periodDescription+" (default: 3mo)"),
		),
	)
}

// createCandlestickChartTool returns the create_candlestick_chart tool definition
func createCandlestickChartTool() mcp.Tool {
	return mcp.NewTool("create_candlestick_chart",
		mcp.WithDescription("Render a PNG candlestick (OHLC) chart. Returns an image URL."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
		mcp.WithString("period",
			mcp.Description(periodDescription+" (default: 3mo)"),
		),
	)
}

// createVolumeChartTool returns the create_volume_analysis_chart tool definition
func createVolumeChartTool() mcp.Tool {
	return mcp.NewTool("create_volume_analysis_chart",
		mcp.WithDescription("Render a PNG volume analysis chart: volume with MA20, plus close price and VWAP. Returns an image URL."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol or company name"),
		),
		mcp.WithString("period",
			mcp.Description(periodDescription+" (default: 3mo)"),
		),
	)
}

// createGetCapabilitiesTool returns the get_mcp_capabilities tool definition
func createGetCapabilitiesTool() mcp.Tool {
	return mcp.NewTool("get_mcp_capabilities",
		mcp.WithDescription("List every tool this server provides, grouped by category."),
	)
}

// createGetHelpTool returns the get_mcp_help tool definition
func createGetHelpTool() mcp.Tool {
	return mcp.NewTool("get_mcp_help",
		mcp.WithDescription("Get usage guidance: symbol formats, periods, and example invocations."),
	)
}

// createGetSupportedStocksTool returns the get_supported_stocks tool definition
func createGetSupportedStocksTool() mcp.Tool {
	return mcp.NewTool("get_supported_stocks",
		mcp.WithDescription("List the domestic stocks in the built-in catalog with their sectors."),
	)
}
