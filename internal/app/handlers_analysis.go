package app

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bazaarhq/bazaar/internal/common"
	"github.com/bazaarhq/bazaar/internal/interfaces"
)

// handleGetIncomeStatement implements the get_income_statement tool
func handleGetIncomeStatement(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}
		quarterly := request.GetBool("quarterly", false)

		rows, err := stocks.IncomeStatements(ctx, symbol, quarterly)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Income statement fetch failed")
			return errorResult(fmt.Sprintf("Financials error: %v", err)), nil
		}
		return textResult(formatIncomeStatements(symbol, rows, quarterly)), nil
	}
}

// handleGetBalanceSheet implements the get_balance_sheet tool
func handleGetBalanceSheet(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}
		quarterly := request.GetBool("quarterly", false)

		rows, err := stocks.BalanceSheets(ctx, symbol, quarterly)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Balance sheet fetch failed")
			return errorResult(fmt.Sprintf("Financials error: %v", err)), nil
		}
		return textResult(formatBalanceSheets(symbol, rows, quarterly)), nil
	}
}

// handleGetCashflowStatement implements the get_cashflow_statement tool
func handleGetCashflowStatement(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}
		quarterly := request.GetBool("quarterly", false)

		rows, err := stocks.CashflowStatements(ctx, symbol, quarterly)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Cash flow fetch failed")
			return errorResult(fmt.Sprintf("Financials error: %v", err)), nil
		}
		return textResult(formatCashflows(symbol, rows, quarterly)), nil
	}
}

// handleGetEarningsData implements the get_earnings_data tool
func handleGetEarningsData(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		rows, err := stocks.Earnings(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Earnings fetch failed")
			return errorResult(fmt.Sprintf("Earnings error: %v", err)), nil
		}
		return textResult(formatEarnings(symbol, rows)), nil
	}
}

// handleGetEarningsDates implements the get_earnings_dates tool
func handleGetEarningsDates(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		dates, err := stocks.EarningsDates(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Earnings dates fetch failed")
			return errorResult(fmt.Sprintf("Earnings error: %v", err)), nil
		}
		return textResult(formatEarningsDates(symbol, dates)), nil
	}
}

// handleGetAnalystRecommendations implements the get_analyst_recommendations tool
func handleGetAnalystRecommendations(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		recs, err := stocks.Recommendations(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Recommendations fetch failed")
			return errorResult(fmt.Sprintf("Analyst error: %v", err)), nil
		}
		return textResult(formatRecommendations(symbol, recs)), nil
	}
}

// handleGetAnalystPriceTargets implements the get_analyst_price_targets tool
func handleGetAnalystPriceTargets(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		targets, err := stocks.PriceTargets(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Price target fetch failed")
			return errorResult(fmt.Sprintf("Analyst error: %v", err)), nil
		}
		return textResult(formatPriceTargets(symbol, targets)), nil
	}
}

// handleGetMajorHolders implements the get_major_holders tool
func handleGetMajorHolders(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		breakdown, err := stocks.HoldersBreakdown(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Holders fetch failed")
			return errorResult(fmt.Sprintf("Holders error: %v", err)), nil
		}
		return textResult(formatHolders(symbol, breakdown)), nil
	}
}

// handleGetInstitutionalHolders implements the get_institutional_holders tool
func handleGetInstitutionalHolders(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		holders, err := stocks.InstitutionalHolders(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Institutional holders fetch failed")
			return errorResult(fmt.Sprintf("Holders error: %v", err)), nil
		}
		return textResult(formatInstitutionalHolders(symbol, holders)), nil
	}
}

// handleGetEarningsEstimates implements the get_earnings_estimates tool
func handleGetEarningsEstimates(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		rows, err := stocks.EarningsEstimates(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Earnings estimates fetch failed")
			return errorResult(fmt.Sprintf("Estimates error: %v", err)), nil
		}
		return textResult(formatEstimates(symbol, "Earnings", rows, false)), nil
	}
}

// handleGetRevenueEstimates implements the get_revenue_estimates tool
func handleGetRevenueEstimates(stocks interfaces.StockService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errRes := requireSymbol(request)
		if errRes != nil {
			return errRes, nil
		}

		rows, err := stocks.RevenueEstimates(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Revenue estimates fetch failed")
			return errorResult(fmt.Sprintf("Estimates error: %v", err)), nil
		}
		return textResult(formatEstimates(symbol, "Revenue", rows, true)), nil
	}
}
