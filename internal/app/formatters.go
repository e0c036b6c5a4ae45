package app

import (
	"fmt"
	"strings"

	"github.com/bazaarhq/bazaar/internal/common"
	"github.com/bazaarhq/bazaar/internal/models"
)

func trendEmoji(change float64) string {
	if change >= 0 {
		return "📈"
	}
	return "📉"
}

// formatResolution renders a resolution result, including suggestions for
// unresolved queries.
func formatResolution(res models.ResolutionResult) string {
	var sb strings.Builder

	if res.Resolved {
		sb.WriteString(fmt.Sprintf("## Resolved: %s\n\n", res.Symbol))
		sb.WriteString(fmt.Sprintf("- **Query:** %s\n", res.Query))
		sb.WriteString(fmt.Sprintf("- **Symbol:** %s\n", res.Symbol))
		sb.WriteString(fmt.Sprintf("- **Confidence:** %.2f\n", res.Confidence))
		if len(res.Candidates) > 0 && res.Candidates[0].Name != "" {
			sb.WriteString(fmt.Sprintf("- **Name:** %s\n", res.Candidates[0].Name))
		}
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("## Could not resolve: %s\n\n", res.Query))
	if len(res.Candidates) == 0 {
		sb.WriteString("No matching symbols found. Try the exact ticker (e.g. RELIANCE.NS) or a company name.\n")
		return sb.String()
	}
	sb.WriteString("Did you mean:\n\n")
	sb.WriteString("| Symbol | Name | Score |\n|--------|------|-------|\n")
	for _, c := range res.Candidates {
		sb.WriteString(fmt.Sprintf("| %s | %s | %.2f |\n", c.Symbol, c.Name, c.Score))
	}
	return sb.String()
}

func formatQuote(q *models.Quote) string {
	var sb strings.Builder
	name := q.Name
	if name == "" {
		name = q.Symbol
	}
	sb.WriteString(fmt.Sprintf("## %s %s (%s)\n\n", trendEmoji(q.Change), name, q.Symbol))
	sb.WriteString(fmt.Sprintf("- **Price:** %s\n", common.FormatMoney(q.Price)))
	sb.WriteString(fmt.Sprintf("- **Change:** %s (%s)\n",
		common.FormatSignedMoney(q.Change), common.FormatSignedPct(q.ChangePercent)))
	if q.PreviousClose != 0 {
		sb.WriteString(fmt.Sprintf("- **Previous Close:** %s\n", common.FormatMoney(q.PreviousClose)))
	}
	if q.DayLow != 0 || q.DayHigh != 0 {
		sb.WriteString(fmt.Sprintf("- **Day Range:** %s - %s\n",
			common.FormatMoney(q.DayLow), common.FormatMoney(q.DayHigh)))
	}
	if q.FiftyTwoLow != 0 || q.FiftyTwoHigh != 0 {
		sb.WriteString(fmt.Sprintf("- **52W Range:** %s - %s\n",
			common.FormatMoney(q.FiftyTwoLow), common.FormatMoney(q.FiftyTwoHigh)))
	}
	sb.WriteString(fmt.Sprintf("- **Volume:** %s\n", common.FormatShares(q.Volume)))
	if q.MarketCap != 0 {
		sb.WriteString(fmt.Sprintf("- **Market Cap:** %s\n", common.FormatLargeMoney(q.MarketCap)))
	}
	if q.Exchange != "" {
		sb.WriteString(fmt.Sprintf("- **Exchange:** %s\n", q.Exchange))
	}
	return sb.String()
}

func formatFastInfo(q *models.Quote) string {
	return fmt.Sprintf("%s **%s**: %s (%s, %s)\n",
		trendEmoji(q.Change), q.Symbol, common.FormatMoney(q.Price),
		common.FormatSignedMoney(q.Change), common.FormatSignedPct(q.ChangePercent))
}

func formatQuoteTable(title string, quotes []models.Quote, errs []error, queries []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	sb.WriteString("| Symbol | Price | Change | Change % | Volume |\n")
	sb.WriteString("|--------|-------|--------|----------|--------|\n")
	for i := range quotes {
		if errs != nil && errs[i] != nil {
			sb.WriteString(fmt.Sprintf("| %s | - | - | - | error: %v |\n", queries[i], errs[i]))
			continue
		}
		q := quotes[i]
		sb.WriteString(fmt.Sprintf("| %s %s | %s | %s | %s | %s |\n",
			trendEmoji(q.Change), q.Symbol,
			common.FormatMoney(q.Price),
			common.FormatSignedMoney(q.Change),
			common.FormatSignedPct(q.ChangePercent),
			common.FormatShares(q.Volume)))
	}
	return sb.String()
}

func formatStockInfo(info *models.StockInfo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s (%s)\n\n", info.Name, info.Symbol))

	if info.Sector != "" {
		sb.WriteString(fmt.Sprintf("- **Sector:** %s\n", info.Sector))
	}
	if info.Industry != "" {
		sb.WriteString(fmt.Sprintf("- **Industry:** %s\n", info.Industry))
	}
	if info.Country != "" {
		sb.WriteString(fmt.Sprintf("- **Country:** %s\n", info.Country))
	}
	if info.Exchange != "" {
		sb.WriteString(fmt.Sprintf("- **Exchange:** %s\n", info.Exchange))
	}
	if info.Website != "" {
		sb.WriteString(fmt.Sprintf("- **Website:** %s\n", info.Website))
	}
	if info.MarketCap != 0 {
		sb.WriteString(fmt.Sprintf("- **Market Cap:** %s\n", common.FormatLargeMoney(info.MarketCap)))
	}

	sb.WriteString("\n### Key Statistics\n\n")
	sb.WriteString("| Metric | Value |\n|--------|-------|\n")
	stat := func(name string, v float64, format string) {
		if v != 0 {
			sb.WriteString(fmt.Sprintf("| %s | "+format+" |\n", name, v))
		}
	}
	stat("P/E (trailing)", info.PERatio, "%.2f")
	stat("P/E (forward)", info.ForwardPE, "%.2f")
	stat("PEG", info.PEGRatio, "%.2f")
	stat("Price/Book", info.PriceToBook, "%.2f")
	stat("EPS", info.EPS, "%.2f")
	stat("Beta", info.Beta, "%.2f")
	stat("Dividend Yield", info.DividendYield*100, "%.2f%%")
	if info.AverageVolume != 0 {
		sb.WriteString(fmt.Sprintf("| Avg Volume | %s |\n", common.FormatShares(info.AverageVolume)))
	}

	if info.BusinessSummary != "" {
		sb.WriteString("\n### About\n\n")
		sb.WriteString(common.Truncate(info.BusinessSummary, 600))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatHistory(h *models.History) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s History (%s)\n\n", h.Symbol, h.Period))
	if len(h.Bars) == 0 {
		sb.WriteString("No history bars returned for this period.\n")
		return sb.String()
	}

	first, last := h.Bars[0], h.Bars[len(h.Bars)-1]
	change := last.Close - first.Close
	var pct float64
	if first.Close != 0 {
		pct = change / first.Close * 100
	}
	sb.WriteString(fmt.Sprintf("%s **%s** over %d bars: %s (%s)\n\n",
		trendEmoji(change), h.Symbol, len(h.Bars),
		common.FormatSignedMoney(change), common.FormatSignedPct(pct)))

	sb.WriteString("| Date | Open | High | Low | Close | Volume |\n")
	sb.WriteString("|------|------|------|-----|-------|--------|\n")
	bars := h.Bars
	// Long series print the most recent rows only.
	if len(bars) > 20 {
		bars = bars[len(bars)-20:]
		sb.WriteString(fmt.Sprintf("(showing last %d of %d bars)\n\n", len(bars), len(h.Bars)))
	}
	for _, b := range bars {
		sb.WriteString(fmt.Sprintf("| %s | %.2f | %.2f | %.2f | %.2f | %s |\n",
			b.Date.Format("2006-01-02"), b.Open, b.High, b.Low, b.Close,
			common.FormatShares(b.Volume)))
	}
	return sb.String()
}

func formatNews(symbol string, items []models.NewsItem) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## News: %s\n\n", symbol))
	if len(items) == 0 {
		sb.WriteString("No recent news found.\n")
		return sb.String()
	}
	for _, n := range items {
		sb.WriteString(fmt.Sprintf("- **%s** (%s, %s)\n  %s\n",
			n.Title, n.Publisher, n.Published.Format("2006-01-02"), n.Link))
	}
	return sb.String()
}

func formatDividends(symbol string, divs []models.Dividend) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Dividends: %s\n\n", symbol))
	if len(divs) == 0 {
		sb.WriteString("No dividend history found.\n")
		return sb.String()
	}
	sb.WriteString("| Date | Amount |\n|------|--------|\n")
	// Most recent first, capped.
	shown := 0
	for i := len(divs) - 1; i >= 0 && shown < 20; i-- {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n",
			divs[i].Date.Format("2006-01-02"), common.FormatMoney(divs[i].Amount)))
		shown++
	}
	return sb.String()
}

func formatSplits(symbol string, splits []models.Split) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Stock Splits: %s\n\n", symbol))
	if len(splits) == 0 {
		sb.WriteString("No split history found.\n")
		return sb.String()
	}
	sb.WriteString("| Date | Ratio |\n|------|-------|\n")
	for i := len(splits) - 1; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n",
			splits[i].Date.Format("2006-01-02"), splits[i].Ratio()))
	}
	return sb.String()
}

func formatSearchResults(query string, results []models.SearchResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Search: %q\n\n", query))
	if len(results) == 0 {
		sb.WriteString("No symbols matched.\n")
		return sb.String()
	}
	sb.WriteString("| Symbol | Name | Exchange | Type |\n|--------|------|----------|------|\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			r.Symbol, r.Name, r.Exchange, r.QuoteType))
	}
	return sb.String()
}

func periodLabel(quarterly bool) string {
	if quarterly {
		return "Quarterly"
	}
	return "Annual"
}

func formatIncomeStatements(symbol string, rows []models.IncomeStatement, quarterly bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Income Statement: %s (%s)\n\n", symbol, periodLabel(quarterly)))
	if len(rows) == 0 {
		sb.WriteString("No income statement data available.\n")
		return sb.String()
	}
	sb.WriteString("| Period | Revenue | Gross Profit | Operating Income | Net Income |\n")
	sb.WriteString("|--------|---------|--------------|------------------|------------|\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			r.EndDate.Format("2006-01-02"),
			common.FormatLargeMoney(r.TotalRevenue),
			common.FormatLargeMoney(r.GrossProfit),
			common.FormatLargeMoney(r.OperatingIncome),
			common.FormatLargeMoney(r.NetIncome)))
	}
	return sb.String()
}

func formatBalanceSheets(symbol string, rows []models.BalanceSheet, quarterly bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Balance Sheet: %s (%s)\n\n", symbol, periodLabel(quarterly)))
	if len(rows) == 0 {
		sb.WriteString("No balance sheet data available.\n")
		return sb.String()
	}
	sb.WriteString("| Period | Assets | Liabilities | Equity | Cash | LT Debt |\n")
	sb.WriteString("|--------|--------|-------------|--------|------|--------|\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			r.EndDate.Format("2006-01-02"),
			common.FormatLargeMoney(r.TotalAssets),
			common.FormatLargeMoney(r.TotalLiabilities),
			common.FormatLargeMoney(r.TotalEquity),
			common.FormatLargeMoney(r.Cash),
			common.FormatLargeMoney(r.LongTermDebt)))
	}
	return sb.String()
}

func formatCashflows(symbol string, rows []models.CashflowStatement, quarterly bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Cash Flow: %s (%s)\n\n", symbol, periodLabel(quarterly)))
	if len(rows) == 0 {
		sb.WriteString("No cash flow data available.\n")
		return sb.String()
	}
	sb.WriteString("| Period | Operating | Investing | Financing | CapEx |\n")
	sb.WriteString("|--------|-----------|-----------|-----------|-------|\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			r.EndDate.Format("2006-01-02"),
			common.FormatLargeMoney(r.OperatingCashflow),
			common.FormatLargeMoney(r.InvestingCashflow),
			common.FormatLargeMoney(r.FinancingCashflow),
			common.FormatLargeMoney(r.CapitalExpenditure)))
	}
	return sb.String()
}

func formatEarnings(symbol string, rows []models.EarningsPeriod) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Earnings: %s\n\n", symbol))
	if len(rows) == 0 {
		sb.WriteString("No earnings history available.\n")
		return sb.String()
	}
	sb.WriteString("| Quarter | EPS Estimate | EPS Actual | Surprise |\n")
	sb.WriteString("|---------|--------------|------------|----------|\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %.2f | %.2f | %s |\n",
			r.Quarter, r.EPSEstimate, r.EPSActual, common.FormatSignedPct(r.SurprisePct)))
	}
	return sb.String()
}

func formatEarningsDates(symbol string, dates []models.EarningsDate) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Earnings Dates: %s\n\n", symbol))
	if len(dates) == 0 {
		sb.WriteString("No upcoming earnings dates available.\n")
		return sb.String()
	}
	for _, d := range dates {
		sb.WriteString(fmt.Sprintf("- %s", d.Date.Format("2006-01-02")))
		if d.EPSEstimate != 0 {
			sb.WriteString(fmt.Sprintf(" (EPS estimate: %.2f)", d.EPSEstimate))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatRecommendations(symbol string, recs []models.Recommendation) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Analyst Recommendations: %s\n\n", symbol))
	if len(recs) == 0 {
		sb.WriteString("No analyst actions available.\n")
		return sb.String()
	}
	sb.WriteString("| Date | Firm | Action | Grade |\n|------|------|--------|-------|\n")
	shown := 0
	for _, r := range recs {
		grade := r.ToGrade
		if r.FromGrade != "" && r.FromGrade != r.ToGrade {
			grade = r.FromGrade + " → " + r.ToGrade
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			r.Date.Format("2006-01-02"), r.Firm, r.Action, grade))
		shown++
		if shown >= 15 {
			break
		}
	}
	return sb.String()
}

func formatPriceTargets(symbol string, pt *models.PriceTargets) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Analyst Price Targets: %s\n\n", symbol))
	sb.WriteString(fmt.Sprintf("- **Current Price:** %s\n", common.FormatMoney(pt.CurrentPrice)))
	sb.WriteString(fmt.Sprintf("- **Mean Target:** %s\n", common.FormatMoney(pt.Mean)))
	sb.WriteString(fmt.Sprintf("- **Median Target:** %s\n", common.FormatMoney(pt.Median)))
	sb.WriteString(fmt.Sprintf("- **Range:** %s - %s\n",
		common.FormatMoney(pt.Low), common.FormatMoney(pt.High)))
	sb.WriteString(fmt.Sprintf("- **Analysts:** %d\n", pt.NumAnalysts))
	if pt.CurrentPrice > 0 && pt.Mean > 0 {
		upside := (pt.Mean/pt.CurrentPrice - 1) * 100
		sb.WriteString(fmt.Sprintf("- **Implied Upside:** %s\n", common.FormatSignedPct(upside)))
	}
	return sb.String()
}

func formatHolders(symbol string, b *models.HoldersBreakdown) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Ownership: %s\n\n", symbol))
	sb.WriteString(fmt.Sprintf("- **Insiders:** %.2f%%\n", b.InsidersPct))
	sb.WriteString(fmt.Sprintf("- **Institutions:** %.2f%%\n", b.InstitutionsPct))
	if b.InstitutionsFloatPct != 0 {
		sb.WriteString(fmt.Sprintf("- **Institutions (float):** %.2f%%\n", b.InstitutionsFloatPct))
	}
	if b.InstitutionsCount != 0 {
		sb.WriteString(fmt.Sprintf("- **Institution Count:** %s\n", common.FormatCompactInt(int64(b.InstitutionsCount))))
	}
	return sb.String()
}

func formatInstitutionalHolders(symbol string, holders []models.InstitutionalHolder) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Institutional Holders: %s\n\n", symbol))
	if len(holders) == 0 {
		sb.WriteString("No institutional holder data available.\n")
		return sb.String()
	}
	sb.WriteString("| Holder | Shares | Value | Held % | Reported |\n")
	sb.WriteString("|--------|--------|-------|--------|----------|\n")
	for _, h := range holders {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.2f%% | %s |\n",
			h.Holder, common.FormatShares(h.Shares), common.FormatLargeMoney(h.Value),
			h.PercentHeld, h.DateReported.Format("2006-01-02")))
	}
	return sb.String()
}

func formatEstimates(symbol, kind string, rows []models.EstimateRow, money bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s Estimates: %s\n\n", kind, symbol))
	if len(rows) == 0 {
		sb.WriteString("No estimate data available.\n")
		return sb.String()
	}
	sb.WriteString("| Period | Avg | Low | High | Analysts | Growth |\n")
	sb.WriteString("|--------|-----|-----|------|----------|--------|\n")
	for _, r := range rows {
		avg, low, high := fmt.Sprintf("%.2f", r.Avg), fmt.Sprintf("%.2f", r.Low), fmt.Sprintf("%.2f", r.High)
		if money {
			avg, low, high = common.FormatLargeMoney(r.Avg), common.FormatLargeMoney(r.Low), common.FormatLargeMoney(r.High)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d | %s |\n",
			r.Period, avg, low, high, r.NumAnalysts, common.FormatSignedPct(r.GrowthPct)))
	}
	return sb.String()
}

func formatIndices(indices []models.IndexQuote) string {
	var sb strings.Builder
	sb.WriteString("## Market Indices\n\n")
	if len(indices) == 0 {
		sb.WriteString("No index data available.\n")
		return sb.String()
	}
	sb.WriteString("| Index | Value | Change | Change % |\n|-------|-------|--------|----------|\n")
	for _, ix := range indices {
		sb.WriteString(fmt.Sprintf("| %s %s | %.2f | %+.2f | %s |\n",
			trendEmoji(ix.Change), ix.Name, ix.Value, ix.Change,
			common.FormatSignedPct(ix.ChangePercent)))
	}
	return sb.String()
}

// formatMovers renders the requested mover lists; moverType is "gainers",
// "losers", or "both".
func formatMovers(moverType string, gainers, losers []models.Quote) string {
	var sb strings.Builder
	sb.WriteString("## Market Movers\n\n")

	section := func(title string, quotes []models.Quote) {
		sb.WriteString(fmt.Sprintf("### %s\n\n", title))
		if len(quotes) == 0 {
			sb.WriteString("None today.\n\n")
			return
		}
		sb.WriteString("| Symbol | Price | Change % | Volume |\n|--------|-------|----------|--------|\n")
		for _, q := range quotes {
			sb.WriteString(fmt.Sprintf("| %s %s | %s | %s | %s |\n",
				trendEmoji(q.Change), q.Symbol, common.FormatMoney(q.Price),
				common.FormatSignedPct(q.ChangePercent), common.FormatShares(q.Volume)))
		}
		sb.WriteString("\n")
	}
	if moverType != "losers" {
		section("📈 Top Gainers", gainers)
	}
	if moverType != "gainers" {
		section("📉 Top Losers", losers)
	}
	return sb.String()
}

func formatComparison(rows []models.ComparisonRow) string {
	var sb strings.Builder
	sb.WriteString("## Stock Comparison\n\n")
	sb.WriteString("| Metric |")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf(" %s |", r.Symbol))
	}
	sb.WriteString("\n|--------|")
	for range rows {
		sb.WriteString("--------|")
	}
	sb.WriteString("\n")

	row := func(name string, value func(models.ComparisonRow) string) {
		sb.WriteString(fmt.Sprintf("| %s |", name))
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf(" %s |", value(r)))
		}
		sb.WriteString("\n")
	}
	row("Name", func(r models.ComparisonRow) string { return r.Name })
	row("Price", func(r models.ComparisonRow) string { return common.FormatMoney(r.CurrentPrice) })
	row("Market Cap", func(r models.ComparisonRow) string { return common.FormatLargeMoney(r.MarketCap) })
	row("P/E", func(r models.ComparisonRow) string { return fmt.Sprintf("%.2f", r.PERatio) })
	row("P/B", func(r models.ComparisonRow) string { return fmt.Sprintf("%.2f", r.PriceToBook) })
	row("Div Yield", func(r models.ComparisonRow) string { return fmt.Sprintf("%.2f%%", r.DividendYield*100) })
	row("Beta", func(r models.ComparisonRow) string { return fmt.Sprintf("%.2f", r.Beta) })
	row("YTD Return", func(r models.ComparisonRow) string { return common.FormatSignedPct(r.YTDReturn) })
	row("Volatility", func(r models.ComparisonRow) string { return fmt.Sprintf("%.1f%%", r.Volatility) })
	row("Sector", func(r models.ComparisonRow) string { return r.Sector })
	return sb.String()
}

func formatScreen(screenType string, quotes []models.Quote) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Screen: %s\n\n", screenType))
	if len(quotes) == 0 {
		sb.WriteString("No stocks matched this screen.\n")
		return sb.String()
	}
	sb.WriteString("| # | Symbol | Price | Change % | Volume | Market Cap |\n")
	sb.WriteString("|---|--------|-------|----------|--------|------------|\n")
	for i, q := range quotes {
		sb.WriteString(fmt.Sprintf("| %d | %s %s | %s | %s | %s | %s |\n",
			i+1, trendEmoji(q.Change), q.Symbol, common.FormatMoney(q.Price),
			common.FormatSignedPct(q.ChangePercent), common.FormatShares(q.Volume),
			common.FormatLargeMoney(q.MarketCap)))
	}
	return sb.String()
}

func formatChartResult(title, symbolInfo, url string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	if symbolInfo != "" {
		sb.WriteString(symbolInfo + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("![%s](%s)\n\n", title, url))
	sb.WriteString(fmt.Sprintf("Image URL: %s\n", url))
	return sb.String()
}
