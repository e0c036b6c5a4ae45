package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bazaarhq/bazaar/internal/models"
)

// summaryResult carries whichever quoteSummary modules were requested.
// Unrequested modules stay nil.
type summaryResult struct {
	AssetProfile *struct {
		Sector              string `json:"sector"`
		Industry            string `json:"industry"`
		Country             string `json:"country"`
		Website             string `json:"website"`
		LongBusinessSummary string `json:"longBusinessSummary"`
	} `json:"assetProfile"`
	Price *struct {
		ShortName          string   `json:"shortName"`
		LongName           string   `json:"longName"`
		Currency           string   `json:"currency"`
		ExchangeName       string   `json:"exchangeName"`
		RegularMarketPrice rawValue `json:"regularMarketPrice"`
		MarketCap          rawValue `json:"marketCap"`
	} `json:"price"`
	SummaryDetail *struct {
		TrailingPE       rawValue `json:"trailingPE"`
		ForwardPE        rawValue `json:"forwardPE"`
		Beta             rawValue `json:"beta"`
		DividendYield    rawValue `json:"dividendYield"`
		FiftyTwoWeekHigh rawValue `json:"fiftyTwoWeekHigh"`
		FiftyTwoWeekLow  rawValue `json:"fiftyTwoWeekLow"`
		AverageVolume    rawValue `json:"averageVolume"`
	} `json:"summaryDetail"`
	DefaultKeyStatistics *struct {
		TrailingEPS rawValue `json:"trailingEps"`
		PEGRatio    rawValue `json:"pegRatio"`
		PriceToBook rawValue `json:"priceToBook"`
	} `json:"defaultKeyStatistics"`
	FinancialData *struct {
		CurrentPrice      rawValue `json:"currentPrice"`
		TargetMeanPrice   rawValue `json:"targetMeanPrice"`
		TargetMedianPrice rawValue `json:"targetMedianPrice"`
		TargetHighPrice   rawValue `json:"targetHighPrice"`
		TargetLowPrice    rawValue `json:"targetLowPrice"`
		NumberOfAnalysts  rawValue `json:"numberOfAnalystOpinions"`
	} `json:"financialData"`
	IncomeStatementHistory            *incomeHistory   `json:"incomeStatementHistory"`
	IncomeStatementHistoryQuarterly   *incomeHistory   `json:"incomeStatementHistoryQuarterly"`
	BalanceSheetHistory               *balanceHistory  `json:"balanceSheetHistory"`
	BalanceSheetHistoryQuarterly      *balanceHistory  `json:"balanceSheetHistoryQuarterly"`
	CashflowStatementHistory          *cashflowHistory `json:"cashflowStatementHistory"`
	CashflowStatementHistoryQuarterly *cashflowHistory `json:"cashflowStatementHistoryQuarterly"`
	EarningsHistory *struct {
		History []struct {
			Period      string   `json:"period"`
			Quarter     rawValue `json:"quarter"`
			EPSEstimate rawValue `json:"epsEstimate"`
			EPSActual   rawValue `json:"epsActual"`
			SurprisePct rawValue `json:"surprisePercent"`
		} `json:"history"`
	} `json:"earningsHistory"`
	CalendarEvents *struct {
		Earnings struct {
			EarningsDate    []rawValue `json:"earningsDate"`
			EarningsAverage rawValue   `json:"earningsAverage"`
		} `json:"earnings"`
	} `json:"calendarEvents"`
	UpgradeDowngradeHistory *struct {
		History []struct {
			EpochGradeDate int64  `json:"epochGradeDate"`
			Firm           string `json:"firm"`
			ToGrade        string `json:"toGrade"`
			FromGrade      string `json:"fromGrade"`
			Action         string `json:"action"`
		} `json:"history"`
	} `json:"upgradeDowngradeHistory"`
	MajorHoldersBreakdown *struct {
		InsidersPercentHeld      rawValue `json:"insidersPercentHeld"`
		InstitutionsPercentHeld  rawValue `json:"institutionsPercentHeld"`
		InstitutionsFloatPercent rawValue `json:"institutionsFloatPercentHeld"`
		InstitutionsCount        rawValue `json:"institutionsCount"`
	} `json:"majorHoldersBreakdown"`
	InstitutionOwnership *struct {
		OwnershipList []struct {
			Organization string   `json:"organization"`
			Position     rawValue `json:"position"`
			Value        rawValue `json:"value"`
			PctHeld      rawValue `json:"pctHeld"`
			ReportDate   rawValue `json:"reportDate"`
		} `json:"ownershipList"`
	} `json:"institutionOwnership"`
	EarningsTrend *struct {
		Trend []struct {
			Period           string `json:"period"`
			EarningsEstimate struct {
				Avg              rawValue `json:"avg"`
				Low              rawValue `json:"low"`
				High             rawValue `json:"high"`
				NumberOfAnalysts rawValue `json:"numberOfAnalysts"`
				Growth           rawValue `json:"growth"`
			} `json:"earningsEstimate"`
			RevenueEstimate struct {
				Avg              rawValue `json:"avg"`
				Low              rawValue `json:"low"`
				High             rawValue `json:"high"`
				NumberOfAnalysts rawValue `json:"numberOfAnalysts"`
				Growth           rawValue `json:"growth"`
			} `json:"revenueEstimate"`
		} `json:"trend"`
	} `json:"earningsTrend"`
}

type incomeHistory struct {
	Statements []struct {
		EndDate         rawValue `json:"endDate"`
		TotalRevenue    rawValue `json:"totalRevenue"`
		GrossProfit     rawValue `json:"grossProfit"`
		OperatingIncome rawValue `json:"operatingIncome"`
		NetIncome       rawValue `json:"netIncome"`
	} `json:"incomeStatementHistory"`
}

type balanceHistory struct {
	Statements []struct {
		EndDate                rawValue `json:"endDate"`
		TotalAssets            rawValue `json:"totalAssets"`
		TotalLiab              rawValue `json:"totalLiab"`
		TotalStockholderEquity rawValue `json:"totalStockholderEquity"`
		Cash                   rawValue `json:"cash"`
		LongTermDebt           rawValue `json:"longTermDebt"`
	} `json:"balanceSheetStatements"`
}

type cashflowHistory struct {
	Statements []struct {
		EndDate                 rawValue `json:"endDate"`
		TotalCashFromOperating  rawValue `json:"totalCashFromOperatingActivities"`
		TotalCashflowsInvesting rawValue `json:"totalCashflowsFromInvestingActivities"`
		TotalCashFromFinancing  rawValue `json:"totalCashFromFinancingActivities"`
		CapitalExpenditures     rawValue `json:"capitalExpenditures"`
	} `json:"cashflowStatements"`
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (c *Client) fetchSummary(ctx context.Context, symbol string, modules ...string) (*summaryResult, error) {
	params := url.Values{}
	params.Set("modules", strings.Join(modules, ","))

	var resp summaryResponse
	if err := c.get(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), params, &resp); err != nil {
		return nil, err
	}
	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("summary request for %s failed: %s", symbol, resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no summary data for %s", symbol)
	}
	return &resp.QuoteSummary.Result[0], nil
}

// GetInfo retrieves the company profile plus key statistics.
func (c *Client) GetInfo(ctx context.Context, symbol string) (*models.StockInfo, error) {
	res, err := c.fetchSummary(ctx, symbol,
		"assetProfile", "price", "summaryDetail", "defaultKeyStatistics")
	if err != nil {
		return nil, err
	}

	info := &models.StockInfo{Symbol: symbol}
	if res.AssetProfile != nil {
		info.Sector = res.AssetProfile.Sector
		info.Industry = res.AssetProfile.Industry
		info.Country = res.AssetProfile.Country
		info.Website = res.AssetProfile.Website
		info.BusinessSummary = res.AssetProfile.LongBusinessSummary
	}
	if res.Price != nil {
		info.Name = res.Price.LongName
		if info.Name == "" {
			info.Name = res.Price.ShortName
		}
		info.Currency = res.Price.Currency
		info.Exchange = res.Price.ExchangeName
		info.MarketCap = res.Price.MarketCap.F()
	}
	if res.SummaryDetail != nil {
		info.PERatio = res.SummaryDetail.TrailingPE.F()
		info.ForwardPE = res.SummaryDetail.ForwardPE.F()
		info.Beta = res.SummaryDetail.Beta.F()
		info.DividendYield = res.SummaryDetail.DividendYield.F()
		info.FiftyTwoHigh = res.SummaryDetail.FiftyTwoWeekHigh.F()
		info.FiftyTwoLow = res.SummaryDetail.FiftyTwoWeekLow.F()
		info.AverageVolume = res.SummaryDetail.AverageVolume.I()
	}
	if res.DefaultKeyStatistics != nil {
		info.EPS = res.DefaultKeyStatistics.TrailingEPS.F()
		info.PEGRatio = res.DefaultKeyStatistics.PEGRatio.F()
		info.PriceToBook = res.DefaultKeyStatistics.PriceToBook.F()
	}
	return info, nil
}

// GetIncomeStatements retrieves annual or quarterly income statements,
// most recent first.
func (c *Client) GetIncomeStatements(ctx context.Context, symbol string, quarterly bool) ([]models.IncomeStatement, error) {
	module := "incomeStatementHistory"
	if quarterly {
		module = "incomeStatementHistoryQuarterly"
	}
	res, err := c.fetchSummary(ctx, symbol, module)
	if err != nil {
		return nil, err
	}

	hist := res.IncomeStatementHistory
	if quarterly {
		hist = res.IncomeStatementHistoryQuarterly
	}
	if hist == nil {
		return nil, nil
	}

	var out []models.IncomeStatement
	for _, s := range hist.Statements {
		out = append(out, models.IncomeStatement{
			EndDate:         time.Unix(s.EndDate.I(), 0).UTC(),
			TotalRevenue:    s.TotalRevenue.F(),
			GrossProfit:     s.GrossProfit.F(),
			OperatingIncome: s.OperatingIncome.F(),
			NetIncome:       s.NetIncome.F(),
		})
	}
	return out, nil
}

// GetBalanceSheets retrieves annual or quarterly balance sheets,
// most recent first.
func (c *Client) GetBalanceSheets(ctx context.Context, symbol string, quarterly bool) ([]models.BalanceSheet, error) {
	module := "balanceSheetHistory"
	if quarterly {
		module = "balanceSheetHistoryQuarterly"
	}
	res, err := c.fetchSummary(ctx, symbol, module)
	if err != nil {
		return nil, err
	}

	hist := res.BalanceSheetHistory
	if quarterly {
		hist = res.BalanceSheetHistoryQuarterly
	}
	if hist == nil {
		return nil, nil
	}

	var out []models.BalanceSheet
	for _, s := range hist.Statements {
		out = append(out, models.BalanceSheet{
			EndDate:          time.Unix(s.EndDate.I(), 0).UTC(),
			TotalAssets:      s.TotalAssets.F(),
			TotalLiabilities: s.TotalLiab.F(),
			TotalEquity:      s.TotalStockholderEquity.F(),
			Cash:             s.Cash.F(),
			LongTermDebt:     s.LongTermDebt.F(),
		})
	}
	return out, nil
}

// GetCashflowStatements retrieves annual or quarterly cash flow statements,
// most recent first.
func (c *Client) GetCashflowStatements(ctx context.Context, symbol string, quarterly bool) ([]models.CashflowStatement, error) {
	module := "cashflowStatementHistory"
	if quarterly {
		module = "cashflowStatementHistoryQuarterly"
	}
	res, err := c.fetchSummary(ctx, symbol, module)
	if err != nil {
		return nil, err
	}

	hist := res.CashflowStatementHistory
	if quarterly {
		hist = res.CashflowStatementHistoryQuarterly
	}
	if hist == nil {
		return nil, nil
	}

	var out []models.CashflowStatement
	for _, s := range hist.Statements {
		out = append(out, models.CashflowStatement{
			EndDate:            time.Unix(s.EndDate.I(), 0).UTC(),
			OperatingCashflow:  s.TotalCashFromOperating.F(),
			InvestingCashflow:  s.TotalCashflowsInvesting.F(),
			FinancingCashflow:  s.TotalCashFromFinancing.F(),
			CapitalExpenditure: s.CapitalExpenditures.F(),
		})
	}
	return out, nil
}

// GetEarnings retrieves the recent quarterly estimate-vs-actual history.
func (c *Client) GetEarnings(ctx context.Context, symbol string) ([]models.EarningsPeriod, error) {
	res, err := c.fetchSummary(ctx, symbol, "earningsHistory")
	if err != nil {
		return nil, err
	}
	if res.EarningsHistory == nil {
		return nil, nil
	}

	var out []models.EarningsPeriod
	for _, h := range res.EarningsHistory.History {
		quarter := h.Period
		if h.Quarter.Fmt != "" {
			quarter = h.Quarter.Fmt
		}
		out = append(out, models.EarningsPeriod{
			Quarter:     quarter,
			EPSEstimate: h.EPSEstimate.F(),
			EPSActual:   h.EPSActual.F(),
			SurprisePct: h.SurprisePct.F() * 100,
		})
	}
	return out, nil
}

// GetEarningsDates retrieves upcoming earnings announcement dates.
func (c *Client) GetEarningsDates(ctx context.Context, symbol string) ([]models.EarningsDate, error) {
	res, err := c.fetchSummary(ctx, symbol, "calendarEvents")
	if err != nil {
		return nil, err
	}
	if res.CalendarEvents == nil {
		return nil, nil
	}

	var out []models.EarningsDate
	for _, d := range res.CalendarEvents.Earnings.EarningsDate {
		out = append(out, models.EarningsDate{
			Date:        time.Unix(d.I(), 0).UTC(),
			EPSEstimate: res.CalendarEvents.Earnings.EarningsAverage.F(),
		})
	}
	return out, nil
}

// GetRecommendations retrieves recent analyst rating actions, newest first.
func (c *Client) GetRecommendations(ctx context.Context, symbol string) ([]models.Recommendation, error) {
	res, err := c.fetchSummary(ctx, symbol, "upgradeDowngradeHistory")
	if err != nil {
		return nil, err
	}
	if res.UpgradeDowngradeHistory == nil {
		return nil, nil
	}

	var out []models.Recommendation
	for _, h := range res.UpgradeDowngradeHistory.History {
		out = append(out, models.Recommendation{
			Date:      time.Unix(h.EpochGradeDate, 0).UTC(),
			Firm:      h.Firm,
			ToGrade:   h.ToGrade,
			FromGrade: h.FromGrade,
			Action:    h.Action,
		})
	}
	return out, nil
}

// GetPriceTargets retrieves the analyst price target consensus.
func (c *Client) GetPriceTargets(ctx context.Context, symbol string) (*models.PriceTargets, error) {
	res, err := c.fetchSummary(ctx, symbol, "financialData")
	if err != nil {
		return nil, err
	}
	if res.FinancialData == nil {
		return nil, fmt.Errorf("no price target data for %s", symbol)
	}

	return &models.PriceTargets{
		CurrentPrice: res.FinancialData.CurrentPrice.F(),
		Mean:         res.FinancialData.TargetMeanPrice.F(),
		Median:       res.FinancialData.TargetMedianPrice.F(),
		High:         res.FinancialData.TargetHighPrice.F(),
		Low:          res.FinancialData.TargetLowPrice.F(),
		NumAnalysts:  int(res.FinancialData.NumberOfAnalysts.I()),
	}, nil
}

// GetHoldersBreakdown retrieves the insider/institution ownership split.
func (c *Client) GetHoldersBreakdown(ctx context.Context, symbol string) (*models.HoldersBreakdown, error) {
	res, err := c.fetchSummary(ctx, symbol, "majorHoldersBreakdown")
	if err != nil {
		return nil, err
	}
	if res.MajorHoldersBreakdown == nil {
		return nil, fmt.Errorf("no holders data for %s", symbol)
	}

	b := res.MajorHoldersBreakdown
	return &models.HoldersBreakdown{
		InsidersPct:          b.InsidersPercentHeld.F() * 100,
		InstitutionsPct:      b.InstitutionsPercentHeld.F() * 100,
		InstitutionsFloatPct: b.InstitutionsFloatPercent.F() * 100,
		InstitutionsCount:    int(b.InstitutionsCount.I()),
	}, nil
}

// GetInstitutionalHolders retrieves the largest institutional positions.
func (c *Client) GetInstitutionalHolders(ctx context.Context, symbol string) ([]models.InstitutionalHolder, error) {
	res, err := c.fetchSummary(ctx, symbol, "institutionOwnership")
	if err != nil {
		return nil, err
	}
	if res.InstitutionOwnership == nil {
		return nil, nil
	}

	var out []models.InstitutionalHolder
	for _, h := range res.InstitutionOwnership.OwnershipList {
		out = append(out, models.InstitutionalHolder{
			Holder:       h.Organization,
			Shares:       h.Position.I(),
			Value:        h.Value.F(),
			PercentHeld:  h.PctHeld.F() * 100,
			DateReported: time.Unix(h.ReportDate.I(), 0).UTC(),
		})
	}
	return out, nil
}

// GetEarningsEstimates retrieves forward EPS estimates per period.
func (c *Client) GetEarningsEstimates(ctx context.Context, symbol string) ([]models.EstimateRow, error) {
	res, err := c.fetchSummary(ctx, symbol, "earningsTrend")
	if err != nil {
		return nil, err
	}
	if res.EarningsTrend == nil {
		return nil, nil
	}

	var out []models.EstimateRow
	for _, tr := range res.EarningsTrend.Trend {
		e := tr.EarningsEstimate
		if e.NumberOfAnalysts.I() == 0 {
			continue
		}
		out = append(out, models.EstimateRow{
			Period:      estimatePeriodName(tr.Period),
			Avg:         e.Avg.F(),
			Low:         e.Low.F(),
			High:        e.High.F(),
			NumAnalysts: int(e.NumberOfAnalysts.I()),
			GrowthPct:   e.Growth.F() * 100,
		})
	}
	return out, nil
}

// GetRevenueEstimates retrieves forward revenue estimates per period.
func (c *Client) GetRevenueEstimates(ctx context.Context, symbol string) ([]models.EstimateRow, error) {
	res, err := c.fetchSummary(ctx, symbol, "earningsTrend")
	if err != nil {
		return nil, err
	}
	if res.EarningsTrend == nil {
		return nil, nil
	}

	var out []models.EstimateRow
	for _, tr := range res.EarningsTrend.Trend {
		e := tr.RevenueEstimate
		if e.NumberOfAnalysts.I() == 0 {
			continue
		}
		out = append(out, models.EstimateRow{
			Period:      estimatePeriodName(tr.Period),
			Avg:         e.Avg.F(),
			Low:         e.Low.F(),
			High:        e.High.F(),
			NumAnalysts: int(e.NumberOfAnalysts.I()),
			GrowthPct:   e.Growth.F() * 100,
		})
	}
	return out, nil
}

func estimatePeriodName(period string) string {
	switch period {
	case "0q":
		return "Current Qtr"
	case "+1q":
		return "Next Qtr"
	case "0y":
		return "Current Year"
	case "+1y":
		return "Next Year"
	default:
		return period
	}
}
