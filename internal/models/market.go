package models

import "time"

// Valid history period tokens, passed through to the quote API.
var ValidPeriods = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "10y": true, "ytd": true, "max": true,
}

// Quote is a current market quote for one symbol.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name,omitempty"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	MarketCap     float64 `json:"market_cap,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Exchange      string  `json:"exchange,omitempty"`
	PreviousClose float64 `json:"previous_close,omitempty"`
	DayHigh       float64 `json:"day_high,omitempty"`
	DayLow        float64 `json:"day_low,omitempty"`
	FiftyTwoHigh  float64 `json:"fifty_two_week_high,omitempty"`
	FiftyTwoLow   float64 `json:"fifty_two_week_low,omitempty"`
}

// Bar is one OHLCV history bar.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// History is a price series for one symbol over a period.
type History struct {
	Symbol string `json:"symbol"`
	Period string `json:"period"`
	Bars   []Bar  `json:"bars"`
}

// Start returns the date of the first bar, or zero time for an empty series.
func (h *History) Start() time.Time {
	if len(h.Bars) == 0 {
		return time.Time{}
	}
	return h.Bars[0].Date
}

// End returns the date of the last bar, or zero time for an empty series.
func (h *History) End() time.Time {
	if len(h.Bars) == 0 {
		return time.Time{}
	}
	return h.Bars[len(h.Bars)-1].Date
}

// StockInfo is the company profile plus key statistics.
type StockInfo struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Sector          string  `json:"sector"`
	Industry        string  `json:"industry"`
	Country         string  `json:"country"`
	Currency        string  `json:"currency"`
	Exchange        string  `json:"exchange"`
	Website         string  `json:"website,omitempty"`
	BusinessSummary string  `json:"business_summary,omitempty"`
	MarketCap       float64 `json:"market_cap,omitempty"`
	PERatio         float64 `json:"pe_ratio,omitempty"`
	ForwardPE       float64 `json:"forward_pe,omitempty"`
	PEGRatio        float64 `json:"peg_ratio,omitempty"`
	PriceToBook     float64 `json:"price_to_book,omitempty"`
	EPS             float64 `json:"eps,omitempty"`
	Beta            float64 `json:"beta,omitempty"`
	DividendYield   float64 `json:"dividend_yield,omitempty"`
	FiftyTwoHigh    float64 `json:"fifty_two_week_high,omitempty"`
	FiftyTwoLow     float64 `json:"fifty_two_week_low,omitempty"`
	AverageVolume   int64   `json:"average_volume,omitempty"`
}

// NewsItem is one news article attached to a symbol.
type NewsItem struct {
	Title     string    `json:"title"`
	Publisher string    `json:"publisher"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
}

// Dividend is one historical dividend payment.
type Dividend struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// Split is one historical stock split.
type Split struct {
	Date        time.Time `json:"date"`
	Numerator   int       `json:"numerator"`
	Denominator int       `json:"denominator"`
}

// Ratio renders the split as e.g. "2:1".
func (s *Split) Ratio() string {
	if s.Denominator == 0 {
		return "N/A"
	}
	return formatRatio(s.Numerator, s.Denominator)
}

func formatRatio(n, d int) string {
	return itoa(n) + ":" + itoa(d)
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// IncomeStatement is one fiscal period of the income statement.
type IncomeStatement struct {
	EndDate         time.Time `json:"end_date"`
	TotalRevenue    float64   `json:"total_revenue"`
	GrossProfit     float64   `json:"gross_profit"`
	OperatingIncome float64   `json:"operating_income"`
	NetIncome       float64   `json:"net_income"`
}

// BalanceSheet is one fiscal period of the balance sheet.
type BalanceSheet struct {
	EndDate          time.Time `json:"end_date"`
	TotalAssets      float64   `json:"total_assets"`
	TotalLiabilities float64   `json:"total_liabilities"`
	TotalEquity      float64   `json:"total_equity"`
	Cash             float64   `json:"cash"`
	LongTermDebt     float64   `json:"long_term_debt"`
}

// CashflowStatement is one fiscal period of the cash flow statement.
type CashflowStatement struct {
	EndDate            time.Time `json:"end_date"`
	OperatingCashflow  float64   `json:"operating_cashflow"`
	InvestingCashflow  float64   `json:"investing_cashflow"`
	FinancingCashflow  float64   `json:"financing_cashflow"`
	CapitalExpenditure float64   `json:"capital_expenditure"`
}

// EarningsPeriod is one reported quarter: estimate vs. actual.
type EarningsPeriod struct {
	Quarter     string  `json:"quarter"`
	EPSEstimate float64 `json:"eps_estimate"`
	EPSActual   float64 `json:"eps_actual"`
	SurprisePct float64 `json:"surprise_pct"`
}

// EarningsDate is one upcoming or past earnings announcement date.
type EarningsDate struct {
	Date        time.Time `json:"date"`
	EPSEstimate float64   `json:"eps_estimate,omitempty"`
}

// Recommendation is one analyst rating action.
type Recommendation struct {
	Date      time.Time `json:"date"`
	Firm      string    `json:"firm"`
	ToGrade   string    `json:"to_grade"`
	FromGrade string    `json:"from_grade,omitempty"`
	Action    string    `json:"action"`
}

// PriceTargets is the analyst price-target consensus.
type PriceTargets struct {
	CurrentPrice float64 `json:"current_price"`
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	High         float64 `json:"high"`
	Low          float64 `json:"low"`
	NumAnalysts  int     `json:"num_analysts"`
}

// EstimateRow is one estimate period (current/next quarter/year) for
// either earnings-per-share or revenue.
type EstimateRow struct {
	Period      string  `json:"period"` // "Current Qtr", "Next Qtr", "Current Year", "Next Year"
	Avg         float64 `json:"avg"`
	Low         float64 `json:"low"`
	High        float64 `json:"high"`
	NumAnalysts int     `json:"num_analysts"`
	GrowthPct   float64 `json:"growth_pct,omitempty"`
}

// HoldersBreakdown is the ownership split for a symbol.
type HoldersBreakdown struct {
	InsidersPct     float64 `json:"insiders_pct"`
	InstitutionsPct float64 `json:"institutions_pct"`
	InstitutionsFloatPct float64 `json:"institutions_float_pct,omitempty"`
	InstitutionsCount    int     `json:"institutions_count,omitempty"`
}

// InstitutionalHolder is one institution or fund holding position.
type InstitutionalHolder struct {
	Holder       string    `json:"holder"`
	Shares       int64     `json:"shares"`
	Value        float64   `json:"value"`
	PercentHeld  float64   `json:"percent_held"`
	DateReported time.Time `json:"date_reported"`
}

// SearchResult is one hit from the upstream symbol search.
type SearchResult struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Exchange  string `json:"exchange"`
	QuoteType string `json:"quote_type"`
}

// IndexQuote is a market index snapshot.
type IndexQuote struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// ComparisonRow is the per-symbol slice of a side-by-side comparison.
type ComparisonRow struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	CurrentPrice  float64 `json:"current_price"`
	MarketCap     float64 `json:"market_cap,omitempty"`
	PERatio       float64 `json:"pe_ratio,omitempty"`
	PriceToBook   float64 `json:"price_to_book,omitempty"`
	DividendYield float64 `json:"dividend_yield,omitempty"`
	Beta          float64 `json:"beta,omitempty"`
	YTDReturn     float64 `json:"ytd_return"`
	Volatility    float64 `json:"volatility"`
	FiftyTwoHigh  float64 `json:"fifty_two_week_high,omitempty"`
	FiftyTwoLow   float64 `json:"fifty_two_week_low,omitempty"`
	Sector        string  `json:"sector,omitempty"`
	Industry      string  `json:"industry,omitempty"`
}
