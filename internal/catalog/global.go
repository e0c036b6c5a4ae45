package catalog

import "github.com/bazaarhq/bazaar/internal/models"

// globalSymbols returns the compiled-in table of widely traded non-domestic
// tickers. The first name is the display name; the rest are lower-cased
// spoken aliases. They skip ExpandAliases because the common names are
// short and irregular.
func globalSymbols() []models.SymbolEntry {
	g := func(symbol, sector string, names ...string) models.SymbolEntry {
		return models.SymbolEntry{
			Symbol: symbol,
			Market: models.MarketGlobal,
			Sector: sector,
			Names:  names,
		}
	}
	return []models.SymbolEntry{
		g("AAPL", "Technology", "Apple Inc.", "apple"),
		g("MSFT", "Technology", "Microsoft Corporation", "microsoft"),
		g("GOOGL", "Technology", "Alphabet Inc.", "google", "alphabet"),
		g("AMZN", "Consumer Cyclical", "Amazon.com Inc.", "amazon"),
		g("TSLA", "Automobile", "Tesla Inc.", "tesla", "tesla motors"),
		g("META", "Technology", "Meta Platforms Inc.", "meta", "facebook"),
		g("NFLX", "Communication Services", "Netflix Inc.", "netflix"),
		g("NVDA", "Technology", "NVIDIA Corporation", "nvidia"),
		g("INTC", "Technology", "Intel Corporation", "intel"),
		g("AMD", "Technology", "Advanced Micro Devices", "amd"),
		g("IBM", "Technology", "International Business Machines", "ibm"),
		g("ORCL", "Technology", "Oracle Corporation", "oracle"),
		g("CRM", "Technology", "Salesforce Inc.", "salesforce"),
		g("ADBE", "Technology", "Adobe Inc.", "adobe", "adobe systems"),
		g("PYPL", "Financial Services", "PayPal Holdings", "paypal"),
		g("UBER", "Technology", "Uber Technologies", "uber"),
		g("ABNB", "Consumer Cyclical", "Airbnb Inc.", "airbnb"),
		g("ZM", "Technology", "Zoom Video Communications", "zoom"),
		g("SPOT", "Communication Services", "Spotify Technology", "spotify"),
		g("JPM", "Financial Services", "JPMorgan Chase", "jpmorgan", "jp morgan"),
		g("GS", "Financial Services", "Goldman Sachs Group", "goldman sachs", "goldman"),
		g("MS", "Financial Services", "Morgan Stanley", "morgan stanley"),
		g("BAC", "Financial Services", "Bank of America", "bank of america"),
		g("WFC", "Financial Services", "Wells Fargo", "wells fargo"),
		g("C", "Financial Services", "Citigroup Inc.", "citigroup", "citibank", "citi"),
		g("V", "Financial Services", "Visa Inc.", "visa"),
		g("MA", "Financial Services", "Mastercard Inc.", "mastercard"),
		g("AXP", "Financial Services", "American Express", "american express", "amex"),
		g("BRK-B", "Financial Services", "Berkshire Hathaway", "berkshire hathaway", "berkshire"),
		g("WMT", "Consumer Defensive", "Walmart Inc.", "walmart"),
		g("KO", "Consumer Defensive", "Coca-Cola Company", "coca cola", "coca-cola", "coke"),
		g("PEP", "Consumer Defensive", "PepsiCo Inc.", "pepsi", "pepsico"),
		g("MCD", "Consumer Cyclical", "McDonald's Corporation", "mcdonalds"),
		g("NKE", "Consumer Cyclical", "Nike Inc.", "nike"),
		g("DIS", "Communication Services", "Walt Disney Company", "disney", "walt disney"),
		g("BA", "Industrials", "Boeing Company", "boeing"),
		g("F", "Automobile", "Ford Motor Company", "ford", "ford motor"),
		g("GM", "Automobile", "General Motors", "general motors"),
		g("XOM", "Energy", "Exxon Mobil Corporation", "exxon", "exxonmobil"),
		g("CVX", "Energy", "Chevron Corporation", "chevron"),
		g("JNJ", "Healthcare", "Johnson & Johnson", "johnson and johnson"),
		g("PFE", "Healthcare", "Pfizer Inc.", "pfizer"),
	}
}
