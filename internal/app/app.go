// Package app wires configuration, clients, services, and MCP tools
// into a single runnable application core.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bazaarhq/bazaar/internal/catalog"
	"github.com/bazaarhq/bazaar/internal/clients/yahoo"
	"github.com/bazaarhq/bazaar/internal/common"
	"github.com/bazaarhq/bazaar/internal/interfaces"
	"github.com/bazaarhq/bazaar/internal/resolver"
	"github.com/bazaarhq/bazaar/internal/services/chart"
	"github.com/bazaarhq/bazaar/internal/services/market"
	"github.com/bazaarhq/bazaar/internal/services/stock"
)

// App holds all initialized services, clients, and the MCP server.
// It is the shared core used by both cmd/bazaar-server and cmd/bazaar-mcp.
type App struct {
	Config        *common.Config
	Logger        *common.Logger
	Catalog       *catalog.Catalog
	Resolver      interfaces.SymbolResolver
	QuoteClient   interfaces.QuoteClient
	StockService  interfaces.StockService
	MarketService interfaces.MarketService
	ChartService  interfaces.ChartRenderer
	ImageStore    *chart.Store
	MCPServer     *server.MCPServer
	StartupTime   time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes the catalog, resolver, quote client, services, and
// the MCP server. configPath may be empty, in which case the default
// resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Load configuration - check provided path, BAZAAR_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("BAZAAR_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "bazaar.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/bazaar.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative chart cache path to binary directory
	if config.Charts.CacheDir != "" && !filepath.IsAbs(config.Charts.CacheDir) {
		config.Charts.CacheDir = filepath.Join(binDir, config.Charts.CacheDir)
	}

	logger := common.NewLogger(config.Logging.Level)

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load symbol catalog: %w", err)
	}
	logger.Info().Int("entries", cat.Len()).Msg("Symbol catalog loaded")

	res := resolver.New(cat, resolver.OptionsFromConfig(config.Resolver))

	quoteClient := yahoo.NewClient(
		yahoo.WithBaseURL(config.Quote.BaseURL),
		yahoo.WithRateLimit(config.Quote.RateLimit),
		yahoo.WithTimeout(config.Quote.GetTimeout()),
		yahoo.WithLogger(logger),
	)

	imageStore, err := chart.NewStore(config.Charts.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chart store: %w", err)
	}

	stockService := stock.NewService(quoteClient, res, logger)
	marketService := market.NewService(quoteClient, res, logger)
	chartService := chart.NewService(quoteClient, res, imageStore, logger)

	mcpServer := server.NewMCPServer(
		"bazaar",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:        config,
		Logger:        logger,
		Catalog:       cat,
		Resolver:      res,
		QuoteClient:   quoteClient,
		StockService:  stockService,
		MarketService: marketService,
		ChartService:  chartService,
		ImageStore:    imageStore,
		MCPServer:     mcpServer,
		StartupTime:   startupStart,
	}

	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// ImageBaseURL returns the public prefix chart image names are appended to.
// The bind host is rewritten to localhost since 0.0.0.0 is not reachable
// from a client.
func (a *App) ImageBaseURL() string {
	host := a.Config.Server.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if base := os.Getenv("BAZAAR_PUBLIC_URL"); base != "" {
		for len(base) > 0 && base[len(base)-1] == '/' {
			base = base[:len(base)-1]
		}
		return base + "/images/"
	}
	return fmt.Sprintf("http://%s:%d/images/", host, a.Config.Server.Port)
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	logger := a.Logger
	imageBase := a.ImageBaseURL()

	s.AddTool(createValidateTool(), handleValidate(a.Config.Auth.ValidateID))
	s.AddTool(createResolveSymbolTool(), handleResolveSymbol(a.Resolver, logger))
	s.AddTool(createGetSupportedStocksTool(), handleGetSupportedStocks(a.Catalog))

	s.AddTool(createGetStockQuoteTool(), handleGetStockQuote(a.StockService, logger))
	s.AddTool(createGetMultipleStockQuotesTool(), handleGetMultipleStockQuotes(a.StockService, logger))
	s.AddTool(createGetStockFastInfoTool(), handleGetStockFastInfo(a.StockService, logger))
	s.AddTool(createGetStockInfoTool(), handleGetStockInfo(a.StockService, logger))
	s.AddTool(createGetStockHistoryTool(), handleGetStockHistory(a.StockService, logger))
	s.AddTool(createGetStockNewsTool(), handleGetStockNews(a.StockService, logger))
	s.AddTool(createGetStockDividendsTool(), handleGetStockDividends(a.StockService, logger))
	s.AddTool(createGetStockSplitsTool(), handleGetStockSplits(a.StockService, logger))
	s.AddTool(createSearchStocksTool(), handleSearchStocks(a.StockService, logger))

	s.AddTool(createGetIncomeStatementTool(), handleGetIncomeStatement(a.StockService, logger))
	s.AddTool(createGetBalanceSheetTool(), handleGetBalanceSheet(a.StockService, logger))
	s.AddTool(createGetCashflowStatementTool(), handleGetCashflowStatement(a.StockService, logger))
	s.AddTool(createGetEarningsDataTool(), handleGetEarningsData(a.StockService, logger))
	s.AddTool(createGetEarningsDatesTool(), handleGetEarningsDates(a.StockService, logger))
	s.AddTool(createGetAnalystRecommendationsTool(), handleGetAnalystRecommendations(a.StockService, logger))
	s.AddTool(createGetAnalystPriceTargetsTool(), handleGetAnalystPriceTargets(a.StockService, logger))
	s.AddTool(createGetMajorHoldersTool(), handleGetMajorHolders(a.StockService, logger))
	s.AddTool(createGetInstitutionalHoldersTool(), handleGetInstitutionalHolders(a.StockService, logger))
	s.AddTool(createGetEarningsEstimatesTool(), handleGetEarningsEstimates(a.StockService, logger))
	s.AddTool(createGetRevenueEstimatesTool(), handleGetRevenueEstimates(a.StockService, logger))

	s.AddTool(createGetMarketIndicesTool(), handleGetMarketIndices(a.MarketService, logger))
	s.AddTool(createGetMarketMoversTool(), handleGetMarketMovers(a.MarketService, logger))
	s.AddTool(createCompareStocksTool(), handleCompareStocks(a.MarketService, logger))
	s.AddTool(createScreenStocksTool(), handleScreenStocks(a.MarketService, logger))

	s.AddTool(createStockChartTool(), handleCreateStockChart(a.ChartService, imageBase, logger))
	s.AddTool(createComparisonChartTool(), handleCreateComparisonChart(a.ChartService, imageBase, logger))
	s.AddTool(createCandlestickChartTool(), handleCreateCandlestickChart(a.ChartService, imageBase, logger))
	s.AddTool(createVolumeChartTool(), handleCreateVolumeChart(a.ChartService, imageBase, logger))

	s.AddTool(createGetCapabilitiesTool(), handleGetCapabilities())
	s.AddTool(createGetHelpTool(), handleGetHelp())
}
