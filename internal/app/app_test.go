package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig writes a minimal config pointing the chart cache at a
// temp directory and returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bazaar.toml")
	content := fmt.Sprintf(`environment = "test"

[server]
host = "127.0.0.1"
port = 18087

[auth]
token = "test-token"
validate_id = "919999999999"

[charts]
cache_dir = %q

[logging]
level = "error"
`, filepath.Join(dir, "charts"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func TestNewAppInitializesAllServices(t *testing.T) {
	a, err := NewApp(writeTestConfig(t))
	require.NoError(t, err)

	assert.NotNil(t, a.Config)
	assert.NotNil(t, a.Logger)
	assert.NotNil(t, a.Catalog)
	assert.NotNil(t, a.Resolver)
	assert.NotNil(t, a.QuoteClient)
	assert.NotNil(t, a.StockService)
	assert.NotNil(t, a.MarketService)
	assert.NotNil(t, a.ChartService)
	assert.NotNil(t, a.ImageStore)
	assert.NotNil(t, a.MCPServer)
	assert.False(t, a.StartupTime.IsZero())

	assert.Equal(t, "test-token", a.Config.Auth.Token)
	assert.Equal(t, 18087, a.Config.Server.Port)
}

func TestNewAppRegistersAllTools(t *testing.T) {
	a, err := NewApp(writeTestConfig(t))
	require.NoError(t, err)

	c, err := client.NewInProcessClient(a.MCPServer)
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, c.Start(ctx))
	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "test", Version: "1.0.0"}
	_, err = c.Initialize(ctx, initReq)
	require.NoError(t, err)

	toolsResult, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	require.NoError(t, err)

	expectedTools := []string{
		"validate",
		"resolve_symbol",
		"get_supported_stocks",
		"get_stock_quote",
		"get_multiple_stock_quotes",
		"get_stock_fast_info",
		"get_stock_info",
		"get_stock_history",
		"get_stock_news",
		"get_stock_dividends",
		"get_stock_splits",
		"search_stocks",
		"get_income_statement",
		"get_balance_sheet",
		"get_cashflow_statement",
		"get_earnings_data",
		"get_earnings_dates",
		"get_analyst_recommendations",
		"get_analyst_price_targets",
		"get_major_holders",
		"get_institutional_holders",
		"get_earnings_estimates",
		"get_revenue_estimates",
		"get_market_indices",
		"get_market_movers",
		"compare_stocks",
		"screen_stocks",
		"create_stock_chart",
		"create_comparison_chart",
		"create_candlestick_chart",
		"create_volume_analysis_chart",
		"get_mcp_capabilities",
		"get_mcp_help",
	}

	registered := make(map[string]bool, len(toolsResult.Tools))
	for _, tool := range toolsResult.Tools {
		registered[tool.Name] = true
	}

	for _, name := range expectedTools {
		assert.True(t, registered[name], "tool %s not registered", name)
	}
	assert.Len(t, toolsResult.Tools, len(expectedTools))
}

func TestImageBaseURLRewritesBindHost(t *testing.T) {
	a, err := NewApp(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:18087/images/", a.ImageBaseURL())

	a.Config.Server.Host = "0.0.0.0"
	assert.Equal(t, "http://localhost:18087/images/", a.ImageBaseURL())
}

func TestImageBaseURLHonorsPublicURL(t *testing.T) {
	a, err := NewApp(writeTestConfig(t))
	require.NoError(t, err)

	t.Setenv("BAZAAR_PUBLIC_URL", "https://bazaar.example.com/")
	assert.Equal(t, "https://bazaar.example.com/images/", a.ImageBaseURL())
}
