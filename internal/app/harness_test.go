package app

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bazaarhq/bazaar/internal/catalog"
	"github.com/bazaarhq/bazaar/internal/common"
	"github.com/bazaarhq/bazaar/internal/resolver"
)

const testImageBase = "http://localhost:8087/images/"

// testHarness provides an in-process MCP client connected to a Bazaar
// server backed by mock services. Tests configure mock behavior before
// calling tools.
type testHarness struct {
	t           *testing.T
	client      *client.Client
	mcpServer   *server.MCPServer
	mockStocks  *mockStockService
	mockMarkets *mockMarketService
	mockCharts  *mockChartRenderer
	logger      *common.Logger
}

// newTestHarness creates a Bazaar MCP server with mock services and an
// in-process client. The real catalog and resolver back resolve_symbol.
func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	logger := common.NewSilentLogger()
	mockStocks := &mockStockService{}
	mockMarkets := &mockMarketService{}
	mockCharts := &mockChartRenderer{}

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog load failed: %v", err)
	}
	res := resolver.New(cat, resolver.OptionsFromConfig(common.NewDefaultConfig().Resolver))

	mcpServer := server.NewMCPServer(
		"bazaar-test",
		"test",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createValidateTool(), handleValidate("919876543210"))
	mcpServer.AddTool(createResolveSymbolTool(), handleResolveSymbol(res, logger))
	mcpServer.AddTool(createGetSupportedStocksTool(), handleGetSupportedStocks(cat))
	mcpServer.AddTool(createGetStockQuoteTool(), handleGetStockQuote(mockStocks, logger))
	mcpServer.AddTool(createGetMultipleStockQuotesTool(), handleGetMultipleStockQuotes(mockStocks, logger))
	mcpServer.AddTool(createGetStockHistoryTool(), handleGetStockHistory(mockStocks, logger))
	mcpServer.AddTool(createGetMarketIndicesTool(), handleGetMarketIndices(mockMarkets, logger))
	mcpServer.AddTool(createGetMarketMoversTool(), handleGetMarketMovers(mockMarkets, logger))
	mcpServer.AddTool(createCompareStocksTool(), handleCompareStocks(mockMarkets, logger))
	mcpServer.AddTool(createScreenStocksTool(), handleScreenStocks(mockMarkets, logger))
	mcpServer.AddTool(createStockChartTool(), handleCreateStockChart(mockCharts, testImageBase, logger))
	mcpServer.AddTool(createComparisonChartTool(), handleCreateComparisonChart(mockCharts, testImageBase, logger))
	mcpServer.AddTool(createGetCapabilitiesTool(), handleGetCapabilities())
	mcpServer.AddTool(createGetHelpTool(), handleGetHelp())

	c, err := client.NewInProcessClient(mcpServer)
	if err != nil {
		t.Fatalf("Failed to create in-process client: %v", err)
	}

	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("Failed to start client: %v", err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "bazaar-test-client",
		Version: "1.0.0",
	}
	if _, err := c.Initialize(ctx, initReq); err != nil {
		c.Close()
		t.Fatalf("Failed to initialize MCP: %v", err)
	}

	h := &testHarness{
		t:           t,
		client:      c,
		mcpServer:   mcpServer,
		mockStocks:  mockStocks,
		mockMarkets: mockMarkets,
		mockCharts:  mockCharts,
		logger:      logger,
	}

	t.Cleanup(h.close)
	return h
}

// callTool invokes an MCP tool by name with the given arguments.
func (h *testHarness) callTool(name string, args map[string]any) (*mcp.CallToolResult, error) {
	h.t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return h.client.CallTool(context.Background(), req)
}

// getTextContent extracts text from a content block at the given index.
func (h *testHarness) getTextContent(result *mcp.CallToolResult, index int) string {
	h.t.Helper()
	if index >= len(result.Content) {
		h.t.Fatalf("Content index %d out of range (have %d blocks)", index, len(result.Content))
	}
	tc, ok := result.Content[index].(mcp.TextContent)
	if !ok {
		h.t.Fatalf("Content[%d] is %T, not TextContent", index, result.Content[index])
	}
	return tc.Text
}

func (h *testHarness) close() {
	if h.client != nil {
		h.client.Close()
	}
}
