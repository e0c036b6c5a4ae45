// Package server exposes the application over HTTP: the MCP endpoint,
// health and info endpoints, and chart image serving.
package server

import (
	"encoding/json"
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bazaarhq/bazaar/internal/app"
	"github.com/bazaarhq/bazaar/internal/common"
)

// BuildMux creates the HTTP mux. The MCP endpoint sits behind bearer
// authentication; the info, health, and image endpoints are open so
// that platform probes and chart links work without credentials.
func BuildMux(a *app.App) http.Handler {
	httpMCP := mcpserver.NewStreamableHTTPServer(a.MCPServer,
		mcpserver.WithStateLess(true),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", bearerAuth(a.Config.Auth.Token, a.Logger, httpMCP))
	mux.HandleFunc("/", infoHandler)
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/images/", a.ImageStore.Handler())

	return mux
}

// infoHandler responds to GET/HEAD / with service identity and endpoints.
// Any other path falls through here and gets a 404.
func infoHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"service": "bazaar",
		"version": common.GetVersion(),
		"mcp":     "/mcp",
		"health":  "/health",
	})
}

// healthHandler responds to GET/HEAD /health with {"status":"ok"}.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
