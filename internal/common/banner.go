package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config) {
	serviceURL := fmt.Sprintf("http://%s:%d", config.Server.Host, config.Server.Port)

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 64
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		` 888888b.         d8888 8888888888P      d8888        d8888 8888888b.`,
		` 888  "88b       d88888       d88P      d88888       d88888 888   Y88b`,
		` 888  .88P      d88P888      d88P      d88P888      d88P888 888    888`,
		` 8888888K.     d88P 888     d88P      d88P 888     d88P 888 888   d88P`,
		` 888  "Y88b   d88P  888    d88P      d88P  888    d88P  888 8888888P"`,
		` 888    888  d88P   888   d88P      d88P   888   d88P   888 888 T88b`,
		` 888   d88P d8888888888  d88P      d8888888888  d8888888888 888  T88b`,
		` 8888888P" d88P     888 d8888888888888P     888d88P     888 888   T88b`,
	}

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  %sMarket data MCP server%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "  Version:  %s\n", GetFullVersion())
	fmt.Fprintf(os.Stderr, "  Service:  %s\n", serviceURL)
	fmt.Fprintf(os.Stderr, "  MCP:      %s/mcp\n", serviceURL)
	fmt.Fprintf(os.Stderr, "  Env:      %s\n", config.Environment)
	fmt.Fprintf(os.Stderr, "%s\n\n", hr)
}
