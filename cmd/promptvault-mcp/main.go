package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "promptvault/internal/adapters/mcp"
	"promptvault/internal/adapters/memstore"
	"promptvault/internal/adapters/sqlite"
	"promptvault/internal/adapters/ziparchive"
	"promptvault/internal/application/commands"
	"promptvault/internal/config"
	"promptvault/internal/logging"
)

func main() {
	dataFlag := flag.String("data", config.DataPath(), "path to the vault database")
	flag.Parse()

	logger := logging.New(os.Stderr, false)

	persister, err := sqlite.Open(*dataFlag, logger)
	if err != nil {
		log.Fatalf("promptvault-mcp: %v", err)
	}
	defer persister.Close()

	store, err := memstore.New(persister, logger)
	if err != nil {
		log.Fatalf("promptvault-mcp: %v", err)
	}

	codec := ziparchive.New()
	runner := commands.NewArchiveRunner()

	mcpServer := server.NewMCPServer(
		"promptvault-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store, codec, runner)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("promptvault-mcp: %v", err)
	}
}
