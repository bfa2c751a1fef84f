// Package mcp exposes the vault's command surface as MCP tools so
// external presentation layers can drive the core over stdio.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"promptvault/internal/application"
	"promptvault/internal/application/commands"
	"promptvault/internal/ports"
)

// RegisterReadTools adds all read-only vault tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.VaultStore) {
	s.AddTool(listCategoriesTool(), listCategoriesHandler(store))
	s.AddTool(listFoldersTool(), listFoldersHandler(store))
	s.AddTool(listVersionsTool(), listVersionsHandler(store))
	s.AddTool(showVersionTool(), showVersionHandler(store))
}

// --- list_categories ---

func listCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List all categories with their folder counts."),
	)
}

func listCategoriesHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listings, err := commands.NewListCategoriesCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(listings, func(l commands.CategoryListing) string {
			return fmt.Sprintf("%s  (%d folders)", l.Name, l.Folders)
		})
	}
}

// --- list_folders ---

func listFoldersTool() mcp.Tool {
	return mcp.NewTool("list_folders",
		mcp.WithDescription("List folders filtered by category and/or a name search. A search query overrides the category filter. At least one of the two must be given."),
		mcp.WithString("category",
			mcp.Description("Category to list folders of"),
		),
		mcp.WithString("query",
			mcp.Description("Case-insensitive folder-name search"),
		),
	)
}

func listFoldersHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		query := req.GetString("query", "")
		if category == "" && query == "" {
			return toolError(fmt.Errorf("category or query is required"))
		}

		listings, err := commands.NewListFoldersCommand(store, category, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(listings, func(l commands.FolderListing) string {
			return fmt.Sprintf("%s  %s  [%s]  %s  %d versions",
				l.Folder.ID, l.Folder.Name, l.Folder.Category, l.Badge, l.Versions)
		})
	}
}

// --- list_versions ---

func listVersionsTool() mcp.Tool {
	return mcp.NewTool("list_versions",
		mcp.WithDescription("List a folder's versions, newest first or by name."),
		mcp.WithString("folder_id",
			mcp.Description("Folder id"),
			mcp.Required(),
		),
		mcp.WithString("sort",
			mcp.Description("Sort mode: timestamp (default) or name"),
		),
	)
}

func listVersionsHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folderID := req.GetString("folder_id", "")
		mode := application.ParseSortMode(req.GetString("sort", ""))

		versions, err := commands.NewListVersionsCommand(store, folderID, mode).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(versions, func(v application.Version) string {
			return fmt.Sprintf("%s  %s  [%s]  %s",
				v.ID, v.Name, v.Status,
				time.UnixMilli(v.Timestamp).Format("2006-01-02 15:04"))
		})
	}
}

// --- show_version ---

func showVersionTool() mcp.Tool {
	return mcp.NewTool("show_version",
		mcp.WithDescription("Read one version's full content."),
		mcp.WithString("id",
			mcp.Description("Version id"),
			mcp.Required(),
		),
	)
}

func showVersionHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		v, err := commands.NewShowVersionCommand(store, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s [%s]\n\n%s\n", v.Name, v.Status, v.Content)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
