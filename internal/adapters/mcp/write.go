package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"promptvault/internal/adapters/ziparchive"
	"promptvault/internal/application"
	"promptvault/internal/application/commands"
	"promptvault/internal/ports"
)

// RegisterWriteTools adds all mutating vault tools to the MCP server.
// Destructive tools act immediately; the calling presentation layer owns
// any confirmation step.
func RegisterWriteTools(s *server.MCPServer, store ports.VaultStore, codec ports.ArchiveCodec, runner *commands.ArchiveRunner) {
	s.AddTool(categoryTool(), categoryHandler(store))
	s.AddTool(createFolderTool(), createFolderHandler(store))
	s.AddTool(renameFolderTool(), renameFolderHandler(store))
	s.AddTool(duplicateFolderTool(), duplicateFolderHandler(store))
	s.AddTool(deleteFolderTool(), deleteFolderHandler(store))
	s.AddTool(addVersionTool(), addVersionHandler(store))
	s.AddTool(forkVersionTool(), forkVersionHandler(store))
	s.AddTool(updateVersionTool(), updateVersionHandler(store))
	s.AddTool(deleteVersionTool(), deleteVersionHandler(store))
	s.AddTool(exportTool(), exportHandler(store, codec, runner))
	s.AddTool(importTool(), importHandler(store, codec, runner))
}

// --- category ---

func categoryTool() mcp.Tool {
	return mcp.NewTool("category",
		mcp.WithDescription("Manage categories: add, rename, or delete. Deleting cascades to the category's folders and their versions."),
		mcp.WithString("action",
			mcp.Description("One of: add, rename, delete"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Category name (the current name for rename)"),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("New name (rename only)"),
		),
	)
}

func categoryHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		action := req.GetString("action", "")
		name := req.GetString("name", "")
		newName := req.GetString("new_name", "")

		switch action {
		case "add":
			result, err := commands.NewAddCategoryCommand(store, name).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case "rename":
			result, err := commands.NewRenameCategoryCommand(store, name, newName).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case "delete":
			result, err := commands.NewDeleteCategoryCommand(store, name).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		default:
			return toolError(fmt.Errorf("unknown action: %s (expected add, rename, or delete)", action))
		}
	}
}

// --- create_folder ---

func createFolderTool() mcp.Tool {
	return mcp.NewTool("create_folder",
		mcp.WithDescription("Create a folder under an existing category."),
		mcp.WithString("name",
			mcp.Description("Folder name"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Existing category the folder belongs to"),
			mcp.Required(),
		),
	)
}

func createFolderHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateFolderCommand(store,
			req.GetString("name", ""), req.GetString("category", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename_folder ---

func renameFolderTool() mcp.Tool {
	return mcp.NewTool("rename_folder",
		mcp.WithDescription("Rename a folder."),
		mcp.WithString("id",
			mcp.Description("Folder id"),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("New folder name"),
			mcp.Required(),
		),
	)
}

func renameFolderHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRenameFolderCommand(store,
			req.GetString("id", ""), req.GetString("new_name", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- duplicate_folder ---

func duplicateFolderTool() mcp.Tool {
	return mcp.NewTool("duplicate_folder",
		mcp.WithDescription("Deep-copy a folder and all its versions under fresh ids."),
		mcp.WithString("id",
			mcp.Description("Folder id"),
			mcp.Required(),
		),
	)
}

func duplicateFolderHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDuplicateFolderCommand(store, req.GetString("id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_folder ---

func deleteFolderTool() mcp.Tool {
	return mcp.NewTool("delete_folder",
		mcp.WithDescription("Delete a folder and every version inside it."),
		mcp.WithString("id",
			mcp.Description("Folder id"),
			mcp.Required(),
		),
	)
}

func deleteFolderHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteFolderCommand(store, req.GetString("id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_version ---

func addVersionTool() mcp.Tool {
	return mcp.NewTool("add_version",
		mcp.WithDescription("Create a new version in a folder, optionally seeded with content. New versions start amber."),
		mcp.WithString("folder_id",
			mcp.Description("Folder id"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Initial content (optional)"),
		),
	)
}

func addVersionHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddVersionCommand(store,
			req.GetString("folder_id", ""), req.GetString("content", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- fork_version ---

func forkVersionTool() mcp.Tool {
	return mcp.NewTool("fork_version",
		mcp.WithDescription("Create a new version seeded with an existing version's content, in the same folder."),
		mcp.WithString("id",
			mcp.Description("Source version id"),
			mcp.Required(),
		),
	)
}

func forkVersionHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewForkVersionCommand(store, req.GetString("id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_version ---

func updateVersionTool() mcp.Tool {
	return mcp.NewTool("update_version",
		mcp.WithDescription("Update any subset of a version's name, content and status. The version's timestamp refreshes."),
		mcp.WithString("id",
			mcp.Description("Version id"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New name"),
		),
		mcp.WithString("content",
			mcp.Description("New content"),
		),
		mcp.WithString("status",
			mcp.Description("New status: green, amber, or red"),
		),
	)
}

func updateVersionHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUpdateVersionCommand(store, req.GetString("id", ""))
		if name := req.GetString("name", ""); name != "" {
			cmd.WithName(name)
		}
		if content := req.GetString("content", ""); content != "" {
			cmd.WithContent(content)
		}
		if status := req.GetString("status", ""); status != "" {
			cmd.WithStatus(application.Status(status))
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_version ---

func deleteVersionTool() mcp.Tool {
	return mcp.NewTool("delete_version",
		mcp.WithDescription("Delete a single version."),
		mcp.WithString("id",
			mcp.Description("Version id"),
			mcp.Required(),
		),
	)
}

func deleteVersionHandler(store ports.VaultStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteVersionCommand(store, req.GetString("id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Write the vault to a zip backup archive. Rejected while another export or import is running."),
		mcp.WithString("dir",
			mcp.Description("Directory for the date-stamped archive (default: current directory)"),
		),
	)
}

func exportHandler(store ports.VaultStore, codec ports.ArchiveCodec, runner *commands.ArchiveRunner) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("dir", ".")
		path := filepath.Join(dir, ziparchive.ArchiveName(time.Now()))

		result, err := commands.NewExportCommand(store, codec, runner, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- import ---

func importTool() mcp.Tool {
	return mcp.NewTool("import",
		mcp.WithDescription("Restore the vault from a zip backup archive, replacing the current dataset. An invalid archive leaves the vault untouched."),
		mcp.WithString("path",
			mcp.Description("Path to the backup archive"),
			mcp.Required(),
		),
	)
}

func importHandler(store ports.VaultStore, codec ports.ArchiveCodec, runner *commands.ArchiveRunner) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewImportCommand(store, codec, runner, req.GetString("path", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
