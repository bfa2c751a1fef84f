package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"promptvault/internal/application"
	"promptvault/internal/application/commands"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Manage versions (drafts) within folders",
	Long: `Add, fork, update, delete, list, or show versions.

A version is one revision of text content. New versions start with
amber status; any update refreshes the version's timestamp.

Examples:
  promptvault-cli version add <folder-id>
  promptvault-cli version add <folder-id> --content "Write a cold email..."
  promptvault-cli version fork <version-id>
  promptvault-cli version set <version-id> --status green
  promptvault-cli version ls <folder-id> --sort name
  promptvault-cli version show <version-id>
  promptvault-cli version copy <version-id>`,
}

var (
	versionContent string
	versionName    string
	versionStatus  string
	versionSort    string
)

var versionAddCmd = &cobra.Command{
	Use:   "add <folder-id>",
	Short: "Add a new version to a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewAddVersionCommand(GetStore(), args[0], versionContent).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var versionForkCmd = &cobra.Command{
	Use:   "fork <version-id>",
	Short: "Create a new version seeded with an existing version's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewForkVersionCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var versionSetCmd = &cobra.Command{
	Use:   "set <version-id>",
	Short: "Update a version's name, content, or status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		update := commands.NewUpdateVersionCommand(GetStore(), args[0])
		if cmd.Flags().Changed("name") {
			update.WithName(versionName)
		}
		if cmd.Flags().Changed("content") {
			update.WithContent(versionContent)
		}
		if cmd.Flags().Changed("status") {
			update.WithStatus(application.Status(versionStatus))
		}

		result, err := update.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var versionRmCmd = &cobra.Command{
	Use:   "rm <version-id>",
	Short: "Delete a version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if !confirm("Delete this version? This specific draft will be removed.") {
			fmt.Println("Cancelled")
			return nil
		}

		result, err := commands.NewDeleteVersionCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var versionLsCmd = &cobra.Command{
	Use:   "ls <folder-id>",
	Short: "List a folder's versions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		mode := application.ParseSortMode(versionSort)
		versions, err := commands.NewListVersionsCommand(GetStore(), args[0], mode).Execute(ctx)
		if err != nil {
			return err
		}
		for _, v := range versions {
			fmt.Printf("%s %s  %s %s\n",
				badge(v.Status), v.Name,
				dimStyle.Render(time.UnixMilli(v.Timestamp).Format("2006-01-02 15:04")),
				dimStyle.Render(v.ID))
		}
		return nil
	},
}

var versionShowCmd = &cobra.Command{
	Use:   "show <version-id>",
	Short: "Print a version's full content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		v, err := commands.NewShowVersionCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n\n%s\n", badge(v.Status), v.Name, v.Content)
		return nil
	},
}

var versionCopyCmd = &cobra.Command{
	Use:   "copy <version-id>",
	Short: "Copy a version's content to the system clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		v, err := commands.NewShowVersionCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		if err := clipboard.WriteAll(v.Content); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Printf("Copied %s to clipboard\n", v.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.AddCommand(versionAddCmd)
	versionCmd.AddCommand(versionForkCmd)
	versionCmd.AddCommand(versionSetCmd)
	versionCmd.AddCommand(versionRmCmd)
	versionCmd.AddCommand(versionLsCmd)
	versionCmd.AddCommand(versionShowCmd)
	versionCmd.AddCommand(versionCopyCmd)

	versionAddCmd.Flags().StringVar(&versionContent, "content", "", "initial content")
	versionSetCmd.Flags().StringVar(&versionName, "name", "", "new name")
	versionSetCmd.Flags().StringVar(&versionContent, "content", "", "new content")
	versionSetCmd.Flags().StringVar(&versionStatus, "status", "", "new status: green, amber, or red")
	versionLsCmd.Flags().StringVar(&versionSort, "sort", "timestamp", "sort mode: timestamp or name")
}
