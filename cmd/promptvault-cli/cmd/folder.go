package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"promptvault/internal/application/commands"
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage folders",
	Long: `Create, rename, delete, duplicate, or list folders.

A folder lives under one category and holds any number of versions.
Duplicating a folder deep-copies all its versions under fresh ids.

Examples:
  promptvault-cli folder create "Cold Outreach" --category Sales
  promptvault-cli folder rename <folder-id> "Warm Outreach"
  promptvault-cli folder dup <folder-id>
  promptvault-cli folder rm <folder-id>
  promptvault-cli folder ls --category Sales`,
}

var (
	folderCategory string
	folderQuery    string
)

var folderCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a folder under a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewCreateFolderCommand(GetStore(), args[0], folderCategory).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var folderRenameCmd = &cobra.Command{
	Use:   "rename <folder-id> <new-name>",
	Short: "Rename a folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewRenameFolderCommand(GetStore(), args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var folderRmCmd = &cobra.Command{
	Use:   "rm <folder-id>",
	Short: "Delete a folder and all its versions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if !confirm("Delete this folder? All versions within it will be permanently lost.") {
			fmt.Println("Cancelled")
			return nil
		}

		result, err := commands.NewDeleteFolderCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var folderDupCmd = &cobra.Command{
	Use:   "dup <folder-id>",
	Short: "Duplicate a folder and all its versions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewDuplicateFolderCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var folderLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List folders by category or name search",
	Long: `List folders filtered by category and/or a case-insensitive name
search. An active search overrides the category filter.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if folderCategory == "" && folderQuery == "" {
			return fmt.Errorf("either --category or --query is required")
		}

		listings, err := commands.NewListFoldersCommand(GetStore(), folderCategory, folderQuery).Execute(ctx)
		if err != nil {
			return err
		}
		for _, l := range listings {
			fmt.Printf("%s %s  %s %s\n",
				badge(l.Badge), l.Folder.Name,
				dimStyle.Render(fmt.Sprintf("[%s] %d versions", l.Folder.Category, l.Versions)),
				dimStyle.Render(l.Folder.ID))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(folderCmd)
	folderCmd.AddCommand(folderCreateCmd)
	folderCmd.AddCommand(folderRenameCmd)
	folderCmd.AddCommand(folderRmCmd)
	folderCmd.AddCommand(folderDupCmd)
	folderCmd.AddCommand(folderLsCmd)

	folderCreateCmd.Flags().StringVarP(&folderCategory, "category", "c", "", "category the folder belongs to (required)")
	folderCreateCmd.MarkFlagRequired("category")
	folderLsCmd.Flags().StringVarP(&folderCategory, "category", "c", "", "category to list")
	folderLsCmd.Flags().StringVarP(&folderQuery, "query", "q", "", "case-insensitive name search")
}
