package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"promptvault/internal/application/commands"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
	Long: `Add, rename, delete, or list categories.

Renaming a category updates every folder under it. Deleting a category
permanently removes all its folders and their versions.

Examples:
  promptvault-cli category add "Sales"
  promptvault-cli category rename "Sales" "Outbound"
  promptvault-cli category rm "Outbound"
  promptvault-cli category ls`,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewAddCategoryCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a category and update its folders",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewRenameCategoryCommand(GetStore(), args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a category, its folders, and their versions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if !confirm(fmt.Sprintf("Delete category %q and all folders within it?", args[0])) {
			fmt.Println("Cancelled")
			return nil
		}

		result, err := commands.NewDeleteCategoryCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var categoryLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		listings, err := commands.NewListCategoriesCommand(GetStore()).Execute(ctx)
		if err != nil {
			return err
		}
		for _, l := range listings {
			fmt.Printf("%s %s\n", l.Name, dimStyle.Render(fmt.Sprintf("(%d folders)", l.Folders)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	categoryCmd.AddCommand(categoryLsCmd)
}
