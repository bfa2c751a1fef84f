package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"promptvault/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search folders by name",
	Long: `Search all folders by a case-insensitive name match, across every
category.

Examples:
  promptvault-cli search outreach`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		listings, err := commands.NewListFoldersCommand(GetStore(), "", args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		if len(listings) == 0 {
			fmt.Println("No results.")
			return nil
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
	rootCmd.AddCommand(searchCmd)
}
