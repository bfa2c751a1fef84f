package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"promptvault/internal/adapters/ziparchive"
	"promptvault/internal/application/commands"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Back up the vault to a zip archive",
	Long: `Write the full vault to a date-stamped zip archive.

The archive contains vault_backup.json (the authoritative backup) and a
Green_Prompts/ directory with one readable text file per folder that has
green-status versions.

Examples:
  promptvault-cli export
  promptvault-cli export --out ~/backups`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		path := filepath.Join(exportOut, ziparchive.ArchiveName(time.Now()))
		result, err := commands.NewExportCommand(GetStore(), codec, runner, path).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <archive>",
	Short: "Restore the vault from a zip archive",
	Long: `Replace the entire vault with the contents of a backup archive.

The archive must contain a valid vault_backup.json. An invalid archive
leaves the current vault untouched.

Examples:
  promptvault-cli import Vault_Backup_2026-08-29.zip`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if !confirm("Restore from backup? The current vault will be replaced.") {
			fmt.Println("Cancelled")
			return nil
		}

		result, err := commands.NewImportCommand(GetStore(), codec, runner, args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "directory to write the archive to")
}
