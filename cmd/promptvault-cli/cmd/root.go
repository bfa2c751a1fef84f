package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"promptvault/internal/adapters/memstore"
	"promptvault/internal/adapters/sqlite"
	"promptvault/internal/adapters/ziparchive"
	"promptvault/internal/application/commands"
	"promptvault/internal/config"
	"promptvault/internal/logging"
	"promptvault/internal/ports"
)

var (
	dataPath  string
	verbose   bool
	assumeYes bool

	store     ports.VaultStore
	codec     ports.ArchiveCodec
	runner    *commands.ArchiveRunner
	persister ports.Persister
)

var rootCmd = &cobra.Command{
	Use:   "promptvault-cli",
	Short: "CLI for managing a prompt vault",
	Long: `promptvault-cli organizes text prompts as versioned drafts grouped
into folders under categories.

It provides commands to manage categories, folders and versions, to
search the vault, and to back it up to (or restore it from) a zip
archive.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		logger := logging.New(os.Stderr, verbose)

		if dataPath == ":memory:" {
			persister = memstore.NewMemoryPersister()
		} else {
			var err error
			persister, err = sqlite.Open(dataPath, logger)
			if err != nil {
				return err
			}
		}

		var err error
		store, err = memstore.New(persister, logger)
		if err != nil {
			return err
		}

		codec = ziparchive.New()
		runner = commands.NewArchiveRunner()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if persister != nil {
			return persister.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", config.DataPath(), "path to the vault database (:memory: for an ephemeral vault)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompts")
}

// GetStore returns the initialized vault store
func GetStore() ports.VaultStore {
	return store
}
