package config

import "os"

const DefaultDataPath = "~/.promptvault/vault.db"

// DataPath returns the vault database path from the PROMPTVAULT_DATA env
// var, falling back to DefaultDataPath.
func DataPath() string {
	if env := os.Getenv("PROMPTVAULT_DATA"); env != "" {
		return env
	}
	return DefaultDataPath
}
