package ports

import "promptvault/internal/domain"

// Persister durably stores the latest snapshot under a fixed key.
// Save overwrites any prior state; it is called write-through after every
// mutation, so implementations must tolerate frequent small writes.
type Persister interface {
	// Save durably writes the snapshot, replacing the previous one.
	Save(data domain.VaultData) error

	// Load returns the most recently saved snapshot. When no prior state
	// exists, or the stored payload cannot be decoded, it returns the
	// built-in seed dataset rather than an error: persistence is
	// best-effort and never blocks startup.
	Load() (domain.VaultData, error)

	Close() error
}
