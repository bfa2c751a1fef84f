package application

import "promptvault/internal/domain"

// Re-export domain types for use by adapters
type (
	VaultData = domain.VaultData
	Folder    = domain.Folder
	Version   = domain.Version
	Status    = domain.Status
	SortMode  = domain.SortMode
)

const (
	StatusGreen = domain.StatusGreen
	StatusAmber = domain.StatusAmber
	StatusRed   = domain.StatusRed
	StatusGray  = domain.StatusGray

	SortByTimestamp = domain.SortByTimestamp
	SortByName      = domain.SortByName
)

// ParseSortMode maps a user-supplied string onto a SortMode, defaulting to
// freshness ordering.
func ParseSortMode(s string) SortMode {
	if s == string(domain.SortByName) {
		return domain.SortByName
	}
	return domain.SortByTimestamp
}
