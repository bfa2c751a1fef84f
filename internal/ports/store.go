package ports

import "promptvault/internal/domain"

// VersionUpdate is a partial update of a version. Nil fields are left
// unchanged; any applied update refreshes the version's timestamp.
type VersionUpdate struct {
	Name    *string
	Content *string
	Status  *domain.Status
}

// VaultStore owns the canonical dataset and is its sole mutator. Reads are
// immutable snapshots; every mutation applies atomically and returns the
// next full snapshot, so callers never observe a half-applied state.
//
// Operations targeting a missing entity are silent no-ops returning the
// current snapshot, except where an error is documented.
type VaultStore interface {
	// Snapshot returns a deep copy of the full dataset.
	Snapshot() domain.VaultData

	// AddCategory appends a category. No-op if the name is empty or taken.
	AddCategory(name string) domain.VaultData

	// RenameCategory relabels a category and rewrites every folder
	// referencing it. No-op if newName is empty or taken, or oldName is
	// not present.
	RenameCategory(oldName, newName string) domain.VaultData

	// DeleteCategory removes the category, every folder in it, and every
	// version of those folders, in one atomic cascade.
	DeleteCategory(name string) domain.VaultData

	// CreateFolder creates a folder under an existing category.
	// Returns ErrNotFound if the category does not exist.
	CreateFolder(name, category string) (*domain.Folder, domain.VaultData, error)

	// RenameFolder updates the folder's name. No-op on empty name or
	// missing id.
	RenameFolder(id, name string) domain.VaultData

	// DeleteFolder removes the folder and all its versions atomically.
	DeleteFolder(id string) domain.VaultData

	// DuplicateFolder deep-copies the folder and every one of its versions
	// under fresh ids, pointing the copies at the new folder. The copy's
	// name is the original's suffixed with the copy marker. Returns nil if
	// the id is not found.
	DuplicateFolder(id string) (*domain.Folder, domain.VaultData)

	// AddVersion creates a version in the folder, optionally seeded with
	// content, named from the current time, status amber, and prepends it
	// so it sorts first under the freshness tie-break.
	// Returns ErrNotFound if the folder does not exist.
	AddVersion(folderID, content string) (*domain.Version, domain.VaultData, error)

	// UpdateVersion merges the partial update and refreshes the version's
	// timestamp. No-op on missing id.
	UpdateVersion(id string, update VersionUpdate) domain.VaultData

	// DeleteVersion removes the version. No-op on missing id.
	DeleteVersion(id string) domain.VaultData

	// ImportSnapshot validates the dataset's shape and replaces the whole
	// store state atomically. On a validation error nothing is applied.
	ImportSnapshot(data domain.VaultData) error
}
