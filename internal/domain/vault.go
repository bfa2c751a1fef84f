package domain

// Status is the three-valued readiness marker carried by every version.
type Status string

const (
	StatusGreen Status = "green"
	StatusAmber Status = "amber"
	StatusRed   Status = "red"

	// StatusGray is never stored on a version; it is the folder badge when
	// no version is green or amber.
	StatusGray Status = "gray"
)

// Valid reports whether s is one of the three storable statuses.
func (s Status) Valid() bool {
	return s == StatusGreen || s == StatusAmber || s == StatusRed
}

// SortMode selects the ordering of a folder's version listing.
type SortMode string

const (
	SortByTimestamp SortMode = "timestamp" // newest first
	SortByName      SortMode = "name"      // lexicographic, locale-aware
)

// Folder groups versions under one category. Categories are plain string
// labels; a folder's Category must always name an existing one.
type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	CreatedAt int64  `json:"createdAt"`
}

// Version is one revision of text content belonging to exactly one folder.
// Timestamp is milliseconds since epoch and refreshes on every mutation.
type Version struct {
	ID        string `json:"id"`
	FolderID  string `json:"folderId"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Status    Status `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// VaultData is the full dataset: the snapshot shape exchanged with the
// persister and the archive codec, and the JSON shape of vault_backup.json.
type VaultData struct {
	Categories []string  `json:"categories"`
	Folders    []Folder  `json:"folders"`
	Versions   []Version `json:"versions"`
}

// Clone returns a deep copy sharing no slices with the receiver.
func (d VaultData) Clone() VaultData {
	c := VaultData{
		Categories: make([]string, len(d.Categories)),
		Folders:    make([]Folder, len(d.Folders)),
		Versions:   make([]Version, len(d.Versions)),
	}
	copy(c.Categories, d.Categories)
	copy(c.Folders, d.Folders)
	copy(c.Versions, d.Versions)
	return c
}

// HasCollections reports whether all three top-level collections are
// present (non-nil). Imports are rejected when any is missing.
func (d VaultData) HasCollections() bool {
	return d.Categories != nil && d.Folders != nil && d.Versions != nil
}

// HasCategory reports whether name is in the category set.
func (d VaultData) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// FolderByID returns the folder with the given id, or nil.
func (d VaultData) FolderByID(id string) *Folder {
	for i := range d.Folders {
		if d.Folders[i].ID == id {
			return &d.Folders[i]
		}
	}
	return nil
}

// VersionByID returns the version with the given id, or nil.
func (d VaultData) VersionByID(id string) *Version {
	for i := range d.Versions {
		if d.Versions[i].ID == id {
			return &d.Versions[i]
		}
	}
	return nil
}
