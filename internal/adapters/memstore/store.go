// Package memstore implements the canonical in-memory vault store.
//
// The store is the sole owner and mutator of the dataset. Every mutation
// runs under one lock, applies atomically, writes through to the persister,
// and hands back a deep-copied snapshot, so callers never alias or observe
// intermediate state.
package memstore

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"promptvault/internal/application"
	"promptvault/internal/domain"
	"promptvault/internal/ports"
)

// CopySuffix is appended to a duplicated folder's name to signal provenance.
const CopySuffix = " (Copy)"

// Store implements ports.VaultStore.
type Store struct {
	mu   sync.Mutex
	data domain.VaultData

	// Secondary indexes over the canonical slices. Lookups are O(1) and
	// cascades discover their targets in O(affected rows); only the final
	// slice compaction walks the full collection.
	folderIdx   map[string]int      // folder id → position in data.Folders
	versionIdx  map[string]int      // version id → position in data.Versions
	verByFolder map[string][]string // folder id → version ids

	persister ports.Persister
	log       *slog.Logger
	now       func() time.Time
}

var _ ports.VaultStore = (*Store)(nil)

// New builds a store seeded from the persister's last saved snapshot.
func New(p ports.Persister, log *slog.Logger) (*Store, error) {
	data, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load vault state: %w", err)
	}

	s := &Store{
		data:      data.Clone(),
		persister: p,
		log:       log,
		now:       time.Now,
	}
	s.reindex()
	return s, nil
}

// Snapshot returns a deep copy of the full dataset.
func (s *Store) Snapshot() domain.VaultData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// AddCategory appends a category. Empty or duplicate names are no-ops.
func (s *Store) AddCategory(name string) domain.VaultData {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" || s.data.HasCategory(name) {
		return s.data.Clone()
	}
	s.data.Categories = append(s.data.Categories, name)
	s.persist()
	return s.data.Clone()
}

// RenameCategory relabels a category and rewrites every folder under it.
func (s *Store) RenameCategory(oldName, newName string) domain.VaultData {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newName == "" || s.data.HasCategory(newName) || !s.data.HasCategory(oldName) {
		return s.data.Clone()
	}
	for i, c := range s.data.Categories {
		if c == oldName {
			s.data.Categories[i] = newName
		}
	}
	for i := range s.data.Folders {
		if s.data.Folders[i].Category == oldName {
			s.data.Folders[i].Category = newName
		}
	}
	s.persist()
	return s.data.Clone()
}

// DeleteCategory removes the category and cascades to its folders and
// their versions in one atomic step.
func (s *Store) DeleteCategory(name string) domain.VaultData {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.data.HasCategory(name) {
		return s.data.Clone()
	}

	folderGone := make(map[string]bool)
	versionGone := make(map[string]bool)
	for _, f := range s.data.Folders {
		if f.Category == name {
			folderGone[f.ID] = true
			for _, vid := range s.verByFolder[f.ID] {
				versionGone[vid] = true
			}
		}
	}

	categories := s.data.Categories[:0]
	for _, c := range s.data.Categories {
		if c != name {
			categories = append(categories, c)
		}
	}
	s.data.Categories = categories
	s.removeEntities(folderGone, versionGone)
	s.persist()
	return s.data.Clone()
}

// CreateFolder creates a folder under an existing category.
func (s *Store) CreateFolder(name, category string) (*domain.Folder, domain.VaultData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return nil, s.data.Clone(), &application.ValidationError{Field: "name", Message: "name is required"}
	}
	if !s.data.HasCategory(category) {
		return nil, s.data.Clone(), fmt.Errorf("category %q: %w", category, application.ErrNotFound)
	}

	folder := domain.Folder{
		ID:        domain.NewID(),
		Name:      name,
		Category:  category,
		CreatedAt: s.now().UnixMilli(),
	}
	s.data.Folders = append(s.data.Folders, folder)
	s.folderIdx[folder.ID] = len(s.data.Folders) - 1
	s.persist()
	return &folder, s.data.Clone(), nil
}

// RenameFolder updates the folder's name in place.
func (s *Store) RenameFolder(id, name string) domain.VaultData {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.folderIdx[id]
	if !ok || name == "" {
		return s.data.Clone()
	}
	s.data.Folders[idx].Name = name
	s.persist()
	return s.data.Clone()
}

// DeleteFolder removes the folder and all versions referencing it.
func (s *Store) DeleteFolder(id string) domain.VaultData {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folderIdx[id]; !ok {
		return s.data.Clone()
	}

	versionGone := make(map[string]bool)
	for _, vid := range s.verByFolder[id] {
		versionGone[vid] = true
	}
	s.removeEntities(map[string]bool{id: true}, versionGone)
	s.persist()
	return s.data.Clone()
}

// DuplicateFolder deep-copies the folder and its versions under fresh ids.
// Copied versions keep their name, content, status and timestamp but point
// at the new folder, so mutating one side never touches the other.
func (s *Store) DuplicateFolder(id string) (*domain.Folder, domain.VaultData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.folderIdx[id]
	if !ok {
		return nil, s.data.Clone()
	}

	original := s.data.Folders[idx]
	dup := original
	dup.ID = domain.NewID()
	dup.Name = original.Name + CopySuffix

	s.data.Folders = append(s.data.Folders, dup)
	s.folderIdx[dup.ID] = len(s.data.Folders) - 1

	// Walk the slice rather than the index so copies keep the originals'
	// relative order.
	for _, v := range s.data.Versions[:len(s.data.Versions):len(s.data.Versions)] {
		if v.FolderID != id {
			continue
		}
		cp := v
		cp.ID = domain.NewID()
		cp.FolderID = dup.ID
		s.data.Versions = append(s.data.Versions, cp)
		s.versionIdx[cp.ID] = len(s.data.Versions) - 1
		s.verByFolder[dup.ID] = append(s.verByFolder[dup.ID], cp.ID)
	}

	s.persist()
	return &dup, s.data.Clone()
}

// AddVersion creates a version in the folder, optionally seeded with
// content (forking an existing draft passes its content here). The new
// version is prepended so it sorts first under the freshness tie-break.
func (s *Store) AddVersion(folderID, content string) (*domain.Version, domain.VaultData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folderIdx[folderID]; !ok {
		return nil, s.data.Clone(), fmt.Errorf("folder %q: %w", folderID, application.ErrNotFound)
	}

	now := s.now()
	v := domain.Version{
		ID:        domain.NewID(),
		FolderID:  folderID,
		Name:      "Version " + now.Format("15:04"),
		Content:   content,
		Status:    domain.StatusAmber,
		Timestamp: now.UnixMilli(),
	}
	s.data.Versions = append([]domain.Version{v}, s.data.Versions...)
	s.reindexVersions()
	s.persist()
	return &v, s.data.Clone(), nil
}

// UpdateVersion merges the partial update and refreshes the timestamp.
func (s *Store) UpdateVersion(id string, update ports.VersionUpdate) domain.VaultData {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.versionIdx[id]
	if !ok {
		return s.data.Clone()
	}

	v := &s.data.Versions[idx]
	if update.Name != nil {
		v.Name = *update.Name
	}
	if update.Content != nil {
		v.Content = *update.Content
	}
	if update.Status != nil {
		v.Status = *update.Status
	}
	v.Timestamp = s.now().UnixMilli()
	s.persist()
	return s.data.Clone()
}

// DeleteVersion removes a single version.
func (s *Store) DeleteVersion(id string) domain.VaultData {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.versionIdx[id]; !ok {
		return s.data.Clone()
	}
	s.removeEntities(nil, map[string]bool{id: true})
	s.persist()
	return s.data.Clone()
}

// ImportSnapshot replaces the entire store state after shape validation.
func (s *Store) ImportSnapshot(data domain.VaultData) error {
	if !data.HasCollections() {
		return &application.ValidationError{
			Field:   "data",
			Message: "backup must contain categories, folders and versions",
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data.Clone()
	s.reindex()
	s.persist()
	return nil
}

// removeEntities compacts the folder and version slices in a single pass
// each, dropping the given ids, and rebuilds the affected indexes.
// Caller holds the lock.
func (s *Store) removeEntities(folderGone, versionGone map[string]bool) {
	if len(folderGone) > 0 {
		folders := s.data.Folders[:0]
		for _, f := range s.data.Folders {
			if !folderGone[f.ID] {
				folders = append(folders, f)
			}
		}
		s.data.Folders = folders
	}
	if len(versionGone) > 0 {
		versions := s.data.Versions[:0]
		for _, v := range s.data.Versions {
			if !versionGone[v.ID] {
				versions = append(versions, v)
			}
		}
		s.data.Versions = versions
	}
	s.reindex()
}

// persist writes through to the persister. Failures are logged and
// swallowed: a full disk must not break the mutation that just applied.
// Caller holds the lock.
func (s *Store) persist() {
	if err := s.persister.Save(s.data.Clone()); err != nil {
		s.log.Warn("failed to persist vault state", "error", err)
	}
}

// reindex rebuilds all secondary indexes. Caller holds the lock.
func (s *Store) reindex() {
	s.folderIdx = make(map[string]int, len(s.data.Folders))
	for i, f := range s.data.Folders {
		s.folderIdx[f.ID] = i
	}
	s.reindexVersions()
}

func (s *Store) reindexVersions() {
	s.versionIdx = make(map[string]int, len(s.data.Versions))
	s.verByFolder = make(map[string][]string, len(s.data.Folders))
	for i, v := range s.data.Versions {
		s.versionIdx[v.ID] = i
		s.verByFolder[v.FolderID] = append(s.verByFolder[v.FolderID], v.ID)
	}
}
