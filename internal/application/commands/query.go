package commands

import (
	"context"
	"fmt"

	"promptvault/internal/application"
	"promptvault/internal/domain"
	"promptvault/internal/ports"
)

// FolderListing pairs a folder with its derived display attributes.
type FolderListing struct {
	Folder   domain.Folder
	Badge    domain.Status
	Versions int
}

// ListCategoriesCommand lists all categories with their folder counts
type ListCategoriesCommand struct {
	store ports.VaultStore
}

// CategoryListing pairs a category with its folder count.
type CategoryListing struct {
	Name    string
	Folders int
}

// NewListCategoriesCommand creates a new ListCategoriesCommand
func NewListCategoriesCommand(store ports.VaultStore) *ListCategoriesCommand {
	return &ListCategoriesCommand{store: store}
}

// Execute runs the list categories command
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]CategoryListing, error) {
	data := c.store.Snapshot()
	out := make([]CategoryListing, 0, len(data.Categories))
	for _, cat := range data.Categories {
		out = append(out, CategoryListing{
			Name:    cat,
			Folders: domain.FolderCount(data.Folders, cat),
		})
	}
	return out, nil
}

// ListFoldersCommand projects the folders matching a category and/or a
// free-text query, with badge and version count per folder. An active
// query overrides the category filter.
type ListFoldersCommand struct {
	store    ports.VaultStore
	Category string
	Query    string
}

// NewListFoldersCommand creates a new ListFoldersCommand
func NewListFoldersCommand(store ports.VaultStore, category, query string) *ListFoldersCommand {
	return &ListFoldersCommand{store: store, Category: category, Query: query}
}

// Execute runs the list folders command
func (c *ListFoldersCommand) Execute(ctx context.Context) ([]FolderListing, error) {
	data := c.store.Snapshot()
	folders := domain.FilterFolders(data.Folders, c.Category, c.Query)

	out := make([]FolderListing, 0, len(folders))
	for _, f := range folders {
		out = append(out, FolderListing{
			Folder:   f,
			Badge:    domain.FolderStatus(f.ID, data.Versions),
			Versions: domain.VersionCount(data.Versions, f.ID),
		})
	}
	return out, nil
}

// ListVersionsCommand lists a folder's versions under a sort mode
type ListVersionsCommand struct {
	store    ports.VaultStore
	FolderID string
	Mode     domain.SortMode
}

// NewListVersionsCommand creates a new ListVersionsCommand
func NewListVersionsCommand(store ports.VaultStore, folderID string, mode domain.SortMode) *ListVersionsCommand {
	return &ListVersionsCommand{store: store, FolderID: folderID, Mode: mode}
}

// Validate checks if the list operation is valid
func (c *ListVersionsCommand) Validate() error {
	return application.ValidateRequired("folderID", c.FolderID)
}

// Execute runs the list versions command
func (c *ListVersionsCommand) Execute(ctx context.Context) ([]domain.Version, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	data := c.store.Snapshot()
	if data.FolderByID(c.FolderID) == nil {
		return nil, fmt.Errorf("folder %q: %w", c.FolderID, application.ErrNotFound)
	}
	return domain.VersionsForFolder(data.Versions, c.FolderID, c.Mode), nil
}

// ShowVersionCommand fetches one version by id
type ShowVersionCommand struct {
	store ports.VaultStore
	ID    string
}

// NewShowVersionCommand creates a new ShowVersionCommand
func NewShowVersionCommand(store ports.VaultStore, id string) *ShowVersionCommand {
	return &ShowVersionCommand{store: store, ID: id}
}

// Validate checks if the show operation is valid
func (c *ShowVersionCommand) Validate() error {
	return application.ValidateRequired("versionID", c.ID)
}

// Execute runs the show version command
func (c *ShowVersionCommand) Execute(ctx context.Context) (*domain.Version, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	v := c.store.Snapshot().VersionByID(c.ID)
	if v == nil {
		return nil, fmt.Errorf("version %q: %w", c.ID, application.ErrNotFound)
	}
	return v, nil
}
