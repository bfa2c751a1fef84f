package commands

import (
	"context"
	"fmt"

	"promptvault/internal/application"
	"promptvault/internal/domain"
	"promptvault/internal/ports"
)

// FolderResult contains the outcome of a folder mutation
type FolderResult struct {
	Folder   *domain.Folder
	Snapshot domain.VaultData
	Message  string
}

// CreateFolderCommand creates a folder under an existing category
type CreateFolderCommand struct {
	store    ports.VaultStore
	Name     string
	Category string
}

// NewCreateFolderCommand creates a new CreateFolderCommand
func NewCreateFolderCommand(store ports.VaultStore, name, category string) *CreateFolderCommand {
	return &CreateFolderCommand{store: store, Name: name, Category: category}
}

// Validate checks if the create operation is valid
func (c *CreateFolderCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	return application.ValidateRequired("category", c.Category)
}

// Execute runs the create folder command
func (c *CreateFolderCommand) Execute(ctx context.Context) (*FolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folder, snapshot, err := c.store.CreateFolder(c.Name, c.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return &FolderResult{
		Folder:   folder,
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Created folder %s in %s (%s)", folder.Name, folder.Category, folder.ID),
	}, nil
}

// RenameFolderCommand updates a folder's name
type RenameFolderCommand struct {
	store   ports.VaultStore
	ID      string
	NewName string
}

// NewRenameFolderCommand creates a new RenameFolderCommand
func NewRenameFolderCommand(store ports.VaultStore, id, newName string) *RenameFolderCommand {
	return &RenameFolderCommand{store: store, ID: id, NewName: newName}
}

// Validate checks if the rename operation is valid
func (c *RenameFolderCommand) Validate() error {
	if err := application.ValidateRequired("folderID", c.ID); err != nil {
		return err
	}
	return application.ValidateRequired("newName", c.NewName)
}

// Execute runs the rename folder command
func (c *RenameFolderCommand) Execute(ctx context.Context) (*FolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	snapshot := c.store.RenameFolder(c.ID, c.NewName)
	return &FolderResult{
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Renamed folder %s to %s", c.ID, c.NewName),
	}, nil
}

// DeleteFolderCommand removes a folder and every version inside it
type DeleteFolderCommand struct {
	store ports.VaultStore
	ID    string
}

// NewDeleteFolderCommand creates a new DeleteFolderCommand
func NewDeleteFolderCommand(store ports.VaultStore, id string) *DeleteFolderCommand {
	return &DeleteFolderCommand{store: store, ID: id}
}

// Validate checks if the delete operation is valid
func (c *DeleteFolderCommand) Validate() error {
	return application.ValidateRequired("folderID", c.ID)
}

// Execute runs the delete folder command
func (c *DeleteFolderCommand) Execute(ctx context.Context) (*FolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	snapshot := c.store.DeleteFolder(c.ID)
	return &FolderResult{
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Deleted folder %s", c.ID),
	}, nil
}

// DuplicateFolderCommand deep-copies a folder and all of its versions
type DuplicateFolderCommand struct {
	store ports.VaultStore
	ID    string
}

// NewDuplicateFolderCommand creates a new DuplicateFolderCommand
func NewDuplicateFolderCommand(store ports.VaultStore, id string) *DuplicateFolderCommand {
	return &DuplicateFolderCommand{store: store, ID: id}
}

// Validate checks if the duplicate operation is valid
func (c *DuplicateFolderCommand) Validate() error {
	return application.ValidateRequired("folderID", c.ID)
}

// Execute runs the duplicate folder command
func (c *DuplicateFolderCommand) Execute(ctx context.Context) (*FolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dup, snapshot := c.store.DuplicateFolder(c.ID)
	if dup == nil {
		return nil, fmt.Errorf("folder %q: %w", c.ID, application.ErrNotFound)
	}

	return &FolderResult{
		Folder:   dup,
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Duplicated folder as %s (%s)", dup.Name, dup.ID),
	}, nil
}
