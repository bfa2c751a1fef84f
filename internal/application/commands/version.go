package commands

import (
	"context"
	"fmt"

	"promptvault/internal/application"
	"promptvault/internal/domain"
	"promptvault/internal/ports"
)

// VersionResult contains the outcome of a version mutation
type VersionResult struct {
	Version  *domain.Version
	Snapshot domain.VaultData
	Message  string
}

// AddVersionCommand creates a fresh version in a folder. Content may seed
// the draft; forking passes the source version's content here.
type AddVersionCommand struct {
	store    ports.VaultStore
	FolderID string
	Content  string
}

// NewAddVersionCommand creates a new AddVersionCommand
func NewAddVersionCommand(store ports.VaultStore, folderID, content string) *AddVersionCommand {
	return &AddVersionCommand{store: store, FolderID: folderID, Content: content}
}

// Validate checks if the add operation is valid
func (c *AddVersionCommand) Validate() error {
	return application.ValidateRequired("folderID", c.FolderID)
}

// Execute runs the add version command
func (c *AddVersionCommand) Execute(ctx context.Context) (*VersionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	version, snapshot, err := c.store.AddVersion(c.FolderID, c.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to add version: %w", err)
	}

	return &VersionResult{
		Version:  version,
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Added %s (%s)", version.Name, version.ID),
	}, nil
}

// ForkVersionCommand creates a new version seeded with an existing
// version's content, in the same folder.
type ForkVersionCommand struct {
	store ports.VaultStore
	ID    string
}

// NewForkVersionCommand creates a new ForkVersionCommand
func NewForkVersionCommand(store ports.VaultStore, id string) *ForkVersionCommand {
	return &ForkVersionCommand{store: store, ID: id}
}

// Validate checks if the fork operation is valid
func (c *ForkVersionCommand) Validate() error {
	return application.ValidateRequired("versionID", c.ID)
}

// Execute runs the fork version command
func (c *ForkVersionCommand) Execute(ctx context.Context) (*VersionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	source := c.store.Snapshot().VersionByID(c.ID)
	if source == nil {
		return nil, fmt.Errorf("version %q: %w", c.ID, application.ErrNotFound)
	}

	version, snapshot, err := c.store.AddVersion(source.FolderID, source.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to fork version: %w", err)
	}

	return &VersionResult{
		Version:  version,
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Forked %s into %s (%s)", source.Name, version.Name, version.ID),
	}, nil
}

// UpdateVersionCommand merges a partial update into a version. Unset
// fields are left alone; the version's timestamp always refreshes.
type UpdateVersionCommand struct {
	store   ports.VaultStore
	ID      string
	Name    *string
	Content *string
	Status  *domain.Status
}

// NewUpdateVersionCommand creates a new UpdateVersionCommand
func NewUpdateVersionCommand(store ports.VaultStore, id string) *UpdateVersionCommand {
	return &UpdateVersionCommand{store: store, ID: id}
}

// WithName sets the new name
func (c *UpdateVersionCommand) WithName(name string) *UpdateVersionCommand {
	c.Name = &name
	return c
}

// WithContent sets the new content
func (c *UpdateVersionCommand) WithContent(content string) *UpdateVersionCommand {
	c.Content = &content
	return c
}

// WithStatus sets the new status
func (c *UpdateVersionCommand) WithStatus(status domain.Status) *UpdateVersionCommand {
	c.Status = &status
	return c
}

// Validate checks if the update operation is valid
func (c *UpdateVersionCommand) Validate() error {
	if err := application.ValidateRequired("versionID", c.ID); err != nil {
		return err
	}
	if c.Status != nil {
		return application.ValidateStatus("status", *c.Status)
	}
	return nil
}

// Execute runs the update version command
func (c *UpdateVersionCommand) Execute(ctx context.Context) (*VersionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	snapshot := c.store.UpdateVersion(c.ID, ports.VersionUpdate{
		Name:    c.Name,
		Content: c.Content,
		Status:  c.Status,
	})
	return &VersionResult{
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Updated version %s", c.ID),
	}, nil
}

// DeleteVersionCommand removes a single version
type DeleteVersionCommand struct {
	store ports.VaultStore
	ID    string
}

// NewDeleteVersionCommand creates a new DeleteVersionCommand
func NewDeleteVersionCommand(store ports.VaultStore, id string) *DeleteVersionCommand {
	return &DeleteVersionCommand{store: store, ID: id}
}

// Validate checks if the delete operation is valid
func (c *DeleteVersionCommand) Validate() error {
	return application.ValidateRequired("versionID", c.ID)
}

// Execute runs the delete version command
func (c *DeleteVersionCommand) Execute(ctx context.Context) (*VersionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	snapshot := c.store.DeleteVersion(c.ID)
	return &VersionResult{
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Deleted version %s", c.ID),
	}, nil
}
