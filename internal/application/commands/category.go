package commands

import (
	"context"
	"fmt"

	"promptvault/internal/application"
	"promptvault/internal/domain"
	"promptvault/internal/ports"
)

// CategoryResult contains the outcome of a category mutation
type CategoryResult struct {
	Snapshot domain.VaultData
	Message  string
}

// AddCategoryCommand appends a new category label
type AddCategoryCommand struct {
	store ports.VaultStore
	Name  string
}

// NewAddCategoryCommand creates a new AddCategoryCommand
func NewAddCategoryCommand(store ports.VaultStore, name string) *AddCategoryCommand {
	return &AddCategoryCommand{store: store, Name: name}
}

// Validate checks if the add operation is valid
func (c *AddCategoryCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the add category command
func (c *AddCategoryCommand) Execute(ctx context.Context) (*CategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	snapshot := c.store.AddCategory(c.Name)
	return &CategoryResult{
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Added category: %s", c.Name),
	}, nil
}

// RenameCategoryCommand relabels a category and its folders
type RenameCategoryCommand struct {
	store   ports.VaultStore
	OldName string
	NewName string
}

// NewRenameCategoryCommand creates a new RenameCategoryCommand
func NewRenameCategoryCommand(store ports.VaultStore, oldName, newName string) *RenameCategoryCommand {
	return &RenameCategoryCommand{store: store, OldName: oldName, NewName: newName}
}

// Validate checks if the rename operation is valid
func (c *RenameCategoryCommand) Validate() error {
	if err := application.ValidateRequired("name", c.OldName); err != nil {
		return err
	}
	return application.ValidateRequired("newName", c.NewName)
}

// Execute runs the rename category command
func (c *RenameCategoryCommand) Execute(ctx context.Context) (*CategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	snapshot := c.store.RenameCategory(c.OldName, c.NewName)
	return &CategoryResult{
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Renamed category %s to %s", c.OldName, c.NewName),
	}, nil
}

// DeleteCategoryCommand removes a category, cascading to its folders and
// their versions
type DeleteCategoryCommand struct {
	store ports.VaultStore
	Name  string
}

// NewDeleteCategoryCommand creates a new DeleteCategoryCommand
func NewDeleteCategoryCommand(store ports.VaultStore, name string) *DeleteCategoryCommand {
	return &DeleteCategoryCommand{store: store, Name: name}
}

// Validate checks if the delete operation is valid
func (c *DeleteCategoryCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the delete category command
func (c *DeleteCategoryCommand) Execute(ctx context.Context) (*CategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	snapshot := c.store.DeleteCategory(c.Name)
	return &CategoryResult{
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Deleted category %s", c.Name),
	}, nil
}
