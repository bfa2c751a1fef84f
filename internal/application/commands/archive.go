package commands

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"promptvault/internal/application"
	"promptvault/internal/domain"
	"promptvault/internal/ports"
)

// ArchiveRunner serializes archive operations: while an export or import
// is in flight a second one is rejected with ErrBusy. There is no queue
// and no cancellation; a failed operation simply reports failure.
type ArchiveRunner struct {
	busy atomic.Bool
}

// NewArchiveRunner creates a new ArchiveRunner
func NewArchiveRunner() *ArchiveRunner {
	return &ArchiveRunner{}
}

func (r *ArchiveRunner) begin() error {
	if !r.busy.CompareAndSwap(false, true) {
		return application.ErrBusy
	}
	return nil
}

func (r *ArchiveRunner) end() {
	r.busy.Store(false)
}

// ExportResult contains the outcome of an export
type ExportResult struct {
	Path    string
	Size    int
	Message string
}

// ExportCommand snapshots the vault, encodes the backup archive and
// writes it to Path. Nothing is written if encoding fails.
type ExportCommand struct {
	store  ports.VaultStore
	codec  ports.ArchiveCodec
	runner *ArchiveRunner
	Path   string
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(store ports.VaultStore, codec ports.ArchiveCodec, runner *ArchiveRunner, path string) *ExportCommand {
	return &ExportCommand{store: store, codec: codec, runner: runner, Path: path}
}

// Validate checks if the export operation is valid
func (c *ExportCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.runner.begin(); err != nil {
		return nil, err
	}
	defer c.runner.end()

	archive, err := c.codec.Encode(ctx, c.store.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}
	if err := os.WriteFile(c.Path, archive, 0644); err != nil {
		return nil, fmt.Errorf("failed to write archive: %w", err)
	}

	return &ExportResult{
		Path:    c.Path,
		Size:    len(archive),
		Message: fmt.Sprintf("Exported vault to %s (%d bytes)", c.Path, len(archive)),
	}, nil
}

// ImportResult contains the outcome of an import
type ImportResult struct {
	Snapshot domain.VaultData
	Message  string
}

// ImportCommand reads a backup archive, validates it and replaces the
// vault's state. A failure at any step leaves the live dataset untouched.
type ImportCommand struct {
	store  ports.VaultStore
	codec  ports.ArchiveCodec
	runner *ArchiveRunner
	Path   string
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(store ports.VaultStore, codec ports.ArchiveCodec, runner *ArchiveRunner, path string) *ImportCommand {
	return &ImportCommand{store: store, codec: codec, runner: runner, Path: path}
}

// Validate checks if the import operation is valid
func (c *ImportCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.runner.begin(); err != nil {
		return nil, err
	}
	defer c.runner.end()

	archive, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	data, err := c.codec.Decode(ctx, archive)
	if err != nil {
		return nil, fmt.Errorf("failed to restore backup: %w", err)
	}
	if err := c.store.ImportSnapshot(data); err != nil {
		return nil, fmt.Errorf("failed to restore backup: %w", err)
	}

	return &ImportResult{
		Snapshot: c.store.Snapshot(),
		Message:  fmt.Sprintf("Vault restored from %s", c.Path),
	}, nil
}
