// Package ziparchive encodes the vault to a zip backup and decodes it back.
//
// The archive carries one authoritative entry, vault_backup.json, plus a
// derived Green_Prompts/ directory with one plain-text file per folder that
// has finalized (green) content. Only the authoritative entry is ever read
// back; the derived files exist for humans.
package ziparchive

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"promptvault/internal/application"
	"promptvault/internal/domain"
	"promptvault/internal/ports"
)

const (
	// BackupEntry is the fixed name of the authoritative payload.
	BackupEntry = "vault_backup.json"

	// greenDir is the sub-path holding the derived plain-text exports.
	greenDir = "Green_Prompts"
)

var versionRule = strings.Repeat("=", 40)

// Codec implements ports.ArchiveCodec.
type Codec struct{}

var _ ports.ArchiveCodec = Codec{}

// New returns a ready codec. It has no resources to acquire; requiring it
// at construction time keeps callers from discovering a missing compression
// capability mid-export.
func New() Codec {
	return Codec{}
}

// Encode assembles the backup archive. Any failure returns before bytes
// are handed to the caller, so a partial file is never delivered.
func (Codec) Encode(ctx context.Context, data domain.VaultData) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup payload: %w", err)
	}
	w, err := zw.Create(BackupEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", BackupEntry, err)
	}
	if _, err := w.Write(payload); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", BackupEntry, err)
	}

	for _, folder := range data.Folders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content := greenExport(folder.ID, data.Versions)
		if content == "" {
			continue
		}

		name := fmt.Sprintf("%s/%s_%s.txt", greenDir, Slug(folder.Category), Slug(folder.Name))
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode opens the archive, reads the authoritative payload and validates
// its shape. The returned dataset is exactly what the payload holds.
func (Codec) Decode(ctx context.Context, archive []byte) (domain.VaultData, error) {
	if err := ctx.Err(); err != nil {
		return domain.VaultData{}, err
	}

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return domain.VaultData{}, fmt.Errorf("%w: not a readable zip archive", application.ErrInvalidArchive)
	}

	var entry *zip.File
	for _, f := range zr.File {
		if f.Name == BackupEntry {
			entry = f
			break
		}
	}
	if entry == nil {
		return domain.VaultData{}, fmt.Errorf("%w: %s missing", application.ErrInvalidArchive, BackupEntry)
	}

	rc, err := entry.Open()
	if err != nil {
		return domain.VaultData{}, fmt.Errorf("%w: cannot open %s", application.ErrInvalidArchive, BackupEntry)
	}
	defer rc.Close()

	var data domain.VaultData
	if err := json.NewDecoder(rc).Decode(&data); err != nil {
		return domain.VaultData{}, fmt.Errorf("%w: %s is not valid JSON", application.ErrInvalidArchive, BackupEntry)
	}
	if !data.HasCollections() {
		return domain.VaultData{}, fmt.Errorf("%w: backup must contain categories, folders and versions", application.ErrInvalidArchive)
	}
	return data, nil
}

// ArchiveName returns the date-stamped download name for an export.
func ArchiveName(t time.Time) string {
	return "Vault_Backup_" + t.Format("2006-01-02") + ".zip"
}

// greenExport concatenates a folder's green versions for human reading.
// Folders with no green content produce no file.
func greenExport(folderID string, versions []domain.Version) string {
	var b strings.Builder
	for _, v := range versions {
		if v.FolderID != folderID || v.Status != domain.StatusGreen {
			continue
		}
		fmt.Fprintf(&b, "--- %s ---\n\n%s\n\n%s\n\n", v.Name, v.Content, versionRule)
	}
	return b.String()
}

var slugPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Slug makes a filesystem-safe name: non-alphanumerics become underscores
// and the result is lower-cased.
func Slug(s string) string {
	return strings.ToLower(slugPattern.ReplaceAllString(s, "_"))
}
