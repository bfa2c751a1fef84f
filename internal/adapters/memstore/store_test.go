package memstore

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"promptvault/internal/application"
	"promptvault/internal/domain"
	"promptvault/internal/ports"
)

func newTestStore(t *testing.T) (*Store, *MemoryPersister) {
	t.Helper()
	p := NewMemoryPersister()
	s, err := New(p, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, p
}

func TestNewLoadsSeedData(t *testing.T) {
	s, _ := newTestStore(t)

	data := s.Snapshot()
	if !data.HasCategory("Sales") {
		t.Errorf("seed data should contain Sales")
	}
	if len(data.Folders) != 3 || len(data.Versions) != 2 {
		t.Errorf("got %d folders, %d versions; want 3, 2", len(data.Folders), len(data.Versions))
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s, _ := newTestStore(t)

	snap := s.Snapshot()
	snap.Categories[0] = "Mutated"
	snap.Folders[0].Name = "Mutated"

	if s.Snapshot().Categories[0] == "Mutated" {
		t.Errorf("snapshot aliases canonical categories")
	}
	if s.Snapshot().Folders[0].Name == "Mutated" {
		t.Errorf("snapshot aliases canonical folders")
	}
}

func TestAddCategory(t *testing.T) {
	tests := []struct {
		name      string
		add       string
		wantCount int
	}{
		{name: "new category appends", add: "Legal", wantCount: 5},
		{name: "duplicate is a no-op", add: "Sales", wantCount: 4},
		{name: "empty is a no-op", add: "", wantCount: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			got := s.AddCategory(tt.add)
			if len(got.Categories) != tt.wantCount {
				t.Errorf("got %d categories, want %d", len(got.Categories), tt.wantCount)
			}
		})
	}
}

func TestRenameCategoryPropagatesToFolders(t *testing.T) {
	s, _ := newTestStore(t)

	got := s.RenameCategory("Sales", "Outbound")

	if got.HasCategory("Sales") || !got.HasCategory("Outbound") {
		t.Fatalf("category set not renamed: %v", got.Categories)
	}
	for _, f := range got.Folders {
		if f.Category == "Sales" {
			t.Errorf("folder %s still references old category", f.ID)
		}
	}
	renamed := 0
	for _, f := range got.Folders {
		if f.Category == "Outbound" {
			renamed++
		}
	}
	if renamed != 2 {
		t.Errorf("%d folders under Outbound, want 2", renamed)
	}
}

func TestRenameCategoryNoOps(t *testing.T) {
	tests := []struct {
		name    string
		oldName string
		newName string
	}{
		{name: "collision with existing", oldName: "Sales", newName: "Creative"},
		{name: "empty new name", oldName: "Sales", newName: ""},
		{name: "old name not found", oldName: "Nope", newName: "Fresh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			before := s.Snapshot()
			after := s.RenameCategory(tt.oldName, tt.newName)
			if len(after.Categories) != len(before.Categories) || !after.HasCategory("Sales") {
				t.Errorf("state changed on what should be a no-op")
			}
		})
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	s, _ := newTestStore(t)

	got := s.DeleteCategory("Sales")

	if got.HasCategory("Sales") {
		t.Fatalf("category still present")
	}
	for _, f := range got.Folders {
		if f.Category == "Sales" {
			t.Errorf("folder %s survived the cascade", f.ID)
		}
	}
	// Every remaining version must belong to a surviving folder.
	for _, v := range got.Versions {
		if got.FolderByID(v.FolderID) == nil {
			t.Errorf("version %s is orphaned", v.ID)
		}
	}
	// The seed's two versions lived under Sales folders.
	if len(got.Versions) != 0 {
		t.Errorf("%d versions survived, want 0", len(got.Versions))
	}
}

func TestDeleteCategoryLeavesOthersAlone(t *testing.T) {
	s, _ := newTestStore(t)
	folder, _, err := s.CreateFolder("Test", "Sales")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	got := s.DeleteCategory("Sales")

	if got.FolderByID(folder.ID) != nil {
		t.Errorf("folder created under deleted category survived")
	}
	if !got.HasCategory("Creative") {
		t.Errorf("unrelated category removed")
	}
	// Blog Post Gen had no versions; the version set only loses Sales content.
	for _, f := range got.Folders {
		if f.Category != "Creative" {
			t.Errorf("unexpected surviving folder %s under %s", f.ID, f.Category)
		}
	}
}

func TestDeleteCategoryNotFoundIsNoOp(t *testing.T) {
	s, p := newTestStore(t)
	saves := p.Saves()

	got := s.DeleteCategory("Nope")

	if len(got.Folders) != 3 {
		t.Errorf("folders changed")
	}
	if p.Saves() != saves {
		t.Errorf("no-op should not persist")
	}
}

func TestCreateFolder(t *testing.T) {
	s, _ := newTestStore(t)

	folder, got, err := s.CreateFolder("Test", "Sales")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if folder.ID == "" || folder.CreatedAt == 0 {
		t.Errorf("folder missing id or createdAt: %+v", folder)
	}
	if got.FolderByID(folder.ID) == nil {
		t.Errorf("folder not in snapshot")
	}
}

func TestCreateFolderUnknownCategory(t *testing.T) {
	s, _ := newTestStore(t)

	_, _, err := s.CreateFolder("Test", "Nope")
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestRenameFolder(t *testing.T) {
	s, _ := newTestStore(t)

	got := s.RenameFolder("f1", "Warm Outreach")
	if got.FolderByID("f1").Name != "Warm Outreach" {
		t.Errorf("folder not renamed")
	}

	got = s.RenameFolder("f1", "")
	if got.FolderByID("f1").Name != "Warm Outreach" {
		t.Errorf("empty rename should be a no-op")
	}

	got = s.RenameFolder("nope", "X")
	if len(got.Folders) != 3 {
		t.Errorf("unknown id should be a no-op")
	}
}

func TestDeleteFolderCascades(t *testing.T) {
	s, _ := newTestStore(t)

	got := s.DeleteFolder("f1")

	if got.FolderByID("f1") != nil {
		t.Fatalf("folder still present")
	}
	for _, v := range got.Versions {
		if v.FolderID == "f1" {
			t.Errorf("version %s survived folder deletion", v.ID)
		}
	}
}

func TestDuplicateFolder(t *testing.T) {
	s, _ := newTestStore(t)

	dup, got := s.DuplicateFolder("f1")
	if dup == nil {
		t.Fatal("duplicate returned nil")
	}

	if dup.ID == "f1" {
		t.Errorf("duplicate shares the source id")
	}
	if dup.Name != "Cold Outreach (Copy)" {
		t.Errorf("got name %q, want copy marker suffix", dup.Name)
	}
	if dup.Category != "Sales" {
		t.Errorf("duplicate lost its category")
	}

	srcVersions := 0
	dupVersions := 0
	for _, v := range got.Versions {
		switch v.FolderID {
		case "f1":
			srcVersions++
		case dup.ID:
			dupVersions++
			if v.ID == "v1" || v.ID == "v2" {
				t.Errorf("copied version kept a source id")
			}
		}
	}
	if srcVersions != 2 || dupVersions != 2 {
		t.Errorf("got %d source / %d copied versions, want 2 / 2", srcVersions, dupVersions)
	}
}

func TestDuplicateFolderIsDeepCopy(t *testing.T) {
	s, _ := newTestStore(t)

	dup, got := s.DuplicateFolder("f1")

	// Mutate every copied version; the source's content must not move.
	for _, v := range got.Versions {
		if v.FolderID == dup.ID {
			s.UpdateVersion(v.ID, ports.VersionUpdate{Content: strPtr("changed")})
		}
	}

	final := s.Snapshot()
	if final.VersionByID("v1").Content == "changed" || final.VersionByID("v2").Content == "changed" {
		t.Errorf("mutating the duplicate changed the source")
	}
}

func TestDuplicateFolderNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	dup, got := s.DuplicateFolder("nope")
	if dup != nil {
		t.Errorf("got a folder for an unknown id")
	}
	if len(got.Folders) != 3 {
		t.Errorf("state changed on a no-op")
	}
}

func TestAddVersion(t *testing.T) {
	s, _ := newTestStore(t)
	s.now = func() time.Time { return time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC) }

	v, got, err := s.AddVersion("f1", "seeded")
	if err != nil {
		t.Fatalf("AddVersion: %v", err)
	}

	if v.Name != "Version 09:30" {
		t.Errorf("got name %q, want time-derived name", v.Name)
	}
	if v.Status != domain.StatusAmber {
		t.Errorf("new versions must start amber, got %s", v.Status)
	}
	if v.Content != "seeded" {
		t.Errorf("seed content lost")
	}
	if got.Versions[0].ID != v.ID {
		t.Errorf("new version must be prepended")
	}
}

func TestAddVersionUnknownFolder(t *testing.T) {
	s, _ := newTestStore(t)
	_, _, err := s.AddVersion("nope", "")
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateVersionMergesAndRefreshesTimestamp(t *testing.T) {
	s, _ := newTestStore(t)
	fixed := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	status := domain.StatusGreen
	got := s.UpdateVersion("v1", ports.VersionUpdate{Status: &status})

	v := got.VersionByID("v1")
	if v.Status != domain.StatusGreen {
		t.Errorf("status not updated")
	}
	if v.Name != "Initial Draft" || v.Content == "" {
		t.Errorf("unset fields must be left alone")
	}
	if v.Timestamp != fixed.UnixMilli() {
		t.Errorf("timestamp not refreshed: got %d", v.Timestamp)
	}
}

func TestUpdateVersionNotFoundIsNoOp(t *testing.T) {
	s, p := newTestStore(t)
	saves := p.Saves()

	s.UpdateVersion("nope", ports.VersionUpdate{Name: strPtr("X")})

	if p.Saves() != saves {
		t.Errorf("no-op should not persist")
	}
}

func TestDeleteVersion(t *testing.T) {
	s, _ := newTestStore(t)

	got := s.DeleteVersion("v1")
	if got.VersionByID("v1") != nil {
		t.Errorf("version still present")
	}
	if len(got.Versions) != 1 {
		t.Errorf("got %d versions, want 1", len(got.Versions))
	}
}

func TestImportSnapshot(t *testing.T) {
	s, _ := newTestStore(t)

	incoming := domain.VaultData{
		Categories: []string{"Imported"},
		Folders:    []domain.Folder{{ID: "x", Name: "X", Category: "Imported"}},
		Versions:   []domain.Version{},
	}
	if err := s.ImportSnapshot(incoming); err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}

	got := s.Snapshot()
	if !got.HasCategory("Imported") || got.HasCategory("Sales") {
		t.Errorf("state not replaced: %v", got.Categories)
	}

	// Post-import mutations must work against rebuilt indexes.
	after := s.DeleteFolder("x")
	if after.FolderByID("x") != nil {
		t.Errorf("index not rebuilt after import")
	}
}

func TestImportSnapshotRejectsBadShape(t *testing.T) {
	tests := []struct {
		name string
		data domain.VaultData
	}{
		{name: "missing categories", data: domain.VaultData{Folders: []domain.Folder{}, Versions: []domain.Version{}}},
		{name: "missing folders", data: domain.VaultData{Categories: []string{}, Versions: []domain.Version{}}},
		{name: "missing versions", data: domain.VaultData{Categories: []string{}, Folders: []domain.Folder{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			before := s.Snapshot()

			err := s.ImportSnapshot(tt.data)

			var vErr *application.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			after := s.Snapshot()
			if len(after.Categories) != len(before.Categories) || len(after.Folders) != len(before.Folders) {
				t.Errorf("rejected import mutated state")
			}
		})
	}
}

func TestWriteThroughPersistence(t *testing.T) {
	s, p := newTestStore(t)
	start := p.Saves()

	s.AddCategory("Legal")
	s.CreateFolder("Contracts", "Legal")
	s.DeleteCategory("Legal")

	if got := p.Saves() - start; got != 3 {
		t.Errorf("got %d saves, want one per mutation (3)", got)
	}

	// A fresh store over the same persister sees the final state.
	s2, err := New(p, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s2.Snapshot().HasCategory("Legal") {
		t.Errorf("reloaded state is stale")
	}
}

func strPtr(s string) *string { return &s }
