package sqlite

import (
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"testing"

	"promptvault/internal/domain"
)

func openTestPersister(t *testing.T, dir string) *Persister {
	t.Helper()
	p, err := Open(filepath.Join(dir, "vault.db"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestLoadWithoutStateReturnsSeed(t *testing.T) {
	p := openTestPersister(t, t.TempDir())

	data, err := p.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Categories) == 0 || len(data.Folders) == 0 {
		t.Errorf("fresh database did not yield the seed dataset: %+v", data)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := openTestPersister(t, dir)

	want := domain.VaultData{
		Categories: []string{"Sales"},
		Folders: []domain.Folder{
			{ID: "f1", Name: "Cold Outreach", Category: "Sales", CreatedAt: 1},
		},
		Versions: []domain.Version{
			{ID: "v1", FolderID: "f1", Name: "Draft", Content: "hello", Status: domain.StatusAmber, Timestamp: 10},
		},
	}
	if err := p.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := p.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed the dataset:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	p := openTestPersister(t, t.TempDir())

	first := domain.VaultData{Categories: []string{"A"}, Folders: []domain.Folder{}, Versions: []domain.Version{}}
	second := domain.VaultData{Categories: []string{"B"}, Folders: []domain.Folder{}, Versions: []domain.Version{}}
	if err := p.Save(first); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := p.Save(second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := p.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Errorf("got %+v, want the second snapshot", got)
	}

	var count int
	if err := p.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshots table holds %d rows, want 1", count)
	}
}

func TestLoadCorruptPayloadReturnsSeed(t *testing.T) {
	p := openTestPersister(t, t.TempDir())

	_, err := p.db.Exec(
		"INSERT INTO snapshots (key, payload, updated_at) VALUES (?, ?, 0)",
		snapshotKey, "{ not json",
	)
	if err != nil {
		t.Fatalf("planting corrupt payload: %v", err)
	}

	data, err := p.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !data.HasCategory("Sales") {
		t.Errorf("corrupt payload did not fall back to seed data: %+v", data)
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	want := domain.VaultData{
		Categories: []string{"Persisted"},
		Folders:    []domain.Folder{},
		Versions:   []domain.Version{},
	}

	p := openTestPersister(t, dir)
	if err := p.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := openTestPersister(t, dir)
	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want the saved snapshot", got)
	}
}
