package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"promptvault/internal/adapters/memstore"
	"promptvault/internal/application"
	"promptvault/internal/domain"
)

func newTestStore(t *testing.T) *memstore.Store {
	t.Helper()
	store, err := memstore.New(memstore.NewMemoryPersister(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return store
}

func TestValidation(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		name      string
		validate  func() error
		wantField string
	}{
		{
			name:      "add category without name",
			validate:  NewAddCategoryCommand(store, "").Validate,
			wantField: "name",
		},
		{
			name:      "rename category without new name",
			validate:  NewRenameCategoryCommand(store, "Sales", "  ").Validate,
			wantField: "newName",
		},
		{
			name:      "create folder without category",
			validate:  NewCreateFolderCommand(store, "Ideas", "").Validate,
			wantField: "category",
		},
		{
			name:      "add version without folder id",
			validate:  NewAddVersionCommand(store, "", "content").Validate,
			wantField: "folderID",
		},
		{
			name:      "fork version without id",
			validate:  NewForkVersionCommand(store, "").Validate,
			wantField: "versionID",
		},
		{
			name:      "update version with bogus status",
			validate:  NewUpdateVersionCommand(store, "v1").WithStatus("purple").Validate,
			wantField: "status",
		},
		{
			name:      "list versions without folder id",
			validate:  NewListVersionsCommand(store, "", domain.SortByTimestamp).Validate,
			wantField: "folderID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate()
			var verr *application.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want a validation error", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestCategoryCommands(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	res, err := NewAddCategoryCommand(store, "Legal").Execute(ctx)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !res.Snapshot.HasCategory("Legal") {
		t.Errorf("Legal missing after add")
	}

	res, err = NewRenameCategoryCommand(store, "Legal", "Compliance").Execute(ctx)
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if res.Snapshot.HasCategory("Legal") || !res.Snapshot.HasCategory("Compliance") {
		t.Errorf("rename did not relabel: %v", res.Snapshot.Categories)
	}

	res, err = NewDeleteCategoryCommand(store, "Compliance").Execute(ctx)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.Snapshot.HasCategory("Compliance") {
		t.Errorf("Compliance still present after delete")
	}
}

func TestCreateFolderUnknownCategory(t *testing.T) {
	store := newTestStore(t)

	_, err := NewCreateFolderCommand(store, "Ideas", "Nope").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestDuplicateFolderUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := NewDuplicateFolderCommand(store, "missing").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestForkVersion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	res, err := NewForkVersionCommand(store, "v2").Execute(ctx)
	if err != nil {
		t.Fatalf("fork: %v", err)
	}
	source := res.Snapshot.VersionByID("v2")
	if res.Version.ID == "v2" {
		t.Errorf("fork kept the source id")
	}
	if res.Version.FolderID != source.FolderID {
		t.Errorf("fork landed in folder %q, want %q", res.Version.FolderID, source.FolderID)
	}
	if res.Version.Content != source.Content {
		t.Errorf("fork content differs from source")
	}
	if res.Version.Status != domain.StatusAmber {
		t.Errorf("fork status = %q, want amber", res.Version.Status)
	}
}

func TestForkVersionUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := NewForkVersionCommand(store, "missing").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestListCategories(t *testing.T) {
	store := newTestStore(t)

	listings, err := NewListCategoriesCommand(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listings) != 4 {
		t.Fatalf("got %d categories, want 4", len(listings))
	}
	if listings[0].Name != "Sales" || listings[0].Folders != 2 {
		t.Errorf("first listing = %+v, want Sales with 2 folders", listings[0])
	}
}

func TestListFoldersBadges(t *testing.T) {
	store := newTestStore(t)

	listings, err := NewListFoldersCommand(store, "Sales", "").Execute(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("got %d folders, want 2", len(listings))
	}

	byID := make(map[string]FolderListing)
	for _, l := range listings {
		byID[l.Folder.ID] = l
	}
	if got := byID["f1"]; got.Badge != domain.StatusGreen || got.Versions != 2 {
		t.Errorf("f1 listing = %+v, want green badge with 2 versions", got)
	}
	if got := byID["f2"]; got.Badge != domain.StatusGray || got.Versions != 0 {
		t.Errorf("f2 listing = %+v, want gray badge with 0 versions", got)
	}
}

func TestListFoldersQueryOverridesCategory(t *testing.T) {
	store := newTestStore(t)

	listings, err := NewListFoldersCommand(store, "Sales", "blog").Execute(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listings) != 1 || listings[0].Folder.ID != "f3" {
		t.Errorf("query should match across categories, got %+v", listings)
	}
}

func TestListVersionsUnknownFolder(t *testing.T) {
	store := newTestStore(t)

	_, err := NewListVersionsCommand(store, "missing", domain.SortByTimestamp).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestShowVersion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	v, err := NewShowVersionCommand(store, "v1").Execute(ctx)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if v.Name != "Initial Draft" {
		t.Errorf("got %q, want the seed draft", v.Name)
	}

	if _, err := NewShowVersionCommand(store, "missing").Execute(ctx); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
