package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterFolders projects the folders matching the active selection.
// With neither a category nor a query active the result is empty: the
// browser shows nothing until the user picks a category or types a search.
// An active query overrides the category filter and scans all folders.
func FilterFolders(folders []Folder, category, query string) []Folder {
	if category == "" && query == "" {
		return nil
	}
	var out []Folder
	if query != "" {
		q := strings.ToLower(query)
		for _, f := range folders {
			if strings.Contains(strings.ToLower(f.Name), q) {
				out = append(out, f)
			}
		}
		return out
	}
	for _, f := range folders {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// VersionsForFolder returns the versions belonging to folderID, ordered by
// the given sort mode. The input slice is never modified.
func VersionsForFolder(versions []Version, folderID string, mode SortMode) []Version {
	var out []Version
	for _, v := range versions {
		if v.FolderID == folderID {
			out = append(out, v)
		}
	}
	return SortVersions(out, mode)
}

// SortVersions returns a sorted copy of versions. Timestamp mode sorts
// newest first; name mode sorts ascending with locale-aware collation.
func SortVersions(versions []Version, mode SortMode) []Version {
	out := make([]Version, len(versions))
	copy(out, versions)

	switch mode {
	case SortByName:
		c := collate.New(language.Und, collate.Loose)
		slices.SortStableFunc(out, func(a, b Version) int {
			return c.CompareString(a.Name, b.Name)
		})
	default:
		slices.SortStableFunc(out, func(a, b Version) int {
			switch {
			case a.Timestamp > b.Timestamp:
				return -1
			case a.Timestamp < b.Timestamp:
				return 1
			}
			return 0
		})
	}
	return out
}

// FolderStatus rolls the folder's versions up to a badge: green if any
// version is green, else amber if any is amber, else gray.
func FolderStatus(folderID string, versions []Version) Status {
	status := StatusGray
	for _, v := range versions {
		if v.FolderID != folderID {
			continue
		}
		if v.Status == StatusGreen {
			return StatusGreen
		}
		if v.Status == StatusAmber {
			status = StatusAmber
		}
	}
	return status
}

// VersionCount returns the number of versions in the folder.
func VersionCount(versions []Version, folderID string) int {
	n := 0
	for _, v := range versions {
		if v.FolderID == folderID {
			n++
		}
	}
	return n
}

// FolderCount returns the number of folders in the category.
func FolderCount(folders []Folder, category string) int {
	n := 0
	for _, f := range folders {
		if f.Category == category {
			n++
		}
	}
	return n
}
