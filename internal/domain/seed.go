package domain

import "time"

// SeedData returns the dataset a brand-new vault starts with. It is also
// the fallback when persisted state is absent or unreadable.
func SeedData() VaultData {
	now := time.Now().UnixMilli()
	return VaultData{
		Categories: []string{"Sales", "Creative", "Data Analytics", "Engineering"},
		Folders: []Folder{
			{ID: "f1", Name: "Cold Outreach", Category: "Sales", CreatedAt: now},
			{ID: "f2", Name: "Objection Handling", Category: "Sales", CreatedAt: now},
			{ID: "f3", Name: "Blog Post Gen", Category: "Creative", CreatedAt: now},
		},
		Versions: []Version{
			{
				ID:        "v1",
				FolderID:  "f1",
				Name:      "Initial Draft",
				Content:   "Write a cold email to a prospective client about our new AI tool...",
				Status:    StatusAmber,
				Timestamp: now - 100000,
			},
			{
				ID:        "v2",
				FolderID:  "f1",
				Name:      "Optimized V2",
				Content:   "Focus on ROI and time-saving features. Be concise. \n\nSubject: Save 20h/week with AI...",
				Status:    StatusGreen,
				Timestamp: now,
			},
		},
	}
}
