package application

import (
	"fmt"
	"strings"

	"promptvault/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateStatus checks that value names one of the three version statuses.
func ValidateStatus(fieldName string, value domain.Status) error {
	if !value.Valid() {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("status must be green, amber or red, got: %s", value),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "folderID" -> "folder ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"folderID":  "folder ID",
		"versionID": "version ID",
		"category":  "category",
		"name":      "name",
		"newName":   "new name",
		"path":      "path",
	}
	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
