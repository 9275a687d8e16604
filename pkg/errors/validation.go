package errors

import (
	"strings"
	"unicode"
)

// ValidateSheetName validates a sheet name from a workbook definition.
// Names end up in report files and CLI output, so control characters and
// path separators are rejected.
func ValidateSheetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidWorkbook, "sheet name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidWorkbook, "sheet name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWorkbook, "sheet name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidWorkbook, "sheet name cannot contain path separators")
	}

	return nil
}

// ValidateOutputPath validates a report output path for safety.
// It prevents path traversal and ensures reasonable path length.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "output path cannot contain path traversal sequences (..)")
	}

	return nil
}
