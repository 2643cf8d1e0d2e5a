package errors

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLabelLength bounds key labels and action commands.
const MaxLabelLength = 64

// ValidateLabel validates the text shown on a key.
//
// The validation rules:
//   - No empty labels
//   - No control characters
//   - Maximum length of MaxLabelLength runes
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return New(ErrCodeInvalidLabel, "label too long (max %d characters)", MaxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains invalid control characters")
		}
	}
	return nil
}

// ValidateLayoutPath validates a layout document path given on the
// command line.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - The file must carry an .xml extension
func ValidateLayoutPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "layout path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "layout path contains invalid control characters")
		}
	}
	if !strings.EqualFold(filepath.Ext(path), ".xml") {
		return New(ErrCodeInvalidPath, "layout path must end in .xml: %s", path)
	}
	return nil
}
