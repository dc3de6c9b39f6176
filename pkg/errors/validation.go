package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateText validates headline text supplied by a caller.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only text
//   - No control characters other than newline
//   - Maximum length of 500 characters
//
// Layout-level concerns (overflow, truncation) are handled downstream
// with warnings rather than errors.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidText, "text cannot be empty")
	}

	if len(text) > 500 {
		return New(ErrCodeInvalidText, "text too long (max 500 characters)")
	}

	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' {
			return New(ErrCodeInvalidText, "text contains invalid control characters")
		}
	}

	return nil
}

// ValidateFontRange validates a minimum/maximum font size pair.
func ValidateFontRange(minSize, maxSize float64) error {
	if minSize <= 0 || maxSize <= 0 {
		return New(ErrCodeInvalidFontRange, "font sizes must be positive (got min=%g max=%g)", minSize, maxSize)
	}
	if minSize > maxSize {
		return New(ErrCodeInvalidFontRange, "minimum font size %g exceeds maximum %g", minSize, maxSize)
	}
	return nil
}

// hexColorRegex matches 3- or 6-digit hex color strings with optional # prefix.
var hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a hex color string.
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", s)
	}
	return nil
}

// slotKeyRegex matches slot keys like "top-right" or "cluster-bottom-left".
var slotKeyRegex = regexp.MustCompile(`^[a-z][a-z-]*$`)

// ValidateSlotKey validates a logo slot key.
// Existence of the slot is checked by the logos package; this only
// rejects strings that cannot possibly name a slot.
func ValidateSlotKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidSlot, "slot key cannot be empty")
	}
	if !slotKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidSlot, "invalid slot key: %q", key)
	}
	return nil
}

// ValidatePath validates a local file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// planIDRegex matches the UUID form the service assigns to stored plans.
var planIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidatePlanID validates a stored plan identifier.
func ValidatePlanID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "plan ID cannot be empty")
	}
	if !planIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid plan ID: %q", id)
	}
	return nil
}
