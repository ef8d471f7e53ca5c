package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits applied to user-supplied values.
const (
	MaxNodeIDLength = 256
	MaxTextLength   = 2000
	MaxCoordinate   = 1e6
)

// ValidateNodeID checks that id can safely name a node or connection endpoint.
//
// The rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - No surrounding whitespace
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node id cannot be empty")
	}
	if len(id) > MaxNodeIDLength {
		return New(ErrCodeInvalidInput, "node id too long (max %d characters)", MaxNodeIDLength)
	}
	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidInput, "node id cannot start or end with whitespace")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node id contains invalid control characters")
		}
	}
	return nil
}

// ValidateText checks a node label. Labels may be empty but must be valid
// UTF-8, single-line and at most MaxTextLength characters.
func ValidateText(text string) error {
	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidInput, "text is not valid UTF-8")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return New(ErrCodeInvalidInput, "text too long (max %d characters)", MaxTextLength)
	}
	if strings.ContainsAny(text, "\n\r\x00") {
		return New(ErrCodeInvalidInput, "text must be a single line")
	}
	return nil
}

// hexColorRegex matches #RGB and #RRGGBB colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor checks that color is a CSS hex color (#RGB or #RRGGBB).
func ValidateColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid color %q (expected #RGB or #RRGGBB)", color)
	}
	return nil
}

// ValidateCoordinate checks a canvas coordinate. name labels the value in
// the error message.
func ValidateCoordinate(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if math.Abs(v) > MaxCoordinate {
		return New(ErrCodeInvalidInput, "%s out of range (max %g)", name, float64(MaxCoordinate))
	}
	return nil
}

// ValidateSize checks a node dimension: finite, positive and within
// MaxCoordinate.
func ValidateSize(name string, v float64) error {
	if err := ValidateCoordinate(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive", name)
	}
	return nil
}
