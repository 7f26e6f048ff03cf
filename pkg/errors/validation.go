package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateAtLeast returns an INVALID_PARAMETER error naming the parameter
// when v is below lo.
func ValidateAtLeast(name string, v, lo int) error {
	if v < lo {
		return New(ErrCodeInvalidParameter, "%s must be >= %d, got %d", name, lo, v)
	}
	return nil
}

// ValidateRange returns an INVALID_PARAMETER error when lo > hi.
func ValidateRange(loName string, lo int, hiName string, hi int) error {
	if lo > hi {
		return New(ErrCodeInvalidParameter, "%s (%d) must be <= %s (%d)", loName, lo, hiName, hi)
	}
	return nil
}

// ValidateRatio checks that r lies in the half-open interval [0, hi).
func ValidateRatio(name string, r, hi float64) error {
	if r < 0 || r >= hi || math.IsNaN(r) {
		return New(ErrCodeInvalidParameter, "%s must be in [0, %g), got %g", name, hi, r)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI or server is about to
// write to.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Path cannot name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, got directory %q", path)
	}

	return nil
}
