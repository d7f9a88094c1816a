package errors

import (
	"strings"
	"unicode"
)

// maxFileNameLength bounds plan entry file names.
const maxFileNameLength = 255

// ValidateFileName validates an output file name from a plan.
// Plan entries name files relative to the run's output directory, so the
// name must be a simple basename:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators (/ or \)
//   - Not "." or ".."
//   - Maximum length of 255 characters
func ValidateFileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	if len(name) > maxFileNameLength {
		return New(ErrCodeInvalidPath, "file name too long (max %d characters)", maxFileNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "file name cannot be %q", name)
	}

	return nil
}

// ValidateOutputPath validates a path given on the command line for a
// generated file. Unlike plan names, absolute and nested paths are fine;
// only empty paths, directories-by-syntax and control characters are rejected.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "output path must name a file, got directory %q", path)
	}

	return nil
}

// ValidateWeightRange checks that [min, max] is a usable inclusive range.
// Weights are consumed by shortest-path programs, so they must be positive.
func ValidateWeightRange(min, max int) error {
	if min < 1 {
		return New(ErrCodeConfiguration, "minimum weight must be positive, got %d", min)
	}
	if max < min {
		return New(ErrCodeConfiguration, "weight range [%d, %d] is empty", min, max)
	}
	return nil
}
