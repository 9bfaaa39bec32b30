// File: splice.go
// Title: Offset Based Slicing and Splicing
// Description: Implements substring extraction and in-place replacement by
//              byte offset and length. Negative offsets count from the end of
//              the string.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial implementation

package stringx

import "github.com/msto63/strx/core/errors"

// validateOffset normalizes a possibly negative offset against a string of
// length n. The result is in [0, n].
func validateOffset(operation string, offset, n int) (int, error) {
	normalized := offset
	if normalized < 0 {
		normalized += n
	}
	if normalized < 0 || normalized > n {
		return 0, errors.StringxOutOfRange(operation, offset, -n, n)
	}
	return normalized, nil
}

// Slice returns the part of s starting at offset. A negative offset counts
// from the end. Offsets outside [-len(s), len(s)] are an error.
func Slice(s string, offset int) (string, error) {
	start, err := validateOffset("slice", offset, len(s))
	if err != nil {
		return "", err
	}
	return s[start:], nil
}

// SliceN returns at most length bytes of s starting at offset. A length
// running past the end of s is clamped; a negative length is an error.
func SliceN(s string, offset, length int) (string, error) {
	if length < 0 {
		return "", errors.StringxInvalidArgument("slice", length, "non-negative length")
	}
	start, err := validateOffset("slice", offset, len(s))
	if err != nil {
		return "", err
	}
	return s[start : start+min(length, len(s)-start)], nil
}

// Splice returns s with everything from offset to the end replaced by
// replacement.
func Splice(s, replacement string, offset int) (string, error) {
	start, err := validateOffset("splice", offset, len(s))
	if err != nil {
		return "", err
	}
	return s[:start] + replacement, nil
}

// SpliceN returns s with the length bytes at offset replaced by replacement.
// A length of 0 inserts replacement at offset; a length running past the end
// of s replaces the rest of the string. A negative length or an offset
// outside [-len(s), len(s)] is an error.
func SpliceN(s, replacement string, offset, length int) (string, error) {
	if length < 0 {
		return "", errors.StringxInvalidArgument("splice", length, "non-negative length")
	}
	start, err := validateOffset("splice", offset, len(s))
	if err != nil {
		return "", err
	}
	end := start + min(length, len(s)-start)
	return s[:start] + replacement + s[end:], nil
}

// MustSplice is like Splice but panics on invalid arguments.
func MustSplice(s, replacement string, offset int) string {
	result, err := Splice(s, replacement, offset)
	if err != nil {
		panic(err)
	}
	return result
}

// MustSpliceN is like SpliceN but panics on invalid arguments.
func MustSpliceN(s, replacement string, offset, length int) string {
	result, err := SpliceN(s, replacement, offset, length)
	if err != nil {
		panic(err)
	}
	return result
}
