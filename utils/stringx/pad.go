// File: pad.go
// Title: Padding, Repetition and Reversal
// Description: Implements fixed-width padding with multi-byte pad strings,
//              string repetition and byte reversal. Lengths are byte counts.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: PadLeft/PadRight with a single pad rune
// - 2025-10-17 v0.2.0: Pad strings with truncation, argument validation,
//                       Repeat and byte-wise Reverse

package stringx

import (
	"strings"

	"github.com/msto63/strx/core/errors"
)

// DefaultPadString is the conventional pad string for PadLeft and PadRight.
const DefaultPadString = " "

// PadLeft returns s padded on the left with copies of pad until it is
// totalLength bytes long. The copy closest to s is truncated if needed. If
// totalLength is not greater than len(s), s is returned unchanged. PadLeft
// fails if pad is empty or totalLength is negative.
func PadLeft(s string, totalLength int, pad string) (string, error) {
	fill, err := padding("pad_left", len(s), totalLength, pad)
	if err != nil {
		return "", err
	}
	return fill + s, nil
}

// PadRight is like PadLeft but appends the padding.
func PadRight(s string, totalLength int, pad string) (string, error) {
	fill, err := padding("pad_right", len(s), totalLength, pad)
	if err != nil {
		return "", err
	}
	return s + fill, nil
}

// MustPadLeft is like PadLeft but panics on invalid arguments.
func MustPadLeft(s string, totalLength int, pad string) string {
	result, err := PadLeft(s, totalLength, pad)
	if err != nil {
		panic(err)
	}
	return result
}

// MustPadRight is like PadRight but panics on invalid arguments.
func MustPadRight(s string, totalLength int, pad string) string {
	result, err := PadRight(s, totalLength, pad)
	if err != nil {
		panic(err)
	}
	return result
}

// padding returns the fill needed to grow a string of length n to
// totalLength.
func padding(operation string, n, totalLength int, pad string) (string, error) {
	if pad == "" {
		return "", errors.StringxInvalidArgument(operation, pad, "non-empty pad string")
	}
	if totalLength < 0 {
		return "", errors.StringxInvalidArgument(operation, totalLength, "non-negative total length")
	}
	if totalLength <= n {
		return "", nil
	}

	need := totalLength - n
	fill := strings.Repeat(pad, need/len(pad)+1)
	return fill[:need], nil
}

// Repeat returns multiplier copies of s concatenated. A multiplier of 0
// yields the empty string; a negative multiplier is an error.
func Repeat(s string, multiplier int) (string, error) {
	if multiplier < 0 {
		return "", errors.StringxInvalidArgument("repeat", multiplier, "non-negative multiplier")
	}
	return strings.Repeat(s, multiplier), nil
}

// MustRepeat is like Repeat but panics on a negative multiplier.
func MustRepeat(s string, multiplier int) string {
	result, err := Repeat(s, multiplier)
	if err != nil {
		panic(err)
	}
	return result
}

// Reverse returns s with its bytes in reverse order. Multi-byte UTF-8
// sequences are not kept together.
func Reverse(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[len(s)-1-i] = s[i]
	}
	return string(b)
}
