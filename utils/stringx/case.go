// File: case.go
// Title: ASCII Case Conversion
// Description: Implements byte-wise ASCII case mapping and capitalization.
//              Bytes outside A-Z/a-z, including every byte of a multi-byte
//              UTF-8 sequence, pass through untouched, so the output always
//              has the same length as the input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2025-10-17 v0.2.0: Replaced naming-convention helpers with ASCII
//                       case mapping and word capitalization

package stringx

import "strings"

// DefaultWordDelimiters are the bytes CapitalizeWords treats as word
// separators: space, tab, carriage return, newline, form feed, vertical tab.
const DefaultWordDelimiters = " \t\r\n\f\v"

// Lowercase returns s with every ASCII uppercase letter mapped to lowercase.
func Lowercase(s string) string {
	return mapASCII(s, 'A', 'Z', 'a'-'A')
}

// Uppercase returns s with every ASCII lowercase letter mapped to uppercase.
func Uppercase(s string) string {
	return mapASCII(s, 'a', 'z', -('a' - 'A'))
}

// mapASCII shifts every byte in [lo, hi] by delta. s is returned as is when
// nothing changes.
func mapASCII(s string, lo, hi byte, delta int) string {
	i := 0
	for i < len(s) && (s[i] < lo || s[i] > hi) {
		i++
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; lo <= c && c <= hi {
			b[i] = byte(int(c) + delta)
		}
	}
	return string(b)
}

func upperByte(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Capitalize returns s with its first byte uppercased if it is an ASCII
// lowercase letter. Otherwise s is returned unchanged.
func Capitalize(s string) string {
	if s == "" || upperByte(s[0]) == s[0] {
		return s
	}
	return string(upperByte(s[0])) + s[1:]
}

// CapitalizeWords uppercases the first letter of every word, where words are
// separated by DefaultWordDelimiters.
func CapitalizeWords(s string) string {
	return CapitalizeWordsWith(s, DefaultWordDelimiters)
}

// CapitalizeWordsWith uppercases the first byte of s and every byte that
// directly follows one of the bytes in delimiters. The delimiter set replaces
// the default entirely; an empty set only capitalizes the first byte.
func CapitalizeWordsWith(s, delimiters string) string {
	if s == "" {
		return s
	}

	var b []byte
	atWordStart := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if atWordStart {
			if u := upperByte(c); u != c {
				if b == nil {
					b = []byte(s)
				}
				b[i] = u
			}
		}
		atWordStart = strings.IndexByte(delimiters, c) >= 0
	}
	if b == nil {
		return s
	}
	return string(b)
}
