// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides pure string transformation primitives:
//              case mapping, padding, repetition, replacement, splicing,
//              number formatting and integer parsing.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2025-10-17 v0.3.0: Rewritten around byte-oriented transformation primitives

// Package stringx provides pure string transformation primitives.
//
// # Overview
//
// Every function takes its inputs by value and returns a new string; nothing
// is cached or shared between calls, so all functions are safe for concurrent
// use. Positions and lengths are byte counts and "case-insensitive" means
// ASCII case folding: bytes outside A-Z and a-z are compared and copied as
// they are.
//
// The package is organized into functional groups:
//
//   - Case: Lowercase, Uppercase, Capitalize, CapitalizeWords (case.go)
//   - Padding: PadLeft, PadRight, Repeat, Reverse (pad.go)
//   - Replacement: Replace, ReplaceCI, ReplaceEvery, ReplaceEveryCI,
//     ReplaceEveryNonrecursive, ReplaceEveryNonrecursiveCI (replace.go)
//   - Offsets: Slice, SliceN, Splice, SpliceN (splice.go)
//   - Numbers: FormatNumber, FormatNumberWith, ToInt (number.go)
//
// # Replacement
//
// Multi-pattern replacement takes a *Replacements, an insertion-ordered
// mapping:
//
//	r := stringx.NewReplacements("a", "b", "b", "c")
//
//	stringx.ReplaceEvery("ab", r)
//	// "cc": the "b" produced by the first pass is replaced by the second
//
//	stringx.MustReplaceEveryNonrecursive("ab", r)
//	// "bc": one pass, replaced text is never searched again
//
// The non-recursive functions try the longest pattern first at every
// position, so overlapping prefixes behave predictably:
//
//	r := stringx.NewReplacements("a", "X", "ab", "Y")
//	stringx.MustReplaceEveryNonrecursiveCI("ABC", r) // "YC"
//
// # Errors
//
// Arguments a caller should never pass, such as a negative length, an empty
// pad string or an empty replacement pattern, are reported as errors from
// github.com/msto63/strx/core/errors before any work is done. They satisfy
// errors.IsInvalidArgument. Each such function has a Must variant that
// panics instead.
//
// ToInt does not fail: it returns false when the input is not exactly the
// decimal form of an integer.
package stringx
