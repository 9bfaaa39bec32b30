// File: replace.go
// Title: Search and Replace
// Description: Implements single and multi-pattern replacement, both
//              case-sensitive and ASCII case-insensitive. The ReplaceEvery
//              functions apply one pass per pattern, so later patterns see
//              earlier replacements; the Nonrecursive functions scan the
//              haystack once, longest pattern first, and never look at
//              emitted text again.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial implementation

package stringx

import (
	"slices"
	"strings"

	"github.com/msto63/strx/core/errors"
)

// Replace returns haystack with every non-overlapping occurrence of needle
// replaced by replacement, scanning left to right. Inserted text is not
// scanned again. An empty needle leaves haystack unchanged.
func Replace(haystack, needle, replacement string) string {
	if needle == "" {
		return haystack
	}
	return strings.ReplaceAll(haystack, needle, replacement)
}

// ReplaceCI is like Replace but compares needle against haystack ignoring
// ASCII case. The replacement is inserted verbatim.
func ReplaceCI(haystack, needle, replacement string) string {
	if needle == "" || len(needle) > len(haystack) {
		return haystack
	}

	folded := Lowercase(haystack)
	foldedNeedle := Lowercase(needle)

	i := strings.Index(folded, foldedNeedle)
	if i < 0 {
		return haystack
	}

	var sb strings.Builder
	sb.Grow(len(haystack))
	start := 0
	for i >= 0 {
		sb.WriteString(haystack[start : start+i])
		sb.WriteString(replacement)
		start += i + len(needle)
		i = strings.Index(folded[start:], foldedNeedle)
	}
	sb.WriteString(haystack[start:])
	return sb.String()
}

// ReplaceEvery applies Replace for each pattern of r in order, each pass
// operating on the result of the previous one. Replacement text produced by
// an earlier pattern can therefore be matched by a later one.
func ReplaceEvery(haystack string, r *Replacements) string {
	for pattern, replacement := range r.All() {
		haystack = Replace(haystack, pattern, replacement)
	}
	return haystack
}

// ReplaceEveryCI is the ASCII case-insensitive form of ReplaceEvery.
func ReplaceEveryCI(haystack string, r *Replacements) string {
	for pattern, replacement := range r.All() {
		haystack = ReplaceCI(haystack, pattern, replacement)
	}
	return haystack
}

// ReplaceEveryNonrecursive replaces the patterns of r in a single
// left-to-right pass. At each position the longest matching pattern wins;
// replaced text is never searched again. It fails if r contains an empty
// pattern.
func ReplaceEveryNonrecursive(haystack string, r *Replacements) (string, error) {
	if err := checkPatterns("replace_every_nonrecursive", r); err != nil {
		return "", err
	}
	return newMatcher(r, nil).replace(haystack), nil
}

// MustReplaceEveryNonrecursive is like ReplaceEveryNonrecursive but panics on
// an empty pattern.
func MustReplaceEveryNonrecursive(haystack string, r *Replacements) string {
	result, err := ReplaceEveryNonrecursive(haystack, r)
	if err != nil {
		panic(err)
	}
	return result
}

// ReplaceEveryNonrecursiveCI is the ASCII case-insensitive form of
// ReplaceEveryNonrecursive. Patterns that fold to the same lowercase form are
// collapsed onto the first of them in r's order; the replacements of later
// duplicates are ignored.
func ReplaceEveryNonrecursiveCI(haystack string, r *Replacements) (string, error) {
	if err := checkPatterns("replace_every_nonrecursive_ci", r); err != nil {
		return "", err
	}
	return newMatcher(r, Lowercase).replace(haystack), nil
}

// MustReplaceEveryNonrecursiveCI is like ReplaceEveryNonrecursiveCI but
// panics on an empty pattern.
func MustReplaceEveryNonrecursiveCI(haystack string, r *Replacements) string {
	result, err := ReplaceEveryNonrecursiveCI(haystack, r)
	if err != nil {
		panic(err)
	}
	return result
}

func checkPatterns(operation string, r *Replacements) error {
	if r.Has("") {
		return errors.StringxInvalidArgument(operation, "", "non-empty patterns only")
	}
	return nil
}

// matcher holds the folded patterns of one replace call.
type matcher struct {
	fold         func(string) string
	replacements map[string]string
	// lengths holds the distinct pattern lengths, longest first.
	lengths []int
}

// newMatcher folds the patterns of r with fold (nil means identity). The
// first pattern to produce a folded form owns it.
func newMatcher(r *Replacements, fold func(string) string) *matcher {
	m := &matcher{
		fold:         fold,
		replacements: make(map[string]string, r.Len()),
	}
	for pattern, replacement := range r.All() {
		if fold != nil {
			pattern = fold(pattern)
		}
		if _, seen := m.replacements[pattern]; seen {
			continue
		}
		m.replacements[pattern] = replacement
		if !slices.Contains(m.lengths, len(pattern)) {
			m.lengths = append(m.lengths, len(pattern))
		}
	}
	slices.Sort(m.lengths)
	slices.Reverse(m.lengths)
	return m
}

func (m *matcher) replace(haystack string) string {
	if len(m.lengths) == 0 {
		return haystack
	}

	folded := haystack
	if m.fold != nil {
		folded = m.fold(haystack)
	}

	var sb strings.Builder
	sb.Grow(len(haystack))
	for pos := 0; pos < len(haystack); {
		matched := false
		for _, n := range m.lengths {
			if pos+n > len(haystack) {
				continue
			}
			if replacement, ok := m.replacements[folded[pos:pos+n]]; ok {
				sb.WriteString(replacement)
				pos += n
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(haystack[pos])
			pos++
		}
	}
	return sb.String()
}
