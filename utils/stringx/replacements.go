// File: replacements.go
// Title: Ordered Replacement Mapping
// Description: Implements Replacements, the insertion-ordered pattern to
//              replacement mapping consumed by the ReplaceEvery family.
//              Iteration order is part of the contract for the recursive
//              variants, so a plain Go map cannot be used.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial implementation

package stringx

import (
	"iter"
	"slices"
)

// Replacements maps patterns to replacement strings and remembers the order
// in which patterns were first added. The zero value is an empty mapping
// ready to use. A nil *Replacements reads as empty, but Set needs a non-nil
// receiver.
type Replacements struct {
	keys   []string
	values map[string]string
}

// NewReplacements returns a mapping built from a list of old, new string
// pairs, in argument order. A pattern given twice keeps its first position
// and takes the last value. NewReplacements panics if given an odd number of
// arguments, like strings.NewReplacer.
func NewReplacements(oldnew ...string) *Replacements {
	if len(oldnew)%2 == 1 {
		panic("stringx.NewReplacements: odd argument count")
	}
	r := &Replacements{
		keys:   make([]string, 0, len(oldnew)/2),
		values: make(map[string]string, len(oldnew)/2),
	}
	for i := 0; i < len(oldnew); i += 2 {
		r.Set(oldnew[i], oldnew[i+1])
	}
	return r
}

// ReplacementsFromMap copies m into a new mapping. Go maps have no stable
// order, so keys are added in sorted order.
func ReplacementsFromMap(m map[string]string) *Replacements {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	r := &Replacements{
		keys:   keys,
		values: make(map[string]string, len(m)),
	}
	for _, k := range keys {
		r.values[k] = m[k]
	}
	return r
}

// Set associates replacement with pattern. Updating an existing pattern does
// not move it. Set panics on a nil receiver.
func (r *Replacements) Set(pattern, replacement string) *Replacements {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, exists := r.values[pattern]; !exists {
		r.keys = append(r.keys, pattern)
	}
	r.values[pattern] = replacement
	return r
}

// Get returns the replacement for pattern.
func (r *Replacements) Get(pattern string) (replacement string, ok bool) {
	if r == nil {
		return "", false
	}
	replacement, ok = r.values[pattern]
	return replacement, ok
}

// Has reports whether pattern is present.
func (r *Replacements) Has(pattern string) bool {
	_, ok := r.Get(pattern)
	return ok
}

// Len returns the number of patterns.
func (r *Replacements) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns the patterns in insertion order.
func (r *Replacements) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.keys)
}

// All iterates over pattern, replacement pairs in insertion order.
func (r *Replacements) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if r == nil {
			return
		}
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}
