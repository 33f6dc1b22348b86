// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package match implements fuzzy matching
// of external taxon names
// to the leaves of a phylogenetic tree.
package match

import "strings"

// A Matcher associates taxon names
// using a sequence of increasingly loose rules.
// The zero value only matches
// case- and spacing-insensitive equal names;
// use Default for the standard behavior.
type Matcher struct {
	// Contains enables the containment rule:
	// two names match if one,
	// after normalization,
	// is a substring of the other.
	// This rule is deliberately loose
	// and can produce false positives
	// on short names.
	Contains bool

	// MinGenusLen is the minimum length
	// of a genus token
	// (the first word of a name)
	// for the genus rule to apply;
	// tokens of that length or shorter
	// are too ambiguous
	// to be matched on their own.
	// If zero,
	// the genus rule is disabled.
	MinGenusLen int
}

// Default returns a matcher
// with the containment rule enabled
// and a genus token threshold
// of three characters.
func Default() Matcher {
	return Matcher{
		Contains:    true,
		MinGenusLen: 3,
	}
}

// Match returns the best candidate for a leaf name,
// or false if no candidate matches.
//
// The rules are tried in order,
// and the first that produces a hit wins:
// exact match,
// containment
// (if enabled),
// and shared genus
// (the first name token,
// if longer than the genus threshold).
// Within a rule,
// the first matching candidate
// in the input order
// is preferred,
// so the result is deterministic.
func (m Matcher) Match(leaf string, candidates []string) (string, bool) {
	ln := normalize(leaf)
	if ln == "" {
		return "", false
	}

	for _, c := range candidates {
		if normalize(c) == ln {
			return c, true
		}
	}

	if m.Contains {
		for _, c := range candidates {
			cn := normalize(c)
			if cn == "" {
				continue
			}
			if strings.Contains(cn, ln) || strings.Contains(ln, cn) {
				return c, true
			}
		}
	}

	if g := genus(ln); m.MinGenusLen > 0 && len(g) > m.MinGenusLen {
		for _, c := range candidates {
			if genus(normalize(c)) == g {
				return c, true
			}
		}
	}

	return "", false
}

// normalize returns a name in lower case
// with underscores read as spaces
// and runs of spacing collapsed.
func normalize(name string) string {
	name = strings.ToLower(strings.ReplaceAll(name, "_", " "))
	return strings.Join(strings.Fields(name), " ")
}

// genus returns the first token of a normalized name.
func genus(name string) string {
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}
