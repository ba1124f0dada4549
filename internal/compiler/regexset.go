package compiler

import "regexp"

// RegexSet is a compiled acceptance predicate built from one or more
// `regex(...)` filter arguments. A captured slice is accepted if it matches
// at least one regex in the set, mirroring the source's use of
// `regex::RegexSet` (compiler.rs: `RegexSet::new(regs)`).
//
// Matching is an unanchored search, same as Go's regexp.MatchString and the
// Rust regex crate's is_match: templates that want a full-string match
// write their own ^...$ anchors, e.g. `/^\-?\d+$/`.
type RegexSet struct {
	patterns []*regexp.Regexp
}

// NewRegexSet compiles each pattern in exprs. It returns a nil *RegexSet,
// not an error, when exprs is empty, meaning "no regex filter was given": a
// nil set reports Empty and its MatchString accepts every string. An empty
// `regex()` filter never reaches here; convertPattern rejects it first with
// MissingArgs.
func NewRegexSet(exprs []string) (*RegexSet, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, re)
	}
	return &RegexSet{patterns: patterns}, nil
}

// Empty reports whether r has no compiled patterns, treating a nil
// receiver as empty so callers don't need a separate nil check.
func (r *RegexSet) Empty() bool {
	return r == nil || len(r.patterns) == 0
}

// MatchString reports whether s matches at least one pattern in the set.
func (r *RegexSet) MatchString(s string) bool {
	if r == nil {
		return true
	}
	for _, re := range r.patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
