// Package compiler lowers the parser's untyped AST into a typed Segment/
// Pattern/Capture tree, validates filter combinations, and enforces the
// non-deterministic-adjacency rule.
package compiler

import "github.com/koblas/cmdmatch/internal/parser"

// Quantifier is re-exported from the parser package: the parser already
// settled on the right set of values (Once, MaybeOnce, Many0, Many1) and
// the compiler has nothing to add to it.
type Quantifier = parser.Quantifier

const (
	Once      = parser.Once
	MaybeOnce = parser.MaybeOnce
	Many0     = parser.Many0
	Many1     = parser.Many1
)

// PatternKind tags which fields of Pattern are meaningful.
type PatternKind int

const (
	PatternWord PatternKind = iota
	PatternEq
	PatternDelimited
)

// Pattern is one compiled alternative a capture may match against. Exactly
// one group of fields is meaningful, selected by Kind.
type Pattern struct {
	Kind PatternKind

	// Word: Regex is optional, applies as an acceptance predicate on the
	// captured word.
	Regex *RegexSet

	// Eq: AnyOf is tried in order, NoCase makes the prefix comparison
	// case-insensitive.
	AnyOf  []string
	NoCase bool

	// Delimited: exactly one of Starts/Ends may be empty, never both.
	Starts  []string
	Ends    []string
	NoTrim  bool
	// Delimited may also carry a Regex acceptance predicate.
}

// IsDeterministic reports whether this pattern is selective about what it
// accepts: every pattern is deterministic except a bare Word with no
// regex predicate, which accepts any non-whitespace run.
func (p Pattern) IsDeterministic() bool {
	if p.Kind == PatternWord {
		return !p.Regex.Empty()
	}
	return true
}

// Capture is a single named capture slot after filter resolution.
type Capture struct {
	Name       string
	Quantifier Quantifier
	Patterns   []Pattern
}

// IsDeterministic: a Once capture is always deterministic; otherwise it's
// deterministic iff it has at least one pattern and all of them are.
func (c Capture) IsDeterministic() bool {
	if c.Quantifier == Once {
		return true
	}
	if len(c.Patterns) == 0 {
		return false
	}
	for _, p := range c.Patterns {
		if !p.IsDeterministic() {
			return false
		}
	}
	return true
}

// SegmentKind tags which fields of Segment are meaningful.
type SegmentKind int

const (
	SegText SegmentKind = iota
	SegCapture
	SegGroup
	SegPriorityGroup
)

// Segment is one compiled top-level piece of a command.
type Segment struct {
	Kind     SegmentKind
	Text     string
	Capture  Capture
	Captures []Capture
}

// IsDeterministic mirrors the Rust source's Segment::is_deterministic: text
// is always deterministic, a capture defers to itself, and a group (either
// kind) is deterministic only if every member is.
func (s Segment) IsDeterministic() bool {
	switch s.Kind {
	case SegText:
		return true
	case SegCapture:
		return s.Capture.IsDeterministic()
	default:
		for _, c := range s.Captures {
			if !c.IsDeterministic() {
				return false
			}
		}
		return true
	}
}

// Command is the immutable result of compiling a template. It is safe for
// concurrent use by multiple matchers.
type Command struct {
	Segments []Segment
}
