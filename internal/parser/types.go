// Package parser turns a template string into an untyped AST: a flat list
// of segments, each either literal text, a single capture, a group, or a
// priority group. It knows nothing about filter semantics or determinism;
// that's internal/compiler's job.
package parser

// Quantifier is the repetition rule on a capture.
type Quantifier int

const (
	Once Quantifier = iota
	MaybeOnce
	Many0
	Many1
)

func (q Quantifier) String() string {
	switch q {
	case MaybeOnce:
		return "?"
	case Many0:
		return "*"
	case Many1:
		return "+"
	default:
		return ""
	}
}

// Filter is one keyword-and-arguments form inside a pattern, e.g.
// starts(`--`).
type Filter struct {
	Name string
	Args []string
}

// Pattern is one semicolon-separated alternative within a capture's filter
// list: a comma-separated list of filters.
type Pattern struct {
	Filters []Filter
}

// Capture is a single named capture slot, e.g. <words+: starts('-')>.
type Capture struct {
	Name       string
	Quantifier Quantifier
	Patterns   []Pattern
}

// SegmentKind tags which field of Segment is populated.
type SegmentKind int

const (
	KindText SegmentKind = iota
	KindCapture
	KindGroup
	KindPriorityGroup
)

// Segment is one top-level piece of a parsed template.
type Segment struct {
	Kind SegmentKind

	// Populated when Kind == KindText.
	Text string
	// Populated when Kind == KindCapture.
	Capture Capture
	// Populated when Kind == KindGroup or KindPriorityGroup.
	Captures []Capture
}
