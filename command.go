// Package cmdmatch compiles chat-style command templates into matchers:
// parse a template once with Compile, then run it against as many input
// strings as needed with Command.Match.
package cmdmatch

import (
	"sort"

	"github.com/koblas/cmdmatch/internal/compiler"
	"github.com/koblas/cmdmatch/internal/matcher"
	"github.com/koblas/cmdmatch/internal/parser"
	"github.com/pkg/errors"
)

// Match is a single capture's result: either one slice (Once/MaybeOnce
// quantifiers) or several (Many0/Many1).
type Match = matcher.Match

// Command is an immutable, compiled template. It is safe for concurrent use
// by multiple goroutines: a Command holds no mutable state, and Match
// allocates a fresh output map per call.
type Command struct {
	compiled *compiler.Command
}

// Compile parses and compiles a template. It is the only fallible
// operation in this package; everything that follows from a successful
// Compile cannot fail.
func Compile(template string) (*Command, error) {
	c, err := compiler.Compile(template)
	if err != nil {
		return nil, wrapError(err)
	}
	return &Command{compiled: c}, nil
}

// Match runs cmd against input. It returns (nil, false) if the template
// doesn't match at all; a match never errors, it simply misses.
func (cmd *Command) Match(input string) (*Captures, bool) {
	caps, rest, ok := matcher.Drive(cmd.compiled.Segments, input)
	if !ok {
		return nil, false
	}
	return &Captures{values: caps, rest: rest}, true
}

// HasPrefix cheaply tests whether the first segment alone matches the
// start of input, for filtering candidate commands before a full Match.
func (cmd *Command) HasPrefix(input string) bool {
	return matcher.HasPrefix(cmd.compiled.Segments, input)
}

// Captures is the output of a successful Match: the named captures plus
// whatever text was left unconsumed.
type Captures struct {
	values map[string]Match
	rest   string
}

// Get returns the raw Match for name, if present.
func (c *Captures) Get(name string) (Match, bool) {
	m, ok := c.values[name]
	return m, ok
}

// GetOnce returns the single captured string for an Once/MaybeOnce
// capture named name.
func (c *Captures) GetOnce(name string) (string, bool) {
	m, ok := c.values[name]
	if !ok {
		return "", false
	}
	return m.Once()
}

// GetMany returns the captured strings for a Many0/Many1 capture named
// name.
func (c *Captures) GetMany(name string) ([]string, bool) {
	m, ok := c.values[name]
	if !ok {
		return nil, false
	}
	return m.Many()
}

// IsPresent reports whether name has a captured value at all.
func (c *Captures) IsPresent(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Rest is the unconsumed trailing text, never whitespace-trimmed.
func (c *Captures) Rest() string {
	return c.rest
}

// Keys returns every captured name, sorted for deterministic iteration —
// map order alone isn't stable in Go.
func (c *Captures) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ErrorKind tags which of the three compile-time error families Error
// wraps.
type ErrorKind int

const (
	// ErrSyntax: the template failed to parse.
	ErrSyntax ErrorKind = iota
	// ErrFilter: a known filter received bad arguments or an incompatible
	// combination.
	ErrFilter
	// ErrRule: the template is structurally unmatchable in linear time.
	ErrRule
)

// Error is the unified compile-time error type. Exactly one of Syntax,
// Filter, or Rule is non-nil, selected by Kind.
type Error struct {
	Kind   ErrorKind
	Syntax *parser.SyntaxError
	Filter *compiler.FilterError
	Rule   *compiler.RuleError
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrSyntax:
		return e.Syntax.Error()
	case ErrFilter:
		return e.Filter.Error()
	case ErrRule:
		return e.Rule.Error()
	default:
		return "cmdmatch: unknown compile error"
	}
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case ErrSyntax:
		return e.Syntax
	case ErrFilter:
		return e.Filter
	case ErrRule:
		return e.Rule
	default:
		return nil
	}
}

func wrapError(err error) error {
	var syn *parser.SyntaxError
	if errors.As(err, &syn) {
		return &Error{Kind: ErrSyntax, Syntax: syn}
	}
	var filt *compiler.FilterError
	if errors.As(err, &filt) {
		return &Error{Kind: ErrFilter, Filter: filt}
	}
	var rule *compiler.RuleError
	if errors.As(err, &rule) {
		return &Error{Kind: ErrRule, Rule: rule}
	}
	return err
}
