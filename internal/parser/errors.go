package parser

import (
	"fmt"
	"strings"
)

// SyntaxError is returned when a template fails to parse. Line and Col are
// zero-based; Line is a count of newlines consumed before the failure
// point, Col is the byte offset within that line.
type SyntaxError struct {
	Line     int
	Col      int
	LineText string
	Message  string
	Cause    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, col %d: %s\n%s", e.Line, e.Col, e.Message, e.LineText)
}

// Unwrap exposes the underlying cause, if any, so errors.Is/errors.As can
// reach it through a SyntaxError — e.g. a lexer.ErrNoMatch wrapped at a
// parser cut point.
func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// newSyntaxError builds a SyntaxError for a failure at byte offset pos
// within src, optionally wrapping cause.
func newSyntaxError(src string, pos int, message string, cause error) *SyntaxError {
	if pos > len(src) {
		pos = len(src)
	}
	upto := src[:pos]
	line := strings.Count(upto, "\n")

	lineStart := strings.LastIndexByte(upto, '\n') + 1
	lineEnd := strings.IndexByte(src[pos:], '\n')
	if lineEnd < 0 {
		lineEnd = len(src)
	} else {
		lineEnd += pos
	}

	return &SyntaxError{
		Line:     line,
		Col:      pos - lineStart,
		LineText: src[lineStart:lineEnd],
		Message:  message,
		Cause:    cause,
	}
}
