package parser

import (
	"unicode"

	"github.com/koblas/cmdmatch/internal/lexer"
	"github.com/pkg/errors"
)

// ParseCommand parses a full template string into its segment list. This is
// the only exported entry point; everything else in this file is parser
// state threaded through unexported methods.
func ParseCommand(src string) ([]Segment, error) {
	p := &parser{src: src}
	segments := []Segment{}

	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		seg, err := p.parseSegment()
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}

	return segments, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() (byte, bool) {
	if p.eof() {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser) errAt(pos int, msg string) *SyntaxError {
	return newSyntaxError(p.src, pos, msg, nil)
}

func (p *parser) err(msg string) *SyntaxError {
	return p.errAt(p.pos, msg)
}

// errCause wraps a lexer-level failure (context) at the current position,
// keeping cause reachable via errors.Is/errors.As through SyntaxError's
// Unwrap.
func (p *parser) errCause(context string, cause error) *SyntaxError {
	wrapped := errors.Wrap(cause, context)
	return newSyntaxError(p.src, p.pos, wrapped.Error(), wrapped)
}

// expect consumes c if it's next, reporting an error at a cut point
// otherwise.
func (p *parser) expect(c byte, ctx string) error {
	b, ok := p.peek()
	if !ok || b != c {
		return p.err("missing closing delimiter: " + string(c) + " (" + ctx + ")")
	}
	p.pos++
	return nil
}

func (p *parser) parseSegment() (Segment, error) {
	b, _ := p.peek()
	switch b {
	case '[':
		caps, err := p.parseCaptureList(']')
		if err != nil {
			return Segment{}, err
		}
		return Segment{Kind: KindPriorityGroup, Captures: caps}, nil
	case '{':
		caps, err := p.parseCaptureList('}')
		if err != nil {
			return Segment{}, err
		}
		return Segment{Kind: KindGroup, Captures: caps}, nil
	case '<':
		cap, err := p.parseCapture()
		if err != nil {
			return Segment{}, err
		}
		return Segment{Kind: KindCapture, Capture: cap}, nil
	default:
		lit, n, err := lexer.ReadLiteral(p.src[p.pos:])
		if err != nil {
			return Segment{}, p.errCause("reading literal", err)
		}
		p.pos += n
		return Segment{Kind: KindText, Text: lit}, nil
	}
}

// parseCaptureList parses the body of a group or priority group: zero or
// more whitespace-separated captures, followed by the closing delimiter.
// This is a cut point: once the opening bracket is consumed, failure to
// find a capture or the closer is a hard error.
func (p *parser) parseCaptureList(closer byte) ([]Capture, error) {
	p.pos++ // consume opener
	caps := []Capture{}

	for {
		p.skipSpace()
		b, ok := p.peek()
		if ok && b == closer {
			p.pos++
			return caps, nil
		}
		if !ok {
			return nil, p.err("missing closing delimiter: " + string(closer))
		}
		if b != '<' {
			return nil, p.err("expected a capture or '" + string(closer) + "'")
		}
		cap, err := p.parseCapture()
		if err != nil {
			return nil, err
		}
		caps = append(caps, cap)
	}
}

// parseCapture parses `<name quantifier? (: patterns)? >`. The opening '<'
// is a cut point.
func (p *parser) parseCapture() (Capture, error) {
	p.pos++ // consume '<'
	p.skipSpace()

	name, n := lexer.ReadWhile(p.src[p.pos:], lexer.IsNamePart)
	p.pos += n

	quant := Once
	if b, ok := p.peek(); ok {
		switch b {
		case '?':
			quant = MaybeOnce
			p.pos++
		case '*':
			quant = Many0
			p.pos++
		case '+':
			quant = Many1
			p.pos++
		}
	}

	p.skipSpace()

	var patterns []Pattern
	if b, ok := p.peek(); ok && b == ':' {
		p.pos++
		p.skipSpace()
		var err error
		patterns, err = p.parsePatterns()
		if err != nil {
			return Capture{}, err
		}
		p.skipSpace()
	}

	if err := p.expect('>', "capture"); err != nil {
		return Capture{}, err
	}

	return Capture{Name: name, Quantifier: quant, Patterns: patterns}, nil
}

// parsePatterns parses `filters (';' filters)* ';'?`.
func (p *parser) parsePatterns() ([]Pattern, error) {
	patterns := []Pattern{}

	filters, err := p.parseFilters()
	if err != nil {
		return nil, err
	}
	patterns = append(patterns, Pattern{Filters: filters})

	for {
		p.skipSpace()
		b, ok := p.peek()
		if !ok || b != ';' {
			break
		}
		p.pos++
		p.skipSpace()
		if b, ok := p.peek(); ok && b == '>' {
			// trailing semicolon
			break
		}
		filters, err := p.parseFilters()
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, Pattern{Filters: filters})
	}

	return patterns, nil
}

// parseFilters parses `filter (',' filter)* ','?`.
func (p *parser) parseFilters() ([]Filter, error) {
	filters := []Filter{}

	f, err := p.parseFilter()
	if err != nil {
		return nil, err
	}
	filters = append(filters, f)

	for {
		p.skipSpace()
		b, ok := p.peek()
		if !ok || b != ',' {
			break
		}
		p.pos++
		p.skipSpace()
		if b, ok := p.peek(); ok && (b == ';' || b == '>') {
			// trailing comma
			break
		}
		f, err := p.parseFilter()
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	return filters, nil
}

// parseFilter parses one of the three filter forms: a normal
// `name(args...)` call, a quoted-string shorthand for `eq(...)`, or a
// `/regex/` shorthand for `regex(...)`.
func (p *parser) parseFilter() (Filter, error) {
	b, ok := p.peek()
	if !ok {
		return Filter{}, p.err("expected a filter")
	}

	switch {
	case b == '\'' || b == '`' || b == '"':
		s, n, err := lexer.ReadString(p.src[p.pos:])
		if err != nil {
			return Filter{}, p.errCause("reading quoted filter shorthand", err)
		}
		p.pos += n
		return Filter{Name: "eq", Args: []string{s}}, nil
	case b == '/':
		body, n, err := p.readRegexBody()
		if err != nil {
			return Filter{}, err
		}
		p.pos += n
		return Filter{Name: "regex", Args: []string{body}}, nil
	case lexer.IsIdentStart(b):
		return p.parseNormalFilter()
	default:
		return Filter{}, p.err("invalid filter syntax")
	}
}

// readRegexBody reads `/regex body/`, where a backslash-escaped '/' is kept
// as a literal '/' in the body and every other backslash pair is kept
// as-is, since it's regex syntax the compiler will feed straight to
// regexp.Compile.
func (p *parser) readRegexBody() (string, int, error) {
	src := p.src[p.pos+1:]
	buf := make([]byte, 0, len(src))
	i := 0
	for i < len(src) {
		c := src[i]
		if c == '/' {
			return string(buf), i + 2, nil
		}
		if c == '\\' && i+1 < len(src) {
			if src[i+1] == '/' {
				buf = append(buf, '/')
			} else {
				buf = append(buf, c, src[i+1])
			}
			i += 2
			continue
		}
		buf = append(buf, c)
		i++
	}
	return "", 0, p.err("missing closing delimiter: '/'")
}

func (p *parser) parseNormalFilter() (Filter, error) {
	start := p.pos
	name, n := lexer.ReadWhile(p.src[p.pos:], lexer.IsIdentPart)
	if n == 0 || !lexer.IsIdentStart(p.src[start]) {
		return Filter{}, p.err("invalid filter name")
	}
	p.pos += n

	if err := p.expect('(', "filter arguments"); err != nil {
		return Filter{}, err
	}
	p.skipSpace()

	args := []string{}
	if b, ok := p.peek(); !ok || b != ')' {
		var err error
		args, err = p.parseArgs()
		if err != nil {
			return Filter{}, err
		}
	}

	if err := p.expect(')', "filter arguments"); err != nil {
		return Filter{}, err
	}

	return Filter{Name: name, Args: args}, nil
}

// parseArgs parses `string (',' string)* ','?`.
func (p *parser) parseArgs() ([]string, error) {
	args := []string{}

	s, n, err := lexer.ReadString(p.src[p.pos:])
	if err != nil {
		return nil, p.errCause("reading filter argument", err)
	}
	p.pos += n
	args = append(args, s)

	for {
		p.skipSpace()
		b, ok := p.peek()
		if !ok || b != ',' {
			break
		}
		p.pos++
		p.skipSpace()
		if b, ok := p.peek(); ok && b == ')' {
			break
		}
		s, n, err := lexer.ReadString(p.src[p.pos:])
		if err != nil {
			return nil, p.errCause("reading filter argument", err)
		}
		p.pos += n
		args = append(args, s)
	}

	return args, nil
}
