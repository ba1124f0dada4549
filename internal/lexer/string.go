// Package lexer holds the low-level token readers shared by the template
// parser: quoted strings, bare literals, and identifier runs. None of it
// knows about the template grammar; it only knows how to peel one token off
// the front of a string and say how far it got.
package lexer

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrNoMatch is returned by readers that found nothing to consume at the
// current position. It carries no information of its own; callers attach
// context with errors.Wrap before it reaches the user.
var ErrNoMatch = errors.New("lexer: no match at this position")

// quoteEscapes maps the escape character following a backslash to the rune
// it produces, for all three quote kinds. The closing quote itself is always
// a valid escape target in addition to these.
var quoteEscapes = map[byte]rune{
	'\\': '\\',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// ReadString reads one quoted string literal starting at the beginning of
// src. The opening character must be one of ' ` or ". It returns the
// unescaped value and the number of bytes of src consumed (including both
// quotes).
func ReadString(src string) (value string, n int, err error) {
	if len(src) == 0 {
		return "", 0, ErrNoMatch
	}
	quote := src[0]
	if quote != '\'' && quote != '`' && quote != '"' {
		return "", 0, ErrNoMatch
	}

	var buf strings.Builder
	i := 1
	for i < len(src) {
		c := src[i]
		if c == quote {
			return buf.String(), i + 1, nil
		}
		if c == '\\' && i+1 < len(src) {
			esc := src[i+1]
			if esc == quote {
				buf.WriteByte(quote)
				i += 2
				continue
			}
			if r, ok := quoteEscapes[esc]; ok {
				buf.WriteRune(r)
				i += 2
				continue
			}
			return "", 0, errors.Errorf("unknown escape sequence '\\%c'", esc)
		}
		buf.WriteByte(c)
		i++
	}
	return "", 0, errors.Errorf("missing closing delimiter: %q", string(quote))
}
