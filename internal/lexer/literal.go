package lexer

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// bareEscapes mirrors the quoted-string escapes plus '<', which a bare
// literal needs to escape since '<' otherwise opens a capture.
var bareEscapes = map[byte]rune{
	'\\': '\\',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'<':  '<',
}

func isWS(c byte) bool {
	return unicode.IsSpace(rune(c))
}

// ReadLiteral reads one bare (unquoted) literal segment. It folds together
// any number of adjacent fragments of three kinds: a maximal run of
// non-whitespace, non-backslash bytes; a backslash followed by a run of
// whitespace (kept verbatim, letting a literal embed spaces); or a
// backslash followed by one of the recognized escape characters. Reading
// stops as soon as none of the three fragment kinds can consume more, which
// happens at unescaped whitespace or end of input.
func ReadLiteral(src string) (value string, n int, err error) {
	var buf strings.Builder
	i := 0
	for i < len(src) {
		if src[i] != '\\' {
			run, rn := lexReadNormalRun(src[i:])
			if rn == 0 {
				break
			}
			buf.WriteString(run)
			i += rn
			continue
		}

		if i+1 >= len(src) {
			return "", 0, errors.New("dangling '\\' at end of literal")
		}
		next := src[i+1]
		if isWS(next) {
			j := i + 1
			for j < len(src) && isWS(src[j]) {
				buf.WriteByte(src[j])
				j++
			}
			i = j
			continue
		}
		if r, ok := bareEscapes[next]; ok {
			buf.WriteRune(r)
			i += 2
			continue
		}
		return "", 0, errors.Errorf("unknown escape sequence '\\%c'", next)
	}

	if buf.Len() == 0 {
		return "", 0, ErrNoMatch
	}
	return buf.String(), i, nil
}

func lexReadNormalRun(src string) (string, int) {
	return ReadWhile(src, func(c byte) bool { return c != '\\' && !isWS(c) })
}
