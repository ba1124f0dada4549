// Package matcher implements the pattern matcher, the quantified capture
// matcher, the priority-group resolver, and the top-level driver that
// threads remaining input through a compiled command's segment list.
package matcher

import (
	"strings"
	"unicode"

	"github.com/koblas/cmdmatch/internal/compiler"
)

// skipWS trims leading whitespace; whitespace is skipped before every
// pattern attempt.
func skipWS(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// matchWord consumes the maximal run of non-whitespace characters at the
// start of input (after a leading-whitespace skip), failing if that run is
// empty.
func matchWord(input string) (body, rest string, ok bool) {
	input = skipWS(input)
	i := strings.IndexFunc(input, unicode.IsSpace)
	if i < 0 {
		i = len(input)
	}
	if i == 0 {
		return "", input, false
	}
	return input[:i], input[i:], true
}

func hasPrefixCase(s, prefix string, noCase bool) bool {
	if len(s) < len(prefix) {
		return false
	}
	if noCase {
		return strings.EqualFold(s[:len(prefix)], prefix)
	}
	return s[:len(prefix)] == prefix
}

// MatchPattern attempts one compiled Pattern against the start of input,
// after skipping leading whitespace. It returns the captured slice and
// what's left of input on success.
func MatchPattern(p compiler.Pattern, input string) (captured, rest string, ok bool) {
	switch p.Kind {
	case compiler.PatternWord:
		body, rem, ok := matchWord(input)
		if !ok {
			return "", input, false
		}
		if !p.Regex.MatchString(body) {
			return "", input, false
		}
		return body, rem, true

	case compiler.PatternEq:
		trimmed := skipWS(input)
		for _, s := range p.AnyOf {
			if hasPrefixCase(trimmed, s, p.NoCase) {
				return trimmed[:len(s)], trimmed[len(s):], true
			}
		}
		return "", input, false

	case compiler.PatternDelimited:
		return matchDelimited(p, input)

	default:
		return "", input, false
	}
}

func matchDelimited(p compiler.Pattern, input string) (captured, rest string, ok bool) {
	trimmed := skipWS(input)

	switch {
	case len(p.Starts) > 0 && len(p.Ends) > 0:
		return matchStartsEnds(p, trimmed)

	case len(p.Starts) > 0:
		for _, s := range p.Starts {
			if !hasPrefixCase(trimmed, s, p.NoCase) {
				continue
			}
			body, rem, ok := matchWord(trimmed[len(s):])
			if !ok {
				continue
			}
			captured := body
			if p.NoTrim {
				captured = strings.TrimRight(s+body, " \t\r\n")
			}
			if !p.Regex.MatchString(captured) {
				continue
			}
			return captured, rem, true
		}
		return "", input, false

	case len(p.Ends) > 0:
		for _, e := range p.Ends {
			idx := strings.Index(trimmed, e)
			if idx <= 0 {
				continue
			}
			body := trimmed[:idx]
			rem := trimmed[idx+len(e):]
			captured := body
			if p.NoTrim {
				captured = body + e
			}
			if !p.Regex.MatchString(captured) {
				continue
			}
			return captured, rem, true
		}
		return "", input, false
	}

	return "", input, false
}

// matchStartsEnds tries every (starts[i], ends[j]) combination in order:
// for each pair, require prefix s, then consume up to the next occurrence
// of e, then consume e.
func matchStartsEnds(p compiler.Pattern, trimmed string) (captured, rest string, ok bool) {
	for _, s := range p.Starts {
		if !hasPrefixCase(trimmed, s, p.NoCase) {
			continue
		}
		after := trimmed[len(s):]
		for _, e := range p.Ends {
			idx := strings.Index(after, e)
			if idx < 0 {
				continue
			}
			body := after[:idx]
			if body == "" {
				continue
			}
			rem := after[idx+len(e):]
			captured := body
			if p.NoTrim {
				captured = strings.TrimSpace(s + body + e)
			}
			if !p.Regex.MatchString(captured) {
				continue
			}
			return captured, rem, true
		}
	}
	return "", trimmed, false
}

// AnyOf tries each pattern in turn, in template order, and returns the
// first that succeeds.
func AnyOf(patterns []compiler.Pattern, input string) (captured, rest string, ok bool) {
	for _, p := range patterns {
		if c, r, ok := MatchPattern(p, input); ok {
			return c, r, true
		}
	}
	return "", input, false
}
