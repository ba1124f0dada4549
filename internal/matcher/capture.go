package matcher

import "github.com/koblas/cmdmatch/internal/compiler"

// maxRepeat is the hard safety cap on Many0/Many1 iterations per capture,
// bounding worst-case work regardless of input size.
const maxRepeat = 50

// Match is the result of matching one capture: either it matched once
// (Once/MaybeOnce quantifiers) or some number of times (Many0/Many1). A
// capture never switches shape across invocations.
type Match struct {
	many bool
	once string
	all  []string
}

// OnceMatch builds a single-value Match.
func OnceMatch(s string) Match { return Match{once: s} }

// ManyMatch builds a multi-value Match.
func ManyMatch(vals []string) Match { return Match{many: true, all: vals} }

// Once returns (value, true) if m holds a single value.
func (m Match) Once() (string, bool) {
	if m.many {
		return "", false
	}
	return m.once, true
}

// Many returns (values, true) if m holds multiple values.
func (m Match) Many() ([]string, bool) {
	if !m.many {
		return nil, false
	}
	return m.all, true
}

// All flattens m to a single slice regardless of shape.
func (m Match) All() []string {
	if m.many {
		return m.all
	}
	return []string{m.once}
}

// attemptOne tries one pattern-set attempt at the capture's patterns, or a
// bare word if the capture has none.
func attemptOne(c compiler.Capture, input string) (captured, rest string, ok bool) {
	if len(c.Patterns) == 0 {
		return matchWord(input)
	}
	return AnyOf(c.Patterns, input)
}

// MatchCapture wraps a pattern attempt with the capture's quantifier loop
// and the good(rest) lookahead predicate supplied by the driver.
//
// Return shape: ok=false means the capture hard-failed (propagate failure
// up, e.g. a Once or Many1 capture that couldn't match at all). ok=true,
// present=false means the capture is optional and simply didn't match: the
// caller should not add an entry for this capture, and rest is unchanged
// from input. ok=true, present=true means m and rest are the real result.
func MatchCapture(c compiler.Capture, input string, good func(string) bool) (m Match, present bool, rest string, ok bool) {
	switch c.Quantifier {
	case compiler.Once:
		captured, rem, matched := attemptOne(c, input)
		if !matched {
			return Match{}, false, input, false
		}
		return OnceMatch(captured), true, rem, true

	case compiler.MaybeOnce:
		captured, rem, matched := attemptOne(c, input)
		if !matched || !good(rem) {
			return Match{}, false, input, true
		}
		return OnceMatch(captured), true, rem, true

	case compiler.Many1, compiler.Many0:
		return matchRepeated(c, input, good)

	default:
		return Match{}, false, input, false
	}
}

func matchRepeated(c compiler.Capture, input string, good func(string) bool) (m Match, present bool, rest string, ok bool) {
	captured, rem, matched := attemptOne(c, input)
	if !matched {
		if c.Quantifier == compiler.Many1 {
			return Match{}, false, input, false
		}
		return Match{}, false, input, true
	}

	vals := []string{captured}
	remaining := rem

	// lastGood* track the most recent point at which good(remaining) held,
	// so a greedy over-consumption can be rolled back to it.
	lastGoodCount := 0
	lastGoodRest := input
	if good(remaining) {
		lastGoodCount = 1
		lastGoodRest = remaining
	}

	for len(vals) < maxRepeat {
		next, rem, matched := attemptOne(c, remaining)
		if !matched {
			break
		}
		vals = append(vals, next)
		remaining = rem
		if good(remaining) {
			lastGoodCount = len(vals)
			lastGoodRest = remaining
		}
	}

	if lastGoodCount == 0 {
		if c.Quantifier == compiler.Many1 {
			return Match{}, false, input, false
		}
		return Match{}, false, input, true
	}

	return ManyMatch(vals[:lastGoodCount]), true, lastGoodRest, true
}
