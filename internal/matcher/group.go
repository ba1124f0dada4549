package matcher

import (
	"sort"

	"github.com/koblas/cmdmatch/internal/compiler"
)

// priorityOf ranks group members for the round-robin scan: a member
// carrying at least one pattern is always tried before a bare word
// fallback, since a pattern is selective about what it accepts and a bare
// capture isn't — letting the bare fallback go first would let it swallow
// a token a more specific sibling needed. Once/Many1 breaks ties ahead of
// MaybeOnce/Many0 within the same pattern-having tier.
func priorityOf(c compiler.Capture) int {
	hasPatterns := len(c.Patterns) > 0
	required := c.Quantifier == compiler.Once || c.Quantifier == compiler.Many1

	switch {
	case hasPatterns && required:
		return 0
	case hasPatterns && !required:
		return 1
	case !hasPatterns && required:
		return 2
	default:
		return 3
	}
}

// isRequired reports whether a group member must end up with at least one
// value for the group as a whole to be acceptable.
func isRequired(c compiler.Capture) bool {
	return c.Quantifier == compiler.Once || c.Quantifier == compiler.Many1
}

// groupMember is the mutable per-capture accumulator the resolver threads
// through its main loop.
type groupMember struct {
	capture compiler.Capture
	values  []string
}

func (m *groupMember) done() bool {
	switch m.capture.Quantifier {
	case compiler.Once, compiler.MaybeOnce:
		return len(m.values) == 1
	default:
		return len(m.values) >= maxRepeat
	}
}

// ResolveGroup drives every member of a group (or priority group — the two
// are resolved identically) in priority order, round-robin, rolling back
// to the last position at which every required member held a value and
// the caller's good(rest) lookahead held.
//
// ok=false means the group hard-failed (no acceptable position was ever
// reached). ok=true with an empty result and rest==input is the documented
// no-op case: every member is optional and none of them matched anything.
func ResolveGroup(caps []compiler.Capture, input string, good func(string) bool) (result map[string]Match, rest string, ok bool) {
	if len(caps) == 0 {
		return map[string]Match{}, input, true
	}

	order := make([]*groupMember, len(caps))
	for i, c := range caps {
		order[i] = &groupMember{capture: c}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return priorityOf(order[i].capture) < priorityOf(order[j].capture)
	})

	requiredCount := 0
	for _, m := range order {
		if isRequired(m.capture) {
			requiredCount++
		}
	}

	acceptable := func() bool {
		for _, m := range order {
			if isRequired(m.capture) && len(m.values) == 0 {
				return false
			}
		}
		return true
	}

	remaining := input
	anyMatchEver := false
	snapshotTaken := false
	var snapRemaining string
	snapValues := make(map[*groupMember][]string, len(order))

	takeSnapshot := func() {
		snapshotTaken = true
		snapRemaining = remaining
		for _, m := range order {
			snapValues[m] = append([]string(nil), m.values...)
		}
	}

	for {
		hasMatched := false
		for _, m := range order {
			if m.done() {
				continue
			}
			captured, rem, matched := attemptOne(m.capture, remaining)
			if !matched {
				continue
			}
			m.values = append(m.values, captured)
			remaining = rem
			hasMatched = true
			anyMatchEver = true
			if acceptable() && good(remaining) {
				takeSnapshot()
			}
			break
		}
		if !hasMatched {
			break
		}
	}

	if snapshotTaken {
		out := make(map[string]Match, len(order))
		for _, m := range order {
			vals := snapValues[m]
			if len(vals) == 0 {
				continue
			}
			if m.capture.Quantifier == compiler.Once || m.capture.Quantifier == compiler.MaybeOnce {
				out[m.capture.Name] = OnceMatch(vals[0])
			} else {
				out[m.capture.Name] = ManyMatch(vals)
			}
		}
		return out, snapRemaining, true
	}

	if !anyMatchEver && requiredCount == 0 {
		return map[string]Match{}, input, true
	}

	return nil, input, false
}
