package matcher

import (
	"strings"

	"github.com/koblas/cmdmatch/internal/compiler"
)

// Drive walks a compiled command's segments left to right, threading the
// unconsumed remainder of input through each one, and merges every named
// capture it collects into a single map.
//
// ok=false means the whole match failed (a hard failure anywhere aborts
// the entire attempt). On success rest is the unconsumed trailing text,
// deliberately not whitespace-trimmed.
func Drive(segments []compiler.Segment, input string) (captures map[string]Match, rest string, ok bool) {
	return driveFrom(segments, 0, input)
}

func driveFrom(segments []compiler.Segment, idx int, input string) (map[string]Match, string, bool) {
	if idx >= len(segments) {
		return map[string]Match{}, input, true
	}

	seg := segments[idx]
	switch seg.Kind {
	case compiler.SegText:
		trimmed := skipWS(input)
		if !strings.HasPrefix(trimmed, seg.Text) {
			return nil, input, false
		}
		return driveFrom(segments, idx+1, trimmed[len(seg.Text):])

	case compiler.SegCapture:
		good := lookahead(segments, idx+1)
		m, present, rem, ok := MatchCapture(seg.Capture, input, good)
		if !ok {
			return nil, input, false
		}
		tail, tailRest, tailOk := driveFrom(segments, idx+1, rem)
		if !tailOk {
			return nil, input, false
		}
		if present {
			setIfAbsent(tail, seg.Capture.Name, m)
		}
		return tail, tailRest, true

	case compiler.SegGroup, compiler.SegPriorityGroup:
		good := lookahead(segments, idx+1)
		group, rem, ok := ResolveGroup(seg.Captures, input, good)
		if !ok {
			return nil, input, false
		}
		tail, tailRest, tailOk := driveFrom(segments, idx+1, rem)
		if !tailOk {
			return nil, input, false
		}
		for name, m := range group {
			setIfAbsent(tail, name, m)
		}
		return tail, tailRest, true

	default:
		return nil, input, false
	}
}

// setIfAbsent merges a capture into tail without overwriting a value the
// tail already holds. driveFrom builds tail by recursing into later
// segments before the current one returns, so a name already present in
// tail was matched further right in the template; on a duplicate capture
// name, that right-most match must win, not this earlier one.
func setIfAbsent(tail map[string]Match, name string, m Match) {
	if _, ok := tail[name]; !ok {
		tail[name] = m
	}
}

// lookahead builds a good(rest) closure: whether the remaining segments
// starting at idx can match some prefix of rest. The last segment's
// closure is trivially true, since there's nothing left to satisfy.
func lookahead(segments []compiler.Segment, idx int) func(string) bool {
	if idx >= len(segments) {
		return func(string) bool { return true }
	}
	return func(rest string) bool {
		_, _, ok := driveFrom(segments, idx, rest)
		return ok
	}
}

// HasPrefix tests whether the first segment alone matches the start of
// input — a cheap filter for incoming text before running the full driver.
func HasPrefix(segments []compiler.Segment, input string) bool {
	if len(segments) == 0 {
		return true
	}

	always := func(string) bool { return true }

	switch seg := segments[0]; seg.Kind {
	case compiler.SegText:
		return strings.HasPrefix(skipWS(input), seg.Text)
	case compiler.SegCapture:
		_, _, _, ok := MatchCapture(seg.Capture, input, always)
		return ok
	case compiler.SegGroup, compiler.SegPriorityGroup:
		_, _, ok := ResolveGroup(seg.Captures, input, always)
		return ok
	default:
		return false
	}
}
