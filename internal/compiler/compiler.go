package compiler

import (
	"github.com/koblas/cmdmatch/internal/parser"
)

// Compile parses and compiles a template into an immutable Command. It is
// the sole entry point that can fail; everything downstream of a Command is
// infallible.
func Compile(src string) (*Command, error) {
	raw, err := parser.ParseCommand(src)
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, len(raw))
	for i, rs := range raw {
		seg, err := convertSegment(rs)
		if err != nil {
			return nil, err
		}
		segments[i] = seg
	}

	for i := 0; i+1 < len(segments); i++ {
		if !segments[i].IsDeterministic() && !segments[i+1].IsDeterministic() {
			return nil, &RuleError{Kind: RuleNonDeterministicSequence}
		}
	}

	return &Command{Segments: segments}, nil
}

func convertSegment(rs parser.Segment) (Segment, error) {
	switch rs.Kind {
	case parser.KindText:
		return Segment{Kind: SegText, Text: rs.Text}, nil
	case parser.KindCapture:
		c, err := convertCapture(rs.Capture)
		if err != nil {
			return Segment{}, err
		}
		return Segment{Kind: SegCapture, Capture: c}, nil
	case parser.KindGroup, parser.KindPriorityGroup:
		caps := make([]Capture, len(rs.Captures))
		for i, rc := range rs.Captures {
			c, err := convertCapture(rc)
			if err != nil {
				return Segment{}, err
			}
			caps[i] = c
		}
		kind := SegGroup
		if rs.Kind == parser.KindPriorityGroup {
			kind = SegPriorityGroup
		}
		return Segment{Kind: kind, Captures: caps}, nil
	default:
		panic("compiler: unreachable segment kind")
	}
}

func convertCapture(rc parser.Capture) (Capture, error) {
	patterns := make([]Pattern, len(rc.Patterns))
	for i, rp := range rc.Patterns {
		p, err := convertPattern(rp)
		if err != nil {
			return Capture{}, err
		}
		patterns[i] = p
	}
	return Capture{Name: rc.Name, Quantifier: rc.Quantifier, Patterns: patterns}, nil
}

// convertPattern resolves a raw pattern's filter list into its compiled
// shape, ported from compiler.rs's TryFrom<parser::Pattern> for Pattern.
func convertPattern(rp parser.Pattern) (Pattern, error) {
	noCase := false
	noTrim := false
	var regexArgs []string
	filters := make([]parser.Filter, 0, len(rp.Filters))

	for _, f := range rp.Filters {
		switch f.Name {
		case "nocase":
			noCase = true
		case "notrim":
			noTrim = true
		case "regex":
			if len(f.Args) == 0 {
				return Pattern{}, &FilterError{Kind: FilterMissingArgs, Name: "regex"}
			}
			regexArgs = append(regexArgs, f.Args...)
		default:
			filters = append(filters, f)
		}
	}

	regexSet, err := NewRegexSet(regexArgs)
	if err != nil {
		return Pattern{}, &FilterError{Kind: FilterRegex, Err: err}
	}

	if len(filters) == 0 {
		return Pattern{Kind: PatternWord, Regex: regexSet}, nil
	}

	switch filters[0].Name {
	case "eq":
		if noTrim || !regexSet.Empty() {
			return Pattern{}, &FilterError{Kind: FilterEq}
		}
		var anyOf []string
		for _, f := range filters {
			switch f.Name {
			case "eq":
				if len(f.Args) == 0 {
					return Pattern{}, &FilterError{Kind: FilterMissingArgs, Name: "eq"}
				}
				anyOf = append(anyOf, f.Args...)
			case "starts", "ends":
				return Pattern{}, &FilterError{Kind: FilterEq}
			default:
				return Pattern{}, &FilterError{Kind: FilterUnknown, Name: f.Name}
			}
		}
		return Pattern{Kind: PatternEq, AnyOf: anyOf, NoCase: noCase}, nil

	case "starts", "ends":
		var starts, ends []string
		for _, f := range filters {
			switch f.Name {
			case "starts":
				if len(f.Args) == 0 {
					return Pattern{}, &FilterError{Kind: FilterMissingArgs, Name: "starts"}
				}
				starts = append(starts, f.Args...)
			case "ends":
				if len(f.Args) == 0 {
					return Pattern{}, &FilterError{Kind: FilterMissingArgs, Name: "ends"}
				}
				ends = append(ends, f.Args...)
			case "eq":
				return Pattern{}, &FilterError{Kind: FilterEq}
			default:
				return Pattern{}, &FilterError{Kind: FilterUnknown, Name: f.Name}
			}
		}
		return Pattern{
			Kind:    PatternDelimited,
			Starts:  starts,
			Ends:    ends,
			Regex:   regexSet,
			NoCase:  noCase,
			NoTrim:  noTrim,
		}, nil

	default:
		return Pattern{}, &FilterError{Kind: FilterUnknown, Name: filters[0].Name}
	}
}
