package parser_test

import (
	"errors"
	"testing"

	"github.com/koblas/cmdmatch/internal/lexer"
	"github.com/koblas/cmdmatch/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		src    string
		expect parser.Filter
	}{
		{"asdf()", parser.Filter{Name: "asdf", Args: []string{}}},
		{"wow-args('lol')", parser.Filter{Name: "wow-args", Args: []string{"lol"}}},
		{
			"super-duper-1('1',\t'2' , \n'3')",
			parser.Filter{Name: "super-duper-1", Args: []string{"1", "2", "3"}},
		},
	}

	for _, tc := range tests {
		segs, err := parser.ParseCommand("<x: " + tc.src + ">")
		require.NoError(t, err, tc.src)
		require.Len(t, segs, 1)
		require.Len(t, segs[0].Capture.Patterns, 1)
		assert.Equal(t, tc.expect, segs[0].Capture.Patterns[0].Filters[0], tc.src)
	}
}

func TestParseBareCapture(t *testing.T) {
	tests := []struct {
		src   string
		name  string
		quant parser.Quantifier
	}{
		{"<bare>", "bare", parser.Once},
		{"<maybe?>", "maybe", parser.MaybeOnce},
		{"<*>", "", parser.Many0},
	}

	for _, tc := range tests {
		segs, err := parser.ParseCommand(tc.src)
		require.NoError(t, err, tc.src)
		require.Len(t, segs, 1)
		assert.Equal(t, tc.name, segs[0].Capture.Name, tc.src)
		assert.Equal(t, tc.quant, segs[0].Capture.Quantifier, tc.src)
	}
}

func TestParseCaptureWithFilter(t *testing.T) {
	segs, err := parser.ParseCommand("<flags+: starts(`--`),>")
	require.NoError(t, err)
	require.Len(t, segs, 1)

	c := segs[0].Capture
	assert.Equal(t, "flags", c.Name)
	assert.Equal(t, parser.Many1, c.Quantifier)
	require.Len(t, c.Patterns, 1)
	require.Len(t, c.Patterns[0].Filters, 1)
	assert.Equal(t, parser.Filter{Name: "starts", Args: []string{"--"}}, c.Patterns[0].Filters[0])
}

func TestParseCommandMixedSegments(t *testing.T) {
	segs, err := parser.ParseCommand(".bet <amount>")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, parser.KindText, segs[0].Kind)
	assert.Equal(t, ".bet", segs[0].Text)
	assert.Equal(t, parser.KindCapture, segs[1].Kind)
	assert.Equal(t, "amount", segs[1].Capture.Name)
}

func TestParsePriorityGroup(t *testing.T) {
	segs, err := parser.ParseCommand("?note [ <oldest?: `!oldest`, nocase()> <tags*: starts(`-`,`+`)> <name>]")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, parser.KindPriorityGroup, segs[1].Kind)
	require.Len(t, segs[1].Captures, 3)
	assert.Equal(t, "oldest", segs[1].Captures[0].Name)
	assert.Equal(t, "tags", segs[1].Captures[1].Name)
	assert.Equal(t, "name", segs[1].Captures[2].Name)
}

func TestParseGroupVsPriorityGroup(t *testing.T) {
	segs, err := parser.ParseCommand("{<first> <second>}")
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, parser.KindGroup, segs[0].Kind)
	require.Len(t, segs[0].Captures, 2)
}

func TestParseRegexShorthand(t *testing.T) {
	segs, err := parser.ParseCommand(`<n1: /^\-?\d+$/>`)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	require.Len(t, segs[0].Capture.Patterns, 1)
	f := segs[0].Capture.Patterns[0].Filters[0]
	assert.Equal(t, "regex", f.Name)
	assert.Equal(t, []string{`^\-?\d+$`}, f.Args)
}

func TestParseUnterminatedCaptureIsSyntaxError(t *testing.T) {
	_, err := parser.ParseCommand("<unterminated")
	require.Error(t, err)
	var synErr *parser.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 0, synErr.Line)
}

func TestParseUnterminatedPriorityGroup(t *testing.T) {
	_, err := parser.ParseCommand("[<a> <b>")
	require.Error(t, err)
}

// A filter argument that isn't a quoted string fails in the lexer; the
// resulting SyntaxError must still expose that cause via errors.Is/As,
// not just its flattened message.
func TestParseFilterArgLexerCauseIsReachable(t *testing.T) {
	_, err := parser.ParseCommand("<x: eq(unquoted)>")
	require.Error(t, err)

	var synErr *parser.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.True(t, errors.Is(err, lexer.ErrNoMatch))
}
