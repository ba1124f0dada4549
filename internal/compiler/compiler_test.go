package compiler_test

import (
	"testing"

	"github.com/koblas/cmdmatch/internal/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAccepts(t *testing.T) {
	tests := []string{
		".bet <amount>",
		`.bible
[
	<book?: starts(` + "`book=`" + `)>
	<chapter?: starts(` + "`chapter=`" + `); starts(` + "`chap=`" + `)>
	<verse?: starts(` + "`verse=`" + `)>
]`,
		"no capture here!",
		"<maybe-prefix?> bar",
	}

	for _, s := range tests {
		_, err := compiler.Compile(s)
		assert.NoError(t, err, s)
	}
}

func TestCompileRejectsNonDeterministicSequence(t *testing.T) {
	// Both are Many0 with no patterns, so both are non-deterministic: a
	// bare capture is only deterministic under the Once quantifier, or
	// when every one of its patterns is.
	_, err := compiler.Compile("<a*> <b*>")
	require.Error(t, err)
	var ruleErr *compiler.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, compiler.RuleNonDeterministicSequence, ruleErr.Kind)
}

func TestCompileEqMixedWithStartsIsError(t *testing.T) {
	_, err := compiler.Compile(`<x: 'a', starts('b')>`)
	require.Error(t, err)
	var filtErr *compiler.FilterError
	require.ErrorAs(t, err, &filtErr)
	assert.Equal(t, compiler.FilterEq, filtErr.Kind)
}

func TestCompileUnknownFilter(t *testing.T) {
	_, err := compiler.Compile("<x: bogus()>")
	require.Error(t, err)
	var filtErr *compiler.FilterError
	require.ErrorAs(t, err, &filtErr)
	assert.Equal(t, compiler.FilterUnknown, filtErr.Kind)
	assert.Equal(t, "bogus", filtErr.Name)
}

func TestCompileEmptyRegexArgsIsMissingArgs(t *testing.T) {
	_, err := compiler.Compile("<x: regex()>")
	require.Error(t, err)
	var filtErr *compiler.FilterError
	require.ErrorAs(t, err, &filtErr)
	assert.Equal(t, compiler.FilterMissingArgs, filtErr.Kind)
}

func TestCompileWordWithoutRegexIsNonDeterministic(t *testing.T) {
	cmd, err := compiler.Compile("<a*>")
	require.NoError(t, err)
	assert.False(t, cmd.Segments[0].IsDeterministic())

	cmd, err = compiler.Compile("<a*: regex('.+')>")
	require.NoError(t, err)
	assert.True(t, cmd.Segments[0].IsDeterministic())

	// A Once capture is always deterministic regardless of patterns.
	cmd, err = compiler.Compile("<a>")
	require.NoError(t, err)
	assert.True(t, cmd.Segments[0].IsDeterministic())
}
