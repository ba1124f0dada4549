package cmdmatch_test

import (
	"testing"

	"github.com/koblas/cmdmatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, template string) *cmdmatch.Command {
	t.Helper()
	cmd, err := cmdmatch.Compile(template)
	require.NoError(t, err, template)
	return cmd
}

func TestBet(t *testing.T) {
	cmd := mustCompile(t, ".bet <amount>")

	caps, ok := cmd.Match(".bet 42")
	require.True(t, ok)
	amount, present := caps.GetOnce("amount")
	require.True(t, present)
	assert.Equal(t, "42", amount)
	assert.Equal(t, "", caps.Rest())
}

// Exercises a priority group through the public API, including Keys()
// and IsPresent().
func TestFooGroupAccessors(t *testing.T) {
	cmd := mustCompile(t, "!foo [<flags+: starts(`-`), notrim()> <_*>]")

	caps, ok := cmd.Match("!foo -a -b -c d -e")
	require.True(t, ok)

	assert.Equal(t, []string{"_", "flags"}, caps.Keys())
	assert.True(t, caps.IsPresent("flags"))

	flags, present := caps.GetMany("flags")
	require.True(t, present)
	assert.Equal(t, []string{"-a", "-b", "-c", "-e"}, flags)

	underscore, present := caps.GetMany("_")
	require.True(t, present)
	assert.Equal(t, []string{"d"}, underscore)

	assert.Equal(t, "", caps.Rest())
}

func TestAddRejectsNonNumeric(t *testing.T) {
	cmd := mustCompile(t, `!add <n1: /^\-?\d+$/> <nums+: /^\-?\d+$/>`)

	_, ok := cmd.Match("!add haha 0")
	assert.False(t, ok)

	caps, ok := cmd.Match("!add -42 42 -42 0")
	require.True(t, ok)
	n1, _ := caps.GetOnce("n1")
	assert.Equal(t, "-42", n1)
}

// Compiles despite the leading optional bare capture, because the
// trailing literal makes the boundary deterministic.
func TestOptionalPrefixBeforeLiteralCompiles(t *testing.T) {
	cmd := mustCompile(t, "<maybe-prefix?> bar")

	caps, ok := cmd.Match("bar")
	require.True(t, ok)
	assert.False(t, caps.IsPresent("maybe-prefix"))
	assert.Equal(t, "", caps.Rest())
}

func TestHasPrefix(t *testing.T) {
	cmd := mustCompile(t, ".bet <amount>")
	assert.True(t, cmd.HasPrefix(".bet 42"))
	assert.False(t, cmd.HasPrefix("nope"))
}

// A structurally unmatchable template surfaces as ErrRule through the
// public Error type.
func TestCompileErrorIsRuleKind(t *testing.T) {
	_, err := cmdmatch.Compile("<a*> <b*>")
	require.Error(t, err)

	var cmdErr *cmdmatch.Error
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, cmdmatch.ErrRule, cmdErr.Kind)
}

func TestCompileSyntaxError(t *testing.T) {
	_, err := cmdmatch.Compile("<unterminated")

	var cmdErr *cmdmatch.Error
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, cmdmatch.ErrSyntax, cmdErr.Kind)
}

// A match never errors — it only misses.
func TestMatchMissReturnsFalseNotError(t *testing.T) {
	cmd := mustCompile(t, ".bet <amount>")
	_, ok := cmd.Match("not a bet at all")
	assert.False(t, ok)
}
