package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/koblas/cmdmatch/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefs(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefinitionsValidatesRequiredFields(t *testing.T) {
	path := writeDefs(t, `[{"name": "", "template": ".bet <amount>"}]`)
	_, err := registry.LoadDefinitions(path)
	assert.Error(t, err)
}

func TestBuildAndDispatch(t *testing.T) {
	path := writeDefs(t, `[
		{"name": "bet", "template": ".bet <amount>", "description": "place a bet"},
		{"name": "roll", "template": ".roll <sides>", "description": "roll a die"}
	]`)

	defs, err := registry.LoadDefinitions(path)
	require.NoError(t, err)

	reg, err := registry.Build(defs)
	require.NoError(t, err)
	assert.Equal(t, []string{"bet", "roll"}, reg.Names())

	name, caps, ok := reg.Dispatch(".roll 20")
	require.True(t, ok)
	assert.Equal(t, "roll", name)
	sides, present := caps.GetOnce("sides")
	require.True(t, present)
	assert.Equal(t, "20", sides)

	_, _, ok = reg.Dispatch("not a command")
	assert.False(t, ok)

	desc, ok := reg.Describe("bet")
	require.True(t, ok)
	assert.Equal(t, "place a bet", desc)
}

func TestBuildRejectsUncompilableTemplate(t *testing.T) {
	defs := []registry.Definition{{Name: "bad", Template: "<unterminated"}}
	_, err := registry.Build(defs)
	assert.Error(t, err)
}
