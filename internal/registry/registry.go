package registry

import (
	"github.com/koblas/cmdmatch"
	"github.com/pkg/errors"
)

// entry pairs a Definition with its compiled command.
type entry struct {
	def     Definition
	command *cmdmatch.Command
}

// Registry holds every compiled command, in definition order, and drives
// them against incoming text in that order.
type Registry struct {
	entries []entry
}

// Build compiles every definition. It fails eagerly — at load time rather
// than dispatch time — keeping compile errors separate from match misses.
func Build(defs []Definition) (*Registry, error) {
	entries := make([]entry, 0, len(defs))
	for _, d := range defs {
		cmd, err := cmdmatch.Compile(d.Template)
		if err != nil {
			return nil, errors.Wrapf(err, "compiling %q", d.Name)
		}
		entries = append(entries, entry{def: d, command: cmd})
	}
	return &Registry{entries: entries}, nil
}

// Dispatch tries every registered command in definition order, using
// HasPrefix to skip obviously-wrong candidates before paying for a full
// Match. It returns the first command whose full match succeeds.
func (r *Registry) Dispatch(input string) (name string, caps *cmdmatch.Captures, ok bool) {
	for _, e := range r.entries {
		if !e.command.HasPrefix(input) {
			continue
		}
		if c, matched := e.command.Match(input); matched {
			return e.def.Name, c, true
		}
	}
	return "", nil, false
}

// Names returns every registered command name, in definition order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.def.Name
	}
	return names
}

// Describe returns the human description registered for name, if any.
func (r *Registry) Describe(name string) (string, bool) {
	for _, e := range r.entries {
		if e.def.Name == name {
			return e.def.Description, true
		}
	}
	return "", false
}
