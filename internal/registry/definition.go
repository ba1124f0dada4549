// Package registry loads a JSON-described set of command templates and
// compiles them into a dispatchable set, the way pkg/handler's
// LoadServeConfiguration loaded a JSON-described set of serving rules.
package registry

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"
	validator "gopkg.in/go-playground/validator.v9"
)

// Definition is one entry of the on-disk command file: a name, the
// template text to compile, and a human description for help output.
type Definition struct {
	Name        string `json:"name" validate:"min=1"`
	Template    string `json:"template" validate:"min=1"`
	Description string `json:"description"`
}

var validate = validator.New()

// LoadDefinitions reads and validates a JSON array of Definition from
// filepath. Compilation of the templates themselves happens separately, in
// Build — a malformed JSON document is distinguished here from a template
// that fails to compile.
func LoadDefinitions(filepath string) ([]Definition, error) {
	raw, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filepath)
	}

	var defs []Definition
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filepath)
	}

	for i, d := range defs {
		if err := validate.Struct(d); err != nil {
			return nil, errors.Wrapf(err, "definition %d (%q)", i, d.Name)
		}
	}

	return defs, nil
}
