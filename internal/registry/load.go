package registry

import (
	"bytes"
	_ "embed"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/zietsense/zietsense/internal/errors"
)

//go:embed machines.yaml
var builtinTable []byte

// table is the on-disk shape of a machine table.
type table struct {
	Default  string    `yaml:"default"`
	Machines []Machine `yaml:"machines"`
}

var builtin = sync.OnceValue(func() *Registry {
	r, err := Parse(builtinTable)
	if err != nil {
		panic("registry: built-in machine table is invalid: " + err.Error())
	}
	return r
})

// Builtin returns the machine table compiled into the binary.
func Builtin() *Registry {
	return builtin()
}

// Parse decodes a YAML machine table. Unknown keys are rejected so typos in
// hand-edited tables surface instead of silently dropping data.
func Parse(data []byte) (*Registry, error) {
	var t table
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrRegistry,
			"Machine table is not valid YAML",
			"Check the syntax against the built-in table (zietsense machines --json).")
	}
	return New(t.Machines, t.Default)
}

// Load reads a YAML machine table from path.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrRegistry,
			"Couldn't read machine table: "+path,
			"Check the registry path in .zietsense.yaml or --registry.")
	}
	return Parse(data)
}
