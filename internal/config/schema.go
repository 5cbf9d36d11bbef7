package config

import (
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/rotorworks/enigma/internal/enigma"
)

// configSchema constrains YAML catalog documents before decoding. Shape
// errors (wrong types, unknown rotor type tags, bad counts) surface here
// with CUE's path-qualified messages; semantic validation happens later in
// Build.
const configSchema = `
#Rotor: {
	name:     string & != ""
	type:     "moving" | "fixed" | "reflector"
	cycles:   string
	notches?: string
}

#Config: {
	alphabet:   string & =~ "^..+$"
	num_rotors: int & >0
	num_pawls:  int & >=0
	rotors: [...#Rotor]
}
`

var (
	schemaOnce  sync.Once
	schemaValue cue.Value
)

// validateSchema checks a YAML document against the embedded CUE schema.
func validateSchema(data []byte) error {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		schemaValue = ctx.CompileString(configSchema).LookupPath(cue.ParsePath("#Config"))
	})
	if err := schemaValue.Err(); err != nil {
		return enigma.NewConfigurationError("config schema: %v", err)
	}
	if err := cueyaml.Validate(data, schemaValue); err != nil {
		return enigma.NewConfigurationError("config does not match schema: %v", err)
	}
	return nil
}
