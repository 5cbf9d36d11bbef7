package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rotorworks/enigma/internal/enigma"
)

// Rotor type tags accepted in YAML documents.
const (
	TypeMoving    = "moving"
	TypeFixed     = "fixed"
	TypeReflector = "reflector"
)

// Document is the YAML catalog format.
type Document struct {
	// Alphabet lists the machine's symbols in index order.
	Alphabet string `yaml:"alphabet"`

	// NumRotors is the number of rotor slots (slot 0 is the reflector).
	NumRotors int `yaml:"num_rotors"`

	// NumPawls is the number of rightmost slots capable of rotating.
	NumPawls int `yaml:"num_pawls"`

	// Rotors defines the catalog entries.
	Rotors []RotorDoc `yaml:"rotors"`
}

// RotorDoc defines one catalog rotor.
type RotorDoc struct {
	Name string `yaml:"name"`

	// Type is one of "moving", "fixed", or "reflector".
	Type string `yaml:"type"`

	// Cycles is the permutation in cycle notation.
	Cycles string `yaml:"cycles"`

	// Notches lists notch symbols; required for moving rotors,
	// forbidden otherwise.
	Notches string `yaml:"notches,omitempty"`
}

// Setup is a fully assembled cipher core: the shared alphabet, the rotor
// catalog owning all rotor instances, and a machine borrowing from it.
type Setup struct {
	Alphabet *enigma.Alphabet
	Catalog  *enigma.Catalog
	Machine  *enigma.Machine
}

// Load reads a catalog configuration from path, dispatching on extension:
// .yaml/.yml documents are schema-validated and decoded; anything else is
// parsed as the classic token format.
func Load(path string) (*Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return LoadClassic(bytes.NewReader(data))
	}
}

// LoadYAML validates data against the embedded CUE schema, decodes it with
// strict field checking, and assembles the catalog and machine.
func LoadYAML(data []byte) (*Setup, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, enigma.NewConfigurationError("parsing config YAML: %v", err)
	}
	return Build(&doc)
}

// Build assembles a Setup from a decoded document: alphabet, then
// permutations and rotors into a catalog, then the machine.
func Build(doc *Document) (*Setup, error) {
	alphabet, err := enigma.NewAlphabet(doc.Alphabet)
	if err != nil {
		return nil, err
	}
	catalog := enigma.NewCatalog(alphabet)

	for _, rd := range doc.Rotors {
		rot, err := buildRotor(&rd, alphabet)
		if err != nil {
			return nil, err
		}
		if err := catalog.Add(rot); err != nil {
			return nil, err
		}
	}

	machine, err := enigma.NewMachine(catalog, doc.NumRotors, doc.NumPawls)
	if err != nil {
		return nil, err
	}
	return &Setup{Alphabet: alphabet, Catalog: catalog, Machine: machine}, nil
}

func buildRotor(rd *RotorDoc, alphabet *enigma.Alphabet) (*enigma.Rotor, error) {
	if rd.Name == "" {
		return nil, enigma.NewConfigurationError("rotor with empty name")
	}
	if strings.ContainsAny(rd.Name, "()") {
		return nil, enigma.NewConfigurationError("rotor name %q must not contain parentheses", rd.Name)
	}
	if err := enigma.CheckCycleValidity(rd.Cycles); err != nil {
		return nil, err
	}
	perm, err := enigma.NewPermutation(rd.Cycles, alphabet)
	if err != nil {
		return nil, err
	}

	switch rd.Type {
	case TypeMoving:
		return enigma.NewMovingRotor(rd.Name, perm, rd.Notches)
	case TypeFixed:
		if rd.Notches != "" {
			return nil, enigma.NewConfigurationError("fixed rotor %s must not have notches", rd.Name)
		}
		return enigma.NewFixedRotor(rd.Name, perm), nil
	case TypeReflector:
		if rd.Notches != "" {
			return nil, enigma.NewConfigurationError("reflector %s must not have notches", rd.Name)
		}
		return enigma.NewReflector(rd.Name, perm)
	default:
		return nil, enigma.NewConfigurationError("rotor %s has unknown type %q", rd.Name, rd.Type)
	}
}
