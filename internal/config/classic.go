package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rotorworks/enigma/internal/enigma"
)

// LoadClassic parses the historical whitespace-token configuration format:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	5 3
//	I    MQ  (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//	Beta N   (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
//	B    R   (AY) (BR) (CU) ...
//
// The first token is the alphabet, the next two are the rotor and pawl
// counts. Each rotor descriptor is a name, a tag whose first character is
// the type (M moving, N fixed, R reflector) with any remaining characters
// naming moving-rotor notches, and the cycle notation spread over the
// following parenthesized tokens.
func LoadClassic(r io.Reader) (*Setup, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	toks := strings.Fields(string(data))
	pos := 0
	next := func() (string, bool) {
		if pos >= len(toks) {
			return "", false
		}
		tok := toks[pos]
		pos++
		return tok, true
	}

	chars, ok := next()
	if !ok {
		return nil, enigma.NewConfigurationError("configuration truncated: missing alphabet")
	}
	alphabet, err := enigma.NewAlphabet(chars)
	if err != nil {
		return nil, err
	}

	numRotors, err := nextInt(next, "rotor count")
	if err != nil {
		return nil, err
	}
	numPawls, err := nextInt(next, "pawl count")
	if err != nil {
		return nil, err
	}

	catalog := enigma.NewCatalog(alphabet)
	for pos < len(toks) {
		rot, err := readClassicRotor(toks, &pos, alphabet)
		if err != nil {
			return nil, err
		}
		if err := catalog.Add(rot); err != nil {
			return nil, err
		}
	}

	machine, err := enigma.NewMachine(catalog, numRotors, numPawls)
	if err != nil {
		return nil, err
	}
	return &Setup{Alphabet: alphabet, Catalog: catalog, Machine: machine}, nil
}

func nextInt(next func() (string, bool), what string) (int, error) {
	tok, ok := next()
	if !ok {
		return 0, enigma.NewConfigurationError("configuration truncated: missing %s", what)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, enigma.NewConfigurationError("%s %q is not an integer", what, tok)
	}
	return n, nil
}

// readClassicRotor consumes one rotor descriptor starting at *pos.
func readClassicRotor(toks []string, pos *int, alphabet *enigma.Alphabet) (*enigma.Rotor, error) {
	name := toks[*pos]
	*pos++
	if strings.ContainsAny(name, "()") {
		return nil, enigma.NewConfigurationError("rotor name %q must not contain parentheses", name)
	}
	if *pos >= len(toks) {
		return nil, enigma.NewConfigurationError("configuration truncated after rotor name %s", name)
	}
	tag := toks[*pos]
	*pos++
	notches := tag[1:]

	var cycles strings.Builder
	for *pos < len(toks) && strings.ContainsAny(toks[*pos], "()") {
		cycles.WriteString(toks[*pos])
		cycles.WriteByte(' ')
		*pos++
	}
	if err := enigma.CheckCycleValidity(cycles.String()); err != nil {
		return nil, err
	}
	perm, err := enigma.NewPermutation(cycles.String(), alphabet)
	if err != nil {
		return nil, err
	}

	switch tag[0] {
	case 'M':
		return enigma.NewMovingRotor(name, perm, notches)
	case 'N':
		if notches != "" {
			return nil, enigma.NewConfigurationError("fixed rotor %s must not have notches", name)
		}
		return enigma.NewFixedRotor(name, perm), nil
	case 'R':
		if notches != "" {
			return nil, enigma.NewConfigurationError("reflector %s must not have notches", name)
		}
		return enigma.NewReflector(name, perm)
	default:
		return nil, enigma.NewConfigurationError("rotor %s has unknown type tag %q, want M, N, or R", name, tag)
	}
}
