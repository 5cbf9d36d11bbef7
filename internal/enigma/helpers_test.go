package enigma

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// rotorSpec describes one catalog entry for tests.
type rotorSpec struct {
	name    string
	kind    string // "moving" | "fixed" | "reflector"
	cycles  string
	notches string
}

// standardRotors is the historical wheel set used across the package tests.
var standardRotors = []rotorSpec{
	{"I", "moving", "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)", "Q"},
	{"II", "moving", "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT)", "E"},
	{"III", "moving", "(ABDHPEJT) (CFLVMZOYQIRWUKXSG)", "V"},
	{"IV", "moving", "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)", "J"},
	{"V", "moving", "(AVOLDRWFIUQ) (BZKSMNHYC) (EGTJPX)", "Z"},
	{"VI", "moving", "(AJQDVLEOZWIYTS) (CGMNHFUX) (BPRK)", "ZM"},
	{"VII", "moving", "(ANOUPFRIMBZTLWKSVEGCJYDHXQ)", "ZM"},
	{"VIII", "moving", "(AFLSETWUNDHOZVICQ) (BKJ) (GXY) (MPR)", "ZM"},
	{"Beta", "fixed", "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)", ""},
	{"Gamma", "fixed", "(AFNIRLBSQWVXGUZDKMTPCOYJHE)", ""},
	{"B", "reflector", "(AY) (BR) (CU) (DH) (EQ) (FS) (GL) (IP) (JX) (KN) (MO) (TZ) (VW)", ""},
	{"C", "reflector", "(AF) (BV) (CP) (DJ) (EI) (GO) (HY) (KR) (LZ) (MX) (NW) (QT) (SU)", ""},
}

func newTestAlphabet(t *testing.T) *Alphabet {
	t.Helper()
	a, err := NewAlphabet(testChars)
	require.NoError(t, err)
	return a
}

func newTestPermutation(t *testing.T, cycles string, a *Alphabet) *Permutation {
	t.Helper()
	p, err := NewPermutation(cycles, a)
	require.NoError(t, err)
	return p
}

// newStandardCatalog builds the full standard wheel set over A..Z.
func newStandardCatalog(t *testing.T) *Catalog {
	t.Helper()
	a := newTestAlphabet(t)
	cat := NewCatalog(a)
	for _, spec := range standardRotors {
		perm := newTestPermutation(t, spec.cycles, a)
		var rot *Rotor
		var err error
		switch spec.kind {
		case "moving":
			rot, err = NewMovingRotor(spec.name, perm, spec.notches)
		case "fixed":
			rot = NewFixedRotor(spec.name, perm)
		case "reflector":
			rot, err = NewReflector(spec.name, perm)
		}
		require.NoError(t, err)
		require.NoError(t, cat.Add(rot))
	}
	return cat
}

// newTestMachine builds, inserts, and positions a machine in one call.
func newTestMachine(t *testing.T, numRotors, numPawls int, names []string, setting, rings, plugboard string) *Machine {
	t.Helper()
	cat := newStandardCatalog(t)
	m, err := NewMachine(cat, numRotors, numPawls)
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors(names))
	require.NoError(t, m.SetRotors(setting))
	require.NoError(t, m.SetRingSetting(rings))
	if plugboard != "" {
		plug := newTestPermutation(t, plugboard, cat.Alphabet())
		require.NoError(t, m.SetPlugboard(plug))
	}
	return m
}
