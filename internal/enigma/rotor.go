package enigma

// Rotor is a stateful wiring unit: a permutation plus a rotating position
// (setting) and a wiring offset (ringSetting), both held modulo the alphabet
// size.
//
// Capability flags fixed at construction define the variant:
//   - reflector: reflects, never rotates, permutation must be a derangement
//   - fixed rotor: neither rotates nor reflects
//   - moving rotor: rotates, carries a non-empty set of notch positions
//
// Only a Machine mutates a rotor's setting during conversion; the ring
// setting changes only through the explicit per-group reset.
type Rotor struct {
	name     string
	perm     *Permutation
	rotates  bool
	reflects bool
	notches  map[int]bool

	setting     int
	ringSetting int
}

// NewMovingRotor creates a rotating rotor with notches at the positions of
// the given notch symbols.
//
// Fails with a configuration error if notches is empty, and with a setup
// error if a notch symbol is not in the permutation's alphabet.
func NewMovingRotor(name string, perm *Permutation, notches string) (*Rotor, error) {
	if notches == "" {
		return nil, NewConfigurationError("moving rotor %s needs at least one notch", name)
	}
	r := &Rotor{
		name:    name,
		perm:    perm,
		rotates: true,
		notches: make(map[int]bool, len(notches)),
	}
	for i := 0; i < len(notches); i++ {
		idx, err := perm.Alphabet().ToInt(notches[i])
		if err != nil {
			return nil, NewSetupError("notch %q of rotor %s not in alphabet", notches[i], name)
		}
		r.notches[idx] = true
	}
	return r, nil
}

// NewFixedRotor creates a rotor that neither rotates nor reflects.
func NewFixedRotor(name string, perm *Permutation) *Rotor {
	return &Rotor{name: name, perm: perm}
}

// NewReflector creates a reflecting, non-rotating rotor.
//
// Fails with a configuration error unless the permutation is a derangement;
// a reflector mapping a symbol to itself would let a signal pass straight
// through.
func NewReflector(name string, perm *Permutation) (*Rotor, error) {
	if !perm.Derangement() {
		return nil, NewConfigurationError("reflector %s permutation is not a derangement", name)
	}
	return &Rotor{name: name, perm: perm, reflects: true}, nil
}

// Name returns the rotor's catalog name.
func (r *Rotor) Name() string { return r.name }

// Permutation returns the rotor's permutation in its 0 position.
func (r *Rotor) Permutation() *Permutation { return r.perm }

// Alphabet returns the rotor's alphabet.
func (r *Rotor) Alphabet() *Alphabet { return r.perm.Alphabet() }

// Size returns the size of the rotor's alphabet.
func (r *Rotor) Size() int { return r.perm.Size() }

// Rotates reports whether the rotor has a ratchet and can advance.
func (r *Rotor) Rotates() bool { return r.rotates }

// Reflects reports whether the rotor folds the signal path back.
func (r *Rotor) Reflects() bool { return r.reflects }

// Notches returns the rotor's notch symbols in alphabet order.
// Empty for non-rotating rotors.
func (r *Rotor) Notches() string {
	var out []byte
	for i := 0; i < r.perm.Size(); i++ {
		if r.notches[i] {
			ch, err := r.perm.Alphabet().ToChar(i)
			if err != nil {
				continue
			}
			out = append(out, ch)
		}
	}
	return string(out)
}

// Setting returns the current rotational offset.
func (r *Rotor) Setting() int { return r.setting }

// RingSetting returns the current wiring offset.
func (r *Rotor) RingSetting() int { return r.ringSetting }

// Set positions the rotor at posn, wrapped modulo the alphabet size.
func (r *Rotor) Set(posn int) {
	r.setting = r.perm.Wrap(posn)
}

// SetChar positions the rotor at the index of symbol cposn.
// Fails with a conversion error if cposn is not in the alphabet.
func (r *Rotor) SetChar(cposn byte) error {
	idx, err := r.perm.Alphabet().ToInt(cposn)
	if err != nil {
		return err
	}
	r.Set(idx)
	return nil
}

// SetRingSetting sets the wiring offset to posn, wrapped modulo the
// alphabet size.
func (r *Rotor) SetRingSetting(posn int) {
	r.ringSetting = r.perm.Wrap(posn)
}

// SetRingSettingChar sets the wiring offset to the index of symbol cposn.
// Fails with a conversion error if cposn is not in the alphabet.
func (r *Rotor) SetRingSettingChar(cposn byte) error {
	idx, err := r.perm.Alphabet().ToInt(cposn)
	if err != nil {
		return err
	}
	r.SetRingSetting(idx)
	return nil
}

// ConvertForward converts index p entering the rotor from the right.
// The contact actually reached depends on the rotor's rotation relative to
// its ring: wrap(p + setting - ringSetting) enters the permutation, and the
// output shifts back by the same offset.
func (r *Rotor) ConvertForward(p int) int {
	intoPerm := r.perm.Wrap(p + r.setting - r.ringSetting)
	outOfPerm := r.perm.Permute(intoPerm)
	return r.perm.Wrap(outOfPerm - r.setting + r.ringSetting)
}

// ConvertBackward converts index e entering the rotor from the left,
// applying the inverse permutation with the same offset algebra as
// ConvertForward.
func (r *Rotor) ConvertBackward(e int) int {
	intoPerm := r.perm.Wrap(e + r.setting - r.ringSetting)
	outOfPerm := r.perm.Invert(intoPerm)
	return r.perm.Wrap(outOfPerm - r.setting + r.ringSetting)
}

// AtNotch reports whether the rotor is positioned to allow the rotor to its
// left to advance. Always false for non-rotating rotors.
func (r *Rotor) AtNotch() bool {
	return r.rotates && r.notches[r.perm.Wrap(r.setting)]
}

// Advance moves the rotor one position forward. No-op for non-rotating
// rotors.
func (r *Rotor) Advance() {
	if r.rotates {
		r.setting = r.perm.Wrap(r.setting + 1)
	}
}
