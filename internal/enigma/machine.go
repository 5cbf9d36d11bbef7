package enigma

import "strings"

// Machine composes an ordered sequence of rotor slots (slot 0 is the
// reflector) and a plugboard permutation into a per-symbol transform.
//
// numPawls designates how many of the rightmost slots can rotate. Slot
// layout invariants, enforced on InsertRotors:
//   - slot 0 holds a reflector
//   - fixed rotors occupy only slots 1 .. numRotors-numPawls-1
//   - moving rotors occupy only slots numRotors-numPawls .. numRotors-1
//   - no rotor instance appears twice
type Machine struct {
	alphabet  *Alphabet
	catalog   *Catalog
	numRotors int
	numPawls  int
	slots     []*Rotor
	plugboard *Permutation
}

// NewMachine creates a machine with numRotors slots, of which the numPawls
// rightmost can rotate, borrowing rotors from catalog.
//
// Fails with a configuration error unless numRotors > numPawls >= 0.
// The plugboard starts as the identity permutation.
func NewMachine(catalog *Catalog, numRotors, numPawls int) (*Machine, error) {
	if numPawls < 0 || numRotors <= numPawls {
		return nil, NewConfigurationError(
			"need rotors > pawls >= 0, got %d rotors, %d pawls", numRotors, numPawls)
	}
	identity, err := NewPermutation("", catalog.Alphabet())
	if err != nil {
		return nil, err
	}
	return &Machine{
		alphabet:  catalog.Alphabet(),
		catalog:   catalog,
		numRotors: numRotors,
		numPawls:  numPawls,
		plugboard: identity,
	}, nil
}

// Alphabet returns the machine's common alphabet.
func (m *Machine) Alphabet() *Alphabet { return m.alphabet }

// NumRotors returns the number of rotor slots.
func (m *Machine) NumRotors() int { return m.numRotors }

// NumPawls returns the number of pawls, i.e. rotatable rightmost slots.
func (m *Machine) NumPawls() int { return m.numPawls }

// InsertRotors resolves names against the catalog and fills the slot
// sequence; names[0] names the reflector. All rotors start at their 0
// setting with a 0 ring offset.
//
// Fails with a setup error on an unknown name, a duplicated rotor, a wrong
// slot count, or a rotor type in an invalid slot position.
func (m *Machine) InsertRotors(names []string) error {
	if len(names) != m.numRotors {
		return NewSetupError("machine has %d slots, got %d rotor names", m.numRotors, len(names))
	}
	slots := make([]*Rotor, 0, m.numRotors)
	for _, name := range names {
		rot, ok := m.catalog.Lookup(name)
		if !ok {
			return NewSetupError("rotor %s not in catalog", name)
		}
		for _, inserted := range slots {
			if inserted == rot {
				return NewSetupError("rotor %s inserted twice", name)
			}
		}
		slots = append(slots, rot)
	}
	if err := checkSlotPositions(slots, m.numRotors, m.numPawls); err != nil {
		return err
	}
	for _, rot := range slots {
		rot.Set(0)
		rot.SetRingSetting(0)
	}
	m.slots = slots
	return nil
}

// checkSlotPositions validates the reflector/fixed/moving layout invariants.
func checkSlotPositions(slots []*Rotor, numRotors, numPawls int) error {
	for i, rot := range slots {
		switch {
		case rot.Reflects():
			if i != 0 {
				return NewSetupError("reflector %s in slot %d, only slot 0 may reflect", rot.Name(), i)
			}
		case rot.Rotates():
			if i < numRotors-numPawls {
				return NewSetupError("moving rotor %s in non-rotating slot %d", rot.Name(), i)
			}
		default:
			if i == 0 || i >= numRotors-numPawls {
				return NewSetupError("fixed rotor %s in slot %d", rot.Name(), i)
			}
		}
	}
	return nil
}

// SetRotors positions slots 1..numRotors-1 according to setting, whose
// length must be numRotors-1. The first character positions the leftmost
// rotor after the reflector; the reflector itself is never set this way.
//
// Fails with a setup error on a wrong length or a character outside the
// alphabet.
func (m *Machine) SetRotors(setting string) error {
	if len(setting) != m.numRotors-1 {
		return NewSetupError("rotor setting %q has length %d, want %d",
			setting, len(setting), m.numRotors-1)
	}
	if err := m.requireInserted(); err != nil {
		return err
	}
	for i := 1; i < m.numRotors; i++ {
		c := setting[i-1]
		if !m.alphabet.Contains(c) {
			return NewSetupError("setting symbol %q not in alphabet", c)
		}
		if err := m.slots[i].SetChar(c); err != nil {
			return err
		}
	}
	return nil
}

// SetRingSetting sets the ring offsets of slots 1..numRotors-1 according to
// ringSetting, with the same shape as SetRotors. An empty string defaults
// every non-reflector rotor's ring offset to 0.
func (m *Machine) SetRingSetting(ringSetting string) error {
	if err := m.requireInserted(); err != nil {
		return err
	}
	if ringSetting == "" {
		for i := 1; i < m.numRotors; i++ {
			m.slots[i].SetRingSetting(0)
		}
		return nil
	}
	if len(ringSetting) != m.numRotors-1 {
		return NewSetupError("ring setting %q has length %d, want %d",
			ringSetting, len(ringSetting), m.numRotors-1)
	}
	for i := 1; i < m.numRotors; i++ {
		c := ringSetting[i-1]
		if !m.alphabet.Contains(c) {
			return NewSetupError("ring setting symbol %q not in alphabet", c)
		}
		if err := m.slots[i].SetRingSettingChar(c); err != nil {
			return err
		}
	}
	return nil
}

// SetPlugboard replaces the plugboard permutation. The permutation must
// share the machine's alphabet.
func (m *Machine) SetPlugboard(plugboard *Permutation) error {
	if plugboard.Alphabet() != m.alphabet {
		return NewSetupError("plugboard uses a different alphabet")
	}
	m.plugboard = plugboard
	return nil
}

// Convert advances the machine one step and converts the input index c
// through the full signal path. c must be in 0..Size()-1.
func (m *Machine) Convert(c int) (int, error) {
	if err := m.requireInserted(); err != nil {
		return 0, err
	}
	if c < 0 || c >= m.alphabet.Size() {
		return 0, NewConversionError("index %d outside alphabet range 0..%d", c, m.alphabet.Size()-1)
	}

	m.step()

	c = m.plugboard.Permute(c)
	for i := m.numRotors - 1; i >= 0; i-- {
		c = m.slots[i].ConvertForward(c)
	}
	for i := 1; i < m.numRotors; i++ {
		c = m.slots[i].ConvertBackward(c)
	}
	return m.plugboard.Invert(c), nil
}

// step advances the rotors for one keypress.
//
// Notch alignment is snapshotted before anything moves: the last slot can
// always move, and any other slot can move iff it rotates and its right
// neighbor sits at a notch. The scan then advances each movable slot
// together with its right neighbor and skips the scan past that neighbor,
// reproducing the historical double-step coupling. The pairwise rule is
// deliberately kept verbatim; see the stepping trace tests for the pinned
// behavior.
func (m *Machine) step() {
	canMove := make([]bool, m.numRotors)
	for i := 0; i < m.numRotors; i++ {
		canMove[i] = i == m.numRotors-1 ||
			(m.slots[i].Rotates() && m.slots[i+1].AtNotch())
	}
	for i := 0; i < m.numRotors; i++ {
		if !canMove[i] {
			continue
		}
		m.slots[i].Advance()
		if i < m.numRotors-1 {
			m.slots[i+1].Advance()
			i++
		}
	}
}

// ConvertText converts each symbol of msg in strict left-to-right order,
// mutating rotor state between symbols. Not idempotent: the state after
// symbol k depends on having processed symbols 0..k-1 first.
func (m *Machine) ConvertText(msg string) (string, error) {
	var out strings.Builder
	out.Grow(len(msg))
	for i := 0; i < len(msg); i++ {
		idx, err := m.alphabet.ToInt(msg[i])
		if err != nil {
			return "", err
		}
		converted, err := m.Convert(idx)
		if err != nil {
			return "", err
		}
		ch, err := m.alphabet.ToChar(converted)
		if err != nil {
			return "", err
		}
		out.WriteByte(ch)
	}
	return out.String(), nil
}

// Positions returns the current settings of slots 1..numRotors-1 as alphabet
// symbols, leftmost first. Empty if no rotors are inserted.
func (m *Machine) Positions() string {
	if m.slots == nil {
		return ""
	}
	var out strings.Builder
	for i := 1; i < m.numRotors; i++ {
		ch, err := m.alphabet.ToChar(m.slots[i].Setting())
		if err != nil {
			return ""
		}
		out.WriteByte(ch)
	}
	return out.String()
}

func (m *Machine) requireInserted() error {
	if m.slots == nil {
		return NewSetupError("no rotors inserted")
	}
	return nil
}
