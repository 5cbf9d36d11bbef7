package enigma

// Alphabet is an immutable bijection between a finite ordered set of symbols
// and the indices 0..Size()-1.
//
// Symbols are single bytes drawn from the printable ASCII range, excluding
// space, '(', ')', and '*' (those are structural characters in cycle
// notation and configuration input).
type Alphabet struct {
	chars   []byte
	indices map[byte]int
}

// NewAlphabet builds an alphabet from chars, with character k at index k.
//
// Fails with a configuration error if fewer than 2 symbols are supplied,
// if a symbol lies outside the permitted printable range, or if any symbol
// is duplicated.
func NewAlphabet(chars string) (*Alphabet, error) {
	if len(chars) < 2 {
		return nil, NewConfigurationError("alphabet needs at least 2 symbols, got %d", len(chars))
	}
	a := &Alphabet{
		chars:   []byte(chars),
		indices: make(map[byte]int, len(chars)),
	}
	for i := 0; i < len(a.chars); i++ {
		c := a.chars[i]
		if !permittedSymbol(c) {
			return nil, NewConfigurationError("symbol %q not permitted in an alphabet", c)
		}
		if _, dup := a.indices[c]; dup {
			return nil, NewConfigurationError("duplicate symbol %q in alphabet", c)
		}
		a.indices[c] = i
	}
	return a, nil
}

// permittedSymbol reports whether c may appear in an alphabet: printable
// ASCII minus space, '(', ')', and '*'.
func permittedSymbol(c byte) bool {
	return (c >= '!' && c <= '\'') || (c >= '+' && c <= '~')
}

// Size returns the number of symbols in the alphabet.
func (a *Alphabet) Size() int {
	return len(a.chars)
}

// Contains reports whether ch is a symbol of the alphabet.
func (a *Alphabet) Contains(ch byte) bool {
	_, ok := a.indices[ch]
	return ok
}

// ToChar returns symbol number index.
// Fails with a conversion error if index is outside 0..Size()-1.
func (a *Alphabet) ToChar(index int) (byte, error) {
	if index < 0 || index >= len(a.chars) {
		return 0, NewConversionError("index %d outside alphabet range 0..%d", index, len(a.chars)-1)
	}
	return a.chars[index], nil
}

// ToInt returns the index of symbol ch. This is the inverse of ToChar.
// Fails with a conversion error if ch is not in the alphabet.
func (a *Alphabet) ToInt(ch byte) (int, error) {
	i, ok := a.indices[ch]
	if !ok {
		return 0, NewConversionError("symbol %q not in alphabet", ch)
	}
	return i, nil
}
