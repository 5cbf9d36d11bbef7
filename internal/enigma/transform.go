package enigma

import "golang.org/x/text/transform"

// Transformer adapts a Machine to golang.org/x/text/transform.Transformer,
// so a message stream can be converted with transform.NewReader or
// transform.NewWriter.
//
// Alphabet symbols are converted through the machine; spaces and tabs are
// dropped (they carry no signal); carriage returns and line feeds pass
// through unchanged. Any other byte fails with a conversion error.
//
// The transformer carries no state of its own: rotor positions live in the
// Machine, so Reset does not rewind them. Callers wanting a fresh start
// must re-run the machine's per-group setup.
type Transformer struct {
	m *Machine
}

// NewTransformer wraps m. The machine must have rotors inserted before the
// first Transform call.
func NewTransformer(m *Machine) *Transformer {
	return &Transformer{m: m}
}

// Transform implements transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		switch {
		case c == ' ' || c == '\t':
			nSrc++
		case c == '\r' || c == '\n':
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
		default:
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			idx, err := t.m.alphabet.ToInt(c)
			if err != nil {
				return nDst, nSrc, err
			}
			converted, err := t.m.Convert(idx)
			if err != nil {
				return nDst, nSrc, err
			}
			ch, err := t.m.alphabet.ToChar(converted)
			if err != nil {
				return nDst, nSrc, err
			}
			dst[nDst] = ch
			nDst++
			nSrc++
		}
	}
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer. It is a no-op: machine state is
// owned by the caller, not the transformer.
func (t *Transformer) Reset() {}
