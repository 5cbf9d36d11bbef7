package enigma

import "strings"

// Permutation is a total bijective mapping over the indices of an Alphabet,
// expressed in cycle notation: parenthesized runs of symbols, where each
// symbol maps to the next in its run and the last wraps to the first.
// Symbols not mentioned in any cycle map to themselves.
//
// The mapping is precomputed into flat successor and predecessor tables at
// construction; Permute and Invert are O(1) lookups. Immutable once built.
type Permutation struct {
	alphabet *Alphabet
	succ     []int
	pred     []int
	cycleLen []int
}

// NewPermutation builds a permutation from cycles (cycle-notation text,
// whitespace ignored) over alphabet.
//
// Fails with a configuration error on malformed cycle syntax, on a symbol
// that is not in the alphabet, or on a symbol appearing in more than one
// cycle.
func NewPermutation(cycles string, alphabet *Alphabet) (*Permutation, error) {
	if err := CheckCycleValidity(cycles); err != nil {
		return nil, err
	}

	n := alphabet.Size()
	p := &Permutation{
		alphabet: alphabet,
		succ:     make([]int, n),
		pred:     make([]int, n),
		cycleLen: make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.succ[i] = i
		p.pred[i] = i
		p.cycleLen[i] = 1
	}

	seen := make([]bool, n)
	var cycle []int
	for i := 0; i < len(cycles); i++ {
		switch c := cycles[i]; c {
		case ' ', '\t':
			continue
		case '(':
			cycle = cycle[:0]
		case ')':
			p.closeCycle(cycle)
		default:
			idx, err := alphabet.ToInt(c)
			if err != nil {
				return nil, NewConfigurationError("cycle symbol %q not in alphabet", c)
			}
			if seen[idx] {
				return nil, NewConfigurationError("symbol %q appears in more than one cycle", c)
			}
			seen[idx] = true
			cycle = append(cycle, idx)
		}
	}
	return p, nil
}

// closeCycle links the successor and predecessor entries for one completed
// cycle c0 -> c1 -> ... -> cm -> c0.
func (p *Permutation) closeCycle(cycle []int) {
	k := len(cycle)
	for i, x := range cycle {
		y := cycle[(i+1)%k]
		p.succ[x] = y
		p.pred[y] = x
		p.cycleLen[x] = k
	}
}

// CheckCycleValidity is a pure syntactic check of cycle-notation text:
// balanced parentheses, non-empty parenthesized groups, only permitted
// symbols inside parentheses, exactly one nesting level. Whitespace is
// ignored. Empty text is valid (the identity permutation).
func CheckCycleValidity(cycles string) error {
	cycles = strings.ReplaceAll(cycles, " ", "")
	cycles = strings.ReplaceAll(cycles, "\t", "")
	if cycles == "" {
		return nil
	}
	if cycles[0] != '(' || cycles[len(cycles)-1] != ')' {
		return NewConfigurationError("cycles must be parenthesized groups: %q", cycles)
	}
	depth := 0
	run := 0
	for i := 0; i < len(cycles); i++ {
		switch c := cycles[i]; {
		case c == '(':
			depth++
			if depth != 1 {
				return NewConfigurationError("nested parenthesis in cycles: %q", cycles)
			}
		case c == ')':
			if run == 0 {
				return NewConfigurationError("empty group in cycles: %q", cycles)
			}
			run = 0
			depth--
		case permittedSymbol(c):
			if depth != 1 {
				return NewConfigurationError("symbol %q outside parentheses in cycles", c)
			}
			run++
		default:
			return NewConfigurationError("character %q not permitted in cycles", c)
		}
	}
	if depth != 0 {
		return NewConfigurationError("unbalanced parentheses in cycles: %q", cycles)
	}
	return nil
}

// Alphabet returns the alphabet this permutation operates over.
func (p *Permutation) Alphabet() *Alphabet {
	return p.alphabet
}

// Size returns the size of the permuted alphabet.
func (p *Permutation) Size() int {
	return len(p.succ)
}

// Wrap reduces v modulo the alphabet size with floor semantics: the result
// is always in 0..Size()-1, even for negative v.
func (p *Permutation) Wrap(v int) int {
	r := v % len(p.succ)
	if r < 0 {
		r += len(p.succ)
	}
	return r
}

// Permute returns the image of index v under the permutation,
// wrapping v modulo the alphabet size first.
func (p *Permutation) Permute(v int) int {
	return p.succ[p.Wrap(v)]
}

// Invert returns the preimage of index v under the permutation,
// wrapping v modulo the alphabet size first.
func (p *Permutation) Invert(v int) int {
	return p.pred[p.Wrap(v)]
}

// PermuteChar is the symbol-level form of Permute, converting through the
// alphabet. Fails with a conversion error if ch is not in the alphabet.
func (p *Permutation) PermuteChar(ch byte) (byte, error) {
	i, err := p.alphabet.ToInt(ch)
	if err != nil {
		return 0, err
	}
	return p.chars(p.Permute(i))
}

// InvertChar is the symbol-level form of Invert.
// Fails with a conversion error if ch is not in the alphabet.
func (p *Permutation) InvertChar(ch byte) (byte, error) {
	i, err := p.alphabet.ToInt(ch)
	if err != nil {
		return 0, err
	}
	return p.chars(p.Invert(i))
}

func (p *Permutation) chars(i int) (byte, error) {
	return p.alphabet.ToChar(i)
}

// Derangement reports whether the permutation has no fixed point, i.e.
// every cycle has length at least 2.
func (p *Permutation) Derangement() bool {
	for _, k := range p.cycleLen {
		if k < 2 {
			return false
		}
	}
	return true
}
