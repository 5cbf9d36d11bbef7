// Package enigma implements the rotor-cipher core: alphabets, cycle-notation
// permutations, rotors, and the machine that composes them into a stateful
// encryption/decryption transform.
//
// ARCHITECTURE:
//
// Strictly Ordered, Single-Threaded Core:
// A Machine is a deterministic, synchronous transform. Symbol k's output
// depends on the rotor positions left behind by exactly k prior conversions,
// so callers must feed a message as an ordered sequence on one Machine at a
// time. There is no I/O, no background work, and no locking; concurrent use
// requires confining a Machine (and its inserted rotors) to one logical
// thread of control.
//
// Conversion Flow:
//  1. Stepping: a pre-step snapshot of notch alignment decides which rotors
//     advance; adjacent rotors advance pairwise, reproducing the historical
//     double-step anomaly.
//  2. Signal path: plugboard -> rotors right-to-left (forward) -> reflector
//     -> rotors left-to-right (backward) -> plugboard inverse.
//
// Ownership:
// A Catalog is the sole owner of Rotor instances. A Machine borrows rotors
// from the catalog on InsertRotors and is the only mutator of a rotor's
// rotational setting; ring settings change only through the explicit
// per-group SetRingSetting reset.
//
// CRITICAL PATTERNS:
//
// Floor Modulo:
// All offset arithmetic wraps with floor modulo, never truncating modulo.
// Results stay in 0..size-1 even for negative operands.
//
// Flat Cycle Tables:
// Permutations precompute successor and predecessor arrays at construction.
// Lookup is O(1) with no dynamic traversal and no node graphs.
package enigma
