// Package harness provides a conformance testing framework for the rotor
// machine.
//
// Scenarios are YAML documents naming a machine configuration and a sequence
// of message groups. The harness runs every group against a fresh machine,
// captures a deterministic text trace (setting line, input, output, and
// post-group rotor positions), and compares the trace against golden files.
//
// Determinism is the point: the machine has no clocks, no randomness, and no
// I/O, so a scenario's trace is a pure function of its inputs. Golden files
// serve as the source of truth for expected cipher behavior; regenerate them
// with:
//
//	go test ./internal/harness -update
package harness
