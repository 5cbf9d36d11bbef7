// Package config assembles cipher cores from configuration input.
//
// Two catalog formats are supported:
//   - YAML: a structured document validated against an embedded CUE schema
//     before decoding (strict field checking catches typos)
//   - classic: the historical whitespace-token format (alphabet, rotor and
//     pawl counts, then rotor descriptors with a type/notch tag and cycles)
//
// The package also parses message streams: '*'-prefixed setting lines that
// select and position rotors for a group, followed by the group's message
// lines. Blank lines are preserved so output formatting can mirror them.
package config
