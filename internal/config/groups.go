package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rotorworks/enigma/internal/enigma"
)

// Group is one message group from an input stream: a setting line selecting
// and positioning rotors, followed by the group's message lines. Blank
// message lines are kept as empty strings so the formatter can preserve
// them.
type Group struct {
	// Rotors names the machine's slot sequence, reflector first.
	Rotors []string

	// Setting positions slots 1..numRotors-1, leftmost first.
	Setting string

	// Rings holds the optional ring setting; empty means all-zero offsets.
	Rings string

	// Plugboard holds the optional plugboard cycles; empty means identity.
	Plugboard string

	// Messages are the group's raw message lines, in order.
	Messages []string
}

// ReadGroups parses a message stream for a machine with numRotors slots.
// A setting line starts with '*' and carries numRotors rotor names, a
// setting string, an optional ring setting string, and optional plugboard
// cycles:
//
//	* B Beta III IV I AXLE MAAA (YF) (ZH)
//	FROM HIS SHOULDER HIAWATHA
//
// Fails with a setup error if the stream does not begin with a setting
// line or a setting line is malformed.
func ReadGroups(r io.Reader, numRotors int) ([]Group, error) {
	scanner := bufio.NewScanner(r)
	var groups []Group
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "*") {
			group, err := parseSettingLine(line, numRotors)
			if err != nil {
				return nil, err
			}
			groups = append(groups, *group)
			continue
		}
		if len(groups) == 0 {
			return nil, enigma.NewSetupError("input must begin with a setting line")
		}
		last := &groups[len(groups)-1]
		last.Messages = append(last.Messages, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading messages: %w", err)
	}
	if len(groups) == 0 {
		return nil, enigma.NewSetupError("input has no setting line")
	}
	return groups, nil
}

// parseSettingLine splits a '*' line into rotor names, setting, optional
// ring setting, and optional plugboard cycles.
func parseSettingLine(line string, numRotors int) (*Group, error) {
	fields := strings.Fields(line)

	// Allow both "* B Beta ..." and "*B Beta ...".
	var tokens []string
	if fields[0] == "*" {
		tokens = fields[1:]
	} else {
		tokens = append([]string{strings.TrimPrefix(fields[0], "*")}, fields[1:]...)
	}

	if len(tokens) < numRotors+1 {
		return nil, enigma.NewSetupError(
			"setting line needs %d rotor names and a setting, got %d tokens", numRotors, len(tokens))
	}
	group := &Group{
		Rotors:  tokens[:numRotors],
		Setting: tokens[numRotors],
	}
	rest := tokens[numRotors+1:]

	if len(rest) > 0 && !strings.ContainsAny(rest[0], "()") {
		group.Rings = rest[0]
		rest = rest[1:]
	}
	var plug []string
	for _, tok := range rest {
		if !strings.ContainsAny(tok, "()") {
			return nil, enigma.NewSetupError("unexpected token %q on setting line", tok)
		}
		plug = append(plug, tok)
	}
	group.Plugboard = strings.Join(plug, " ")
	return group, nil
}
