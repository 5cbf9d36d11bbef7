package harness

import (
	"fmt"
	"strings"

	"github.com/rotorworks/enigma/internal/config"
	"github.com/rotorworks/enigma/internal/enigma"
)

// Result holds the outcome of running a scenario: per-group inputs, outputs,
// and final rotor positions, in execution order.
type Result struct {
	Scenario string
	Groups   []GroupResult
}

// GroupResult captures one group's setup, conversions, and the rotor
// positions left behind after its last message.
type GroupResult struct {
	Rotors    []string
	Setting   string
	Rings     string
	Plugboard string
	Messages  []MessageResult
	Positions string
}

// MessageResult pairs one stripped input line with its conversion.
type MessageResult struct {
	Input  string
	Output string
}

// Run executes a scenario and returns its result.
//
// Each scenario runs against a fresh machine built from its configuration.
// Execution is fully deterministic: the same scenario always produces the
// same result.
func Run(scenario *Scenario) (*Result, error) {
	setup, err := scenario.setup()
	if err != nil {
		return nil, fmt.Errorf("failed to build machine: %w", err)
	}
	m := setup.Machine

	result := &Result{Scenario: scenario.Name}
	for gi, g := range scenario.Groups {
		if err := applyGroup(setup, &g); err != nil {
			return nil, fmt.Errorf("group %d: %w", gi+1, err)
		}

		gr := GroupResult{
			Rotors:    g.Rotors,
			Setting:   g.Setting,
			Rings:     g.Rings,
			Plugboard: g.Plugboard,
		}
		for _, line := range g.Messages {
			input := stripBlanks(line)
			output := ""
			if input != "" {
				output, err = m.ConvertText(input)
				if err != nil {
					return nil, fmt.Errorf("group %d: %w", gi+1, err)
				}
			}
			gr.Messages = append(gr.Messages, MessageResult{Input: input, Output: output})
		}
		gr.Positions = m.Positions()
		result.Groups = append(result.Groups, gr)
	}

	return result, nil
}

// applyGroup configures the machine for one group.
func applyGroup(setup *config.Setup, g *GroupStep) error {
	m := setup.Machine
	if err := m.InsertRotors(g.Rotors); err != nil {
		return err
	}
	if err := m.SetRotors(g.Setting); err != nil {
		return err
	}
	if err := m.SetRingSetting(g.Rings); err != nil {
		return err
	}
	plug, err := enigma.NewPermutation(g.Plugboard, setup.Alphabet)
	if err != nil {
		return err
	}
	return m.SetPlugboard(plug)
}

// FormatTrace renders the result as a deterministic text trace for golden
// file comparison. One header line per group, then an in/out pair per
// message, then the post-group rotor positions.
func (r *Result) FormatTrace() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.Scenario)
	for i, g := range r.Groups {
		fmt.Fprintf(&b, "group %d: rotors=%s setting=%s rings=%s plugboard=%s\n",
			i+1, strings.Join(g.Rotors, " "), g.Setting, g.Rings, g.Plugboard)
		for _, msg := range g.Messages {
			fmt.Fprintf(&b, "  in:  %s\n", msg.Input)
			fmt.Fprintf(&b, "  out: %s\n", msg.Output)
		}
		fmt.Fprintf(&b, "  pos: %s\n", g.Positions)
	}
	return []byte(b.String())
}

// stripBlanks removes spaces and tabs from a message line.
func stripBlanks(line string) string {
	line = strings.ReplaceAll(line, " ", "")
	return strings.ReplaceAll(line, "\t", "")
}
