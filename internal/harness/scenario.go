package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rotorworks/enigma/internal/config"
)

// Scenario defines a conformance test scenario.
// Scenarios validate cipher behavior by running message groups through a
// configured machine and comparing the resulting trace against golden files.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// ConfigPath points at a machine configuration file (YAML or classic
	// format). Relative paths resolve against the scenario file location.
	// Exactly one of ConfigPath and Config must be set.
	ConfigPath string `yaml:"config_path,omitempty"`

	// Config is an inline machine configuration document.
	Config *config.Document `yaml:"config,omitempty"`

	// Groups are the message groups to run, in order.
	Groups []GroupStep `yaml:"groups"`
}

// GroupStep is one message group: a machine setup plus its messages.
type GroupStep struct {
	// Rotors names the rotors to insert, reflector first.
	Rotors []string `yaml:"rotors"`

	// Setting is the initial rotor setting for slots 1..N-1.
	Setting string `yaml:"setting"`

	// Rings is the optional ring setting; empty means all-zero rings.
	Rings string `yaml:"rings,omitempty"`

	// Plugboard holds optional plugboard cycles in cycle notation.
	Plugboard string `yaml:"plugboard,omitempty"`

	// Messages are the lines to convert. Blanks are stripped before
	// conversion; an empty line stays empty in the trace.
	Messages []string `yaml:"messages"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Config paths resolve against the scenario file, not the cwd.
	if scenario.ConfigPath != "" && !filepath.IsAbs(scenario.ConfigPath) {
		scenario.ConfigPath = filepath.Join(filepath.Dir(path), scenario.ConfigPath)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if (s.ConfigPath == "") == (s.Config == nil) {
		return fmt.Errorf("exactly one of config_path and config is required")
	}

	if s.ConfigPath != "" {
		if _, err := os.Stat(s.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", s.ConfigPath)
		}
	}

	if len(s.Groups) == 0 {
		return fmt.Errorf("groups list is required and must be non-empty")
	}

	for i, g := range s.Groups {
		if len(g.Rotors) == 0 {
			return fmt.Errorf("groups[%d]: rotors is required", i)
		}
		if g.Setting == "" {
			return fmt.Errorf("groups[%d]: setting is required", i)
		}
		if len(g.Messages) == 0 {
			return fmt.Errorf("groups[%d]: messages is required", i)
		}
	}

	return nil
}

// setup builds the machine setup a scenario runs against.
func (s *Scenario) setup() (*config.Setup, error) {
	if s.Config != nil {
		return config.Build(s.Config)
	}
	return config.Load(s.ConfigPath)
}
