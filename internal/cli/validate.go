package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rotorworks/enigma/internal/config"
	"github.com/rotorworks/enigma/internal/enigma"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a machine configuration",
		Long: `Validate a machine configuration without converting anything.

Checks schema shape (for YAML configurations), alphabet and cycle
well-formedness, rotor type constraints, and the slot arithmetic
(num_rotors > num_pawls >= 0). Exits 0 when the configuration is usable,
1 when it is rejected.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	return cmd
}

// validateSummary is the JSON payload for a successful validation.
type validateSummary struct {
	Config    string `json:"config"`
	Alphabet  int    `json:"alphabet_size"`
	Rotors    int    `json:"rotors"`
	NumRotors int    `json:"num_rotors"`
	NumPawls  int    `json:"num_pawls"`
}

func runValidate(opts *ValidateOptions, configPath string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)
	runToken := uuid.Must(uuid.NewV7()).String()

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	setup, err := config.Load(configPath)
	if err != nil {
		code := string(enigma.ErrCodeConfiguration)
		var coreErr *enigma.Error
		if errors.As(err, &coreErr) {
			code = string(coreErr.Code)
		}
		_ = formatter.Error(code, err.Error(), nil)
		return WrapExitError(ExitFailure, "configuration rejected", err)
	}

	summary := validateSummary{
		Config:    configPath,
		Alphabet:  setup.Alphabet.Size(),
		Rotors:    setup.Catalog.Len(),
		NumRotors: setup.Machine.NumRotors(),
		NumPawls:  setup.Machine.NumPawls(),
	}

	if opts.Format == "json" {
		return formatter.Success(summary, runToken)
	}
	fmt.Fprintf(cmd.OutOrStdout(),
		"%s: ok (%d-symbol alphabet, %d rotors in catalog, %d slots, %d pawls)\n",
		configPath, summary.Alphabet, summary.Rotors, summary.NumRotors, summary.NumPawls)
	return nil
}
