package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rotorworks/enigma/internal/config"
)

// RotorsOptions holds flags for the rotors command.
type RotorsOptions struct {
	*RootOptions
}

// NewRotorsCommand creates the rotors command.
func NewRotorsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RotorsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rotors <config-file>",
		Short: "List the rotors in a machine catalog",
		Long: `List the rotors defined by a machine configuration.

For each rotor, shows its name, kind (reflector, fixed, or moving), and
notch symbols. Names are listed in insertion order, matching the
configuration file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRotors(opts, args[0], cmd)
		},
	}

	return cmd
}

// rotorInfo describes one catalog entry in JSON output.
type rotorInfo struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Notches string `json:"notches,omitempty"`
}

func runRotors(opts *RotorsOptions, configPath string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)
	runToken := uuid.Must(uuid.NewV7()).String()

	setup, err := config.Load(configPath)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load configuration", err)
	}

	infos := make([]rotorInfo, 0, setup.Catalog.Len())
	for _, name := range setup.Catalog.Names() {
		rot, _ := setup.Catalog.Lookup(name)
		kind := "fixed"
		switch {
		case rot.Reflects():
			kind = "reflector"
		case rot.Rotates():
			kind = "moving"
		}
		infos = append(infos, rotorInfo{Name: name, Kind: kind, Notches: rot.Notches()})
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		}
		return formatter.Success(infos, runToken)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tNOTCHES")
	for _, info := range infos {
		notches := info.Notches
		if notches == "" {
			notches = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, info.Kind, notches)
	}
	return tw.Flush()
}
