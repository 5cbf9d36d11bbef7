package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rotorworks/enigma/internal/config"
	"github.com/rotorworks/enigma/internal/enigma"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Config string
	Output string
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode [input-file]",
		Short: "Convert message groups through a configured machine",
		Long: `Convert message groups through a configured rotor machine.

Input is read from the given file, or from standard input when no file is
given. Every group starts with a '*' setting line naming the rotors, the
rotor setting, an optional ring setting, and optional plugboard cycles;
the group's message lines follow. Output is written in five-symbol groups
with CRLF line endings, preserving blank lines.

Encryption and decryption are the same operation: feeding ciphertext
through an identically configured machine yields the plaintext.

Example:
  enigma encode --config machine.yaml messages.txt
  enigma encode --config machine.conf --output cipher.txt messages.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runEncode(opts, input, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to machine configuration (required)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// encodeSummary is the JSON payload for a completed encode run.
type encodeSummary struct {
	Groups   int `json:"groups"`
	Messages int `json:"messages"`
	Symbols  int `json:"symbols"`
}

func runEncode(opts *EncodeOptions, inputPath string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	runToken := uuid.Must(uuid.NewV7()).String()
	slog.Info("encode starting", "run_token", runToken, "config", opts.Config)

	setup, err := config.Load(opts.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	slog.Debug("catalog ready",
		"alphabet_size", setup.Alphabet.Size(),
		"rotors", setup.Catalog.Len(),
		"slots", setup.Machine.NumRotors(),
		"pawls", setup.Machine.NumPawls())

	in, closeIn, err := openInput(inputPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open input", err)
	}
	defer closeIn()

	groups, err := config.ReadGroups(in, setup.Machine.NumRotors())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to parse message stream", err)
	}

	out, closeOut, err := openOutput(opts.Output, cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open output", err)
	}
	defer closeOut()

	summary, err := convertGroups(setup, groups, out)
	if err != nil {
		return WrapExitError(ExitFailure, "conversion failed", err)
	}
	slog.Info("encode finished",
		"run_token", runToken,
		"groups", summary.Groups,
		"messages", summary.Messages,
		"symbols", summary.Symbols)

	// Ciphertext already went to the output writer; the JSON summary goes
	// to stdout only when it will not interleave with the ciphertext.
	if opts.Format == "json" && opts.Output != "" {
		formatter := &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		}
		return formatter.Success(summary, runToken)
	}
	return nil
}

// convertGroups runs every message group through the machine, writing
// formatted output as it goes. Setup state is reset per group; no group is
// partially applied once an error is raised.
func convertGroups(setup *config.Setup, groups []config.Group, out io.Writer) (*encodeSummary, error) {
	summary := &encodeSummary{Groups: len(groups)}
	m := setup.Machine

	for gi, g := range groups {
		if err := setUpGroup(setup, &g); err != nil {
			return nil, fmt.Errorf("group %d: %w", gi+1, err)
		}
		for _, line := range g.Messages {
			msg := StripBlanks(line)
			if msg == "" {
				if err := WriteMessageLine(out, ""); err != nil {
					return nil, err
				}
				continue
			}
			converted, err := m.ConvertText(msg)
			if err != nil {
				return nil, fmt.Errorf("group %d: %w", gi+1, err)
			}
			if err := WriteMessageLine(out, converted); err != nil {
				return nil, err
			}
			summary.Messages++
			summary.Symbols += len(converted)
		}
	}
	return summary, nil
}

// setUpGroup applies one group's setting line to the machine.
func setUpGroup(setup *config.Setup, g *config.Group) error {
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

func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string, cmd *cobra.Command) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
