package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEncode_MessageStream(t *testing.T) {
	out, _, err := runCommand(t,
		"encode",
		"--config", filepath.Join("testdata", "standard.yaml"),
		filepath.Join("testdata", "messages.txt"))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithNameSuffix(".golden"))
	g.Assert(t, "encode_messages", []byte(out))
}

func TestEncode_ClassicConfig(t *testing.T) {
	out, _, err := runCommand(t,
		"encode",
		"--config", filepath.Join("testdata", "standard.conf"),
		filepath.Join("testdata", "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, "GUCNI DJZQG\r\n", out)
}

func TestEncode_Reciprocal(t *testing.T) {
	dir := t.TempDir()

	cipherPath := filepath.Join(dir, "cipher.txt")
	_, _, err := runCommand(t,
		"encode",
		"--config", filepath.Join("testdata", "standard.yaml"),
		"--output", cipherPath,
		filepath.Join("testdata", "hello.txt"))
	require.NoError(t, err)

	// Prepend the same setting line and feed the ciphertext back in.
	cipher := mustRead(t, cipherPath)
	roundTrip := filepath.Join(dir, "roundtrip.txt")
	mustWrite(t, roundTrip, "*B Beta I II III AAAA\r\n"+cipher)

	out, _, err := runCommand(t,
		"encode",
		"--config", filepath.Join("testdata", "standard.yaml"),
		roundTrip)
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD\r\n", out)
}

func TestEncode_JSONSummaryToFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")

	stdout, _, err := runCommand(t,
		"encode",
		"--format", "json",
		"--config", filepath.Join("testdata", "standard.yaml"),
		"--output", outPath,
		filepath.Join("testdata", "messages.txt"))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.RunToken)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), data["groups"])
	assert.Equal(t, float64(2), data["messages"])

	assert.Equal(t, "EZQOZ MTZDT SRHWT SOERX XYO\r\n\r\nJZFXP WTUAK BOU\r\n", mustRead(t, outPath))
}

func TestEncode_MissingConfigFlag(t *testing.T) {
	_, _, err := runCommand(t, "encode", filepath.Join("testdata", "hello.txt"))
	require.Error(t, err)
}

func TestEncode_BadConfigPath(t *testing.T) {
	_, _, err := runCommand(t,
		"encode",
		"--config", filepath.Join("testdata", "no-such-file.yaml"),
		filepath.Join("testdata", "hello.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEncode_RejectedConfig(t *testing.T) {
	_, _, err := runCommand(t,
		"encode",
		"--config", filepath.Join("testdata", "bad.yaml"),
		filepath.Join("testdata", "hello.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEncode_InvalidFormat(t *testing.T) {
	_, _, err := runCommand(t,
		"encode",
		"--format", "xml",
		"--config", filepath.Join("testdata", "standard.yaml"),
		filepath.Join("testdata", "hello.txt"))
	require.Error(t, err)
}
