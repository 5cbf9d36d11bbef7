package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "hiawatha.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "hiawatha", s.Name)
	assert.NotEmpty(t, s.Description)
	assert.Equal(t, filepath.Join("testdata", "standard.yaml"), s.ConfigPath)
	require.Len(t, s.Groups, 2)
	assert.Equal(t, []string{"B", "Beta", "III", "IV", "I"}, s.Groups[0].Rotors)
	assert.Equal(t, "AXLE", s.Groups[0].Setting)
	assert.Equal(t, "(YF) (ZH)", s.Groups[0].Plugboard)
	assert.Equal(t, "MAAA", s.Groups[1].Rings)
}

func TestLoadScenario_InlineConfig(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "tinyalpha.yaml"))
	require.NoError(t, err)

	require.NotNil(t, s.Config)
	assert.Equal(t, "ABCD", s.Config.Alphabet)
	assert.Equal(t, 2, s.Config.NumRotors)
	assert.Equal(t, 1, s.Config.NumPawls)
}

func TestLoadScenario_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing name",
			"description: d\nconfig_path: standard.yaml\ngroups:\n  - rotors: [B]\n    setting: A\n    messages: [X]\n",
		},
		{
			"missing description",
			"name: n\nconfig_path: standard.yaml\ngroups:\n  - rotors: [B]\n    setting: A\n    messages: [X]\n",
		},
		{
			"no config source",
			"name: n\ndescription: d\ngroups:\n  - rotors: [B]\n    setting: A\n    messages: [X]\n",
		},
		{
			"no groups",
			"name: n\ndescription: d\nconfig_path: standard.yaml\n",
		},
		{
			"group without setting",
			"name: n\ndescription: d\nconfig_path: standard.yaml\ngroups:\n  - rotors: [B]\n    messages: [X]\n",
		},
		{
			"unknown field",
			"name: n\ndescription: d\nconfig_path: standard.yaml\nflows: []\ngroups:\n  - rotors: [B]\n    setting: A\n    messages: [X]\n",
		},
		{
			"config file missing",
			"name: n\ndescription: d\nconfig_path: no-such.yaml\ngroups:\n  - rotors: [B]\n    setting: A\n    messages: [X]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()

			// Relative config paths resolve against the scenario dir.
			cfg, err := os.ReadFile(filepath.Join("testdata", "standard.yaml"))
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "standard.yaml"), cfg, 0o644))

			path := filepath.Join(dir, "scenario.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err = LoadScenario(path)
			require.Error(t, err)
		})
	}
}

func TestRun_Pangrams(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "pangrams.yaml"))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	require.Len(t, result.Groups, 1)
	g := result.Groups[0]
	require.Len(t, g.Messages, 3)
	assert.Equal(t, "KKUBHMKXDLTBONSNPWQJQFBOYGMNBNSACGY", g.Messages[0].Output)
	assert.Equal(t, "", g.Messages[1].Output)
	assert.Equal(t, "AGUPJGPZYIVNWRQFCFAJBIJMWDDQMRKU", g.Messages[2].Output)
	assert.Equal(t, "AACP", g.Positions)
}

func TestRun_IsDeterministic(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "hiawatha.yaml"))
	require.NoError(t, err)

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, first.FormatTrace(), second.FormatTrace())
}

func TestRun_UnknownRotor(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "hiawatha.yaml"))
	require.NoError(t, err)
	s.Groups[0].Rotors = []string{"B", "Beta", "III", "IV", "Nonesuch"}

	_, err = Run(s)
	require.Error(t, err)
}
