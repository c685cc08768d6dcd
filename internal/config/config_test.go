package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flowsmith.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

// chdir moves into an empty directory so no stray flowsmith.yaml is found.
func chdir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "generic", cfg.Industry)
	assert.Equal(t, OutputText, cfg.Output)
	assert.ElementsMatch(t, []string{"finance", "hcm"}, cfg.Overlays)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, 20, cfg.History.MaxResults)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.File)
}

func TestLoad_File(t *testing.T) {
	chdir(t)
	path := writeConfig(t, `
industry: HCM
overlays: [hcm]
output: json
history:
  enabled: false
  max_results: 5
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hcm", cfg.Industry)
	assert.Equal(t, []string{"hcm"}, cfg.Overlays)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 5, cfg.History.MaxResults)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_FoundInWorkingDir(t *testing.T) {
	chdir(t)
	require.NoError(t, os.WriteFile("flowsmith.yaml", []byte("industry: finance\n"), 0600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "finance", cfg.Industry)
	assert.NotEmpty(t, cfg.File)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	chdir(t)
	path := writeConfig(t, "industry: hcm\noutput: yaml\n")
	t.Setenv("FLOWSMITH_INDUSTRY", "finance")
	t.Setenv("FLOWSMITH_HISTORY_ENABLED", "false")
	t.Setenv("FLOWSMITH_OVERLAYS", "finance, hcm")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "finance", cfg.Industry)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, []string{"finance", "hcm"}, cfg.Overlays)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	chdir(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	chdir(t)
	path := writeConfig(t, "industry: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"blank industry becomes generic", func(c *Config) { c.Industry = "  " }, false},
		{"bad output", func(c *Config) { c.Output = "xml" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "logfmt" }, true},
		{"unknown overlay", func(c *Config) { c.Overlays = []string{"retail"} }, true},
		{"no overlays", func(c *Config) { c.Overlays = nil }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, c.Industry)
		})
	}
}

func TestValidate_FixesMaxResults(t *testing.T) {
	c := Default()
	c.History.MaxResults = 0
	require.NoError(t, c.Validate())
	assert.Equal(t, 20, c.History.MaxResults)
}
