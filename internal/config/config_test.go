package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "input_dir: ./boms\n"))
	require.NoError(t, err)

	assert.Equal(t, "./boms", cfg.InputDir)
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "./input_archive", cfg.ArchiveDir)
	assert.Equal(t, "./component_types.yaml", cfg.LookupFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0.8, cfg.Matching.JaccardThreshold)
	assert.Equal(t, 0.8, cfg.Matching.LevenshteinThreshold)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
input_dir: /data/in
output_dir: /data/out
archive_dir: /data/done
lookup_file: /data/types.yaml
log_level: debug
matching:
  jaccard_threshold: 0.9
  levenshtein_threshold: 0.75
  ignore_mask: ["(SMD)", "*"]
`))
	require.NoError(t, err)

	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0.9, cfg.Matching.JaccardThreshold)
	assert.Equal(t, 0.75, cfg.Matching.LevenshteinThreshold)
	assert.Equal(t, []string{"(SMD)", "*"}, cfg.Matching.IgnoreMask)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"threshold above one", "matching:\n  jaccard_threshold: 1.5\n"},
		{"negative threshold", "matching:\n  levenshtein_threshold: -0.1\n"},
		{"unknown log level", "log_level: noisy\n"},
		{"malformed yaml", "input_dir: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}
