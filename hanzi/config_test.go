// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package hanzi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hanziconv/hanziconv/hanzi/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "hanziconv.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0600))
	return filename
}

func TestLoadConfig(t *testing.T) {
	filename := writeConfig(t, `
logging:
  - method: stderr file
    filename: hanziconv.log
    type: "* -convert"
    level: debug

mapping:
  ignore:
    - simplified: "郄"
      traditional: "郤"
  extend:
    - simplified: "脩"
      traditional: "修"
`)

	config, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, filename, config.Filename)

	require.Len(t, config.Logging, 1)
	logConfig := config.Logging[0]
	assert.True(t, logConfig.MethodStderr)
	assert.True(t, logConfig.MethodFile)
	assert.False(t, logConfig.MethodStdout)
	assert.Equal(t, logger.LogDebug, logConfig.Level)
	assert.Equal(t, []string{"*"}, logConfig.Types)
	assert.Equal(t, []string{"convert"}, logConfig.ExcludedTypes)

	require.Len(t, config.Mapping.Ignore, 1)
	assert.Equal(t, "郄", config.Mapping.Ignore[0].Simplified)
	assert.Equal(t, "郤", config.Mapping.Ignore[0].Traditional)
	require.Len(t, config.Mapping.Extend, 1)
	assert.Equal(t, "脩", config.Mapping.Extend[0].Simplified)
	assert.Equal(t, "修", config.Mapping.Extend[0].Traditional)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "no-such.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	for name, contents := range map[string]string{
		"empty":        "",
		"comment only": "# nothing configured\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, contents))
			assert.Equal(t, ErrConfigEmpty, err)
		})
	}
}

func TestLoadConfigLoggingValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		expected error
	}{
		{
			name: "file method without filename",
			contents: `
logging:
  - method: file
    type: "*"
    level: info
`,
			expected: ErrLoggerFilenameMissing,
		},
		{
			name: "no types",
			contents: `
logging:
  - method: stderr
    type: ""
    level: info
`,
			expected: ErrLoggerHasNoTypes,
		},
		{
			name: "bare exclude",
			contents: `
logging:
  - method: stderr
    type: "* -"
    level: info
`,
			expected: ErrLoggerExcludeEmpty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.contents))
			assert.Equal(t, tt.expected, err)
		})
	}
}

func TestLoadConfigBadLevel(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
logging:
  - method: stderr
    type: "*"
    level: loud
`))
	assert.Error(t, err)
}

func TestLoadConfigIncompleteOverride(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
mapping:
  ignore:
    - simplified: "郄"
      traditional: ""
`))
	assert.Equal(t, ErrOverrideIncomplete, err)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.Len(t, config.Logging, 1)
	assert.True(t, config.Logging[0].MethodStderr)
	assert.Equal(t, logger.LogWarning, config.Logging[0].Level)
	assert.Empty(t, config.Mapping.Ignore)
	assert.Empty(t, config.Mapping.Extend)
}
